package store

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"medimatch/pkg/domain"
)

type GormStoreOptions struct {
	ResetOnOpen bool
}

type GormStoreOption func(*GormStoreOptions)

// WithResetOnOpen drops and recreates both tables when the store opens,
// reproducing the historical always-empty startup behavior. Off by
// default so accounts and history survive restarts.
func WithResetOnOpen(reset bool) GormStoreOption {
	return func(opts *GormStoreOptions) {
		opts.ResetOnOpen = reset
	}
}

// GormStore implements Store using GORM over an embedded SQLite file.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens (or creates) the database file and runs migrations.
func NewGormStore(path string, options ...GormStoreOption) (*GormStore, error) {
	opts := GormStoreOptions{}
	for _, option := range options {
		if option != nil {
			option(&opts)
		}
	}
	gormLog := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if opts.ResetOnOpen {
		if err := db.Migrator().DropTable(&SearchHistoryModel{}, &UserModel{}); err != nil {
			return nil, fmt.Errorf("reset tables: %w", err)
		}
	}
	if err := db.AutoMigrate(&UserModel{}, &SearchHistoryModel{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveUser inserts a new account record.
func (s *GormStore) SaveUser(u domain.User) error {
	model := userToModel(u)
	return s.db.Create(&model).Error
}

// HasUser checks if a patient ID is already registered.
func (s *GormStore) HasUser(patientID string) (bool, error) {
	var count int64
	if err := s.db.Model(&UserModel{}).Where("patient_id = ?", patientID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetUser looks up an account by patient ID.
func (s *GormStore) GetUser(patientID string) (domain.User, bool, error) {
	var model UserModel
	if err := s.db.First(&model, "patient_id = ?", patientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}
	return userFromModel(model), true, nil
}

// AppendSearch records a search-history entry.
func (s *GormStore) AppendSearch(entry domain.SearchEntry) error {
	model := SearchHistoryModel{
		PatientID:  entry.PatientID,
		Query:      entry.Query,
		SearchedAt: entry.SearchedAt,
	}
	return s.db.Create(&model).Error
}

// ListSearches returns a user's history in insertion order.
func (s *GormStore) ListSearches(patientID string) ([]domain.SearchEntry, error) {
	var models []SearchHistoryModel
	if err := s.db.Where("patient_id = ?", patientID).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	entries := make([]domain.SearchEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, domain.SearchEntry{
			ID:         m.ID,
			PatientID:  m.PatientID,
			Query:      m.Query,
			SearchedAt: m.SearchedAt,
		})
	}
	return entries, nil
}

func userToModel(u domain.User) UserModel {
	return UserModel{
		PatientID:    u.PatientID,
		Name:         u.Name,
		Number:       u.PhoneNumber,
		Location:     u.Location,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

func userFromModel(m UserModel) domain.User {
	return domain.User{
		PatientID:    m.PatientID,
		Name:         m.Name,
		PhoneNumber:  m.Number,
		Location:     m.Location,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}
