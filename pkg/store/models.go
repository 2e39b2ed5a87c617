package store

import "time"

// GORM models used for persistence. Table and column names mirror the
// historical user_data.db schema so existing database files stay usable.
type UserModel struct {
	PatientID    string    `gorm:"column:patient_id;primaryKey"`
	Name         string    `gorm:"not null"`
	Number       string    `gorm:"not null"`
	Location     string    `gorm:"not null"`
	PasswordHash string    `gorm:"column:password;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }

type SearchHistoryModel struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	PatientID  string     `gorm:"column:patient_id;not null;index"`
	Query      string     `gorm:"column:search_query;not null"`
	SearchedAt time.Time  `gorm:"column:search_date;not null"`
	User       *UserModel `gorm:"foreignKey:PatientID;references:PatientID"`
}

func (SearchHistoryModel) TableName() string { return "search_history" }
