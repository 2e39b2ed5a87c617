// Package app wires the catalog, the account/history store, the session
// and the credential cache behind the boundary the presentation layer
// calls into.
package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"medimatch/pkg/auth"
	"medimatch/pkg/catalog"
	"medimatch/pkg/credcache"
	"medimatch/pkg/domain"
	"medimatch/pkg/store"
)

// CredentialCache persists the last successful login for form pre-fill.
type CredentialCache interface {
	Save(credcache.Credentials) error
	Load() (credcache.Credentials, bool)
}

// Config holds the collaborators for the application core.
type Config struct {
	Catalog *catalog.Catalog
	Store   store.Store
	Cache   CredentialCache
}

// App is the application core. It is single-session: at most one account
// is authenticated at a time, matching the desktop deployment model.
type App struct {
	catalog *catalog.Catalog
	store   store.Store
	cache   CredentialCache
	session *Session
}

// New constructs the application core. Cache may be nil, in which case
// credential caching is disabled.
func New(cfg Config) (*App, error) {
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	return &App{
		catalog: cfg.Catalog,
		store:   cfg.Store,
		cache:   cfg.Cache,
	}, nil
}

// Register creates a new account. All five fields must be non-empty and
// the patient ID must be unused. The password is hashed before storage.
func (a *App) Register(patientID, name, phone, location, password string) error {
	patientID = strings.TrimSpace(patientID)
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	location = strings.TrimSpace(location)
	if patientID == "" || name == "" || phone == "" || location == "" || password == "" {
		return ErrMissingField
	}
	exists, err := a.store.HasUser(patientID)
	if err != nil {
		return fmt.Errorf("check patient ID: %w", err)
	}
	if exists {
		return ErrPatientIDExists
	}
	user := domain.User{
		PatientID:    patientID,
		Name:         name,
		PhoneNumber:  phone,
		Location:     location,
		PasswordHash: auth.HashPassword(password),
		CreatedAt:    time.Now().UTC(),
	}
	if err := a.store.SaveUser(user); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	slog.Info("account registered", "patientId", patientID)
	return nil
}

// Authenticate verifies credentials, activates a session on success and
// refreshes the credential cache. Any mismatch yields the same generic
// ErrInvalidCredentials.
func (a *App) Authenticate(patientID, password string) (domain.User, error) {
	user, ok, err := a.store.GetUser(strings.TrimSpace(patientID))
	if err != nil {
		return domain.User{}, fmt.Errorf("fetch user: %w", err)
	}
	if !ok || !auth.CheckPassword(password, user.PasswordHash) {
		return domain.User{}, ErrInvalidCredentials
	}
	a.session = newSession(user.PatientID)
	if a.cache != nil {
		creds := credcache.Credentials{PatientID: user.PatientID, PasswordHash: user.PasswordHash}
		if err := a.cache.Save(creds); err != nil {
			// Cache is convenience only; a failed write must not fail login.
			slog.Warn("credential cache write failed", "err", err)
		}
	}
	slog.Info("login successful", "patientId", user.PatientID)
	return user, nil
}

// Session returns the active session, or nil when unauthenticated.
func (a *App) Session() *Session {
	return a.session
}

// Logout clears the active session. History and cache are untouched.
func (a *App) Logout() {
	a.session = nil
}

// Recommend matches the symptom text against the catalog. Under an
// active session the raw query is appended to the user's search history,
// even when the result set is empty.
func (a *App) Recommend(symptoms string, filter domain.TypeFilter) ([]domain.Medicine, error) {
	matches, err := a.catalog.Recommend(symptoms, filter)
	if err != nil {
		return nil, err
	}
	if a.session != nil {
		entry := domain.SearchEntry{
			PatientID:  a.session.PatientID,
			Query:      symptoms,
			SearchedAt: time.Now().UTC().Truncate(time.Second),
		}
		if err := a.store.AppendSearch(entry); err != nil {
			return nil, fmt.Errorf("record search: %w", err)
		}
	}
	return matches, nil
}

// ListHistory returns the user's searches in insertion order. An empty
// slice, not an error, when none exist.
func (a *App) ListHistory(patientID string) ([]domain.SearchEntry, error) {
	entries, err := a.store.ListSearches(patientID)
	if err != nil {
		return nil, fmt.Errorf("list searches: %w", err)
	}
	return entries, nil
}

// CachedCredentials returns the last saved login pair for form pre-fill.
// It is never consulted for authentication decisions.
func (a *App) CachedCredentials() (credcache.Credentials, bool) {
	if a.cache == nil {
		return credcache.Credentials{}, false
	}
	return a.cache.Load()
}
