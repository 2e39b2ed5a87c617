package store

import "medimatch/pkg/domain"

// Store defines persistence operations for accounts and search history.
type Store interface {
	// users
	SaveUser(domain.User) error
	HasUser(patientID string) (bool, error)
	GetUser(patientID string) (domain.User, bool, error)

	// search history (append-only)
	AppendSearch(domain.SearchEntry) error
	ListSearches(patientID string) ([]domain.SearchEntry, error)

	Close() error
}
