package app

import (
	"time"

	"github.com/google/uuid"
)

// Session records which account, if any, is currently authenticated.
// It starts absent, is set by a successful Authenticate, and is replaced
// wholesale by the next login.
type Session struct {
	ID        string
	PatientID string
	StartedAt time.Time
}

func newSession(patientID string) *Session {
	return &Session{
		ID:        uuid.NewString(),
		PatientID: patientID,
		StartedAt: time.Now().UTC(),
	}
}
