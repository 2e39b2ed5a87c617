package app

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown patient ID and a wrong
	// password so a failed login does not reveal which field was wrong.
	ErrInvalidCredentials = errors.New("invalid patient ID or password")

	ErrPatientIDExists = errors.New("patient ID already exists")
	ErrMissingField    = errors.New("all registration fields are required")
)
