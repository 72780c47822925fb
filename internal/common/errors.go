package common

import "errors"

// Errors shared by the repository, service and handler layers.
// Lower layers wrap them with fmt.Errorf("...: %w"), handlers match them with errors.Is.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")

	// ErrStorage marks a failed count or fetch against the database.
	ErrStorage = errors.New("storage failure")
)
