package meeting

import "errors"

var (
	// ErrNotFound indicates the meeting doesn't exist.
	ErrNotFound = errors.New("meeting not found")
	// ErrInvalidInput indicates invalid input for meeting operations.
	ErrInvalidInput = errors.New("invalid meeting input")
	// ErrInvalidKind indicates an unknown meeting format.
	ErrInvalidKind = errors.New("invalid meeting kind")
	// ErrAlreadyCompleted indicates the meeting was completed earlier.
	ErrAlreadyCompleted = errors.New("meeting already completed")
)
