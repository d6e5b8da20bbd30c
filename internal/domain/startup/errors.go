package startup

import "errors"

var (
	// ErrNotFound indicates the startup doesn't exist.
	ErrNotFound = errors.New("startup not found")
	// ErrInvalidInput indicates invalid input for startup operations.
	ErrInvalidInput = errors.New("invalid startup input")
	// ErrInvalidStage indicates a stage outside the known pipeline set.
	ErrInvalidStage = errors.New("invalid stage")
	// ErrDuplicateEmail indicates another startup already uses the email.
	ErrDuplicateEmail = errors.New("email already in use")
)
