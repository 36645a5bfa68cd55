package service

import "errors"

// ValidationError carries a user-facing message for a rejected request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// ErrNoProject means the implicit project is missing from the database.
var ErrNoProject = errors.New("no project in database")
