package web

import "github.com/pkg/errors"

// Error is used to pass an error during the request through the
// application with web specific context: the HTTP status that the
// handler boundary should respond with.
type Error struct {
	Err    error
	Status int
}

// NewRequestError wraps a provided error with an HTTP status code. This
// function should be used when handlers encounter expected errors.
func NewRequestError(err error, status int) error {
	return &Error{err, status}
}

func (err *Error) Error() string {
	return err.Err.Error()
}

// IsRequestError checks if an error of type *Error exists in the chain.
func IsRequestError(err error) bool {
	var re *Error
	return errors.As(err, &re)
}

// GetRequestError returns a copy of the *Error in the chain, or nil.
func GetRequestError(err error) *Error {
	var re *Error
	if !errors.As(err, &re) {
		return nil
	}
	return re
}
