package repositories

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no row matches
	ErrNotFound = errors.New("record not found")

	// ErrDuplicatePhone is returned when the phone unique constraint rejects a write
	ErrDuplicatePhone = errors.New("phone already registered")

	// ErrDuplicateEmail is returned when the email unique constraint rejects a write
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidReference is returned when a write references a missing row
	ErrInvalidReference = errors.New("referenced record does not exist")

	// ErrUserReference is returned when the purchase to user reference is broken
	ErrUserReference = fmt.Errorf("%w: user", ErrInvalidReference)

	// ErrFilmReference is returned when the purchase detail to film reference is broken
	ErrFilmReference = fmt.Errorf("%w: film", ErrInvalidReference)
)

// MissingReferenceError carries the id a write referenced that does not exist
type MissingReferenceError struct {
	ID  int64
	Err error
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("%v (id %d)", e.Err, e.ID)
}

func (e *MissingReferenceError) Unwrap() error {
	return e.Err
}
