package domain

import "errors"

var (
	// ErrNotFound is returned when the referenced activity does not exist.
	ErrNotFound = errors.New("activity not found")
	// ErrDuplicateRegistration is returned when the participant is already signed up.
	ErrDuplicateRegistration = errors.New("already signed up")
	// ErrCapacityExceeded is returned when the activity is full.
	ErrCapacityExceeded = errors.New("activity is full")
	// ErrNotRegistered is returned when unregistering a participant who is not signed up.
	ErrNotRegistered = errors.New("not registered")
	// ErrInvalidInput is returned for empty identifiers or an invalid seed catalogue.
	ErrInvalidInput = errors.New("invalid input")
)
