package services

import "errors"

// Error kinds surfaced to handlers, which map them to HTTP statuses.
var (
	// ErrUsernameTaken is returned when registering with a username that already exists
	ErrUsernameTaken = errors.New("username already exists")
	// ErrEmailTaken is returned when registering with an email that already exists
	ErrEmailTaken = errors.New("email already exists")
	// ErrInvalidCredentials is returned when login fails, without revealing which part was wrong
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrForbidden is returned when a non-administrator attempts to delete a cafe
	ErrForbidden = errors.New("administrator rights required")
	// ErrMissingFields is returned when a cafe creation request omits required fields
	ErrMissingFields = errors.New("missing required fields")
)
