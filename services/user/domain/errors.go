package domain

import "errors"

// Sentinel errors for the user domain. Use errors.Is() to check these.
var (
	// ErrUserNotFound indicates the user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidRole indicates a role outside Admin, Dispatcher, Driver and Customer.
	ErrInvalidRole = errors.New("invalid role")
)
