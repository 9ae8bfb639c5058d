package usecase

import "errors"

// Sentinel errors mapped to HTTP statuses at the handler boundary.
var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrInvalidInput       = errors.New("invalid input")
)
