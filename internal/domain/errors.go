package domain

import "errors"

// Validation errors
var (
	ErrInvalidTitle = errors.New("title is mandatory and must be at most 50 characters")
	ErrInvalidText  = errors.New("text is mandatory and must be at most 300 characters")
)

// Auth errors
var (
	ErrPasswordTooLong = errors.New("password must be at most 72 characters")
	ErrEmailTaken      = errors.New("email already in use")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid token")
)

// ErrNoteNotFound covers both a missing note and a note owned by someone
// else. The two cases are deliberately indistinguishable so that callers
// cannot probe for the existence of other users' notes.
var ErrNoteNotFound = errors.New("note not found or user mismatch")
