package models

import "errors"

// Sentinel errors shared across services, matched with errors.Is at the
// HTTP boundary. ErrNotFound covers both missing and foreign-owned
// resources so existence never leaks across accounts.
var (
	ErrValidation         = errors.New("invalid data provided")
	ErrUnauthenticated    = errors.New("not authorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDecryption         = errors.New("unable to decrypt key")
)
