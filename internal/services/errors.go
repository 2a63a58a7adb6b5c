// internal/services/errors.go
package services

import "errors"

// Error taxonomy surfaced to the API layer. None of these are retried; each
// is terminal for the call that produced it.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrPassportNotFound  = errors.New("product passport not found")
	ErrShareCodeNotFound = errors.New("share code not found")
	ErrDuplicateEmail    = errors.New("user with this email already exists")
)
