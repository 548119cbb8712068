package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidKey indicates a malformed kebab-case identifier.
	ErrInvalidKey = errors.New("identifier must be kebab-case")
)
