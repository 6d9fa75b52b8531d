package service

import "errors"

var (
	// ErrUnauthorized is returned when a bearer token cannot be resolved to
	// a user: missing header, empty token, and unknown token all collapse
	// into this single error.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is returned by Login for both an unknown
	// username and a wrong password, so callers cannot probe which field
	// was wrong.
	ErrInvalidCredentials = errors.New("username or password wrong")
)
