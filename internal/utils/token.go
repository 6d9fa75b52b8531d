package utils

import "github.com/google/uuid"

// NewToken generates a fresh opaque bearer token. The value is a random
// UUIDv4 string carrying no embedded claims; it is meaningful only as a
// lookup key against the user table.
func NewToken() string {
	return uuid.NewString()
}
