package models

import "database/sql"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// Username is the unique user identifier used during authentication
	// and as the owning key for all of the user's contacts.
	Username string `json:"username"`

	// Password stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext.
	Password string `json:"-"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Token is the opaque bearer token issued at login and cleared at
	// logout. NULL in the database means the user holds no active session.
	Token sql.NullString `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterUserRequest is the payload of POST /api/users.
type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginUserRequest is the payload of POST /api/users/login.
type LoginUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest is the payload of PATCH /api/users/current.
// At least one of the fields must be present.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// UserResponse is the public projection of a user account.
// The password hash and token are never included.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// PublicUser converts a persisted user into its public projection.
func (u User) PublicUser() UserResponse {
	return UserResponse{Username: u.Username, Name: u.Name}
}

// TokenResponse carries the opaque bearer token issued at login.
type TokenResponse struct {
	Token string `json:"token"`
}
