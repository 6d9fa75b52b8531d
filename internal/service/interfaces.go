package service

import (
	"context"

	"github.com/contactapp/contact-api/models"
)

// AuthService resolves opaque bearer tokens to user accounts. It backs the
// HTTP authentication middleware and performs a read-only lookup.
type AuthService interface {
	// Authenticate resolves a raw bearer token to exactly one user.
	// A missing, empty, or unknown token yields ErrUnauthorized; the three
	// cases are deliberately indistinguishable to the caller.
	Authenticate(ctx context.Context, token string) (models.User, error)
}

// UserService manages account registration, sessions, and profile updates.
type UserService interface {
	// Register creates a new account with a hashed password and returns
	// its public fields. Fails with a validation error on malformed input
	// or store.ErrUsernameTaken on a duplicate username.
	Register(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error)

	// Login verifies the credentials and rotates the account's opaque
	// token. A missing user and a wrong password both yield
	// ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginUserRequest) (models.TokenResponse, error)

	// Current returns the public fields of the already-authenticated user.
	Current(ctx context.Context, user models.User) models.UserResponse

	// Update applies the optional name and/or password change to the
	// authenticated user; a supplied password is re-hashed before storage.
	Update(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.UserResponse, error)

	// Logout clears the user's token, invalidating the presented credential.
	Logout(ctx context.Context, user models.User) error
}

// ContactService manages contacts on behalf of their owning user. Every
// operation implicitly filters by the authenticated username.
type ContactService interface {
	Create(ctx context.Context, username string, contact models.Contact) (models.Contact, error)
	Get(ctx context.Context, username string, contactID int64) (models.Contact, error)
	Update(ctx context.Context, username string, contactID int64, contact models.Contact) (models.Contact, error)
	Delete(ctx context.Context, username string, contactID int64) error

	// Search returns one page of matching contacts with paging metadata.
	// An out-of-range page is not an error: it returns an empty data page
	// with correct totals.
	Search(ctx context.Context, username string, filter models.ContactFilter) ([]models.Contact, models.Paging, error)
}

// AddressService manages addresses nested under a contact. Every operation
// resolves the parent contact under the authenticated owner first and fails
// with the contact's not-found error before any address-specific check.
type AddressService interface {
	Create(ctx context.Context, username string, contactID int64, address models.Address) (models.Address, error)
	Get(ctx context.Context, username string, contactID, addressID int64) (models.Address, error)
	Update(ctx context.Context, username string, contactID, addressID int64, address models.Address) (models.Address, error)
	Delete(ctx context.Context, username string, contactID, addressID int64) error
	List(ctx context.Context, username string, contactID int64) ([]models.Address, error)
}
