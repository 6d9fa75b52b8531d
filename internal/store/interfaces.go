package store

import (
	"context"
	"database/sql"

	"github.com/contactapp/contact-api/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account. Returns [ErrUsernameTaken] when the
	// username unique constraint is violated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the account with the given username, or
	// [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByToken returns the account currently holding the given bearer
	// token, or [ErrUserNotFound] when no session matches.
	FindUserByToken(ctx context.Context, token string) (models.User, error)

	// UpdateUser applies the non-empty profile fields (name, password hash)
	// of user and returns the stored record.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateUserToken stores the bearer token for the account; an invalid
	// (NULL) token ends the session.
	UpdateUserToken(ctx context.Context, username string, token sql.NullString) error

	// DeleteUser removes the account. Test utility only; there is no
	// production delete-user endpoint.
	DeleteUser(ctx context.Context, username string) error
}

// ContactRepository is the data-access contract for contacts. Every lookup
// and mutation is scoped to the owning username in a single compound
// predicate, so a contact owned by another user is indistinguishable from a
// missing one.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	FindContactByID(ctx context.Context, username string, contactID int64) (models.Contact, error)
	UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, username string, contactID int64) error

	// SearchContacts returns one page of the user's contacts matching the
	// filter plus the total match count across all pages.
	SearchContacts(ctx context.Context, username string, filter models.ContactFilter) ([]models.Contact, int, error)
}

// AddressRepository is the data-access contract for addresses. Every lookup
// and mutation is scoped to the parent contact id; resolving that contact
// under the requesting user is the service layer's responsibility.
type AddressRepository interface {
	CreateAddress(ctx context.Context, address models.Address) (models.Address, error)
	FindAddressByID(ctx context.Context, contactID, addressID int64) (models.Address, error)
	UpdateAddress(ctx context.Context, address models.Address) (models.Address, error)
	DeleteAddress(ctx context.Context, contactID, addressID int64) error
	ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error)
}
