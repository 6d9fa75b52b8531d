// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The contact-api Authors

// Package adapter provides a Go client for the contact API.
//
// The primary abstraction is [APIClient], which hides the HTTP transport
// behind typed methods. The shipped implementation ([NewHTTPAPIClient]) is
// built on resty; it manages the bearer token, wraps request payloads, and
// unwraps the {"data": ...} / {"errors": ...} response envelope.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/contactapp/contact-api/models"
)

// APIClient defines typed access to the contact API. Implementations are
// responsible for serialization, bearer-token management, and mapping
// transport-level failures to the sentinel values defined in this package.
type APIClient interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Login calls it automatically.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if none has been set yet.
	Token() string

	// Register creates a new account.
	Register(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error)

	// Login authenticates and stores the returned bearer token via SetToken.
	Login(ctx context.Context, req models.LoginUserRequest) (models.TokenResponse, error)

	// CurrentUser fetches the authenticated user's profile.
	CurrentUser(ctx context.Context) (models.UserResponse, error)

	// UpdateUser changes the display name and/or password.
	UpdateUser(ctx context.Context, req models.UpdateUserRequest) (models.UserResponse, error)

	// Logout invalidates the server-side token and clears the stored one.
	Logout(ctx context.Context) error

	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	GetContact(ctx context.Context, contactID int64) (models.Contact, error)
	UpdateContact(ctx context.Context, contactID int64, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, contactID int64) error

	// SearchContacts returns one page of contacts matching the filter plus
	// the paging descriptor from the response envelope.
	SearchContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, models.Paging, error)

	CreateAddress(ctx context.Context, contactID int64, address models.Address) (models.Address, error)
	GetAddress(ctx context.Context, contactID, addressID int64) (models.Address, error)
	UpdateAddress(ctx context.Context, contactID, addressID int64, address models.Address) (models.Address, error)
	DeleteAddress(ctx context.Context, contactID, addressID int64) error
	ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error)
}
