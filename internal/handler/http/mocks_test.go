package http

import (
	"context"

	"github.com/contactapp/contact-api/internal/logger"
	"github.com/contactapp/contact-api/internal/service"
	"github.com/contactapp/contact-api/models"
)

// The handler tests run against the real router with the service layer
// replaced by function-field mocks, so every assertion exercises routing,
// middleware, and envelope encoding together.

type mockAuthService struct {
	authenticate func(ctx context.Context, token string) (models.User, error)
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (models.User, error) {
	return m.authenticate(ctx, token)
}

type mockUserService struct {
	register func(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error)
	login    func(ctx context.Context, req models.LoginUserRequest) (models.TokenResponse, error)
	current  func(ctx context.Context, user models.User) models.UserResponse
	update   func(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.UserResponse, error)
	logout   func(ctx context.Context, user models.User) error
}

func (m *mockUserService) Register(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error) {
	return m.register(ctx, req)
}

func (m *mockUserService) Login(ctx context.Context, req models.LoginUserRequest) (models.TokenResponse, error) {
	return m.login(ctx, req)
}

func (m *mockUserService) Current(ctx context.Context, user models.User) models.UserResponse {
	if m.current != nil {
		return m.current(ctx, user)
	}
	return user.PublicUser()
}

func (m *mockUserService) Update(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.UserResponse, error) {
	return m.update(ctx, user, req)
}

func (m *mockUserService) Logout(ctx context.Context, user models.User) error {
	return m.logout(ctx, user)
}

type mockContactService struct {
	create func(ctx context.Context, username string, contact models.Contact) (models.Contact, error)
	get    func(ctx context.Context, username string, contactID int64) (models.Contact, error)
	update func(ctx context.Context, username string, contactID int64, contact models.Contact) (models.Contact, error)
	delete func(ctx context.Context, username string, contactID int64) error
	search func(ctx context.Context, username string, filter models.ContactFilter) ([]models.Contact, models.Paging, error)
}

func (m *mockContactService) Create(ctx context.Context, username string, contact models.Contact) (models.Contact, error) {
	return m.create(ctx, username, contact)
}

func (m *mockContactService) Get(ctx context.Context, username string, contactID int64) (models.Contact, error) {
	return m.get(ctx, username, contactID)
}

func (m *mockContactService) Update(ctx context.Context, username string, contactID int64, contact models.Contact) (models.Contact, error) {
	return m.update(ctx, username, contactID, contact)
}

func (m *mockContactService) Delete(ctx context.Context, username string, contactID int64) error {
	return m.delete(ctx, username, contactID)
}

func (m *mockContactService) Search(ctx context.Context, username string, filter models.ContactFilter) ([]models.Contact, models.Paging, error) {
	return m.search(ctx, username, filter)
}

type mockAddressService struct {
	create func(ctx context.Context, username string, contactID int64, address models.Address) (models.Address, error)
	get    func(ctx context.Context, username string, contactID, addressID int64) (models.Address, error)
	update func(ctx context.Context, username string, contactID, addressID int64, address models.Address) (models.Address, error)
	delete func(ctx context.Context, username string, contactID, addressID int64) error
	list   func(ctx context.Context, username string, contactID int64) ([]models.Address, error)
}

func (m *mockAddressService) Create(ctx context.Context, username string, contactID int64, address models.Address) (models.Address, error) {
	return m.create(ctx, username, contactID, address)
}

func (m *mockAddressService) Get(ctx context.Context, username string, contactID, addressID int64) (models.Address, error) {
	return m.get(ctx, username, contactID, addressID)
}

func (m *mockAddressService) Update(ctx context.Context, username string, contactID, addressID int64, address models.Address) (models.Address, error) {
	return m.update(ctx, username, contactID, addressID, address)
}

func (m *mockAddressService) Delete(ctx context.Context, username string, contactID, addressID int64) error {
	return m.delete(ctx, username, contactID, addressID)
}

func (m *mockAddressService) List(ctx context.Context, username string, contactID int64) ([]models.Address, error) {
	return m.list(ctx, username, contactID)
}

// knownToken is accepted by the default auth mock; every other token is
// rejected.
const knownToken = "token-1"

// authedUser is the account the default auth mock resolves knownToken to.
var authedUser = models.User{Username: "john", Name: "John Doe"}

// newTestHandler wires a Handler around the given mocks, substituting a
// token-matching AuthService when none is supplied.
func newTestHandler(auth *mockAuthService, users *mockUserService, contacts *mockContactService, addresses *mockAddressService) *Handler {
	if auth == nil {
		auth = &mockAuthService{
			authenticate: func(ctx context.Context, token string) (models.User, error) {
				if token != knownToken {
					return models.User{}, service.ErrUnauthorized
				}
				return authedUser, nil
			},
		}
	}

	services := &service.Services{
		AuthService:    auth,
		UserService:    users,
		ContactService: contacts,
		AddressService: addresses,
	}

	return NewHandler(services, logger.Nop())
}
