package service

import (
	"context"
	"database/sql"

	"github.com/contactapp/contact-api/models"
)

// mockUserRepository implements store.UserRepository with overridable
// function fields so each test supplies only the behavior it needs.
type mockUserRepository struct {
	createUser         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsername func(ctx context.Context, username string) (models.User, error)
	findUserByToken    func(ctx context.Context, token string) (models.User, error)
	updateUser         func(ctx context.Context, user models.User) (models.User, error)
	updateUserToken    func(ctx context.Context, username string, token sql.NullString) error
	deleteUser         func(ctx context.Context, username string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUser(ctx, user)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsername(ctx, username)
}

func (m *mockUserRepository) FindUserByToken(ctx context.Context, token string) (models.User, error) {
	return m.findUserByToken(ctx, token)
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.updateUser(ctx, user)
}

func (m *mockUserRepository) UpdateUserToken(ctx context.Context, username string, token sql.NullString) error {
	return m.updateUserToken(ctx, username, token)
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, username string) error {
	return m.deleteUser(ctx, username)
}

// mockContactRepository implements store.ContactRepository.
type mockContactRepository struct {
	createContact   func(ctx context.Context, contact models.Contact) (models.Contact, error)
	findContactByID func(ctx context.Context, username string, contactID int64) (models.Contact, error)
	updateContact   func(ctx context.Context, contact models.Contact) (models.Contact, error)
	deleteContact   func(ctx context.Context, username string, contactID int64) error
	searchContacts  func(ctx context.Context, username string, filter models.ContactFilter) ([]models.Contact, int, error)
}

func (m *mockContactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	return m.createContact(ctx, contact)
}

func (m *mockContactRepository) FindContactByID(ctx context.Context, username string, contactID int64) (models.Contact, error) {
	return m.findContactByID(ctx, username, contactID)
}

func (m *mockContactRepository) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	return m.updateContact(ctx, contact)
}

func (m *mockContactRepository) DeleteContact(ctx context.Context, username string, contactID int64) error {
	return m.deleteContact(ctx, username, contactID)
}

func (m *mockContactRepository) SearchContacts(ctx context.Context, username string, filter models.ContactFilter) ([]models.Contact, int, error) {
	return m.searchContacts(ctx, username, filter)
}

// mockAddressRepository implements store.AddressRepository.
type mockAddressRepository struct {
	createAddress   func(ctx context.Context, address models.Address) (models.Address, error)
	findAddressByID func(ctx context.Context, contactID, addressID int64) (models.Address, error)
	updateAddress   func(ctx context.Context, address models.Address) (models.Address, error)
	deleteAddress   func(ctx context.Context, contactID, addressID int64) error
	listAddresses   func(ctx context.Context, contactID int64) ([]models.Address, error)
}

func (m *mockAddressRepository) CreateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	return m.createAddress(ctx, address)
}

func (m *mockAddressRepository) FindAddressByID(ctx context.Context, contactID, addressID int64) (models.Address, error) {
	return m.findAddressByID(ctx, contactID, addressID)
}

func (m *mockAddressRepository) UpdateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	return m.updateAddress(ctx, address)
}

func (m *mockAddressRepository) DeleteAddress(ctx context.Context, contactID, addressID int64) error {
	return m.deleteAddress(ctx, contactID, addressID)
}

func (m *mockAddressRepository) ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error) {
	return m.listAddresses(ctx, contactID)
}
