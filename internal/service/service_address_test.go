package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactapp/contact-api/internal/logger"
	"github.com/contactapp/contact-api/internal/store"
	"github.com/contactapp/contact-api/internal/validators"
	"github.com/contactapp/contact-api/models"
)

// ownedContact reports every contact lookup as belonging to the caller.
func ownedContact(t *testing.T) *mockContactRepository {
	t.Helper()
	return &mockContactRepository{
		findContactByID: func(ctx context.Context, username string, contactID int64) (models.Contact, error) {
			return models.Contact{ID: contactID, Username: username, FirstName: "Jane"}, nil
		},
	}
}

// foreignContact reports every contact lookup as missing, as the store does
// for contacts owned by another user.
func foreignContact(t *testing.T) *mockContactRepository {
	t.Helper()
	return &mockContactRepository{
		findContactByID: func(ctx context.Context, username string, contactID int64) (models.Contact, error) {
			return models.Contact{}, store.ErrContactNotFound
		},
	}
}

func validAddress() models.Address {
	return models.Address{
		Street:     "Main St 1",
		City:       "Springfield",
		Province:   "IL",
		Country:    "USA",
		PostalCode: "62704",
	}
}

func TestAddressService_Create(t *testing.T) {
	addresses := &mockAddressRepository{
		createAddress: func(ctx context.Context, address models.Address) (models.Address, error) {
			assert.Equal(t, int64(5), address.ContactID, "address must be stamped with the parent contact")
			address.ID = 1
			return address, nil
		},
	}
	svc := NewAddressService(ownedContact(t), addresses, logger.Nop())

	got, err := svc.Create(context.Background(), "john", 5, validAddress())
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Springfield", got.City)
}

func TestAddressService_Create_ContactNotOwned(t *testing.T) {
	svc := NewAddressService(foreignContact(t), &mockAddressRepository{}, logger.Nop())

	_, err := svc.Create(context.Background(), "john", 5, validAddress())
	require.ErrorIs(t, err, store.ErrContactNotFound)
}

func TestAddressService_Create_Invalid(t *testing.T) {
	svc := NewAddressService(ownedContact(t), &mockAddressRepository{}, logger.Nop())

	_, err := svc.Create(context.Background(), "john", 5, models.Address{Street: "Main St 1"})

	var validationErr *validators.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestAddressService_Get(t *testing.T) {
	addresses := &mockAddressRepository{
		findAddressByID: func(ctx context.Context, contactID, addressID int64) (models.Address, error) {
			assert.Equal(t, int64(5), contactID)
			assert.Equal(t, int64(9), addressID)
			return models.Address{ID: 9, ContactID: 5, City: "Springfield"}, nil
		},
	}
	svc := NewAddressService(ownedContact(t), addresses, logger.Nop())

	got, err := svc.Get(context.Background(), "john", 5, 9)
	require.NoError(t, err)
	assert.Equal(t, "Springfield", got.City)
}

func TestAddressService_Get_ContactNotOwned(t *testing.T) {
	svc := NewAddressService(foreignContact(t), &mockAddressRepository{}, logger.Nop())

	_, err := svc.Get(context.Background(), "john", 5, 9)
	require.ErrorIs(t, err, store.ErrContactNotFound)
}

func TestAddressService_Update_NotFound(t *testing.T) {
	addresses := &mockAddressRepository{
		updateAddress: func(ctx context.Context, address models.Address) (models.Address, error) {
			return models.Address{}, store.ErrAddressNotFound
		},
	}
	svc := NewAddressService(ownedContact(t), addresses, logger.Nop())

	_, err := svc.Update(context.Background(), "john", 5, 9, validAddress())
	require.ErrorIs(t, err, store.ErrAddressNotFound)
}

func TestAddressService_Delete(t *testing.T) {
	addresses := &mockAddressRepository{
		deleteAddress: func(ctx context.Context, contactID, addressID int64) error {
			assert.Equal(t, int64(5), contactID)
			assert.Equal(t, int64(9), addressID)
			return nil
		},
	}
	svc := NewAddressService(ownedContact(t), addresses, logger.Nop())

	require.NoError(t, svc.Delete(context.Background(), "john", 5, 9))
}

func TestAddressService_List(t *testing.T) {
	addresses := &mockAddressRepository{
		listAddresses: func(ctx context.Context, contactID int64) ([]models.Address, error) {
			return []models.Address{{ID: 1, ContactID: contactID}, {ID: 2, ContactID: contactID}}, nil
		},
	}
	svc := NewAddressService(ownedContact(t), addresses, logger.Nop())

	got, err := svc.List(context.Background(), "john", 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
}
