package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/contactapp/contact-api/internal/logger"
	"github.com/contactapp/contact-api/internal/store"
	"github.com/contactapp/contact-api/internal/validators"
	"github.com/contactapp/contact-api/models"
)

// addressService is the concrete implementation of [AddressService].
//
// Every operation first resolves the parent contact under the caller's
// username. That single lookup enforces the whole ownership chain: a contact
// that is missing or owned by someone else stops the request with
// store.ErrContactNotFound before any address row is touched.
type addressService struct {
	contactRepository store.ContactRepository
	addressRepository store.AddressRepository
	logger            *logger.Logger
}

// NewAddressService constructs an AddressService backed by the given
// repositories.
func NewAddressService(contactRepository store.ContactRepository, addressRepository store.AddressRepository, logger *logger.Logger) AddressService {
	return &addressService{
		contactRepository: contactRepository,
		addressRepository: addressRepository,
		logger:            logger,
	}
}

// resolveContact checks that contactID exists and belongs to username.
func (s *addressService) resolveContact(ctx context.Context, username string, contactID int64) error {
	_, err := s.contactRepository.FindContactByID(ctx, username, contactID)
	return err
}

// Create validates and stores a new address under an owned contact.
func (s *addressService) Create(ctx context.Context, username string, contactID int64, address models.Address) (models.Address, error) {
	log := logger.FromContext(ctx)

	if err := s.resolveContact(ctx, username, contactID); err != nil {
		return models.Address{}, err
	}

	if err := validators.ValidateAddress(address); err != nil {
		log.Error().Str("username", username).Err(err).Msg("invalid address payload")
		return models.Address{}, err
	}

	address.ContactID = contactID

	created, err := s.addressRepository.CreateAddress(ctx, address)
	if err != nil {
		log.Err(err).Str("username", username).Int64("contact_id", contactID).Msg("address creation ended with error")
		return models.Address{}, fmt.Errorf("address creation ended with error: %w", err)
	}

	return created, nil
}

// Get returns one address of an owned contact.
func (s *addressService) Get(ctx context.Context, username string, contactID, addressID int64) (models.Address, error) {
	if err := s.resolveContact(ctx, username, contactID); err != nil {
		return models.Address{}, err
	}

	address, err := s.addressRepository.FindAddressByID(ctx, contactID, addressID)
	if err != nil {
		return models.Address{}, err
	}

	return address, nil
}

// Update replaces the stored fields of an address under an owned contact.
func (s *addressService) Update(ctx context.Context, username string, contactID, addressID int64, address models.Address) (models.Address, error) {
	log := logger.FromContext(ctx)

	if err := s.resolveContact(ctx, username, contactID); err != nil {
		return models.Address{}, err
	}

	if err := validators.ValidateAddress(address); err != nil {
		log.Error().Str("username", username).Err(err).Msg("invalid address payload")
		return models.Address{}, err
	}

	address.ID = addressID
	address.ContactID = contactID

	updated, err := s.addressRepository.UpdateAddress(ctx, address)
	if err != nil {
		if errors.Is(err, store.ErrAddressNotFound) {
			return models.Address{}, err
		}

		log.Err(err).Str("username", username).Int64("address_id", addressID).Msg("address update ended with error")
		return models.Address{}, fmt.Errorf("address update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes one address of an owned contact.
func (s *addressService) Delete(ctx context.Context, username string, contactID, addressID int64) error {
	log := logger.FromContext(ctx)

	if err := s.resolveContact(ctx, username, contactID); err != nil {
		return err
	}

	if err := s.addressRepository.DeleteAddress(ctx, contactID, addressID); err != nil {
		if errors.Is(err, store.ErrAddressNotFound) {
			return err
		}

		log.Err(err).Str("username", username).Int64("address_id", addressID).Msg("address deletion ended with error")
		return fmt.Errorf("address deletion ended with error: %w", err)
	}

	return nil
}

// List returns every address of an owned contact ordered by id.
func (s *addressService) List(ctx context.Context, username string, contactID int64) ([]models.Address, error) {
	log := logger.FromContext(ctx)

	if err := s.resolveContact(ctx, username, contactID); err != nil {
		return nil, err
	}

	addresses, err := s.addressRepository.ListAddresses(ctx, contactID)
	if err != nil {
		log.Err(err).Str("username", username).Int64("contact_id", contactID).Msg("address listing ended with error")
		return nil, fmt.Errorf("address listing ended with error: %w", err)
	}

	return addresses, nil
}
