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

const (
	// defaultPageSize is the number of contacts returned per search page
	// when the caller does not ask for a usable size.
	defaultPageSize = 10

	// maxPageSize bounds the page size a caller may request; anything
	// larger falls back to the default.
	maxPageSize = 100
)

// contactService is the concrete implementation of [ContactService]. Every
// operation is scoped to the owning username so one user can never read or
// modify another user's contacts.
type contactService struct {
	contactRepository store.ContactRepository
	logger            *logger.Logger
}

// NewContactService constructs a ContactService backed by the given
// ContactRepository.
func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		logger:            logger,
	}
}

// Create validates and stores a new contact owned by username.
func (s *contactService) Create(ctx context.Context, username string, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateContact(contact); err != nil {
		log.Error().Str("username", username).Err(err).Msg("invalid contact payload")
		return models.Contact{}, err
	}

	contact.Username = username

	created, err := s.contactRepository.CreateContact(ctx, contact)
	if err != nil {
		log.Err(err).Str("username", username).Msg("contact creation ended with error")
		return models.Contact{}, fmt.Errorf("contact creation ended with error: %w", err)
	}

	return created, nil
}

// Get returns the contact with the given id if it belongs to username,
// store.ErrContactNotFound otherwise.
func (s *contactService) Get(ctx context.Context, username string, contactID int64) (models.Contact, error) {
	contact, err := s.contactRepository.FindContactByID(ctx, username, contactID)
	if err != nil {
		return models.Contact{}, err
	}

	return contact, nil
}

// Update replaces the stored fields of an owned contact. A contact owned by
// someone else is indistinguishable from a missing one: both yield
// store.ErrContactNotFound.
func (s *contactService) Update(ctx context.Context, username string, contactID int64, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateContact(contact); err != nil {
		log.Error().Str("username", username).Err(err).Msg("invalid contact payload")
		return models.Contact{}, err
	}

	contact.ID = contactID
	contact.Username = username

	updated, err := s.contactRepository.UpdateContact(ctx, contact)
	if err != nil {
		if errors.Is(err, store.ErrContactNotFound) {
			return models.Contact{}, err
		}

		log.Err(err).Str("username", username).Int64("contact_id", contactID).Msg("contact update ended with error")
		return models.Contact{}, fmt.Errorf("contact update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes an owned contact together with its addresses.
func (s *contactService) Delete(ctx context.Context, username string, contactID int64) error {
	log := logger.FromContext(ctx)

	if err := s.contactRepository.DeleteContact(ctx, username, contactID); err != nil {
		if errors.Is(err, store.ErrContactNotFound) {
			return err
		}

		log.Err(err).Str("username", username).Int64("contact_id", contactID).Msg("contact deletion ended with error")
		return fmt.Errorf("contact deletion ended with error: %w", err)
	}

	return nil
}

// Search lists the user's contacts that match every supplied filter, one
// page at a time. Out-of-range page and size values fall back to the first
// page and the default size rather than failing.
func (s *contactService) Search(ctx context.Context, username string, filter models.ContactFilter) ([]models.Contact, models.Paging, error) {
	log := logger.FromContext(ctx)

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Size <= 0 || filter.Size > maxPageSize {
		filter.Size = defaultPageSize
	}

	contacts, total, err := s.contactRepository.SearchContacts(ctx, username, filter)
	if err != nil {
		log.Err(err).Str("username", username).Msg("contact search ended with error")
		return nil, models.Paging{}, fmt.Errorf("contact search ended with error: %w", err)
	}

	return contacts, models.NewPaging(filter.Page, filter.Size, total), nil
}
