package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/contactapp/contact-api/internal/logger"
	"github.com/contactapp/contact-api/models"
	"github.com/jackc/pgerrcode"
)

// addressRepository is the PostgreSQL-backed implementation of
// [AddressRepository]. Every statement is scoped to the parent contact id;
// ownership of that contact has already been verified by the service layer.
type addressRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAddressRepository constructs an [AddressRepository] backed by the
// provided database connection and logger.
func NewAddressRepository(db *DB, logger *logger.Logger) AddressRepository {
	logger.Debug().Msg("creating address repository")
	return &addressRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAddress persists a new address linked to address.ContactID.
//
// A foreign-key violation (the contact was deleted between the ownership
// check and the insert) is reported as [ErrContactNotFound].
func (r *addressRepository) CreateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	log := logger.FromContext(ctx)

	var created models.Address
	row := r.db.QueryRowContext(ctx, createAddress,
		address.ContactID, address.Street, address.City, address.Province, address.Country, address.PostalCode)

	if err := scanAddress(row, &created); err != nil {
		log.Err(err).Str("func", "*addressRepository.CreateAddress").Msg("error creating address")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Address{}, ErrContactNotFound
		}
		return models.Address{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindAddressByID retrieves an address by id scoped to its parent contact.
// An address hanging off a different contact is reported as
// [ErrAddressNotFound].
func (r *addressRepository) FindAddressByID(ctx context.Context, contactID, addressID int64) (models.Address, error) {
	log := logger.FromContext(ctx)

	var found models.Address
	row := r.db.QueryRowContext(ctx, findAddressByID, addressID, contactID)

	if err := scanAddress(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Address{}, ErrAddressNotFound
		}

		log.Err(err).Str("func", "*addressRepository.FindAddressByID").Msg("error finding address")
		return models.Address{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateAddress replaces every address field under the compound
// id+contact_id predicate.
func (r *addressRepository) UpdateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	log := logger.FromContext(ctx)

	var updated models.Address
	row := r.db.QueryRowContext(ctx, updateAddress,
		address.Street, address.City, address.Province, address.Country, address.PostalCode,
		address.ID, address.ContactID)

	if err := scanAddress(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Address{}, ErrAddressNotFound
		}

		log.Err(err).Str("func", "*addressRepository.UpdateAddress").Msg("error updating address")
		return models.Address{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteAddress removes the address under the compound id+contact_id
// predicate.
func (r *addressRepository) DeleteAddress(ctx context.Context, contactID, addressID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAddress, addressID, contactID)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.DeleteAddress").Msg("error deleting address")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrAddressNotFound
	}

	return nil
}

// ListAddresses returns every address of the contact in insertion order.
func (r *addressRepository) ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAddresses, contactID)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.ListAddresses").Msg("error listing addresses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	addresses := make([]models.Address, 0)
	for rows.Next() {
		var address models.Address
		if err := scanAddress(rows, &address); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return addresses, nil
}

func scanAddress(s scanner, address *models.Address) error {
	return s.Scan(&address.ID, &address.ContactID, &address.Street, &address.City, &address.Province, &address.Country, &address.PostalCode)
}
