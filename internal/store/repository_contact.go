package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/contactapp/contact-api/internal/logger"
	"github.com/contactapp/contact-api/models"
)

// contactColumns is the projection shared by every contact query. Optional
// columns come back as empty strings instead of NULLs.
var contactColumns = []string{
	"id",
	"username",
	"first_name",
	"COALESCE(last_name, '')",
	"COALESCE(email, '')",
	"COALESCE(phone, '')",
}

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository]. Static statements live in sql_queries.go; the search
// query is assembled with squirrel because its predicate set depends on
// which filters the caller supplied.
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// CreateContact persists a new contact owned by contact.Username and returns
// the record with its server-assigned id.
func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	var created models.Contact
	row := r.db.QueryRowContext(ctx, createContact,
		contact.Username, contact.FirstName, contact.LastName, contact.Email, contact.Phone)

	if err := scanContact(row, &created); err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error creating contact")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindContactByID retrieves a contact by id scoped to its owner. The id and
// the owner are matched in one compound predicate so that a contact owned by
// another user is reported as [ErrContactNotFound], not as a permission
// failure.
func (r *contactRepository) FindContactByID(ctx context.Context, username string, contactID int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	var found models.Contact
	row := r.db.QueryRowContext(ctx, findContactByID, contactID, username)

	if err := scanContact(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}

		log.Err(err).Str("func", "*contactRepository.FindContactByID").Msg("error finding contact")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateContact replaces every contact field under the same compound
// id+owner predicate used by FindContactByID. A missed predicate surfaces as
// [ErrContactNotFound] via the empty RETURNING set, costing no extra
// round trip.
func (r *contactRepository) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	var updated models.Contact
	row := r.db.QueryRowContext(ctx, updateContact,
		contact.FirstName, contact.LastName, contact.Email, contact.Phone, contact.ID, contact.Username)

	if err := scanContact(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}

		log.Err(err).Str("func", "*contactRepository.UpdateContact").Msg("error updating contact")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteContact removes the contact under the compound id+owner predicate.
// Addresses are removed by the ON DELETE CASCADE constraint.
func (r *contactRepository) DeleteContact(ctx context.Context, username string, contactID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteContact, contactID, username)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Msg("error deleting contact")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

// SearchContacts returns one page of the user's contacts matching the filter
// plus the total match count. Filters are AND-combined; each one is a
// case-insensitive substring match, with the name filter applied to the
// space-joined full name. Results are ordered by id so that pages are
// stable. An out-of-range page yields an empty slice with the correct total.
func (r *contactRepository) SearchContacts(ctx context.Context, username string, filter models.ContactFilter) ([]models.Contact, int, error) {
	log := logger.FromContext(ctx)

	predicates := searchPredicates(username, filter)

	total, err := r.countContacts(ctx, predicates)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("error counting contacts")
		return nil, 0, err
	}

	query, args, err := sq.Select(contactColumns...).
		From(models.Contact{}.TableName()).
		Where(predicates).
		OrderBy("id").
		Limit(uint64(filter.Size)).
		Offset(uint64((filter.Page - 1) * filter.Size)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("error executing search query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0, filter.Size)
	for rows.Next() {
		var contact models.Contact
		if err := scanContact(rows, &contact); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return contacts, total, nil
}

func (r *contactRepository) countContacts(ctx context.Context, predicates sq.And) (int, error) {
	query, args, err := sq.Select("COUNT(*)").
		From(models.Contact{}.TableName()).
		Where(predicates).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// searchPredicates builds the shared WHERE clause of the count and the page
// query: owner scoping always, plus one ILIKE predicate per supplied filter.
// The name filter runs against the space-joined full name, so it matches a
// first name, a last name, or a substring spanning the boundary between the
// two ("ne do" finds "Jane Doe").
func searchPredicates(username string, filter models.ContactFilter) sq.And {
	predicates := sq.And{sq.Eq{"username": username}}

	if filter.Name != "" {
		predicates = append(predicates, sq.ILike{
			"first_name || ' ' || COALESCE(last_name, '')": "%" + filter.Name + "%",
		})
	}
	if filter.Email != "" {
		predicates = append(predicates, sq.ILike{"email": "%" + filter.Email + "%"})
	}
	if filter.Phone != "" {
		predicates = append(predicates, sq.ILike{"phone": "%" + filter.Phone + "%"})
	}

	return predicates
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanContact(s scanner, contact *models.Contact) error {
	return s.Scan(&contact.ID, &contact.Username, &contact.FirstName, &contact.LastName, &contact.Email, &contact.Phone)
}
