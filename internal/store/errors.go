package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new user
	// fails because a user with the same username already exists.
	ErrUsernameTaken = errors.New("username already registered")

	// ErrUserNotFound is returned when a query expected to match exactly one
	// user record produces an empty result set. This covers both lookups by
	// username and lookups by bearer token.
	ErrUserNotFound = errors.New("user is not found")

	// ErrContactNotFound is returned when a contact query scoped to its
	// owning user matches no rows, either because the id does not exist or
	// because the contact belongs to a different user. The two cases are
	// deliberately indistinguishable.
	ErrContactNotFound = errors.New("contact is not found")

	// ErrAddressNotFound is returned when an address query scoped to its
	// parent contact matches no rows.
	ErrAddressNotFound = errors.New("address is not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
