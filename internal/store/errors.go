package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when a write violates the unique
	// constraint on users.username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when a write violates the unique
	// constraint on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match one user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrResetTokenNotFound is returned when no reset token is stored for the
	// user, or when a conditional consume found nothing to delete.
	ErrResetTokenNotFound = errors.New("reset token was not found")

	// ErrNothingToUpdate is returned when an update request carries no fields.
	ErrNothingToUpdate = errors.New("nothing to update")
)

// Low-level storage operation errors. These are returned (or wrapped) by
// repository methods when an operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrStoreUnavailable is returned when the backend reports a transient
	// failure (lost connection, deadlock, busy database).
	ErrStoreUnavailable = errors.New("store is temporarily unavailable")

	// ErrUnsupportedDSN is returned when the database URI matches no
	// supported driver.
	ErrUnsupportedDSN = errors.New("unsupported database uri")

	// ErrEncodingValue and ErrDecodingValue are returned when a cached
	// value cannot be (de)serialized.
	ErrEncodingValue = errors.New("failed to encode value")
	ErrDecodingValue = errors.New("failed to decode value")
)
