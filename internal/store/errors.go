package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against
// these values.
var (
	// ErrUserAlreadyExists is returned when creating or updating an
	// account violates one of the uniqueness constraints (username,
	// email, or provider subject id).
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a query expected to match at
	// least one account produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPostAlreadyExists is returned when creating or updating an
	// article violates the title or slug uniqueness constraint.
	ErrPostAlreadyExists = errors.New("post already exists")

	// ErrPostNotFound is returned when a query targets an article that
	// does not exist.
	ErrPostNotFound = errors.New("post not found")

	// ErrCommentNotFound is returned when a query targets a comment
	// that does not exist.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrDownloadNotFound is returned when a query targets a download
	// entry that does not exist.
	ErrDownloadNotFound = errors.New("download entry not found")
)

// Low-level database operation errors. These are returned (or wrapped)
// by repository methods when a SQL-level operation fails before any
// domain logic can be applied. The HTTP layer maps all of them to a
// retriable server error.
var (
	// ErrBuildingSQLQuery is returned when constructing a
	// parameterised SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a
	// single result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
