package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSiteAlreadyExists is returned when a site with the same
	// (user_name, site_name) pair is already stored.
	ErrSiteAlreadyExists = errors.New("site already exists")

	// ErrSiteNotFound is returned when a lookup, update or delete targets a
	// site that does not exist.
	ErrSiteNotFound = errors.New("site was not found")

	// ErrInvalidSite is returned when the database rejects a row because a
	// check constraint failed (e.g. counter below 1).
	ErrInvalidSite = errors.New("site violates a table constraint")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails for a reason not covered by the domain sentinels.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan site row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan site rows")

	// ErrUnsupportedDSN is returned when a DSN names an unknown driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
