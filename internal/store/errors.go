package store

import "errors"

// Sentinel errors returned by storage components to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrKeyNotFound is returned by KeyValue.Get when no entry exists under
	// the requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrValueTooLarge is returned by KeyValue.Set when the encoded value
	// exceeds the store's hard per-value limit. This is the local analogue
	// of a browser QuotaExceededError and drives the persistence ladder to
	// its metadata-only tier.
	ErrValueTooLarge = errors.New("value exceeds storage limit")

	// ErrDuplicateID is returned when inserting a record whose id is
	// already present in the catalog. Ids are generated monotonically, so
	// this signals an invariant violation rather than a user-facing error.
	ErrDuplicateID = errors.New("record id already present")

	// ErrRecordNotFound is returned when an operation targets a record id
	// that is not in the live catalog (typically a stale or deleted id).
	ErrRecordNotFound = errors.New("record was not found")

	// ErrCommentNotFound is returned when a moderation operation targets a
	// comment id that does not exist.
	ErrCommentNotFound = errors.New("comment was not found")

	// ErrSessionNotFound is returned when no persisted session exists, or
	// when the persisted session token fails signature verification and is
	// therefore treated as absent.
	ErrSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the key-value repository when a SQL-level operation fails before any
// domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
