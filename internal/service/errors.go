package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Ledger error taxonomy. Handlers map these to HTTP statuses; the ledger
// itself never returns success without a fully committed state change.
var (
	// ErrItemNotFound: the referenced supply item is absent (or of another kind).
	ErrItemNotFound = errors.New("supply item not found")

	// ErrPrinterNotFound: a printer reference was given but does not exist.
	ErrPrinterNotFound = errors.New("printer not found")

	// ErrZeroDelta: a no-op movement is rejected before any store access.
	ErrZeroDelta = errors.New("movement quantity delta cannot be zero")

	// ErrConflict: the transaction lost the serialization race more times
	// than the retry budget allows. Transient, safe to resubmit.
	ErrConflict = errors.New("stock update conflicts with a concurrent movement")

	// ErrStoreUnavailable: the database cannot be reached. Not retried here;
	// retry policy belongs to the caller.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrBrandNotFound is used by the brand catalog.
	ErrBrandNotFound = errors.New("brand not found")
)

// InsufficientStockError carries the attempted delta and the stock it was
// checked against, for caller diagnostics.
type InsufficientStockError struct {
	ItemID    uuid.UUID
	Current   int
	Attempted int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %s: have %d, delta %d", e.ItemID, e.Current, e.Attempted)
}

// isSerializationFailure reports whether err is a postgres serialization
// failure (40001) or deadlock (40P01); both are resolved by re-reading and
// recomputing inside a fresh transaction.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// isConnectionFailure reports whether err belongs to the postgres connection
// exception class (SQLSTATE 08xxx) or the driver could not reach the server.
func isConnectionFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return len(pgErr.Code) == 5 && pgErr.Code[:2] == "08"
	}
	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr)
}
