package daybook

import (
	"errors"
	"fmt"
)

// ErrNotFound is reported when an edit or delete references an identifier
// that is not present in the ledger. No state is changed.
var ErrNotFound = errors.New("transaction not found")

// ValidationError is reported when an input is rejected before any mutation:
// empty title, non-positive or non-numeric amount, unknown type.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// SyncError is reported when a remote create, update, delete or batch delete
// was rejected. By the time the caller sees it, the in-memory ledger has
// already been rolled back to its pre-mutation state.
type SyncError struct {
	Op  string // the mutation that failed: "create", "update", "remove", "clear-day"
	Err error
}

func (e *SyncError) Error() string { return fmt.Sprintf("sync %s failed: %v", e.Op, e.Err) }
func (e *SyncError) Unwrap() error { return e.Err }

func syncErr(op string, err error) *SyncError { return &SyncError{Op: op, Err: err} }
