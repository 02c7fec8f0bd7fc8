package model

import "errors"

var (
	// ErrNotFound is returned when a strict read matches no document.
	ErrNotFound = errors.New("arbor: document not found")

	// ErrCreateFailed is returned when an insert was acknowledged but no
	// usable identifier could be extracted from the result.
	ErrCreateFailed = errors.New("arbor: create failed")

	// ErrUpdateFailed is returned when an update modified a number of
	// documents other than exactly one.
	ErrUpdateFailed = errors.New("arbor: update failed")

	// ErrDeleteFailed is returned when a delete removed a number of
	// documents other than exactly one.
	ErrDeleteFailed = errors.New("arbor: delete failed")
)

// DBError wraps a failure reported by the store client. The underlying
// driver error is always preserved and reachable through errors.Unwrap.
type DBError struct {
	// Op is the repository operation that failed, e.g. "find" or "insert".
	Op string

	// Err is the driver error.
	Err error
}

func (e *DBError) Error() string { return "arbor: " + e.Op + ": " + e.Err.Error() }

func (e *DBError) Unwrap() error { return e.Err }

// SerializationError wraps a failure to convert a payload into its BSON
// document representation.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string { return "arbor: serialize payload: " + e.Err.Error() }

func (e *SerializationError) Unwrap() error { return e.Err }
