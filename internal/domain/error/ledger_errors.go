// Package error defines domain-specific errors for the ledger service.
package error

import "errors"

// Ledger collaborator errors.
var (
	// ErrLedgerUnavailable is returned when the ledger store cannot be reached.
	ErrLedgerUnavailable = errors.New("ledger store unavailable")

	// ErrLedgerRejected is returned when the ledger store refuses a write.
	ErrLedgerRejected = errors.New("ledger store rejected the write")

	// ErrNoSnapshot is returned when no snapshot has been loaded yet.
	ErrNoSnapshot = errors.New("no ledger snapshot loaded")
)

// LedgerErrorCode defines error codes for ledger collaborator errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Fetch errors (02XXXX)
	ErrCodeFetchFailed LedgerErrorCode = "LDG-020001"
	ErrCodeNoSnapshot  LedgerErrorCode = "LDG-020002"

	// Write errors (03XXXX)
	ErrCodeWriteFailed LedgerErrorCode = "LDG-030001"
)

// LedgerError represents a failure of the ledger store with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewFetchError wraps a failed read of the ledger store.
func NewFetchError(message string, err error) *LedgerError {
	return NewLedgerError(ErrCodeFetchFailed, message, err)
}

// NewWriteError wraps a rejected or failed write to the ledger store.
func NewWriteError(message string, err error) *LedgerError {
	return NewLedgerError(ErrCodeWriteFailed, message, err)
}

// IsFetchError reports whether err is, or wraps, a ledger fetch failure.
func IsFetchError(err error) bool {
	var ledgerErr *LedgerError
	return errors.As(err, &ledgerErr) && ledgerErr.Code == ErrCodeFetchFailed
}

// IsWriteError reports whether err is, or wraps, a ledger write failure.
func IsWriteError(err error) bool {
	var ledgerErr *LedgerError
	return errors.As(err, &ledgerErr) && ledgerErr.Code == ErrCodeWriteFailed
}
