// Package error defines domain-specific errors for the ledger service.
package error

import "errors"

// Statement import errors.
var (
	// ErrEmptyStatement is returned when the uploaded file has no content.
	ErrEmptyStatement = errors.New("statement file is empty")

	// ErrUnsupportedStatementFormat is returned when the file is neither CSV nor XLSX.
	ErrUnsupportedStatementFormat = errors.New("unsupported statement format")

	// ErrUnreadableStatement is returned when the file cannot be decoded.
	ErrUnreadableStatement = errors.New("statement file could not be read")

	// ErrMissingStatementColumns is returned when the header lacks date, description or amount.
	ErrMissingStatementColumns = errors.New("statement is missing required columns")

	// ErrStatementTooLarge is returned when the upload exceeds the size limit.
	ErrStatementTooLarge = errors.New("statement file too large")
)

// ImportErrorCode defines error codes for statement import errors.
// Format: IMP-XXYYYY where XX is category and YYYY is specific error.
type ImportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyStatement         ImportErrorCode = "IMP-010001"
	ErrCodeUnsupportedFormat      ImportErrorCode = "IMP-010002"
	ErrCodeStatementTooLarge      ImportErrorCode = "IMP-010003"
	ErrCodeMissingStatementColumn ImportErrorCode = "IMP-010004"

	// Parse errors (02XXXX)
	ErrCodeUnreadableStatement ImportErrorCode = "IMP-020001"
)

// ImportError represents a statement import error with code and message.
type ImportError struct {
	Code    ImportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ImportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError creates a new ImportError with the given code and message.
func NewImportError(code ImportErrorCode, message string, err error) *ImportError {
	return &ImportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
