// Package error defines domain-specific errors for the ledger service.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidMonth is returned when the month selector is not YYYY-MM or "all".
	ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM or all")

	// ErrInvalidSortOrder is returned when the order is not newest or oldest.
	ErrInvalidSortOrder = errors.New("order must be: newest or oldest")

	// ErrInvalidPage is returned when page or page_size is not a positive integer.
	ErrInvalidPage = errors.New("page and page_size must be positive integers")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonth     DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidSortOrder DashboardErrorCode = "DSH-010002"
	ErrCodeInvalidPage      DashboardErrorCode = "DSH-010003"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
