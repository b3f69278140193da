// Package error defines domain-specific errors for the ledger service.
package error

import "errors"

// Budget domain errors.
var (
	// ErrEmptyBudgetCategory is returned when a budget limit has no category.
	ErrEmptyBudgetCategory = errors.New("budget category is required")

	// ErrInvalidBudgetLimit is returned when a monthly limit is not positive.
	ErrInvalidBudgetLimit = errors.New("monthly limit must be greater than zero")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyBudgetCategory BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidBudgetLimit  BudgetErrorCode = "BDG-010002"
	ErrCodeMissingBudgetFields BudgetErrorCode = "BDG-010003"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
