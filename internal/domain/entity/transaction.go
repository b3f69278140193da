// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the kind of transaction (income or expense).
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// IsValid reports whether the kind belongs to the closed income/expense set.
func (k TransactionKind) IsValid() bool {
	return k == TransactionKindIncome || k == TransactionKindExpense
}

// DefaultCategory is the effective category of a transaction without one.
const DefaultCategory = "Other"

// Transaction represents a single financial event in the ledger.
type Transaction struct {
	ID          uuid.UUID       `json:"id"` // uuid.Nil until the ledger store assigns one
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        TransactionKind `json:"kind"`
	Category    string          `json:"category,omitempty"`
	OccurredOn  string          `json:"occurred_on,omitempty"` // raw date text as received from the store
	Settled     bool            `json:"settled"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewTransaction creates a new, not yet persisted, Transaction entity.
func NewTransaction(
	description string,
	amount decimal.Decimal,
	kind TransactionKind,
	category string,
	occurredOn string,
) *Transaction {
	return &Transaction{
		Description: description,
		Amount:      amount,
		Kind:        kind,
		Category:    category,
		OccurredOn:  occurredOn,
		CreatedAt:   time.Now().UTC(),
	}
}

// HasID reports whether the transaction was already persisted.
func (t Transaction) HasID() bool {
	return t.ID != uuid.Nil
}

// EffectiveCategory returns the category, or DefaultCategory when it is empty.
func (t Transaction) EffectiveCategory() string {
	if t.Category == "" {
		return DefaultCategory
	}
	return t.Category
}
