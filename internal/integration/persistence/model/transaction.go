// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Kind        string          `gorm:"type:varchar(10);not null;index"`
	Category    string          `gorm:"type:varchar(100);index"`
	OccurredOn  string          `gorm:"type:varchar(40)"` // stored verbatim, parsed by the engine
	Settled     bool            `gorm:"default:false"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() entity.Transaction {
	return entity.Transaction{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Kind:        entity.TransactionKind(m.Kind),
		Category:    m.Category,
		OccurredOn:  m.OccurredOn,
		Settled:     m.Settled,
		CreatedAt:   m.CreatedAt,
	}
}

// TransactionFromEntity converts a domain Transaction entity to a TransactionModel.
func TransactionFromEntity(t entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          t.ID,
		Description: t.Description,
		Amount:      t.Amount,
		Kind:        string(t.Kind),
		Category:    t.Category,
		OccurredOn:  t.OccurredOn,
		Settled:     t.Settled,
		CreatedAt:   t.CreatedAt,
	}
}
