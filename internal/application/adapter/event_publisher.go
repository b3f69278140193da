// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LedgerChangeKind identifies the write that changed the ledger.
type LedgerChangeKind string

const (
	LedgerChangeTransactionCreated LedgerChangeKind = "transaction.created"
	LedgerChangeTransactionDeleted LedgerChangeKind = "transaction.deleted"
	LedgerChangeBudgetUpserted     LedgerChangeKind = "budget.upserted"
	LedgerChangeStatementImported  LedgerChangeKind = "statement.imported"
)

// LedgerChangedEvent announces a successful write to the ledger store.
type LedgerChangedEvent struct {
	ID         uuid.UUID
	Kind       LedgerChangeKind
	EntityID   string
	Count      int
	OccurredAt time.Time
}

// NewLedgerChangedEvent creates a new event stamped with the current time.
func NewLedgerChangedEvent(kind LedgerChangeKind, entityID string, count int) LedgerChangedEvent {
	return LedgerChangedEvent{
		ID:         uuid.New(),
		Kind:       kind,
		EntityID:   entityID,
		Count:      count,
		OccurredAt: time.Now().UTC(),
	}
}

// EventPublisher publishes ledger change notifications.
type EventPublisher interface {
	// PublishLedgerChanged publishes the event to subscribers.
	PublishLedgerChanged(ctx context.Context, event LedgerChangedEvent) error
}
