package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// LedgerChangedMessage is the wire form of adapter.LedgerChangedEvent.
// Consumers refetch the ledger; the message only says something changed.
type LedgerChangedMessage struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	EntityID   string    `json:"entity_id,omitempty"`
	Count      int       `json:"count"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewLedgerChangedMessage converts an event to its wire form.
func NewLedgerChangedMessage(event adapter.LedgerChangedEvent) *LedgerChangedMessage {
	return &LedgerChangedMessage{
		ID:         event.ID.String(),
		Kind:       string(event.Kind),
		EntityID:   event.EntityID,
		Count:      event.Count,
		OccurredAt: event.OccurredAt,
	}
}

// ToJSON converts the message to JSON bytes.
func (m *LedgerChangedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// Event converts the message back to an event. An unparseable ID yields uuid.Nil.
func (m *LedgerChangedMessage) Event() adapter.LedgerChangedEvent {
	id, _ := uuid.Parse(m.ID)
	return adapter.LedgerChangedEvent{
		ID:         id,
		Kind:       adapter.LedgerChangeKind(m.Kind),
		EntityID:   m.EntityID,
		Count:      m.Count,
		OccurredAt: m.OccurredAt,
	}
}

// LedgerChangedMessageFromJSON creates a message from JSON bytes.
func LedgerChangedMessageFromJSON(data []byte) (*LedgerChangedMessage, error) {
	var msg LedgerChangedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
