// Package ledgerchange propagates successful ledger writes to the snapshot
// loader and to event subscribers.
package ledgerchange

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// Invalidator marks the in-memory snapshot as outdated.
type Invalidator interface {
	Invalidate()
}

// Notifier invalidates the local snapshot and publishes a change event after
// every successful write.
type Notifier struct {
	invalidator Invalidator
	publisher   adapter.EventPublisher
}

// NewNotifier creates a new Notifier instance.
func NewNotifier(invalidator Invalidator, publisher adapter.EventPublisher) *Notifier {
	return &Notifier{
		invalidator: invalidator,
		publisher:   publisher,
	}
}

// Announce records a successful write. Publish failures are logged only; the
// write itself already succeeded.
func (n *Notifier) Announce(ctx context.Context, event adapter.LedgerChangedEvent) {
	n.invalidator.Invalidate()

	if err := n.publisher.PublishLedgerChanged(ctx, event); err != nil {
		slog.Warn("Failed to publish ledger change",
			"kind", event.Kind,
			"entity_id", event.EntityID,
			"error", err,
		)
	}
}

// Announcer is implemented by Notifier.
type Announcer interface {
	Announce(ctx context.Context, event adapter.LedgerChangedEvent)
}
