package ledgerchange

import (
	"context"
	"errors"
	"testing"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

type countingInvalidator struct{ calls int }

func (c *countingInvalidator) Invalidate() { c.calls++ }

type recordingPublisher struct {
	events []adapter.LedgerChangedEvent
	err    error
}

func (p *recordingPublisher) PublishLedgerChanged(ctx context.Context, event adapter.LedgerChangedEvent) error {
	p.events = append(p.events, event)
	return p.err
}

func TestNotifier_Announce(t *testing.T) {
	tests := []struct {
		name       string
		publishErr error
	}{
		{name: "publish succeeds"},
		{name: "publish fails", publishErr: errors.New("broker down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &countingInvalidator{}
			pub := &recordingPublisher{err: tt.publishErr}
			n := NewNotifier(inv, pub)

			n.Announce(context.Background(), adapter.NewLedgerChangedEvent(adapter.LedgerChangeBudgetUpserted, "Food", 1))

			if inv.calls != 1 {
				t.Errorf("Invalidate() calls = %d, want 1", inv.calls)
			}
			if len(pub.events) != 1 || pub.events[0].Kind != adapter.LedgerChangeBudgetUpserted {
				t.Errorf("published events = %+v, want one budget.upserted", pub.events)
			}
		})
	}
}
