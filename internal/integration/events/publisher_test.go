package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// queueDecl records the flags of a QueueDeclare call.
type queueDecl struct {
	name       string
	durable    bool
	autoDelete bool
	exclusive  bool
}

type fakeChannel struct {
	serverName string
	queues     []queueDecl
	consumed   []string
	declared   []string
	published  []amqp091.Publishing
	routing    []string
	publishErr error
	setupErr   error
	deliveries chan amqp091.Delivery
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error {
	f.declared = append(f.declared, "exchange:"+name+":"+kind)
	return f.setupErr
}

func (f *fakeChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error) {
	f.queues = append(f.queues, queueDecl{name: name, durable: durable, autoDelete: autoDelete, exclusive: exclusive})
	if name == "" {
		name = f.serverName
	}
	f.declared = append(f.declared, "queue:"+name)
	return amqp091.Queue{Name: name}, nil
}

func (f *fakeChannel) QueueBind(name, key, exchange string, noWait bool, args amqp091.Table) error {
	f.declared = append(f.declared, "bind:"+name+"->"+exchange+"/"+key)
	return nil
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.routing = append(f.routing, exchange+"/"+key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp091.Table) (<-chan amqp091.Delivery, error) {
	f.consumed = append(f.consumed, queue)
	return f.deliveries, nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestClient_Setup(t *testing.T) {
	ch := &fakeChannel{}
	if _, err := newClientWithChannel(ch, "ledger", "ledger.changed"); err != nil {
		t.Fatalf("newClientWithChannel() error = %v", err)
	}

	want := []string{"exchange:ledger:direct"}
	if len(ch.declared) != len(want) {
		t.Fatalf("declared = %v, want %v", ch.declared, want)
	}
	for i := range want {
		if ch.declared[i] != want[i] {
			t.Errorf("declared[%d] = %s, want %s", i, ch.declared[i], want[i])
		}
	}

	broken := &fakeChannel{setupErr: errors.New("access refused")}
	if _, err := newClientWithChannel(broken, "ledger", "q"); err == nil {
		t.Error("newClientWithChannel() error = nil on failed setup")
	}
}

func TestClient_PublishLedgerChanged(t *testing.T) {
	ch := &fakeChannel{}
	client, err := newClientWithChannel(ch, "ledger", "ledger.changed")
	if err != nil {
		t.Fatalf("newClientWithChannel() error = %v", err)
	}

	event := adapter.NewLedgerChangedEvent(adapter.LedgerChangeStatementImported, "", 12)
	if err := client.PublishLedgerChanged(context.Background(), event); err != nil {
		t.Fatalf("PublishLedgerChanged() error = %v", err)
	}

	if len(ch.published) != 1 || ch.routing[0] != "ledger/ledger.changed" {
		t.Fatalf("published = %d to %v, want 1 to ledger/ledger.changed", len(ch.published), ch.routing)
	}
	pub := ch.published[0]
	if pub.DeliveryMode != amqp091.Persistent || pub.ContentType != "application/json" {
		t.Errorf("publishing = mode %d type %s, want persistent json", pub.DeliveryMode, pub.ContentType)
	}

	msg, err := LedgerChangedMessageFromJSON(pub.Body)
	if err != nil {
		t.Fatalf("LedgerChangedMessageFromJSON() error = %v", err)
	}
	got := msg.Event()
	if got.ID != event.ID || got.Kind != event.Kind || got.Count != 12 {
		t.Errorf("decoded event = %+v, want %+v", got, event)
	}

	ch.publishErr = errors.New("channel closed")
	if err := client.PublishLedgerChanged(context.Background(), event); err == nil {
		t.Error("PublishLedgerChanged() error = nil on a closed channel")
	}
}

func TestClient_ConsumeLedgerChanged(t *testing.T) {
	ch := &fakeChannel{deliveries: make(chan amqp091.Delivery, 2)}
	client, err := newClientWithChannel(ch, "ledger", "ledger.changed")
	if err != nil {
		t.Fatalf("newClientWithChannel() error = %v", err)
	}

	body, _ := NewLedgerChangedMessage(adapter.NewLedgerChangedEvent(adapter.LedgerChangeBudgetUpserted, "Food", 1)).ToJSON()
	ch.deliveries <- amqp091.Delivery{Body: []byte("{not json")}
	ch.deliveries <- amqp091.Delivery{Body: body}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var handled []adapter.LedgerChangedEvent
	err = client.ConsumeLedgerChanged(ctx, func(ctx context.Context, event adapter.LedgerChangedEvent) error {
		handled = append(handled, event)
		cancel()
		return nil
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("ConsumeLedgerChanged() error = %v, want context.Canceled", err)
	}
	if len(handled) != 1 || handled[0].EntityID != "Food" {
		t.Errorf("handled = %+v, want the budget event only", handled)
	}
}

func TestClient_ConsumeLedgerChangedUsesOwnQueue(t *testing.T) {
	instances := []struct {
		name       string
		serverName string
	}{
		{name: "first instance", serverName: "amq.gen-a"},
		{name: "second instance", serverName: "amq.gen-b"},
	}

	consumed := make(map[string]bool)
	for _, inst := range instances {
		t.Run(inst.name, func(t *testing.T) {
			ch := &fakeChannel{serverName: inst.serverName, deliveries: make(chan amqp091.Delivery)}
			client, err := newClientWithChannel(ch, "ledger", "ledger.changed")
			if err != nil {
				t.Fatalf("newClientWithChannel() error = %v", err)
			}

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_ = client.ConsumeLedgerChanged(ctx, func(context.Context, adapter.LedgerChangedEvent) error { return nil })

			if len(ch.queues) != 1 {
				t.Fatalf("queue declarations = %+v, want 1", ch.queues)
			}
			q := ch.queues[0]
			if q.name != "" || q.durable || !q.autoDelete || !q.exclusive {
				t.Errorf("queue = %+v, want server-named exclusive auto-delete", q)
			}
			wantBind := "bind:" + inst.serverName + "->ledger/ledger.changed"
			if last := ch.declared[len(ch.declared)-1]; last != wantBind {
				t.Errorf("last declaration = %s, want %s", last, wantBind)
			}
			if len(ch.consumed) != 1 || ch.consumed[0] != inst.serverName {
				t.Fatalf("consumed = %v, want [%s]", ch.consumed, inst.serverName)
			}
			consumed[ch.consumed[0]] = true
		})
	}

	if len(consumed) != len(instances) {
		t.Errorf("instances shared a queue: %v", consumed)
	}
}

func TestNoopPublisher(t *testing.T) {
	if err := NewNoopPublisher().PublishLedgerChanged(context.Background(), adapter.LedgerChangedEvent{}); err != nil {
		t.Errorf("PublishLedgerChanged() error = %v", err)
	}
}
