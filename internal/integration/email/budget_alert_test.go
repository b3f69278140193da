package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/email/templates"
)

type mockEmailSender struct {
	sent []adapter.SendEmailInput
	err  error
}

func (m *mockEmailSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.sent = append(m.sent, input)
	return &adapter.SendEmailResult{ResendID: "mock-1"}, nil
}

func newNotifier(t *testing.T, sender adapter.EmailSender) *BudgetAlertNotifier {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return NewBudgetAlertNotifier(sender, renderer)
}

func TestBudgetAlertNotifier_NotifyBudgetOver(t *testing.T) {
	sender := &mockEmailSender{}
	n := newNotifier(t, sender)

	err := n.NotifyBudgetOver(context.Background(), adapter.BudgetAlertInput{
		Category:       "Food",
		Month:          "2026-02",
		Limit:          "100",
		Spent:          "130",
		PercentRaw:     "130",
		RecipientEmail: "me@example.com",
		RecipientName:  "Me",
	})
	if err != nil {
		t.Fatalf("NotifyBudgetOver() error = %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sent = %d, want 1", len(sender.sent))
	}
	got := sender.sent[0]
	if got.To != "me@example.com" || !strings.Contains(got.Subject, "Food") {
		t.Errorf("email = %+v", got)
	}
	if !strings.Contains(got.HTML, "130") || got.Text == "" {
		t.Error("rendered bodies missing the spend")
	}
}

func TestBudgetAlertNotifier_SendFailure(t *testing.T) {
	cause := domainerror.NewEmailError(domainerror.ErrCodeTemporaryEmailFailure, "failed to send email", errors.New("503"))
	n := newNotifier(t, &mockEmailSender{err: cause})

	err := n.NotifyBudgetOver(context.Background(), adapter.BudgetAlertInput{Category: "Food", RecipientEmail: "me@example.com"})
	if !errors.Is(err, cause) {
		t.Errorf("NotifyBudgetOver() error = %v, want wrapped send failure", err)
	}
}

func TestIsPermanentError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "unauthorized", err: errors.New("401 Unauthorized"), want: true},
		{name: "validation", err: errors.New("validation_error: invalid `to` field"), want: true},
		{name: "rate limited", err: errors.New("429 too many requests"), want: false},
		{name: "server error", err: errors.New("500 internal server error"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPermanentError(tt.err); got != tt.want {
				t.Errorf("isPermanentError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
