// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// BudgetAlertInput carries the data shown in a budget-over alert.
type BudgetAlertInput struct {
	Category       string
	Month          string
	Limit          string
	Spent          string
	PercentRaw     string
	RecipientEmail string
	RecipientName  string
}

// BudgetAlertNotifier sends budget alerts.
type BudgetAlertNotifier interface {
	// NotifyBudgetOver sends an alert for a category that went over its limit.
	NotifyBudgetOver(ctx context.Context, input BudgetAlertInput) error
}
