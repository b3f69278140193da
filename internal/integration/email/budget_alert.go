package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/email/templates"
)

const budgetAlertTemplate = "budget_alert"

// BudgetAlertNotifier renders the budget alert template and sends it.
type BudgetAlertNotifier struct {
	sender   adapter.EmailSender
	renderer *templates.Renderer
}

var _ adapter.BudgetAlertNotifier = (*BudgetAlertNotifier)(nil)

// NewBudgetAlertNotifier creates a new notifier.
func NewBudgetAlertNotifier(sender adapter.EmailSender, renderer *templates.Renderer) *BudgetAlertNotifier {
	return &BudgetAlertNotifier{
		sender:   sender,
		renderer: renderer,
	}
}

// NotifyBudgetOver sends the alert for one category.
func (n *BudgetAlertNotifier) NotifyBudgetOver(ctx context.Context, input adapter.BudgetAlertInput) error {
	data := templates.BudgetAlertData{
		RecipientName: input.RecipientName,
		Category:      input.Category,
		Month:         input.Month,
		Limit:         input.Limit,
		Spent:         input.Spent,
		Percent:       input.PercentRaw,
	}

	html, text, err := n.renderer.Render(budgetAlertTemplate, data)
	if err != nil {
		return domainerror.NewEmailError(domainerror.ErrCodeTemplateRenderFailed, "failed to render budget alert", err)
	}

	result, err := n.sender.Send(ctx, adapter.SendEmailInput{
		To:      input.RecipientEmail,
		Name:    input.RecipientName,
		Subject: fmt.Sprintf("Budget exceeded: %s (%s)", input.Category, input.Month),
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		return fmt.Errorf("failed to send budget alert: %w", err)
	}

	slog.Info("Budget alert sent",
		"category", input.Category,
		"month", input.Month,
		"resend_id", result.ResendID,
	)
	return nil
}
