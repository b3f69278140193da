// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/application/usecase/ledgerchange"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Description string
	Amount      decimal.Decimal
	Kind        entity.TransactionKind
	Category    string
	OccurredOn  string
	Settled     bool
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
	AlertSent   bool
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	repo      adapter.LedgerRepository
	snapshots SnapshotSource
	changes   ledgerchange.Announcer
	alerts    *budget.OverBudgetAlerter
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	repo adapter.LedgerRepository,
	snapshots SnapshotSource,
	changes ledgerchange.Announcer,
	alerts *budget.OverBudgetAlerter,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		repo:      repo,
		snapshots: snapshots,
		changes:   changes,
		alerts:    alerts,
	}
}

// Execute validates the input and creates the transaction in the ledger store.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	tx, err := ValidateNew(input)
	if err != nil {
		return nil, err
	}

	before := uc.baseline(ctx)

	created, err := uc.repo.CreateTransaction(ctx, *tx)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	uc.changes.Announce(ctx, adapter.NewLedgerChangedEvent(adapter.LedgerChangeTransactionCreated, created.ID.String(), 1))

	return &CreateTransactionOutput{
		Transaction: created,
		AlertSent:   uc.alerts.CheckExpense(ctx, before, *created),
	}, nil
}

// baseline returns an up-to-date snapshot to compare budget progress against,
// or nil when alerts are off or the ledger cannot be read.
func (uc *CreateTransactionUseCase) baseline(ctx context.Context) *entity.Snapshot {
	if !uc.alerts.Enabled() {
		return nil
	}
	snapshot, err := uc.snapshots.Current(ctx)
	if err != nil {
		slog.Warn("Budget alert skipped, snapshot unavailable", "error", err)
		return nil
	}
	return snapshot
}

// ValidateNew checks the creation rules and builds the entity to persist.
func ValidateNew(input CreateTransactionInput) (*entity.Transaction, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyDescription,
			"description is required",
			domainerror.ErrEmptyDescription,
		)
	}

	if len(description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !input.Kind.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"transaction kind must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionKind,
		)
	}

	tx := entity.NewTransaction(
		description,
		input.Amount,
		input.Kind,
		strings.TrimSpace(input.Category),
		strings.TrimSpace(input.OccurredOn),
	)
	tx.Settled = input.Settled

	return tx, nil
}
