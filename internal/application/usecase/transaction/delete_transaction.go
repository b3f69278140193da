// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/ledgerchange"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Success bool
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	repo    adapter.LedgerRepository
	changes ledgerchange.Announcer
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(repo adapter.LedgerRepository, changes ledgerchange.Announcer) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		repo:    repo,
		changes: changes,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	if input.TransactionID == uuid.Nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionID,
			"transaction id is required",
			domainerror.ErrInvalidTransactionID,
		)
	}

	if err := uc.repo.DeleteTransaction(ctx, input.TransactionID); err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	uc.changes.Announce(ctx, adapter.NewLedgerChangedEvent(adapter.LedgerChangeTransactionDeleted, input.TransactionID.String(), 1))

	return &DeleteTransactionOutput{
		Success: true,
	}, nil
}
