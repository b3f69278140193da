// Package statement contains the bank statement import use case.
package statement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/ledgerchange"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// ImportStatementInput represents an uploaded statement file.
type ImportStatementInput struct {
	FileName string
	Payload  []byte
}

// ImportStatementOutput represents the result of a statement import.
type ImportStatementOutput struct {
	Imported int
	Skipped  int
	Message  string
}

// ImportStatementUseCase turns statement rows into ledger transactions.
// Negative amounts become expenses and positive amounts income.
type ImportStatementUseCase struct {
	parser  adapter.StatementParser
	repo    adapter.LedgerRepository
	changes ledgerchange.Announcer
}

// NewImportStatementUseCase creates a new ImportStatementUseCase instance.
func NewImportStatementUseCase(
	parser adapter.StatementParser,
	repo adapter.LedgerRepository,
	changes ledgerchange.Announcer,
) *ImportStatementUseCase {
	return &ImportStatementUseCase{
		parser:  parser,
		repo:    repo,
		changes: changes,
	}
}

// Execute parses the payload and creates one transaction per accepted row.
// A failed write stops the import; rows written before it stay in the ledger.
func (uc *ImportStatementUseCase) Execute(ctx context.Context, input ImportStatementInput) (*ImportStatementOutput, error) {
	if len(input.Payload) == 0 {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeEmptyStatement,
			"statement file is empty",
			domainerror.ErrEmptyStatement,
		)
	}

	rows, err := uc.parser.Parse(input.FileName, input.Payload)
	if err != nil {
		return nil, err
	}

	out := &ImportStatementOutput{}
	defer func() {
		if out.Imported > 0 {
			uc.changes.Announce(ctx, adapter.NewLedgerChangedEvent(adapter.LedgerChangeStatementImported, input.FileName, out.Imported))
		}
	}()

	for _, row := range rows {
		kind := entity.TransactionKindIncome
		if row.Amount.IsNegative() {
			kind = entity.TransactionKindExpense
		}

		tx, err := transaction.ValidateNew(transaction.CreateTransactionInput{
			Description: row.Description,
			Amount:      row.Amount.Abs(),
			Kind:        kind,
			Category:    row.Category,
			OccurredOn:  row.Date,
		})
		if err != nil {
			slog.Debug("Skipping statement row", "line", row.Line, "reason", err.Error())
			out.Skipped++
			continue
		}

		if _, err := uc.repo.CreateTransaction(ctx, *tx); err != nil {
			return nil, fmt.Errorf("failed to import line %d after %d transactions: %w", row.Line, out.Imported, err)
		}
		out.Imported++
	}

	out.Message = summary(out.Imported, out.Skipped)

	slog.Info("Statement imported",
		"file", input.FileName,
		"imported", out.Imported,
		"skipped", out.Skipped,
	)

	return out, nil
}

func summary(imported, skipped int) string {
	var b strings.Builder
	switch imported {
	case 0:
		b.WriteString("No transactions imported")
	case 1:
		b.WriteString("1 transaction imported")
	default:
		fmt.Fprintf(&b, "%d transactions imported", imported)
	}
	switch {
	case skipped == 1:
		b.WriteString(", 1 row skipped")
	case skipped > 1:
		fmt.Fprintf(&b, ", %d rows skipped", skipped)
	}
	return b.String()
}
