// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/statement"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amount accepts both JSON numbers and quoted decimals.
type CreateTransactionRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind" binding:"required"`
	Category    string          `json:"category,omitempty"`
	OccurredOn  string          `json:"occurred_on,omitempty"`
	Settled     bool            `json:"settled,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Kind        string `json:"kind"`
	Category    string `json:"category"`
	OccurredOn  string `json:"occurred_on"`
	Settled     bool   `json:"settled"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// CreateTransactionResponse is returned after a successful creation.
type CreateTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	AlertSent   bool                `json:"alert_sent"`
}

// TransactionPageResponse represents one page of the sorted transaction list.
type TransactionPageResponse struct {
	Items      []TransactionResponse `json:"items"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalItems int                   `json:"total_items"`
	TotalPages int                   `json:"total_pages"`
}

// TransactionListResponse represents the response for GET /transactions.
type TransactionListResponse struct {
	View         ViewResponse            `json:"view"`
	Categories   []string                `json:"categories"`
	Transactions TransactionPageResponse `json:"transactions"`
}

// ImportStatementResponse represents the result of a statement upload.
type ImportStatementResponse struct {
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Message  string `json:"message"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(tx entity.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          tx.ID.String(),
		Description: tx.Description,
		Amount:      tx.Amount.StringFixed(2),
		Kind:        string(tx.Kind),
		Category:    tx.EffectiveCategory(),
		OccurredOn:  tx.OccurredOn,
		Settled:     tx.Settled,
	}
	if !tx.CreatedAt.IsZero() {
		resp.CreatedAt = tx.CreatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

// ToTransactionPageResponse converts a TransactionPage to its DTO.
func ToTransactionPageResponse(page entity.TransactionPage) TransactionPageResponse {
	items := make([]TransactionResponse, len(page.Items))
	for i, tx := range page.Items {
		items[i] = ToTransactionResponse(tx)
	}
	return TransactionPageResponse{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
}

// ToTransactionListResponse converts a ListTransactionsOutput to its DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	return TransactionListResponse{
		View:         ToViewResponse(output.View),
		Categories:   nonNilStrings(output.Categories),
		Transactions: ToTransactionPageResponse(output.Page),
	}
}

// ToImportStatementResponse converts an ImportStatementOutput to its DTO.
func ToImportStatementResponse(output *statement.ImportStatementOutput) ImportStatementResponse {
	return ImportStatementResponse{
		Imported: output.Imported,
		Skipped:  output.Skipped,
		Message:  output.Message,
	}
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
