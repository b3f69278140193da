package ledgerapi

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// Kind values used by the remote ledger API.
const (
	remoteKindIncome  = "receita"
	remoteKindExpense = "despesa"
)

// remoteNamespace derives stable UUIDs from the remote API's numeric IDs.
var remoteNamespace = uuid.MustParse("6f1c8f52-8d5e-4b55-9a4b-2a4f0d3e6c11")

type transactionPayload struct {
	ID          json.Number `json:"id,omitempty"`
	Description string      `json:"descricao"`
	Amount      json.Number `json:"valor"`
	Kind        string      `json:"tipo"`
	Category    string      `json:"categoria,omitempty"`
	OccurredOn  string      `json:"data_transacao,omitempty"`
	Settled     bool        `json:"consolidado"`
}

type budgetPayload struct {
	ID           json.Number `json:"id,omitempty"`
	Category     string      `json:"categoria"`
	MonthlyLimit json.Number `json:"limite_mensal"`
}

func toRemoteKind(kind entity.TransactionKind) string {
	switch kind {
	case entity.TransactionKindIncome:
		return remoteKindIncome
	case entity.TransactionKindExpense:
		return remoteKindExpense
	default:
		return string(kind)
	}
}

func fromRemoteKind(kind string) entity.TransactionKind {
	switch kind {
	case remoteKindIncome, string(entity.TransactionKindIncome):
		return entity.TransactionKindIncome
	case remoteKindExpense, string(entity.TransactionKindExpense):
		return entity.TransactionKindExpense
	default:
		return entity.TransactionKind(kind)
	}
}

func remoteUUID(id json.Number) uuid.UUID {
	if id == "" {
		return uuid.Nil
	}
	return uuid.NewSHA1(remoteNamespace, []byte(id.String()))
}

func parseAmount(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", n, err)
	}
	return d, nil
}

func (p transactionPayload) toEntity() (entity.Transaction, error) {
	amount, err := parseAmount(p.Amount)
	if err != nil {
		return entity.Transaction{}, err
	}
	return entity.Transaction{
		ID:          remoteUUID(p.ID),
		Description: p.Description,
		Amount:      amount,
		Kind:        fromRemoteKind(p.Kind),
		Category:    p.Category,
		OccurredOn:  p.OccurredOn,
		Settled:     p.Settled,
	}, nil
}

func transactionFromEntity(t entity.Transaction) transactionPayload {
	return transactionPayload{
		Description: t.Description,
		Amount:      json.Number(t.Amount.String()),
		Kind:        toRemoteKind(t.Kind),
		Category:    t.Category,
		OccurredOn:  t.OccurredOn,
		Settled:     t.Settled,
	}
}

func (p budgetPayload) toEntity() (entity.BudgetLimit, error) {
	limit, err := parseAmount(p.MonthlyLimit)
	if err != nil {
		return entity.BudgetLimit{}, err
	}
	return entity.BudgetLimit{
		ID:           remoteUUID(p.ID),
		Category:     p.Category,
		MonthlyLimit: limit,
	}, nil
}
