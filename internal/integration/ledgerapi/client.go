// Package ledgerapi implements the ledger store on top of the remote REST API.
package ledgerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 512

// pageSize is the row count requested per page; the API caps unpaged reads at 100.
const pageSize = 100

// Client talks to the remote ledger API. The API identifies records with
// numeric IDs; the client maps them to UUIDs and remembers the mapping of
// every record it has listed or created so deletes can be routed.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu        sync.RWMutex
	remoteIDs map[uuid.UUID]string
}

var _ adapter.LedgerRepository = (*Client)(nil)

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		remoteIDs:  make(map[uuid.UUID]string),
	}
}

// ListTransactions fetches every transaction, one page at a time until the
// API answers with a short page.
func (c *Client) ListTransactions(ctx context.Context) ([]entity.Transaction, error) {
	var transactions []entity.Transaction
	for skip := 0; ; skip += pageSize {
		query := url.Values{}
		query.Set("skip", strconv.Itoa(skip))
		query.Set("limit", strconv.Itoa(pageSize))

		var payloads []transactionPayload
		if err := c.do(ctx, http.MethodGet, "/transacoes/?"+query.Encode(), nil, &payloads); err != nil {
			return nil, domainerror.NewFetchError("failed to list transactions", err)
		}

		for _, p := range payloads {
			tx, err := p.toEntity()
			if err != nil {
				return nil, domainerror.NewFetchError("failed to decode transaction", err)
			}
			c.remember(tx.ID, p.ID)
			transactions = append(transactions, tx)
		}
		if len(payloads) < pageSize {
			break
		}
	}
	if transactions == nil {
		transactions = []entity.Transaction{}
	}
	return transactions, nil
}

// ListBudgetLimits fetches every budget limit.
func (c *Client) ListBudgetLimits(ctx context.Context) ([]entity.BudgetLimit, error) {
	var payloads []budgetPayload
	if err := c.do(ctx, http.MethodGet, "/orcamentos/", nil, &payloads); err != nil {
		return nil, domainerror.NewFetchError("failed to list budget limits", err)
	}

	limits := make([]entity.BudgetLimit, 0, len(payloads))
	for _, p := range payloads {
		limit, err := p.toEntity()
		if err != nil {
			return nil, domainerror.NewFetchError("failed to decode budget limit", err)
		}
		limits = append(limits, limit)
	}
	return limits, nil
}

// CreateTransaction posts a new transaction.
func (c *Client) CreateTransaction(ctx context.Context, tx entity.Transaction) (*entity.Transaction, error) {
	var created transactionPayload
	if err := c.do(ctx, http.MethodPost, "/transacoes/", transactionFromEntity(tx), &created); err != nil {
		return nil, domainerror.NewWriteError("failed to create transaction", err)
	}

	result, err := created.toEntity()
	if err != nil {
		return nil, domainerror.NewWriteError("failed to decode created transaction", err)
	}
	c.remember(result.ID, created.ID)
	return &result, nil
}

// DeleteTransaction deletes a transaction previously seen by this client.
func (c *Client) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	c.mu.RLock()
	remoteID, ok := c.remoteIDs[id]
	c.mu.RUnlock()
	if !ok {
		return domainerror.ErrTransactionNotFound
	}

	err := c.do(ctx, http.MethodDelete, "/transacoes/"+remoteID, nil, nil)
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		c.forget(id)
		return domainerror.ErrTransactionNotFound
	}
	if err != nil {
		return domainerror.NewWriteError("failed to delete transaction", err)
	}

	c.forget(id)
	return nil
}

// UpsertBudgetLimit posts a limit; the API replaces any limit of the same category.
func (c *Client) UpsertBudgetLimit(ctx context.Context, limit entity.BudgetLimit) (*entity.BudgetLimit, error) {
	body := budgetPayload{
		Category:     limit.Category,
		MonthlyLimit: json.Number(limit.MonthlyLimit.String()),
	}

	var saved budgetPayload
	if err := c.do(ctx, http.MethodPost, "/orcamentos/", body, &saved); err != nil {
		return nil, domainerror.NewWriteError("failed to upsert budget limit", err)
	}

	// Some deployments answer with an empty body.
	if saved.Category == "" {
		saved = body
	}
	result, err := saved.toEntity()
	if err != nil {
		return nil, domainerror.NewWriteError("failed to decode budget limit", err)
	}
	result.UpdatedAt = time.Now().UTC()
	return &result, nil
}

// StatusError reports a non-2xx answer from the API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("ledger api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("ledger api returned status %d: %s", e.StatusCode, e.Body)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	slog.Debug("Ledger API call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	if out == nil {
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) remember(id uuid.UUID, remoteID json.Number) {
	if id == uuid.Nil {
		return
	}
	c.mu.Lock()
	c.remoteIDs[id] = remoteID.String()
	c.mu.Unlock()
}

func (c *Client) forget(id uuid.UUID) {
	c.mu.Lock()
	delete(c.remoteIDs, id)
	c.mu.Unlock()
}
