package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

func (t *TestContext) theLedgerContainsTheTransactions(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("transactions table needs a header row and at least one record")
	}

	columns := make(map[string]int, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		columns[cell.Value] = i
	}
	value := func(row *godog.Table, i int, column string) string {
		idx, ok := columns[column]
		if !ok {
			return ""
		}
		return row.Rows[i].Cells[idx].Value
	}

	now := time.Now()
	for i := 1; i < len(table.Rows); i++ {
		amount, err := decimal.NewFromString(value(table, i, "amount"))
		if err != nil {
			return fmt.Errorf("row %d: invalid amount: %w", i, err)
		}
		record := model.TransactionFromEntity(entity.Transaction{
			ID:          uuid.New(),
			Description: value(table, i, "description"),
			Amount:      amount,
			Kind:        entity.TransactionKind(value(table, i, "kind")),
			Category:    value(table, i, "category"),
			OccurredOn:  value(table, i, "occurred_on"),
			Settled:     value(table, i, "settled") == "true",
			CreatedAt:   now,
		})
		record.UpdatedAt = now
		if err := shared.db.DbConn.Create(record).Error; err != nil {
			return err
		}
	}

	shared.services.Loader.Invalidate()
	return nil
}

func (t *TestContext) theBudgetLimitForIs(category, limit string) error {
	amount, err := decimal.NewFromString(limit)
	if err != nil {
		return fmt.Errorf("invalid limit %q: %w", limit, err)
	}
	now := time.Now()
	record := model.BudgetLimitFromEntity(entity.BudgetLimit{
		ID:           uuid.New(),
		Category:     category,
		MonthlyLimit: amount,
		UpdatedAt:    now,
	})
	record.CreatedAt = now
	if err := shared.db.DbConn.Create(record).Error; err != nil {
		return err
	}

	shared.services.Loader.Invalidate()
	return nil
}

func (t *TestContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *TestContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil, "application/json")
}

func (t *TestContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload, "application/json")
}

func (t *TestContext) iUploadTheStatementWithContent(fileName string, content *godog.DocString) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return err
	}
	if _, err := part.Write([]byte(content.Content + "\n")); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}
	return t.executeRequest(http.MethodPost, "/api/v1/transactions/import", buf.Bytes(), mw.FormDataContentType())
}

func (t *TestContext) replacePlaceholders(content string) string {
	return strings.ReplaceAll(content, "{{transaction_id}}", t.transactionID)
}

func (t *TestContext) executeRequest(method, path string, payload []byte, contentType string) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, shared.server.URL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	t.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	t.status = resp.StatusCode
	t.header = resp.Header

	var decoded any
	if err := json.Unmarshal(t.responseBody, &decoded); err != nil {
		t.body = string(t.responseBody)
		return nil
	}
	t.body = decoded

	// Remember the created transaction for {{transaction_id}}.
	if id, ok := getFieldValue(decoded, "transaction.id").(string); ok {
		t.transactionID = id
	}
	return nil
}

func (t *TestContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.status == 0 {
		return errors.New("no response received")
	}
	if t.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expectedStatus, t.status, t.responseBody)
	}
	return nil
}

func (t *TestContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value := getFieldValue(t.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %s", field, t.responseBody)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *TestContext) theResponseFieldShouldHaveItems(field string, count int) error {
	items, ok := getFieldValue(t.body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list in response: %s", field, t.responseBody)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *TestContext) theResponseHeaderShouldContain(key, expected string) error {
	if actual := t.header.Get(key); !strings.Contains(actual, expected) {
		return fmt.Errorf("header '%s' = '%s', want it to contain '%s'", key, actual, expected)
	}
	return nil
}

func (t *TestContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	record, ok := shared.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(record).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	if err := shared.db.DbConn.Find(entitySlicePtr.Interface()).Error; err != nil {
		return err
	}

	if count := entitySlicePtr.Elem().Len(); count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

// getFieldValue walks a dot separated path; numeric segments index into lists.
func getFieldValue(object any, dotSeparatedField string) any {
	current := object
	for _, key := range strings.Split(dotSeparatedField, ".") {
		switch v := current.(type) {
		case map[string]any:
			next, ok := v[key]
			if !ok {
				return nil
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(key)
			if err != nil || idx < 0 || idx >= len(v) {
				return nil
			}
			current = v[idx]
		default:
			return nil
		}
	}
	return current
}
