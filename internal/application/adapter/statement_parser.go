// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "github.com/shopspring/decimal"

// StatementRow is one decoded row of a bank statement. Amount keeps the sign
// found in the file.
type StatementRow struct {
	Line        int
	Date        string
	Description string
	Amount      decimal.Decimal
	Category    string
}

// StatementParser decodes an uploaded statement file into rows.
type StatementParser interface {
	// Parse decodes payload. fileName is used to detect the format.
	Parse(fileName string, payload []byte) ([]StatementRow, error)
}
