// Package statement decodes bank statement exports (CSV or XLSX) into rows.
package statement

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// Format is a supported statement file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var zipMagic = []byte("PK\x03\x04")

// Parser implements adapter.StatementParser for CSV and XLSX files.
type Parser struct {
	maxRows int
}

var _ adapter.StatementParser = (*Parser)(nil)

// NewParser creates a parser that rejects files with more than maxRows data
// rows. maxRows <= 0 means no limit.
func NewParser(maxRows int) *Parser {
	return &Parser{maxRows: maxRows}
}

// Parse detects the format of payload and decodes it.
func (p *Parser) Parse(fileName string, payload []byte) ([]adapter.StatementRow, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil, domainerror.NewImportError(domainerror.ErrCodeEmptyStatement, "statement file is empty", domainerror.ErrEmptyStatement)
	}

	format, ok := DetectFormat(fileName, payload)
	if !ok {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeUnsupportedFormat,
			"only CSV and XLSX statements are supported",
			domainerror.ErrUnsupportedStatementFormat,
		)
	}

	var (
		records [][]string
		err     error
	)
	switch format {
	case FormatXLSX:
		records, err = readXLSX(payload)
	default:
		records, err = readCSV(payload)
	}
	if err != nil {
		return nil, domainerror.NewImportError(domainerror.ErrCodeUnreadableStatement, "statement file could not be read", err)
	}

	rows, err := toRows(records)
	if err != nil {
		return nil, err
	}
	if p.maxRows > 0 && len(rows) > p.maxRows {
		return nil, domainerror.NewImportError(domainerror.ErrCodeStatementTooLarge, "statement has too many rows", domainerror.ErrStatementTooLarge)
	}
	return rows, nil
}

// DetectFormat picks the format from the file's magic bytes, then its extension.
func DetectFormat(fileName string, payload []byte) (Format, bool) {
	if bytes.HasPrefix(payload, zipMagic) {
		return FormatXLSX, true
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv", ".txt", "":
		return FormatCSV, true
	default:
		// Includes .xlsx files whose content is not a zip archive.
		return "", false
	}
}
