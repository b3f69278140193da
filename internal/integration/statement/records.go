package statement

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

type column int

const (
	colDate column = iota
	colDescription
	colAmount
	colCategory
)

// headerNames maps normalized header labels to columns. Bank exports in the
// wild use English or Portuguese labels.
var headerNames = map[string]column{
	"date":           colDate,
	"data":           colDate,
	"data_transacao": colDate,
	"occurred_on":    colDate,
	"description":    colDescription,
	"descricao":      colDescription,
	"historico":      colDescription,
	"memo":           colDescription,
	"amount":         colAmount,
	"valor":          colAmount,
	"value":          colAmount,
	"category":       colCategory,
	"categoria":      colCategory,
}

var accentFolder = strings.NewReplacer(
	"á", "a", "à", "a", "ã", "a", "â", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "õ", "o", "ô", "o",
	"ú", "u",
	"ç", "c",
)

func normalizeHeader(label string) string {
	label = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(label, "\ufeff")))
	label = accentFolder.Replace(label)
	return strings.ReplaceAll(label, " ", "_")
}

// layout records the index of each column, -1 when absent.
type layout [4]int

func detectLayout(header []string) (layout, bool) {
	l := layout{-1, -1, -1, -1}
	matched := false
	for i, label := range header {
		if c, ok := headerNames[normalizeHeader(label)]; ok && l[c] < 0 {
			l[c] = i
			matched = true
		}
	}
	return l, matched
}

// positionalLayout is used for headerless files: date, description, amount, category.
var positionalLayout = layout{0, 1, 2, 3}

func toRows(records [][]string) ([]adapter.StatementRow, error) {
	first := -1
	for i, rec := range records {
		if !blank(rec) {
			first = i
			break
		}
	}
	if first < 0 {
		return nil, domainerror.NewImportError(domainerror.ErrCodeEmptyStatement, "statement has no rows", domainerror.ErrEmptyStatement)
	}

	l, hasHeader := detectLayout(records[first])
	start := first + 1
	if !hasHeader {
		l = positionalLayout
		start = first
		if len(records[first]) < 3 {
			return nil, missingColumns()
		}
	}
	if l[colDate] < 0 || l[colDescription] < 0 || l[colAmount] < 0 {
		return nil, missingColumns()
	}

	rows := make([]adapter.StatementRow, 0, len(records)-start)
	for i := start; i < len(records); i++ {
		rec := records[i]
		if blank(rec) {
			continue
		}
		amount, _ := ParseAmount(field(rec, l[colAmount]))
		rows = append(rows, adapter.StatementRow{
			Line:        i + 1,
			Date:        field(rec, l[colDate]),
			Description: field(rec, l[colDescription]),
			Amount:      amount,
			Category:    field(rec, l[colCategory]),
		})
	}
	return rows, nil
}

func missingColumns() error {
	return domainerror.NewImportError(
		domainerror.ErrCodeMissingStatementColumn,
		"statement needs date, description and amount columns",
		domainerror.ErrMissingStatementColumns,
	)
}

func field(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// ParseAmount reads amounts written as "-12.50", "1.234,56", "1,234.56",
// "R$ 10,00", "(45.00)" or "45.00-". The decimal separator is the last of
// '.' or ',' when both appear; a lone ',' followed by at most two digits is
// a decimal comma.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	if strings.HasSuffix(s, "-") {
		negative = !negative
		s = strings.TrimSuffix(s, "-")
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',':
			b.WriteRune(r)
		case r == '-':
			negative = !negative
		case r == '+', r == ' ', r == '\u00a0', r == '$', r == 'R', r == '€':
		default:
			return decimal.Zero, false
		}
	}
	s = b.String()

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") == 1 && len(s)-lastComma-1 <= 2 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		d = d.Neg()
	}
	return d, true
}
