package statement

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readCSV decodes a UTF-8 or Latin-1 CSV with a comma or semicolon delimiter.
func readCSV(payload []byte) ([][]string, error) {
	text, err := toUTF8(payload)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(text))
	r.Comma = sniffDelimiter(text)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return records, nil
}

// toUTF8 strips a UTF-8 BOM, or decodes the payload as Latin-1 when it is
// not valid UTF-8.
func toUTF8(payload []byte) ([]byte, error) {
	if utf8.Valid(payload) {
		return bytes.TrimPrefix(payload, utf8BOM), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode latin-1: %w", err)
	}
	return decoded, nil
}

// sniffDelimiter counts separators on the first line outside quotes.
func sniffDelimiter(text []byte) rune {
	line := text
	if i := bytes.IndexByte(text, '\n'); i >= 0 {
		line = text[:i]
	}

	var commas, semicolons int
	quoted := false
	for _, c := range line {
		switch c {
		case '"':
			quoted = !quoted
		case ',':
			if !quoted {
				commas++
			}
		case ';':
			if !quoted {
				semicolons++
			}
		}
	}
	if semicolons > commas {
		return ';'
	}
	return ','
}
