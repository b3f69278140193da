package statement

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// maxExcelSerial is 9999-12-31.
const maxExcelSerial = 2958465

// readXLSX returns the raw cell values of the first sheet. Date cells come
// back as serial numbers and are converted to ISO dates.
func readXLSX(payload []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(payload), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	for i, rec := range rows {
		if blank(rec) {
			continue
		}
		l, hasHeader := detectLayout(rec)
		if !hasHeader {
			l = positionalLayout
		} else {
			i++
		}
		convertDates(rows[i:], l[colDate])
		break
	}
	return rows, nil
}

func convertDates(rows [][]string, col int) {
	if col < 0 {
		return
	}
	for _, rec := range rows {
		if col >= len(rec) {
			continue
		}
		serial, err := strconv.ParseFloat(rec[col], 64)
		if err != nil || serial <= 0 || serial > maxExcelSerial {
			continue
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			continue
		}
		rec[col] = t.Format("2006-01-02")
	}
}
