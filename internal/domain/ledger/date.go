// Package ledger implements the pure aggregation engine over ledger snapshots:
// date normalization, month partitioning, balances, category aggregation,
// budget progress and the paginated list view. Every function is total and
// never mutates its input collections.
package ledger

import (
	"strconv"
	"strings"
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ParseDate decomposes a raw date string into a calendar date.
// Accepted shapes, tried in order:
//   - YYYY-MM-DD, optionally followed by a time part after a space or 'T'
//   - DD/MM/YYYY, optionally followed by a time part after a space
//
// The time part, including any UTC offset, is discarded without being
// interpreted, so it can never move the calendar day. The second return
// value is false when the input is empty or matches neither shape.
func ParseDate(raw string) (entity.CalendarDate, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return entity.CalendarDate{}, false
	}

	datePart := strings.SplitN(raw, " ", 2)[0]

	if strings.Contains(datePart, "-") {
		isoPart := strings.SplitN(datePart, "T", 2)[0]
		if parts := strings.Split(isoPart, "-"); len(parts) == 3 {
			if d, ok := buildDate(parts[0], parts[1], parts[2]); ok {
				return d, true
			}
		}
	}

	if strings.Contains(datePart, "/") {
		if parts := strings.Split(datePart, "/"); len(parts) == 3 {
			if d, ok := buildDate(parts[2], parts[1], parts[0]); ok {
				return d, true
			}
		}
	}

	return entity.CalendarDate{}, false
}

// ParseMonth parses a YYYY-MM month selector. "all" and the empty string
// select all time.
func ParseMonth(raw string) (entity.Month, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "all") {
		return entity.AllTime, true
	}

	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return entity.Month{}, false
	}
	year, ok := atoiDigits(parts[0])
	if !ok || year < 1 || year > 9999 {
		return entity.Month{}, false
	}
	month, ok := atoiDigits(parts[1])
	if !ok || month < 1 || month > 12 {
		return entity.Month{}, false
	}
	return entity.Month{Year: year, Month: month}, true
}

// MonthOf returns the month containing t, in t's own location.
func MonthOf(t time.Time) entity.Month {
	return entity.Month{Year: t.Year(), Month: int(t.Month())}
}

func buildDate(y, m, d string) (entity.CalendarDate, bool) {
	year, ok := atoiDigits(y)
	if !ok || year < 1 || year > 9999 {
		return entity.CalendarDate{}, false
	}
	month, ok := atoiDigits(m)
	if !ok || month < 1 || month > 12 {
		return entity.CalendarDate{}, false
	}
	day, ok := atoiDigits(d)
	if !ok || day < 1 || day > daysIn(year, month) {
		return entity.CalendarDate{}, false
	}
	return entity.CalendarDate{Year: year, Month: month, Day: day}, true
}

// daysIn uses UTC date arithmetic only to find the month length.
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func atoiDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
