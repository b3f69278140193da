// Package entity defines the core business entities for the domain layer.
package entity

import "fmt"

// CalendarDate is a timezone-free calendar day.
type CalendarDate struct {
	Year  int
	Month int // 1-12
	Day   int
}

// Ordinal returns a comparable integer key (YYYYMMDD). The zero date maps to
// 0, which orders before every real date.
func (d CalendarDate) Ordinal() int {
	return d.Year*10000 + d.Month*100 + d.Day
}

// String formats the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Month selects a calendar month. The zero value selects all time.
type Month struct {
	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"` // 1-12
}

// AllTime is the month selector that disables month filtering.
var AllTime = Month{}

// IsAllTime reports whether no month is selected.
func (m Month) IsAllTime() bool {
	return m == AllTime
}

// Contains reports whether the date falls inside the month.
func (m Month) Contains(d CalendarDate) bool {
	return d.Year == m.Year && d.Month == m.Month
}

// IncludesUpTo reports whether the date is on or before the last day of the month.
func (m Month) IncludesUpTo(d CalendarDate) bool {
	return d.Year < m.Year || (d.Year == m.Year && d.Month <= m.Month)
}

// String formats the month as YYYY-MM, or "all" for AllTime.
func (m Month) String() string {
	if m.IsAllTime() {
		return "all"
	}
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}
