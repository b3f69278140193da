package ledger

import (
	"testing"
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   entity.CalendarDate
		wantOK bool
	}{
		// ISO-like forms
		{name: "plain ISO date", raw: "2026-02-22", want: entity.CalendarDate{Year: 2026, Month: 2, Day: 22}, wantOK: true},
		{name: "ISO with space separated time", raw: "2026-02-22 00:00:00", want: entity.CalendarDate{Year: 2026, Month: 2, Day: 22}, wantOK: true},
		{name: "ISO with T separated time", raw: "2026-02-22T00:00:00.000", want: entity.CalendarDate{Year: 2026, Month: 2, Day: 22}, wantOK: true},
		{name: "negative offset keeps first of month", raw: "2026-02-01T00:00:00.000-03:00", want: entity.CalendarDate{Year: 2026, Month: 2, Day: 1}, wantOK: true},
		{name: "positive offset keeps last of month", raw: "2026-01-31T23:30:00+05:00", want: entity.CalendarDate{Year: 2026, Month: 1, Day: 31}, wantOK: true},
		{name: "UTC suffix", raw: "2026-03-01T00:00:00Z", want: entity.CalendarDate{Year: 2026, Month: 3, Day: 1}, wantOK: true},
		{name: "surrounding whitespace", raw: "  2026-02-22  ", want: entity.CalendarDate{Year: 2026, Month: 2, Day: 22}, wantOK: true},
		{name: "leap day", raw: "2024-02-29", want: entity.CalendarDate{Year: 2024, Month: 2, Day: 29}, wantOK: true},

		// Slash form
		{name: "slash date", raw: "22/02/2026", want: entity.CalendarDate{Year: 2026, Month: 2, Day: 22}, wantOK: true},
		{name: "slash date with time", raw: "01/02/2026 23:59:59", want: entity.CalendarDate{Year: 2026, Month: 2, Day: 1}, wantOK: true},
		{name: "slash date with single digits", raw: "1/2/2026", want: entity.CalendarDate{Year: 2026, Month: 2, Day: 1}, wantOK: true},

		// Unparseable
		{name: "empty", raw: "", wantOK: false},
		{name: "blank", raw: "   ", wantOK: false},
		{name: "two ISO components", raw: "2026-02", wantOK: false},
		{name: "four ISO components", raw: "2026-02-22-01", wantOK: false},
		{name: "two slash components", raw: "22/02", wantOK: false},
		{name: "year first slash form", raw: "2026/02/22", wantOK: false},
		{name: "month out of range", raw: "2026-13-01", wantOK: false},
		{name: "day out of range", raw: "31/02/2026", wantOK: false},
		{name: "non leap february 29", raw: "2023-02-29", wantOK: false},
		{name: "letters", raw: "yesterday", wantOK: false},
		{name: "signed component", raw: "+1/02/2026", wantOK: false},

		// Impossible days are rejected, never rolled into the next month
		{name: "no rollover of 2026-02-31 into march", raw: "2026-02-31", wantOK: false},
		{name: "no rollover of 31/04/2026 into may", raw: "31/04/2026", wantOK: false},
		{name: "no rollover of 2026-06-31 with time", raw: "2026-06-31T10:00:00Z", wantOK: false},
		{name: "day zero", raw: "2026-03-00", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseDate_IgnoresProcessTimezone(t *testing.T) {
	original := time.Local
	defer func() { time.Local = original }()

	for _, zone := range []string{"America/Sao_Paulo", "Asia/Tokyo", "UTC"} {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			t.Skipf("timezone %s not available: %v", zone, err)
		}
		time.Local = loc

		got, ok := ParseDate("2026-02-01T00:00:00.000Z")
		if !ok || got.Month != 2 || got.Day != 1 {
			t.Errorf("in %s ParseDate() = %v, %v, want 2026-02-01", zone, got, ok)
		}
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   entity.Month
		wantOK bool
	}{
		{name: "year and month", raw: "2026-02", want: entity.Month{Year: 2026, Month: 2}, wantOK: true},
		{name: "empty selects all time", raw: "", want: entity.AllTime, wantOK: true},
		{name: "all keyword", raw: "ALL", want: entity.AllTime, wantOK: true},
		{name: "month zero", raw: "2026-00", wantOK: false},
		{name: "month thirteen", raw: "2026-13", wantOK: false},
		{name: "full date", raw: "2026-02-01", wantOK: false},
		{name: "garbage", raw: "feb", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMonth(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseMonth(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseMonth(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
