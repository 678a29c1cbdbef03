package dates

import (
	"testing"
	"time"
)

func TestGenerateWeekly(t *testing.T) {
	t.Parallel()

	from := time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC)
	got := GenerateWeekly(from, 2)

	if len(got) != 8 {
		t.Fatalf("expected 8 dates for 2 months, got %d", len(got))
	}
	if got[0] != "2025-01-01" {
		t.Fatalf("first date should be the start day, got %s", got[0])
	}
	if got[1] != "2025-01-08" {
		t.Fatalf("expected 7-day spacing, got %s", got[1])
	}
	if got[7] != "2025-02-19" {
		t.Fatalf("unexpected last date: %s", got[7])
	}
}

func TestGenerateWeeklyCrossesMonthBoundary(t *testing.T) {
	t.Parallel()

	from := time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC)
	got := GenerateWeekly(from, 1)

	if len(got) != 4 {
		t.Fatalf("expected 4 dates for 1 month, got %d", len(got))
	}
	// 2024 is a leap year.
	if got[1] != "2024-03-04" {
		t.Fatalf("expected leap-year rollover to 2024-03-04, got %s", got[1])
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"2025-03-14T09:30:00Z",
		"2025-03-14T09:30:00",
		"2025-03-14 09:30:00",
		"2025-03-14T09:30",
		"2025-03-14",
	} {
		ts, err := ParseTimestamp(s)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q) returned error: %v", s, err)
		}
		if ts.Year() != 2025 || ts.Month() != time.March || ts.Day() != 14 {
			t.Fatalf("ParseTimestamp(%q) = %v, wrong date", s, ts)
		}
	}

	if _, err := ParseTimestamp("not a time"); err == nil {
		t.Fatal("ParseTimestamp accepted garbage input")
	}
}
