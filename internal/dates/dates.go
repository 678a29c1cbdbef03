package dates

import "time"

// ISO is the calendar-date layout the upstream flight API expects.
const ISO = "2006-01-02"

// GenerateWeekly returns 4*months candidate departure dates at 7-day spacing
// starting from the given day, formatted as ISO calendar dates.
func GenerateWeekly(from time.Time, months int) []string {
	n := months * 4
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, from.AddDate(0, 0, i*7).Format(ISO))
	}
	return out
}

// ParseTimestamp parses the loosely formatted departure/arrival timestamps
// the upstream returns on segments.
func ParseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		ISO,
	}

	var lastErr error
	for _, format := range formats {
		t, err := time.Parse(format, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
