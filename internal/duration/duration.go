package duration

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedDuration indicates a token that does not match the PT[#H][#M]
// grammar used by the upstream flight API.
var ErrMalformedDuration = errors.New("malformed duration token")

// ParseMinutes converts an ISO 8601-style duration token like "PT9H20M" into
// total minutes. Either the hours or the minutes component may be absent, but
// at least one must be present.
func ParseMinutes(token string) (int, error) {
	s := strings.TrimPrefix(token, "PT")

	hours := 0
	minutes := 0
	found := false

	if idx := strings.Index(s, "H"); idx >= 0 {
		h, err := strconv.Atoi(s[:idx])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, token)
		}
		hours = h
		found = true
		s = s[idx+1:]
	}

	if idx := strings.Index(s, "M"); idx >= 0 {
		m, err := strconv.Atoi(s[:idx])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, token)
		}
		minutes = m
		found = true
		s = s[idx+1:]
	}

	if !found || s != "" {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, token)
	}

	return hours*60 + minutes, nil
}

// FormatDisplay renders a duration token as a human readable string,
// e.g. "PT9H20M" -> "9h 20m", "PT2H" -> "2h", "PT45M" -> "45m".
func FormatDisplay(token string) (string, error) {
	total, err := ParseMinutes(token)
	if err != nil {
		return "", err
	}
	return FormatMinutes(total), nil
}

// FormatMinutes renders a minute count in the same display form.
func FormatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}
