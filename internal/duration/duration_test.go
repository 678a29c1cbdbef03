package duration

import (
	"errors"
	"testing"
)

func TestParseMinutes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		token string
		want  int
	}{
		{"PT9H20M", 560},
		{"PT45M", 45},
		{"PT2H", 120},
		{"PT11H05M", 665},
		{"PT0H30M", 30},
		{"PT23H59M", 1439},
	}

	for _, tc := range cases {
		got, err := ParseMinutes(tc.token)
		if err != nil {
			t.Fatalf("ParseMinutes(%q) returned error: %v", tc.token, err)
		}
		if got != tc.want {
			t.Fatalf("ParseMinutes(%q) = %d, want %d", tc.token, got, tc.want)
		}
	}
}

func TestParseMinutesMalformed(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"XYZ", "", "PT", "PTXH", "PT1H2M3S", "PTHM"} {
		_, err := ParseMinutes(token)
		if err == nil {
			t.Fatalf("ParseMinutes(%q) succeeded, want error", token)
		}
		if !errors.Is(err, ErrMalformedDuration) {
			t.Fatalf("ParseMinutes(%q) error = %v, want ErrMalformedDuration", token, err)
		}
	}
}

func TestFormatDisplay(t *testing.T) {
	t.Parallel()

	cases := []struct {
		token string
		want  string
	}{
		{"PT9H20M", "9h 20m"},
		{"PT45M", "45m"},
		{"PT2H", "2h"},
		{"PT0M", "0m"},
	}

	for _, tc := range cases {
		got, err := FormatDisplay(tc.token)
		if err != nil {
			t.Fatalf("FormatDisplay(%q) returned error: %v", tc.token, err)
		}
		if got != tc.want {
			t.Fatalf("FormatDisplay(%q) = %q, want %q", tc.token, got, tc.want)
		}
	}

	if _, err := FormatDisplay("bogus"); err == nil {
		t.Fatal("FormatDisplay accepted a malformed token")
	}
}
