package currency

import "testing"

func TestFormatUSD(t *testing.T) {
	t.Parallel()

	cases := []struct {
		amount float64
		want   string
	}{
		{399, "$399.00"},
		{412.5, "$412.50"},
		{1234.56, "$1,234.56"},
		{1000000, "$1,000,000.00"},
		{0, "$0.00"},
		{-75.25, "-$75.25"},
		{999.999, "$1,000.00"},
	}

	for _, tc := range cases {
		if got := FormatUSD(tc.amount); got != tc.want {
			t.Fatalf("FormatUSD(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
