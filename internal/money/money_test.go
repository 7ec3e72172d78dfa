package money

import (
	"math"
	"testing"
)

func TestToCents(t *testing.T) {
	cases := []struct {
		in      float64
		want    int64
		wantErr bool
	}{
		{0, 0, false},
		{12.34, 1234, false},
		{1000, 100000, false},
		{0.005, 1, false},
		{-1, 0, true},
		{math.NaN(), 0, true},
		{math.Inf(1), 0, true},
		{1e17, 0, true},
	}

	for _, tc := range cases {
		got, err := ToCents(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ToCents(%v): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ToCents(%v): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ToCents(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{1234, "12.34"},
		{-1234, "-12.34"},
		{100000, "1000.00"},
	}

	for _, tc := range cases {
		if got := FormatCents(tc.in); got != tc.want {
			t.Errorf("FormatCents(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
