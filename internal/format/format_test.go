package format

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{50000, "$50,000.00"},
		{1234.5, "$1,234.50"},
		{1, "$1.00"},
		{0.5, "$0.500000"},
		{0.000123, "$0.000123"},
		{0, "$0.000000"},
	}
	for _, tt := range tests {
		if got := Price(tt.in); got != tt.want {
			t.Errorf("Price(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrice_FractionDigitThreshold(t *testing.T) {
	for _, x := range []float64{0, 0.009, 0.999, 1, 1.5, 999, 1e6} {
		s := Price(x)
		if strings.Count(s, "$") != 1 {
			t.Fatalf("Price(%v) = %q: expected exactly one $", x, s)
		}
		dot := strings.LastIndex(s, ".")
		if dot < 0 {
			t.Fatalf("Price(%v) = %q: expected fractional digits", x, s)
		}
		frac := len(s) - dot - 1
		want := 6
		if x >= 1 {
			want = 2
		}
		if frac != want {
			t.Errorf("Price(%v) = %q: expected %d fractional digits, got %d", x, s, want, frac)
		}
	}
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1e12, "$1.00T"},
		{2.34e12, "$2.34T"},
		{1e9, "$1.00B"},
		{4e11, "$400.00B"},
		{1_000_000, "$1.00M"},
		{999_999, "$999,999"},
		{1234, "$1,234"},
	}
	for _, tt := range tests {
		if got := Magnitude(tt.in); got != tt.want {
			t.Errorf("Magnitude(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2.5, "+2.50%"},
		{0, "0.00%"},
		{-1.234, "-1.23%"},
	}
	for _, tt := range tests {
		if got := Percentage(tt.in); got != tt.want {
			t.Errorf("Percentage(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNonFiniteFallback(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := Price(x); got != Fallback {
			t.Errorf("Price(%v) = %q, want %q", x, got, Fallback)
		}
		if got := Magnitude(x); got != Fallback {
			t.Errorf("Magnitude(%v) = %q, want %q", x, got, Fallback)
		}
		if got := Percentage(x); got != Fallback {
			t.Errorf("Percentage(%v) = %q, want %q", x, got, Fallback)
		}
	}
}

func TestDate(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	if got := Date(ts); got != "Mar 5, 2024, 02:30 PM" {
		t.Errorf("Date = %q", got)
	}
	if got := Date(time.Time{}); got != "" {
		t.Errorf("zero time should render empty, got %q", got)
	}
}
