// Package format renders raw numeric magnitudes as the display strings the
// dashboard shows: currency, large-magnitude suffixes, and signed
// percentages. All functions are pure and total; non-finite input renders
// as the em-dash fallback instead of leaking NaN into output.
package format

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// Fallback replaces output for NaN or infinite input.
const Fallback = "—"

// Price renders an asset price in USD. Prices of $1 and above get thousands
// separators and exactly 2 fractional digits; sub-dollar prices keep 6
// fractional digits so sub-cent tokens stay distinguishable.
func Price(x float64) string {
	if !isFinite(x) {
		return Fallback
	}
	if x >= 1 {
		return "$" + humanize.FormatFloat("#,###.##", x)
	}
	return "$" + strconv.FormatFloat(x, 'f', 6, 64)
}

// Magnitude renders market capitalization and volume figures with T/B/M
// suffixes at the trillion/billion/million thresholds, 2 fractional digits
// each. Below a million the plain separated number is shown.
func Magnitude(x float64) string {
	if !isFinite(x) {
		return Fallback
	}
	switch {
	case x >= 1e12:
		return fmt.Sprintf("$%.2fT", x/1e12)
	case x >= 1e9:
		return fmt.Sprintf("$%.2fB", x/1e9)
	case x >= 1e6:
		return fmt.Sprintf("$%.2fM", x/1e6)
	default:
		return "$" + humanize.Commaf(x)
	}
}

// Percentage renders a signed percentage with 2 fractional digits. Positive
// values get an explicit plus; zero and negative values rely on the numeral
// itself.
func Percentage(x float64) string {
	if !isFinite(x) {
		return Fallback
	}
	if x > 0 {
		return fmt.Sprintf("+%.2f%%", x)
	}
	return fmt.Sprintf("%.2f%%", x)
}

// Date renders a transaction timestamp, empty for the zero time.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006, 03:04 PM")
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
