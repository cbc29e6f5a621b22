package valuation

import (
	"math"

	"github.com/ericwalterlaw/cryptish/internal/model"
)

// GainLoss is the signed difference between market value and cost basis for
// one held asset.
type GainLoss struct {
	Absolute   float64
	Percentage float64
}

// Summary is a locally recomputed portfolio aggregate.
type Summary struct {
	TotalValue     float64
	TotalGain      float64
	GainPercentage float64
}

// normalizeCostBasis guards the divisor: an absent, zero, negative, or
// non-finite cost basis falls back to 1 so a percentage is always defined.
func normalizeCostBasis(avgPrice float64) float64 {
	if avgPrice <= 0 || math.IsNaN(avgPrice) || math.IsInf(avgPrice, 0) {
		return 1
	}
	return avgPrice
}

// sanitize coerces non-finite inputs to 0 so malformed records cannot leak
// NaN into derived output.
func sanitize(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// Compute returns the absolute and percentage gain/loss for one asset.
// Total over all inputs: no error path, no NaN, no Inf.
func Compute(asset model.HeldAsset) GainLoss {
	current := sanitize(asset.CurrentPrice)
	amount := sanitize(asset.Amount)
	avg := normalizeCostBasis(asset.AvgPrice)

	return GainLoss{
		Absolute:   (current - avg) * amount,
		Percentage: (current - avg) / avg * 100,
	}
}

// Aggregate recomputes portfolio totals from individual holdings. Value is
// summed as received; gain percentage relates total gain to the cost basis
// implied by value minus gain, and is 0 when that denominator is 0.
func Aggregate(assets []model.HeldAsset) Summary {
	var s Summary
	for _, a := range assets {
		s.TotalValue += sanitize(a.Value)
		s.TotalGain += Compute(a).Absolute
	}
	if basis := s.TotalValue - s.TotalGain; basis != 0 {
		s.GainPercentage = s.TotalGain / basis * 100
	}
	return s
}

// Allocations returns per-asset portfolio percentages recomputed from
// values, for responses where the server omits them. All zeros when the
// portfolio has no value.
func Allocations(assets []model.HeldAsset) []float64 {
	total := 0.0
	for _, a := range assets {
		total += sanitize(a.Value)
	}
	out := make([]float64, len(assets))
	if total == 0 {
		return out
	}
	for i, a := range assets {
		out[i] = sanitize(a.Value) / total * 100
	}
	return out
}
