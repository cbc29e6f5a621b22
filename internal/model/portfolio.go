package model

// HeldAsset is one line item in a user's portfolio.
type HeldAsset struct {
	Symbol       string
	Name         string
	Amount       float64
	CurrentPrice float64
	AvgPrice     float64 // cost basis per unit, normalized before division
	Value        float64 // amount * currentPrice, server-supplied or derived
	Allocation   float64 // percentage of total portfolio value
}

// PortfolioSnapshot aggregates a user's holdings at one point in time.
// The server-supplied totals are authoritative; local recomputation is a
// consistency check only.
type PortfolioSnapshot struct {
	TotalValue     float64
	TotalGain      float64
	GainPercentage float64
	Assets         []HeldAsset // order as received
}

// EmptyPortfolio is the safe fallback when the portfolio endpoint is
// unreachable: zeroed totals, no assets.
func EmptyPortfolio() PortfolioSnapshot {
	return PortfolioSnapshot{Assets: []HeldAsset{}}
}
