package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/ericwalterlaw/cryptish/internal/format"
	"github.com/ericwalterlaw/cryptish/internal/model"
	"github.com/ericwalterlaw/cryptish/internal/valuation"
)

// FormatMarketTable renders a processed market snapshot as a text table.
func FormatMarketTable(entries []model.MarketEntry) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Cryptocurrency Market | %s\n\n", time.Now().Format("2006-01-02 15:04")))
	if len(entries) == 0 {
		b.WriteString("No cryptocurrencies found matching your search.\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%-5s %-22s %16s %12s %12s %12s\n",
		"Rank", "Name", "Price", "24h", "Mkt Cap", "Volume"))
	for _, e := range entries {
		rank := "-"
		if e.MarketCapRank > 0 {
			rank = fmt.Sprintf("#%d", e.MarketCapRank)
		}
		change := format.Fallback
		if e.HasChange24h {
			change = format.Percentage(e.Change24h)
		}
		b.WriteString(fmt.Sprintf("%-5s %-22s %16s %12s %12s %12s\n",
			rank,
			fmt.Sprintf("%s (%s)", e.Name, strings.ToUpper(e.Symbol)),
			format.Price(e.CurrentPrice),
			change,
			format.Magnitude(e.MarketCap),
			format.Magnitude(e.TotalVolume)))
	}
	return b.String()
}

// FormatPortfolioSummary renders totals plus one line per holding with its
// gain/loss against cost basis.
func FormatPortfolioSummary(snap model.PortfolioSnapshot) string {
	var b strings.Builder

	b.WriteString("Portfolio\n\n")
	b.WriteString(fmt.Sprintf("Total Value: %s\n", format.Price(snap.TotalValue)))
	b.WriteString(fmt.Sprintf("Total Gain/Loss: %s (%s)\n", signedMoney(snap.TotalGain), format.Percentage(snap.GainPercentage)))
	b.WriteString(fmt.Sprintf("Active Assets: %d\n", len(snap.Assets)))

	if len(snap.Assets) == 0 {
		b.WriteString("\nNo holdings yet. Start trading!\n")
		return b.String()
	}

	b.WriteString("\n")
	for _, a := range snap.Assets {
		gl := valuation.Compute(a)
		b.WriteString(fmt.Sprintf("  %-6s %-16s %12s @ %s | value %s (%.1f%%) | %s (%s)\n",
			strings.ToUpper(a.Symbol),
			a.Name,
			trimAmount(a.Amount),
			format.Price(a.CurrentPrice),
			format.Price(a.Value),
			a.Allocation,
			signedMoney(gl.Absolute),
			format.Percentage(gl.Percentage)))
	}
	return b.String()
}

// FormatTransactionTable renders the ledger history.
func FormatTransactionTable(records []model.TransactionRecord) string {
	var b strings.Builder

	b.WriteString("Transactions\n\n")
	if len(records) == 0 {
		b.WriteString("No transactions yet.\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%-22s %-5s %-6s %14s %14s %10s %14s %-10s\n",
		"Date", "Type", "Asset", "Amount", "Price", "Fee", "Total", "Status"))
	for _, tx := range records {
		b.WriteString(fmt.Sprintf("%-22s %-5s %-6s %14s %14s %10s %14s %-10s\n",
			format.Date(tx.Date),
			strings.ToUpper(string(tx.Type)),
			strings.ToUpper(tx.Symbol),
			trimAmount(tx.Amount),
			format.Price(tx.Price),
			format.Price(tx.Fee),
			format.Price(tx.Total),
			tx.Status))
	}
	return b.String()
}

// signedMoney prefixes a plus for positive amounts, matching the gain/loss
// styling of the UI.
func signedMoney(x float64) string {
	if x > 0 {
		return "+" + format.Price(x)
	}
	if x < 0 {
		return "-" + format.Price(-x)
	}
	return format.Price(0)
}

// trimAmount drops insignificant trailing zeros from a holding quantity.
func trimAmount(x float64) string {
	s := fmt.Sprintf("%.8f", x)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
