package collector

import (
	"context"

	"github.com/ericwalterlaw/cryptish/internal/model"
)

// Fetcher defines the interface for fetching public market data.
type Fetcher interface {
	// FetchMarkets returns one page of market entries ranked by market
	// capitalization descending.
	FetchMarkets(ctx context.Context, page, perPage int) ([]model.MarketEntry, error)
	Name() string
}
