package market

import (
	"math"
	"sort"
	"strings"

	"github.com/ericwalterlaw/cryptish/internal/model"
)

// SortKey selects the MarketEntry field the processor sorts on.
type SortKey string

const (
	SortByRank      SortKey = "rank"
	SortByPrice     SortKey = "price"
	SortByMarketCap SortKey = "market_cap"
	SortByChange24h SortKey = "change_24h"
	SortByVolume    SortKey = "volume"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// Process filters entries by a case-insensitive substring match of query
// against name or symbol, then stable-sorts on the selected field. An empty
// query matches everything. Ties keep their relative input order. The input
// slice is never mutated.
func Process(entries []model.MarketEntry, query string, key SortKey, order SortOrder) []model.MarketEntry {
	out := make([]model.MarketEntry, 0, len(entries))
	q := strings.ToLower(strings.TrimSpace(query))
	for _, e := range entries {
		if q == "" ||
			strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Symbol), q) {
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := sortValue(out[i], key), sortValue(out[j], key)
		if order == Descending {
			return a > b
		}
		return a < b
	})
	return out
}

// sortValue extracts the numeric sort field. An entry missing the active
// field sorts as -Inf, so it lands first ascending and last descending.
func sortValue(e model.MarketEntry, key SortKey) float64 {
	switch key {
	case SortByRank:
		if e.MarketCapRank <= 0 {
			return math.Inf(-1)
		}
		return float64(e.MarketCapRank)
	case SortByPrice:
		return e.CurrentPrice
	case SortByMarketCap:
		return e.MarketCap
	case SortByChange24h:
		if !e.HasChange24h {
			return math.Inf(-1)
		}
		return e.Change24h
	case SortByVolume:
		return e.TotalVolume
	default:
		return math.Inf(-1)
	}
}
