package model

// MarketEntry is one tradable asset's public market snapshot. Entries are
// replaced wholesale on every refresh; only ID is stable across fetches.
type MarketEntry struct {
	ID            string
	Name          string
	Symbol        string
	CurrentPrice  float64
	MarketCapRank int // 0 when the source omits a rank
	MarketCap     float64
	TotalVolume   float64
	Change24h     float64
	HasChange24h  bool // false when the source returned null
	Image         string
}
