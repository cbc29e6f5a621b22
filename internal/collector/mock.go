package collector

import (
	"context"

	"github.com/ericwalterlaw/cryptish/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Entries []model.MarketEntry
	Err     error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchMarkets(_ context.Context, page, perPage int) ([]model.MarketEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Entries != nil {
		return m.Entries, nil
	}
	return generateMockEntries(perPage), nil
}

func generateMockEntries(count int) []model.MarketEntry {
	if count < 1 {
		count = 50
	}
	names := []string{"Bitcoin", "Ethereum", "Tether", "Solana", "Cardano"}
	symbols := []string{"btc", "eth", "usdt", "sol", "ada"}
	entries := make([]model.MarketEntry, 0, count)
	for i := 0; i < count; i++ {
		n := i % len(names)
		price := 50000.0 / float64(i+1)
		entries = append(entries, model.MarketEntry{
			ID:            symbols[n],
			Name:          names[n],
			Symbol:        symbols[n],
			CurrentPrice:  price,
			MarketCapRank: i + 1,
			MarketCap:     price * 19e6,
			TotalVolume:   price * 4e5,
			Change24h:     float64(2-n) * 1.5,
			HasChange24h:  true,
		})
	}
	return entries
}
