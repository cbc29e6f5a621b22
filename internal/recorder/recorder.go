package recorder

import "github.com/ericwalterlaw/cryptish/internal/model"

// Recorder persists refresh history for later analysis.
type Recorder interface {
	// RecordMarket stores one full market refresh; all rows of the batch
	// share batchID.
	RecordMarket(batchID string, entries []model.MarketEntry) error
	RecordPortfolio(snap model.PortfolioSnapshot) error
	Close() error
}
