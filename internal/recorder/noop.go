package recorder

import "github.com/ericwalterlaw/cryptish/internal/model"

// NoopRecorder discards all records. Used when no database is configured.
type NoopRecorder struct{}

// NewNoopRecorder creates a no-op recorder.
func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordMarket(string, []model.MarketEntry) error { return nil }

func (n *NoopRecorder) RecordPortfolio(model.PortfolioSnapshot) error { return nil }

func (n *NoopRecorder) Close() error { return nil }
