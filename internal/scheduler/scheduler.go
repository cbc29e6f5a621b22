package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/ericwalterlaw/cryptish/internal/collector"
	"github.com/ericwalterlaw/cryptish/internal/dashboard"
	"github.com/ericwalterlaw/cryptish/internal/market"
	"github.com/ericwalterlaw/cryptish/internal/model"
	"github.com/ericwalterlaw/cryptish/internal/recorder"
)

// Scheduler drives the periodic refresh loops.
type Scheduler struct {
	Cron      *cron.Cron
	Fetcher   collector.Fetcher
	Dashboard *dashboard.Service
	Recorder  recorder.Recorder
	Ctx       context.Context

	perPage int
	page    int

	mu       sync.Mutex
	lastGood []model.MarketEntry // retained across failed refreshes
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, f collector.Fetcher, svc *dashboard.Service, rec recorder.Recorder, page, perPage int) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Fetcher:   f,
		Dashboard: svc,
		Recorder:  rec,
		Ctx:       ctx,
		perPage:   perPage,
		page:      page,
	}
}

// RegisterAll registers the market and portfolio refresh tasks.
func (s *Scheduler) RegisterAll(marketSeconds, portfolioSeconds int) error {
	if _, err := s.Cron.AddFunc(fmt.Sprintf("@every %ds", marketSeconds), s.refreshMarket); err != nil {
		return fmt.Errorf("register market refresh: %w", err)
	}
	if _, err := s.Cron.AddFunc(fmt.Sprintf("@every %ds", portfolioSeconds), s.refreshPortfolio); err != nil {
		return fmt.Errorf("register portfolio refresh: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes both refresh tasks immediately (for RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.refreshMarket()
	s.refreshPortfolio()
}

// MarketSnapshot returns the most recent successfully fetched entries.
func (s *Scheduler) MarketSnapshot() []model.MarketEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastGood
}

func (s *Scheduler) refreshMarket() {
	entries, err := s.Fetcher.FetchMarkets(s.Ctx, s.page, s.perPage)
	if err != nil {
		// Background refresh never escalates; the previous snapshot stays up.
		log.Printf("[WARN] market refresh failed, keeping previous snapshot: %v", err)
		return
	}

	s.mu.Lock()
	s.lastGood = entries
	s.mu.Unlock()

	batchID := uuid.NewString()
	if err := s.Recorder.RecordMarket(batchID, entries); err != nil {
		log.Printf("[ERROR] record market batch %s: %v", batchID, err)
	}

	view := market.Process(entries, "", market.SortByMarketCap, market.Descending)
	log.Printf("[INFO] market refreshed: %d entries, batch %s\n%s",
		len(entries), batchID, dashboard.FormatMarketTable(view))
}

func (s *Scheduler) refreshPortfolio() {
	if !s.Dashboard.Sessions.Current().IsAuthenticated() {
		log.Println("[INFO] portfolio refresh skipped: not logged in")
		return
	}

	overview := s.Dashboard.FetchOverview(s.Ctx)
	if err := s.Recorder.RecordPortfolio(overview.Portfolio); err != nil {
		log.Printf("[ERROR] record portfolio: %v", err)
	}

	log.Printf("[INFO] portfolio refreshed\n%s\n%s",
		dashboard.FormatPortfolioSummary(overview.Portfolio),
		dashboard.FormatTransactionTable(overview.Transactions))
}
