package dashboard

import (
	"context"
	"log"
	"math"
	"sync"

	"github.com/ericwalterlaw/cryptish/internal/backend"
	"github.com/ericwalterlaw/cryptish/internal/model"
	"github.com/ericwalterlaw/cryptish/internal/session"
	"github.com/ericwalterlaw/cryptish/internal/valuation"
)

// Overview is one portfolio view: the holdings snapshot and the ledger
// history behind it.
type Overview struct {
	Portfolio    model.PortfolioSnapshot
	Transactions []model.TransactionRecord
}

// Service orchestrates the authenticated dashboard fetches.
type Service struct {
	Backend  *backend.Client
	Sessions *session.Store
}

// NewService creates a dashboard Service.
func NewService(client *backend.Client, sessions *session.Store) *Service {
	return &Service{Backend: client, Sessions: sessions}
}

// FetchOverview issues the portfolio and transaction fetches concurrently.
// The two paths are independent: either may fail without affecting the
// other, and a failed path degrades to empty data instead of erroring the
// whole view.
func (s *Service) FetchOverview(ctx context.Context) Overview {
	sess := s.Sessions.Current()

	o := Overview{
		Portfolio:    model.EmptyPortfolio(),
		Transactions: []model.TransactionRecord{},
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		snap, err := s.Backend.FetchPortfolio(ctx, sess)
		if err != nil {
			log.Printf("[WARN] portfolio fetch failed, using empty snapshot: %v", err)
			return
		}
		o.Portfolio = snap
	}()

	go func() {
		defer wg.Done()
		records, err := s.Backend.FetchTransactions(ctx, sess)
		if err != nil {
			log.Printf("[WARN] transactions fetch failed, using empty history: %v", err)
			return
		}
		o.Transactions = records
	}()

	wg.Wait()

	checkAggregate(o.Portfolio)
	return o
}

// aggregateTolerance is the relative drift above which server totals are
// flagged against the local recomputation.
const aggregateTolerance = 0.01

// checkAggregate compares the server-supplied totals with a local
// recomputation. Server totals stay authoritative; a mismatch is only
// logged.
func checkAggregate(snap model.PortfolioSnapshot) {
	if len(snap.Assets) == 0 {
		return
	}
	local := valuation.Aggregate(snap.Assets)
	if drifted(snap.TotalValue, local.TotalValue) || drifted(snap.TotalGain, local.TotalGain) {
		log.Printf("[WARN] portfolio aggregate drift: server value=%.2f gain=%.2f, local value=%.2f gain=%.2f",
			snap.TotalValue, snap.TotalGain, local.TotalValue, local.TotalGain)
	}
}

func drifted(server, local float64) bool {
	diff := math.Abs(server - local)
	scale := math.Max(math.Abs(server), math.Abs(local))
	if scale < 1 {
		scale = 1
	}
	return diff/scale > aggregateTolerance
}
