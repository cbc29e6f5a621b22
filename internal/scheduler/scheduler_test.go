package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/ericwalterlaw/cryptish/internal/backend"
	"github.com/ericwalterlaw/cryptish/internal/collector"
	"github.com/ericwalterlaw/cryptish/internal/dashboard"
	"github.com/ericwalterlaw/cryptish/internal/recorder"
	"github.com/ericwalterlaw/cryptish/internal/session"
)

func testScheduler(t *testing.T, f collector.Fetcher) *Scheduler {
	t.Helper()
	sessions, err := session.NewStore("")
	if err != nil {
		t.Fatal(err)
	}
	svc := dashboard.NewService(backend.NewClient("http://127.0.0.1:1", ""), sessions)
	return NewScheduler(context.Background(), f, svc, recorder.NewNoopRecorder(), 1, 50)
}

func TestRefreshMarket_UpdatesSnapshot(t *testing.T) {
	s := testScheduler(t, &collector.MockFetcher{})
	s.refreshMarket()

	snap := s.MarketSnapshot()
	if len(snap) != 50 {
		t.Fatalf("expected 50 entries, got %d", len(snap))
	}
}

func TestRefreshMarket_KeepsLastGoodOnFailure(t *testing.T) {
	mock := &collector.MockFetcher{}
	s := testScheduler(t, mock)
	s.refreshMarket()
	before := s.MarketSnapshot()

	mock.Err = errors.New("upstream down")
	s.refreshMarket()

	after := s.MarketSnapshot()
	if len(after) != len(before) {
		t.Fatalf("failed refresh must keep the previous snapshot, got %d entries", len(after))
	}
}

func TestRefreshPortfolio_SkipsWithoutSession(t *testing.T) {
	// Backend is unreachable; a panic or hang here would mean the guard
	// did not short-circuit.
	s := testScheduler(t, &collector.MockFetcher{})
	s.refreshPortfolio()
}

func TestRegisterAll(t *testing.T) {
	s := testScheduler(t, &collector.MockFetcher{})
	if err := s.RegisterAll(60, 300); err != nil {
		t.Fatalf("register: %v", err)
	}
}
