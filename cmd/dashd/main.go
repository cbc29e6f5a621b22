package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ericwalterlaw/cryptish/internal/backend"
	"github.com/ericwalterlaw/cryptish/internal/collector"
	"github.com/ericwalterlaw/cryptish/internal/config"
	"github.com/ericwalterlaw/cryptish/internal/dashboard"
	"github.com/ericwalterlaw/cryptish/internal/recorder"
	"github.com/ericwalterlaw/cryptish/internal/scheduler"
	"github.com/ericwalterlaw/cryptish/internal/session"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] cryptish starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init session store
	sessions, err := session.NewStore(cfg.Session.File)
	if err != nil {
		log.Fatalf("[FATAL] init session store: %v", err)
	}
	if sessions.Current().IsAuthenticated() {
		log.Printf("[INFO] session loaded for %s", sessions.Current().User.Email)
	} else {
		log.Println("[INFO] no session on disk, portfolio refresh will idle until login")
	}

	// Init market data fetcher
	fetcher := collector.NewCoinGeckoFetcher(cfg.Market.BaseURL, cfg.Market.VsCurrency, cfg.Proxy)
	log.Printf("[INFO] market data source: %s", fetcher.Name())

	// Init backend client and dashboard service
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Proxy)
	svc := dashboard.NewService(client, sessions)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, fetcher, svc, rec, cfg.Market.Page, cfg.Market.PerPage)
	if err := sched.RegisterAll(cfg.Refresh.MarketSeconds, cfg.Refresh.PortfolioSeconds); err != nil {
		log.Fatalf("[FATAL] register refresh tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, refreshing now")
		go sched.RunNow()
	}

	log.Println("[INFO] cryptish is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] cryptish stopped")
}
