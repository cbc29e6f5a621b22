package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ericwalterlaw/cryptish/internal/model"
)

// SQLiteRecorder persists refresh history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so history queries can run while the refresh loop writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS market_snapshots (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			batch_id        TEXT NOT NULL,
			timestamp       INTEGER NOT NULL,
			coin_id         TEXT NOT NULL,
			symbol          TEXT,
			name            TEXT,
			current_price   REAL,
			market_cap_rank INTEGER,
			market_cap      REAL,
			total_volume    REAL,
			change_24h      REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_market_batch ON market_snapshots(batch_id)`,
		`CREATE INDEX IF NOT EXISTS idx_market_ts ON market_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS portfolio_snapshots (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			total_value     REAL,
			total_gain      REAL,
			gain_percentage REAL,
			asset_count     INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_portfolio_ts ON portfolio_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS portfolio_holdings (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id   INTEGER NOT NULL REFERENCES portfolio_snapshots(id),
			symbol        TEXT,
			name          TEXT,
			amount        REAL,
			current_price REAL,
			avg_price     REAL,
			value         REAL,
			allocation    REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_holdings_snapshot ON portfolio_holdings(snapshot_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordMarket(batchID string, entries []model.MarketEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO market_snapshots
		(batch_id, timestamp, coin_id, symbol, name, current_price,
		 market_cap_rank, market_cap, total_volume, change_24h)
		VALUES (?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for _, e := range entries {
		var change sql.NullFloat64
		if e.HasChange24h {
			change = sql.NullFloat64{Float64: e.Change24h, Valid: true}
		}
		if _, err := stmt.Exec(batchID, now, e.ID, e.Symbol, e.Name,
			e.CurrentPrice, e.MarketCapRank, e.MarketCap, e.TotalVolume, change); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) RecordPortfolio(snap model.PortfolioSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO portfolio_snapshots
		(timestamp, total_value, total_gain, gain_percentage, asset_count)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), snap.TotalValue, snap.TotalGain, snap.GainPercentage, len(snap.Assets))
	if err != nil {
		return err
	}
	snapshotID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for _, a := range snap.Assets {
		if _, err := tx.Exec(`INSERT INTO portfolio_holdings
			(snapshot_id, symbol, name, amount, current_price, avg_price, value, allocation)
			VALUES (?,?,?,?,?,?,?,?)`,
			snapshotID, a.Symbol, a.Name, a.Amount, a.CurrentPrice, a.AvgPrice, a.Value, a.Allocation); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
