package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Market.VsCurrency != "usd" {
		t.Errorf("expected usd default, got %q", cfg.Market.VsCurrency)
	}
	if cfg.Market.PerPage != 50 {
		t.Errorf("expected per_page 50, got %d", cfg.Market.PerPage)
	}
	if cfg.Refresh.MarketSeconds != 60 {
		t.Errorf("expected 60s market refresh, got %d", cfg.Refresh.MarketSeconds)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("backend:\n  base_url: https://file.example.com\nmarket:\n  per_page: 100\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("BACKEND_BASE_URL", "https://env.example.com")
	t.Setenv("MARKET_REFRESH_SECONDS", "30")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend.BaseURL != "https://env.example.com" {
		t.Errorf("env must override file, got %q", cfg.Backend.BaseURL)
	}
	if cfg.Market.PerPage != 100 {
		t.Errorf("expected per_page 100 from file, got %d", cfg.Market.PerPage)
	}
	if cfg.Refresh.MarketSeconds != 30 {
		t.Errorf("expected 30s from env, got %d", cfg.Refresh.MarketSeconds)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation failure without backend.base_url")
	}

	cfg.Backend.BaseURL = "https://api.example.com"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}

	cfg.Market.PerPage = 500
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation failure for per_page > 250")
	}
}
