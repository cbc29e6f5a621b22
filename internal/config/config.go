package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Market struct {
		BaseURL    string `yaml:"base_url"`
		VsCurrency string `yaml:"vs_currency"`
		PerPage    int    `yaml:"per_page"`
		Page       int    `yaml:"page"`
	} `yaml:"market"`
	Backend struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"backend"`
	Refresh struct {
		MarketSeconds    int `yaml:"market_seconds"`
		PortfolioSeconds int `yaml:"portfolio_seconds"`
	} `yaml:"refresh"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Session struct {
		File string `yaml:"file"`
	} `yaml:"session"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A .env file is honored when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("MARKET_BASE_URL"); v != "" {
		cfg.Market.BaseURL = v
	}
	if v := os.Getenv("MARKET_VS_CURRENCY"); v != "" {
		cfg.Market.VsCurrency = v
	}
	if v := os.Getenv("BACKEND_BASE_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SESSION_FILE"); v != "" {
		cfg.Session.File = v
	}
	if v := os.Getenv("MARKET_REFRESH_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Refresh.MarketSeconds = n
		}
	}

	// Defaults
	if cfg.Market.VsCurrency == "" {
		cfg.Market.VsCurrency = "usd"
	}
	if cfg.Market.PerPage == 0 {
		cfg.Market.PerPage = 50
	}
	if cfg.Market.Page == 0 {
		cfg.Market.Page = 1
	}
	if cfg.Refresh.MarketSeconds == 0 {
		cfg.Refresh.MarketSeconds = 60
	}
	if cfg.Refresh.PortfolioSeconds == 0 {
		cfg.Refresh.PortfolioSeconds = 300
	}
	if cfg.Session.File == "" {
		cfg.Session.File = "data/session.json"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/cryptish.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	if c.Refresh.MarketSeconds < 1 {
		return fmt.Errorf("refresh.market_seconds must be positive")
	}
	if c.Refresh.PortfolioSeconds < 1 {
		return fmt.Errorf("refresh.portfolio_seconds must be positive")
	}
	if c.Market.PerPage < 1 || c.Market.PerPage > 250 {
		return fmt.Errorf("market.per_page must be between 1 and 250")
	}
	return nil
}
