package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ericwalterlaw/cryptish/internal/model"
)

const defaultCoinGeckoURL = "https://api.coingecko.com/api/v3"

// CoinGeckoFetcher implements Fetcher using the public CoinGecko API.
type CoinGeckoFetcher struct {
	BaseURL    string
	VsCurrency string
	Client     *http.Client
}

// NewCoinGeckoFetcher creates a new CoinGecko fetcher with optional proxy
// support. An empty baseURL selects the public API.
func NewCoinGeckoFetcher(baseURL, vsCurrency, proxyURL string) *CoinGeckoFetcher {
	if baseURL == "" {
		baseURL = defaultCoinGeckoURL
	}
	if vsCurrency == "" {
		vsCurrency = "usd"
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &CoinGeckoFetcher{
		BaseURL:    baseURL,
		VsCurrency: vsCurrency,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *CoinGeckoFetcher) Name() string { return "coingecko" }

// marketRow is the wire shape of one /coins/markets element. Numeric fields
// arrive loosely typed and may be null, so they decode as interface{} and
// are coerced at this seam.
type marketRow struct {
	ID            string      `json:"id"`
	Symbol        string      `json:"symbol"`
	Name          string      `json:"name"`
	Image         string      `json:"image"`
	CurrentPrice  interface{} `json:"current_price"`
	MarketCap     interface{} `json:"market_cap"`
	MarketCapRank interface{} `json:"market_cap_rank"`
	TotalVolume   interface{} `json:"total_volume"`
	Change24h     interface{} `json:"price_change_percentage_24h"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	default:
		return 0
	}
}

func (f *CoinGeckoFetcher) FetchMarkets(ctx context.Context, page, perPage int) ([]model.MarketEntry, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 50
	}
	u := fmt.Sprintf("%s/coins/markets?vs_currency=%s&order=market_cap_desc&per_page=%d&page=%d&sparkline=false",
		f.BaseURL, url.QueryEscape(f.VsCurrency), perPage, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("coingecko read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coingecko: status %d, body: %s", resp.StatusCode, string(body))
	}

	var rows []marketRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("coingecko decode: %w", err)
	}

	entries := make([]model.MarketEntry, 0, len(rows))
	for _, r := range rows {
		if r.ID == "" {
			continue // unusable without a stable identifier
		}
		entries = append(entries, model.MarketEntry{
			ID:            r.ID,
			Name:          r.Name,
			Symbol:        r.Symbol,
			Image:         r.Image,
			CurrentPrice:  toFloat(r.CurrentPrice),
			MarketCap:     toFloat(r.MarketCap),
			MarketCapRank: int(toFloat(r.MarketCapRank)),
			TotalVolume:   toFloat(r.TotalVolume),
			Change24h:     toFloat(r.Change24h),
			HasChange24h:  r.Change24h != nil,
		})
	}
	return entries, nil
}
