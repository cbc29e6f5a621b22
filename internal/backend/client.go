// Package backend is the REST client for the dashboard's own API: auth,
// portfolio, transactions, and profile. It is the single seam where loosely
// typed payloads are parsed into the strongly typed entities of
// internal/model.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ericwalterlaw/cryptish/internal/session"
)

// ErrUnauthenticated is returned when an authenticated endpoint is called
// without a bearer token.
var ErrUnauthenticated = errors.New("backend: no authenticated session")

// Client talks to the dashboard backend API.
type Client struct {
	BaseURL string
	Client  *http.Client
}

// NewClient creates a backend client with optional proxy support.
func NewClient(baseURL, proxyURL string) *Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &Client{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// do issues one request and returns the response body. A bearer token is
// attached when sess is authenticated; non-2xx statuses become errors so
// read paths can degrade to empty data.
func (c *Client) do(ctx context.Context, method, path string, sess session.Session, payload interface{}) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess.IsAuthenticated() {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, apiMessage(data))
	}
	return data, nil
}

// apiMessage extracts the backend's error message field, falling back to the
// raw body.
func apiMessage(body []byte) string {
	var m struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &m); err == nil && m.Message != "" {
		return m.Message
	}
	return string(body)
}

// toFloat coerces a loosely typed JSON numeric; absent or non-numeric
// values become 0 so a single malformed record never aborts a collection.
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
