// Package fpl is the HTTP client for the upstream sports-data provider.
// The provider is treated as an opaque JSON source: two read-only
// snapshots, no auth, no retries.
package fpl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/scoutlab/fplscout/internal/domain/model"
	"github.com/scoutlab/fplscout/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Provider defaults.
const (
	defaultBaseURL   = "https://fantasy.premierleague.com/api"
	defaultUserAgent = "fplscout/1.0"
	defaultTimeout   = 20 * time.Second
)

// Client fetches roster and fixture snapshots from the provider.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithBaseURL overrides the provider base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithTimeout bounds each outbound call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header sent to the provider.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// NewClient constructs a provider client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: defaultTimeout},
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Bootstrap fetches the roster snapshot: players, teams, position types
// and the gameweek calendar.
func (c *Client) Bootstrap(ctx context.Context) (*model.Bootstrap, error) {
	var out model.Bootstrap
	if err := c.getJSON(ctx, "/bootstrap-static/", "bootstrap", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Fixtures fetches the full fixture snapshot for the season.
func (c *Client) Fixtures(ctx context.Context) ([]model.Fixture, error) {
	var out []model.Fixture
	if err := c.getJSON(ctx, "/fixtures/", "fixtures", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(endpoint, "error")
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	metrics.RecordUpstreamRequest(endpoint, strconv.Itoa(resp.StatusCode))
	metrics.RecordUpstreamLatency(endpoint, float64(time.Since(start).Milliseconds()))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("GET %s: %w: %d", path, ErrUpstreamStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
