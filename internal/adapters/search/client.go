// Package search is the client for the keyword-search backend (a
// SearXNG-compatible JSON API). It returns raw results; safety filtering
// and capping happen in the caller.
package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/scoutlab/fplscout/internal/domain/model"
	"github.com/scoutlab/fplscout/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Backend defaults.
const (
	defaultBaseURL = "http://localhost:8080"
	defaultTimeout = 20 * time.Second
)

// Client queries the search backend for recent news about a player.
type Client struct {
	http    *http.Client
	baseURL string
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithBaseURL overrides the search backend base URL.
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

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// NewClient constructs a search client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: defaultTimeout},
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchResponse mirrors the backend's result envelope. Result bodies
// arrive as either "content" or "snippet" depending on engine.
type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
	Snippet string `json:"snippet"`
}

// Search issues one keyword query with a one-day recency window and
// English-language results, returning unfiltered snippets.
func (c *Client) Search(ctx context.Context, query string) ([]model.Snippet, error) {
	u, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("build search URL: %w", err)
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("time_range", "day")
	q.Set("language", "en")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	metrics.RecordSearchRequest()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("search %q: %w: %d", query, ErrSearchStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}
	var decoded searchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	snippets := make([]model.Snippet, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		text := r.Content
		if text == "" {
			text = r.Snippet
		}
		snippets = append(snippets, model.Snippet{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: text,
		})
	}
	return snippets, nil
}
