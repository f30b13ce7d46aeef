// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults, Load(ctx) to layer
//   file and environment on top.
// - External errors are wrapped via this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9090".
	Addr string `koanf:"addr"`

	// FPLBaseURL is the sports-data provider base URL.
	FPLBaseURL string `koanf:"fpl_base_url"`

	// SearchBaseURL is the keyword-search backend base URL.
	SearchBaseURL string `koanf:"search_base_url"`

	// UserAgent is sent on outbound provider requests.
	UserAgent string `koanf:"user_agent"`

	// HTTPTimeoutSeconds bounds each outbound HTTP call.
	HTTPTimeoutSeconds int `koanf:"http_timeout_seconds"`

	// CacheTTLHours controls how long a generated analysis payload is reused.
	CacheTTLHours int `koanf:"cache_ttl_hours"`

	// TopN is the number of top picks analyzed per payload.
	TopN int `koanf:"top_n"`

	// Lookahead is the number of upcoming fixtures summarized per team.
	Lookahead int `koanf:"lookahead"`

	// MaxSnippets caps filtered news snippets kept per pick.
	MaxSnippets int `koanf:"max_snippets"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":9090",
		FPLBaseURL:         "https://fantasy.premierleague.com/api",
		SearchBaseURL:      "http://localhost:8080",
		UserAgent:          "fplscout/1.0",
		HTTPTimeoutSeconds: 20,
		CacheTTLHours:      12,
		TopN:               5,
		Lookahead:          3,
		MaxSnippets:        3,
	}
}
