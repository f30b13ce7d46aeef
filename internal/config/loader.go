package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if FPLSCOUT_CONFIG is set
//  3. env (prefix FPLSCOUT_)
//
// SEARXNG_URL is honored as a compatibility alias for search_base_url.
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("FPLSCOUT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: FPLSCOUT_ADDR, FPLSCOUT_SEARCH_BASE_URL, ...
	// Keys map FPLSCOUT_SEARCH_BASE_URL -> search_base_url; underscores are
	// preserved to match the koanf tags on the struct.
	envProvider := env.Provider("FPLSCOUT_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "fplscout_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Legacy env name from the original deployment.
	if v := os.Getenv("SEARXNG_URL"); v != "" && !k.Exists("search_base_url") {
		cfg.SearchBaseURL = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.FPLBaseURL == "":
		return fmt.Errorf("%w: fpl_base_url must not be empty", ErrInvalidConfig)
	case c.SearchBaseURL == "":
		return fmt.Errorf("%w: search_base_url must not be empty", ErrInvalidConfig)
	case c.HTTPTimeoutSeconds <= 0:
		return fmt.Errorf("%w: http_timeout_seconds must be positive", ErrInvalidConfig)
	case c.CacheTTLHours <= 0:
		return fmt.Errorf("%w: cache_ttl_hours must be positive", ErrInvalidConfig)
	case c.TopN <= 0:
		return fmt.Errorf("%w: top_n must be positive", ErrInvalidConfig)
	case c.Lookahead <= 0:
		return fmt.Errorf("%w: lookahead must be positive", ErrInvalidConfig)
	case c.MaxSnippets < 0:
		return fmt.Errorf("%w: max_snippets must not be negative", ErrInvalidConfig)
	}
	return nil
}
