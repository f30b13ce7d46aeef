package service

import (
	"time"

	"github.com/scoutlab/fplscout/internal/adapters/cache"
	"github.com/scoutlab/fplscout/internal/domain/narrative"
	"github.com/scoutlab/fplscout/internal/domain/safety"
	"github.com/scoutlab/fplscout/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithProvider injects the upstream sports-data client.
func WithProvider(p DataProvider) Option {
	return func(s *Service) {
		if p != nil {
			s.provider = p
		}
	}
}

// WithSearcher injects the keyword-search client.
func WithSearcher(sr Searcher) Option {
	return func(s *Service) {
		if sr != nil {
			s.searcher = sr
		}
	}
}

// WithPayloadCache injects the payload cache slot.
func WithPayloadCache(c cache.Store) Option {
	return func(s *Service) {
		if c != nil {
			s.payloads = c
		}
	}
}

// WithCuratedSet injects the curated-override dataset, bypassing the
// embedded one.
func WithCuratedSet(c *narrative.CuratedSet) Option {
	return func(s *Service) {
		if c != nil {
			s.curated = c
		}
	}
}

// WithFilter injects the snippet safety filter.
func WithFilter(f *safety.Filter) Option {
	return func(s *Service) {
		if f != nil {
			s.filter = f
		}
	}
}

// WithTopN sets how many top picks are analyzed per payload.
func WithTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topN = n
		}
	}
}

// WithLookahead sets fixtures summarized per team.
func WithLookahead(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.lookahead = n
		}
	}
}

// WithMaxSnippets caps filtered snippets kept per pick.
func WithMaxSnippets(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxSnippets = n
		}
	}
}

// WithCacheTTL sets the payload cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithNowFunc injects the clock used for timestamps and cache expiry.
func WithNowFunc(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
