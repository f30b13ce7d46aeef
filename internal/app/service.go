// Package service orchestrates the analysis pipeline behind the HTTP API:
// fetch, normalize, rank, enrich, cache.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/scoutlab/fplscout/internal/adapters/cache"
	"github.com/scoutlab/fplscout/internal/adapters/fpl"
	"github.com/scoutlab/fplscout/internal/adapters/search"
	"github.com/scoutlab/fplscout/internal/domain/model"
	"github.com/scoutlab/fplscout/internal/domain/narrative"
	"github.com/scoutlab/fplscout/internal/domain/normalize"
	"github.com/scoutlab/fplscout/internal/domain/safety"
	"github.com/scoutlab/fplscout/internal/domain/scoring"
	"github.com/scoutlab/fplscout/pkg/logger"
	"github.com/scoutlab/fplscout/pkg/metrics"
)

// DataProvider is the upstream sports-data source.
type DataProvider interface {
	Bootstrap(ctx context.Context) (*model.Bootstrap, error)
	Fixtures(ctx context.Context) ([]model.Fixture, error)
}

// Searcher is the keyword-search backend used for pick enrichment.
type Searcher interface {
	Search(ctx context.Context, query string) ([]model.Snippet, error)
}

// Service implements the API dependencies for the transfer-scout system.
type Service struct {
	mu sync.RWMutex

	// Core components
	provider   DataProvider
	searcher   Searcher
	payloads   cache.Store
	curated    *narrative.CuratedSet
	filter     *safety.Filter
	normalizer *normalize.Normalizer

	// Configuration
	topN        int
	lookahead   int
	maxSnippets int
	cacheTTL    time.Duration
	now         func() time.Time

	// State
	started bool

	// Stats
	rosterRequests  int64
	picksGenerated  int64
	cacheHits       int64
	cacheMisses     int64
	lastPlayerCount int

	logger logger.Logger
}

// New constructs a Service with default configuration. Components not
// supplied via options are built in Start.
func New(opts ...Option) *Service {
	s := &Service{
		topN:        5,
		lookahead:   3,
		maxSnippets: 3,
		cacheTTL:    12 * time.Hour,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes any components not injected via options and loads the
// curated dataset.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.provider == nil {
		s.provider = fpl.NewClient()
	}
	if s.searcher == nil {
		s.searcher = search.NewClient()
	}
	if s.payloads == nil {
		s.payloads = cache.New(cache.WithTTL(s.cacheTTL), cache.WithNowFunc(s.now))
	}
	if s.filter == nil {
		s.filter = safety.New()
	}
	if s.curated == nil {
		curated, err := narrative.LoadCurated()
		if err != nil {
			return fmt.Errorf("load curated analyses: %w", err)
		}
		s.curated = curated
	}
	s.normalizer = normalize.New(normalize.WithLookahead(s.lookahead))

	s.started = true
	s.logger.Info(ctx, "transfer-scout service started",
		logger.Int("topN", s.topN),
		logger.Int("lookahead", s.lookahead),
		logger.Duration("cacheTTL", s.cacheTTL),
		logger.Int("curatedEntries", s.curated.Size()),
	)
	return nil
}

// Stop releases the service. Nothing is persisted, so this only flips state.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
}

// Roster fetches and normalizes the full roster plus gameweek metadata.
func (s *Service) Roster(ctx context.Context) (model.RosterSnapshot, error) {
	players, current, next, err := s.fetchNormalized(ctx)
	if err != nil {
		return model.RosterSnapshot{}, err
	}

	s.mu.Lock()
	s.rosterRequests++
	s.mu.Unlock()

	return model.RosterSnapshot{
		Players:         players,
		CurrentGameweek: current,
		NextGameweek:    next,
		LastUpdated:     s.now().UTC().Format(time.RFC3339),
	}, nil
}

// TopPicks returns the annotated top picks, served from the cache slot
// while fresh. A failed regeneration never overwrites the slot.
func (s *Service) TopPicks(ctx context.Context) (model.PicksPayload, error) {
	if payload, ok := s.payloads.Get(); ok {
		metrics.RecordCacheHit()
		s.mu.Lock()
		s.cacheHits++
		s.mu.Unlock()
		payload.Cached = true
		return payload, nil
	}
	metrics.RecordCacheMiss()
	s.mu.Lock()
	s.cacheMisses++
	s.mu.Unlock()

	start := time.Now()
	players, _, _, err := s.fetchNormalized(ctx)
	if err != nil {
		return model.PicksPayload{}, err
	}

	top := scoring.TopN(players, s.topN)

	// Fan out per-pick enrichment and join. Each task is isolated: a
	// failed search call degrades that one pick to template-only output.
	analyses := make([]model.PickAnalysis, len(top))
	var wg sync.WaitGroup
	for i, p := range top {
		wg.Add(1)
		go func(i int, p model.Player) {
			defer wg.Done()
			analyses[i] = s.analyzeOne(ctx, p)
		}(i, p)
	}
	wg.Wait()

	payload := model.PicksPayload{
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
		Analyses:    analyses,
	}
	s.payloads.Put(payload)

	metrics.RecordPicksGenerated()
	metrics.RecordPipelineDuration(float64(time.Since(start).Milliseconds()))
	s.mu.Lock()
	s.picksGenerated++
	s.mu.Unlock()

	return payload, nil
}

// analyzeOne produces the analysis for a single top pick. A curated
// override takes precedence entirely; otherwise the narrative is generated
// and snippets come from a live search.
func (s *Service) analyzeOne(ctx context.Context, p model.Player) model.PickAnalysis {
	subject := safety.Subject{PlayerName: p.Name, TeamName: p.Team, TeamShort: p.TeamShort}
	out := model.PickAnalysis{
		PlayerID:   p.ID,
		PlayerName: p.Name,
		TeamShort:  p.TeamShort,
		Price:      p.Price,
		PickScore:  scoring.RoundScore(p.TransferValueScore),
		News:       []model.Snippet{},
	}

	if curated, ok := s.curated.Lookup(p.ID); ok {
		out.WhyBuy = curated.WhyBuy
		out.News = s.filterSnippets(curated.News, subject)
		out.Source = model.SourceManual
		return out
	}

	query := fmt.Sprintf("%s EPL injury form news", p.Name)
	raw, err := s.searcher.Search(ctx, query)
	if err != nil {
		metrics.RecordSearchError()
		s.logger.Warn(ctx, "search failed; serving pick without snippets",
			logger.String("player", p.Name), logger.Error(err))
	} else {
		out.News = s.filterSnippets(raw, subject)
	}

	out.WhyBuy = narrative.WhyBuy(p)
	out.Source = model.SourceFallback
	return out
}

// filterSnippets applies the safety filter and caps the kept list.
func (s *Service) filterSnippets(raw []model.Snippet, subject safety.Subject) []model.Snippet {
	kept := make([]model.Snippet, 0, s.maxSnippets)
	for _, snip := range raw {
		if !s.filter.Safe(snip, subject) {
			metrics.RecordSnippetRejected()
			continue
		}
		metrics.RecordSnippetAccepted()
		if len(kept) < s.maxSnippets {
			kept = append(kept, snip)
		}
	}
	return kept
}

// fetchNormalized pulls both provider snapshots and runs the normalizer.
func (s *Service) fetchNormalized(ctx context.Context) ([]model.Player, int, int, error) {
	bootstrap, err := s.provider.Bootstrap(ctx)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("fetch roster snapshot: %w", err)
	}
	fixtures, err := s.provider.Fixtures(ctx)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("fetch fixture snapshot: %w", err)
	}

	current, next := normalize.ResolveGameweeks(bootstrap.Events)
	players := s.normalizer.Normalize(bootstrap, fixtures, next)

	metrics.UpdatePlayersNormalized(len(players))
	s.mu.Lock()
	s.lastPlayerCount = len(players)
	s.mu.Unlock()

	return players, current, next, nil
}

// GetStats returns a snapshot of service counters for /stats.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	curatedEntries := 0
	if s.curated != nil {
		curatedEntries = s.curated.Size()
	}
	return map[string]interface{}{
		"started":         s.started,
		"rosterRequests":  s.rosterRequests,
		"picksGenerated":  s.picksGenerated,
		"cacheHits":       s.cacheHits,
		"cacheMisses":     s.cacheMisses,
		"playersTracked":  s.lastPlayerCount,
		"curatedEntries":  curatedEntries,
		"topN":            s.topN,
		"lookahead":       s.lookahead,
		"cacheTTLSeconds": int(s.cacheTTL.Seconds()),
	}
}
