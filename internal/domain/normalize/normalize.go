// Package normalize converts raw provider records into flat, self-contained
// per-player records with precomputed derived fields.
package normalize

import (
	"strconv"

	"github.com/scoutlab/fplscout/internal/domain/model"
	"github.com/scoutlab/fplscout/internal/domain/scoring"
)

// Fallback display values for unresolvable lookups.
const (
	fallbackName  = "Unknown"
	fallbackShort = "UNK"
)

// neutralDifficulty is the midpoint of the 1-5 difficulty scale, used when
// a team has no qualifying upcoming fixtures. The scoring formula depends
// on this exact default.
const neutralDifficulty = 3

// Normalizer derives normalized players from raw provider collections.
type Normalizer struct {
	lookahead int
}

// Option applies a configuration option to the Normalizer.
type Option func(*Normalizer)

// WithLookahead sets how many upcoming fixtures are summarized per team.
func WithLookahead(n int) Option {
	return func(nm *Normalizer) {
		if n > 0 {
			nm.lookahead = n
		}
	}
}

// New constructs a Normalizer. The default lookahead is 3 fixtures.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{lookahead: 3}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// ResolveGameweeks returns the current and next scheduling periods from the
// provider's calendar: current is the period flagged current, else the one
// flagged next, else 1; next is the period flagged next, else current+1.
func ResolveGameweeks(events []model.RawEvent) (current, next int) {
	for _, e := range events {
		if e.IsCurrent {
			current = e.ID
			break
		}
	}
	for _, e := range events {
		if e.IsNext {
			next = e.ID
			break
		}
	}
	if current == 0 {
		current = next
	}
	if current == 0 {
		current = 1
	}
	if next == 0 {
		next = current + 1
	}
	return current, next
}

// Normalize produces exactly one Player per raw player with nonzero
// accumulated minutes; players without recorded play time are excluded.
// Output order follows the provider's element order, which keeps ranking
// tie-breaks reproducible for identical input.
func (n *Normalizer) Normalize(bootstrap *model.Bootstrap, fixtures []model.Fixture, nextEvent int) []model.Player {
	teams := make(map[int]model.RawTeam, len(bootstrap.Teams))
	for _, t := range bootstrap.Teams {
		teams[t.ID] = t
	}
	positions := make(map[int]model.RawPosition, len(bootstrap.ElementTypes))
	for _, p := range bootstrap.ElementTypes {
		positions[p.ID] = p
	}

	players := make([]model.Player, 0, len(bootstrap.Elements))
	for _, raw := range bootstrap.Elements {
		if raw.Minutes <= 0 {
			continue
		}

		price := float64(raw.NowCost) / 10
		form := parseDecimal(raw.Form)
		ppg := parseDecimal(raw.PointsPerGame)
		ppm := 0.0
		if price > 0 {
			ppm = ppg / price
		}

		next := NextFixtures(raw.Team, fixtures, nextEvent, teams, n.lookahead)
		avgDifficulty := float64(neutralDifficulty)
		if len(next) > 0 {
			sum := 0
			for _, f := range next {
				sum += f.Difficulty
			}
			avgDifficulty = float64(sum) / float64(len(next))
		}

		p := model.Player{
			ID:                raw.ID,
			Name:              raw.WebName,
			Team:              fallbackName,
			TeamShort:         fallbackShort,
			Position:          fallbackName,
			PositionShort:     fallbackShort,
			Price:             price,
			TotalPoints:       raw.TotalPoints,
			Form:              form,
			PointsPerGame:     ppg,
			PointsPerMillion:  ppm,
			Minutes:           raw.Minutes,
			OwnershipPct:      parseDecimal(raw.SelectedByPercent),
			NetTransfersEvent: raw.TransfersInEvent - raw.TransfersOutEvent,
			PriceChangeEvent:  raw.CostChangeEvent,
			PriceChangeStart:  raw.CostChangeStart,
			ChanceNext:        raw.ChanceNext,
			Status:            raw.Status,
			News:              raw.News,
			EPNext:            parseDecimal(raw.EPNext),
			NextFixtures:      next,
			AvgNextDifficulty: avgDifficulty,
		}
		if t, ok := teams[raw.Team]; ok {
			p.Team = t.Name
			p.TeamShort = t.ShortName
		}
		if pos, ok := positions[raw.ElementType]; ok {
			p.Position = pos.SingularName
			p.PositionShort = pos.SingularNameShort
		}
		p.TransferValueScore = scoring.TransferValue(p.Form, p.PointsPerMillion, p.AvgNextDifficulty)

		players = append(players, p)
	}
	return players
}

// parseDecimal parses the provider's string-encoded numerics, defaulting
// to 0 on any parse failure.
func parseDecimal(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
