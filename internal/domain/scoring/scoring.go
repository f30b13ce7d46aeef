// Package scoring computes the transfer-value ranking scalar and selects
// the top picks from a normalized roster.
package scoring

import (
	"math"
	"sort"

	"github.com/scoutlab/fplscout/internal/domain/model"
)

// Weights of the transfer-value formula.
const (
	formWeight       = 2.0
	difficultyWeight = 1.5
)

// TransferValue is the single ranking key: recent form weighted up, value
// per million added, upcoming difficulty weighted against.
func TransferValue(form, pointsPerMillion, avgNextDifficulty float64) float64 {
	return form*formWeight + pointsPerMillion - avgNextDifficulty*difficultyWeight
}

// TopN returns the n highest-scoring players, descending by transfer value.
// The sort is stable, so equal scores keep the normalizer's output order
// and results are reproducible for identical input. The input slice is not
// modified.
func TopN(players []model.Player, n int) []model.Player {
	ranked := make([]model.Player, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TransferValueScore > ranked[j].TransferValueScore
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// RoundScore rounds a transfer-value score to one decimal for display.
func RoundScore(score float64) float64 {
	return math.Round(score*10) / 10
}
