package normalize

import (
	"sort"

	"github.com/scoutlab/fplscout/internal/domain/model"
)

// missingEventSentinel sorts fixtures without an assigned scheduling period
// after every scheduled one.
const missingEventSentinel = 999

// fallbackOpponent is shown when the opponent team cannot be resolved.
const fallbackOpponent = "TBD"

// NextFixtures selects the team's next n unplayed fixtures from nextEvent
// onward, nearest first, and reduces them to opponent/difficulty/home
// tuples. The returned order is significant: downstream display and
// home-count logic rely on nearest-first.
func NextFixtures(teamID int, fixtures []model.Fixture, nextEvent int, teams map[int]model.RawTeam, n int) []model.FixtureSummary {
	upcoming := make([]model.Fixture, 0, n)
	for _, f := range fixtures {
		if f.Finished {
			continue
		}
		if eventOrSentinel(f) < nextEvent {
			continue
		}
		if f.TeamH != teamID && f.TeamA != teamID {
			continue
		}
		upcoming = append(upcoming, f)
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return eventOrSentinel(upcoming[i]) < eventOrSentinel(upcoming[j])
	})
	if len(upcoming) > n {
		upcoming = upcoming[:n]
	}

	summaries := make([]model.FixtureSummary, 0, len(upcoming))
	for _, f := range upcoming {
		isHome := f.TeamH == teamID
		opponentID := f.TeamH
		difficulty := f.TeamADifficulty
		if isHome {
			opponentID = f.TeamA
			difficulty = f.TeamHDifficulty
		}
		opponent := fallbackOpponent
		if t, ok := teams[opponentID]; ok && t.ShortName != "" {
			opponent = t.ShortName
		}
		summaries = append(summaries, model.FixtureSummary{
			Opponent:   opponent,
			Difficulty: difficulty,
			IsHome:     isHome,
		})
	}
	return summaries
}

func eventOrSentinel(f model.Fixture) int {
	if f.Event == nil {
		return missingEventSentinel
	}
	return *f.Event
}
