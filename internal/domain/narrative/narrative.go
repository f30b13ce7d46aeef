// Package narrative turns a scored player into a short human-readable
// buy justification. Generation is deterministic: phrasing variants are
// chosen by player id, never by a random source, so repeated generation
// for the same player is byte-identical.
package narrative

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/scoutlab/fplscout/internal/domain/model"
)

// Fixture difficulty cutoffs on the provider's 1-5 scale.
const (
	easyDifficulty = 2
	hardDifficulty = 4
)

// Threshold ladder constants.
const (
	inFormForm          = 7.0
	inFormPPG           = 5.0
	differentialOwnPct  = 10.0
	differentialMinutes = 600
	projectionEP        = 5.0
	budgetPrice         = 5.0
	premiumPrice        = 10.0
	firstChoiceMinutes  = 900
	rotationMinutes     = 450
	availabilityChance  = 75
	statusAvailable     = "a"
	strongValuePPM      = 0.7
	widelyOwnedPct      = 20.0
	popularPct          = 10.0
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// WhyBuy produces the justification string for a top pick. Total: every
// input yields a non-empty string and there is no external call.
func WhyBuy(p model.Player) string {
	easyCount, toughCount, homeCount := 0, 0, 0
	for _, f := range p.NextFixtures {
		if f.Difficulty <= easyDifficulty {
			easyCount++
		}
		if f.Difficulty >= hardDifficulty {
			toughCount++
		}
		if f.IsHome {
			homeCount++
		}
	}

	pool := openerPool(p, easyCount, toughCount, homeCount)
	opener := strings.NewReplacer(
		"{name}", p.Name,
		"{home}", strconv.Itoa(homeCount),
		"{ppg}", fixed1(p.PointsPerGame),
		"{form}", fixed1(p.Form),
	).Replace(pool[p.ID%len(pool)])

	sentences := []string{
		opener,
		fmt.Sprintf("Fixtures show %s (%d home in the next 3).", fixtureRun(easyCount, toughCount), homeCount),
		minutesNote(p.Minutes),
		availabilityNote(p),
		valueNote(p),
		ceilingNote(p),
		strings.TrimSpace(ownershipNote(p) + " " + transferNote(p) + " " + priceNote(p)),
		verdict(p, easyCount, toughCount),
	}

	out := strings.Join(sentences, " ")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(out, " "))
}

// openerPool classifies the player into exactly one archetype bucket.
// The conditions are ordered and first-match-wins; several thresholds
// overlap on purpose, so the order is behavior and must not be rearranged.
func openerPool(p model.Player, easyCount, toughCount, homeCount int) []string {
	switch {
	case easyCount >= 2 && homeCount >= 2:
		return fixtureHook
	case p.Form >= inFormForm && p.PointsPerGame >= inFormPPG:
		return formHook
	case p.OwnershipPct < differentialOwnPct && p.Minutes >= differentialMinutes:
		return differentialHook
	case p.EPNext >= projectionEP:
		return projectionHook
	case p.Price <= budgetPrice:
		return budgetHook
	case p.Price >= premiumPrice:
		return premiumHook
	case toughCount >= 2:
		return braveHook
	default:
		return formHook
	}
}

func fixtureRun(easyCount, toughCount int) string {
	switch {
	case easyCount >= 2:
		return "a strong short‑term run"
	case toughCount >= 2:
		return "a tough short‑term run"
	default:
		return "a mixed short‑term run"
	}
}

func minutesNote(minutes int) string {
	switch {
	case minutes >= firstChoiceMinutes:
		return "Minutes suggest he’s first‑choice."
	case minutes >= rotationMinutes:
		return "Minutes are decent but not nailed."
	default:
		return "Minutes are low — rotation risk."
	}
}

func availabilityNote(p model.Player) string {
	if p.ChanceNext != nil && *p.ChanceNext < availabilityChance {
		return fmt.Sprintf("Availability risk (%d%% chance of playing).", *p.ChanceNext)
	}
	if p.Status != statusAvailable {
		return "Availability risk flagged."
	}
	return ""
}

func valueNote(p model.Player) string {
	if p.PointsPerMillion >= strongValuePPM {
		return fmt.Sprintf("Value looks strong at £%sm (%s PPM).", fixed1(p.Price), fixed2(p.PointsPerMillion))
	}
	return fmt.Sprintf("Premium price tag at £%sm — needs returns to justify it.", fixed1(p.Price))
}

func ceilingNote(p model.Player) string {
	if p.EPNext >= projectionEP {
		return "Expected points look healthy for a haul."
	}
	return "Ceiling leans on current form rather than fixtures."
}

func ownershipNote(p model.Player) string {
	switch {
	case p.OwnershipPct >= widelyOwnedPct:
		return fmt.Sprintf("He’s widely owned (%s%%), so you’re mostly protecting rank.", fixed1(p.OwnershipPct))
	case p.OwnershipPct >= popularPct:
		return fmt.Sprintf("He’s getting popular (%s%%) — you’re not alone.", fixed1(p.OwnershipPct))
	default:
		return fmt.Sprintf("He’s a differential at %s%% — upside if he hits.", fixed1(p.OwnershipPct))
	}
}

func transferNote(p model.Player) string {
	switch {
	case p.NetTransfersEvent > 0:
		return fmt.Sprintf("Market momentum is with him (%s net in).", humanize.Comma(int64(p.NetTransfersEvent)))
	case p.NetTransfersEvent < 0:
		return fmt.Sprintf("Market momentum is cooling (%s net out).", humanize.Comma(int64(-p.NetTransfersEvent)))
	default:
		return "Market momentum is flat this week."
	}
}

func priceNote(p model.Player) string {
	switch {
	case p.PriceChangeEvent > 0:
		return fmt.Sprintf("Price just rose £%sm.", fixed1(float64(p.PriceChangeEvent)/10))
	case p.PriceChangeEvent < 0:
		return fmt.Sprintf("Price just dipped £%sm.", fixed1(float64(-p.PriceChangeEvent)/10))
	default:
		return ""
	}
}

func verdict(p model.Player, easyCount, toughCount int) string {
	switch {
	case easyCount >= 2 && p.Minutes >= rotationMinutes:
		return "Verdict: buy now and ride the short‑term run."
	case toughCount >= 2:
		return "Verdict: buy only if you need his role — fixtures are a headwind."
	default:
		return "Verdict: viable buy if the role fits your squad build."
	}
}

func fixed1(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }
func fixed2(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
