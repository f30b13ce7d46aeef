package narrative

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/scoutlab/fplscout/internal/domain/model"
)

//go:embed data/analysis.json
var curatedJSON []byte

// CuratedAnalysis is a manually written narrative plus pre-gathered
// snippets for one player. When present it takes precedence over the
// template generator entirely; its snippets are still re-filtered before
// serving.
type CuratedAnalysis struct {
	PlayerID int             `json:"playerId"`
	WhyBuy   string          `json:"whyBuy"`
	News     []model.Snippet `json:"news"`
}

type curatedFile struct {
	Analyses []CuratedAnalysis `json:"analyses"`
}

// CuratedSet is the read-only curated-override dataset keyed by player id.
type CuratedSet struct {
	byID map[int]CuratedAnalysis
}

// NewCuratedSet builds a set from explicit entries. Entries without a
// narrative are ignored, matching the lookup semantics of the dataset.
func NewCuratedSet(entries []CuratedAnalysis) *CuratedSet {
	byID := make(map[int]CuratedAnalysis, len(entries))
	for _, e := range entries {
		if e.WhyBuy == "" {
			continue
		}
		byID[e.PlayerID] = e
	}
	return &CuratedSet{byID: byID}
}

// LoadCurated parses the embedded curated dataset. Loaded once at startup.
func LoadCurated() (*CuratedSet, error) {
	var f curatedFile
	if err := json.Unmarshal(curatedJSON, &f); err != nil {
		return nil, fmt.Errorf("parse curated dataset: %w", err)
	}
	return NewCuratedSet(f.Analyses), nil
}

// Lookup returns the curated analysis for a player id, if any.
func (c *CuratedSet) Lookup(id int) (CuratedAnalysis, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// Size returns the number of curated entries.
func (c *CuratedSet) Size() int {
	return len(c.byID)
}
