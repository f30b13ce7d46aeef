// Package model contains the upstream and derived record types shared
// across the service.
package model

// RawPlayer mirrors one element of the provider's bootstrap payload.
// Numeric-looking fields arrive as strings and are parsed downstream.
type RawPlayer struct {
	ID                 int    `json:"id"`
	FirstName          string `json:"first_name"`
	SecondName         string `json:"second_name"`
	WebName            string `json:"web_name"`
	Team               int    `json:"team"`
	ElementType        int    `json:"element_type"`
	NowCost            int    `json:"now_cost"`
	TotalPoints        int    `json:"total_points"`
	Form               string `json:"form"`
	PointsPerGame      string `json:"points_per_game"`
	Minutes            int    `json:"minutes"`
	SelectedByPercent  string `json:"selected_by_percent"`
	TransfersInEvent   int    `json:"transfers_in_event"`
	TransfersOutEvent  int    `json:"transfers_out_event"`
	TransfersIn        int    `json:"transfers_in"`
	TransfersOut       int    `json:"transfers_out"`
	Status             string `json:"status"`
	News               string `json:"news"`
	ChanceNext         *int   `json:"chance_of_playing_next_round"`
	CostChangeEvent    int    `json:"cost_change_event"`
	CostChangeStart    int    `json:"cost_change_start"`
	EPNext             string `json:"ep_next"`
}

// RawTeam is the provider's team lookup record.
type RawTeam struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

// RawPosition is the provider's position-type lookup record.
type RawPosition struct {
	ID                int    `json:"id"`
	SingularName      string `json:"singular_name"`
	SingularNameShort string `json:"singular_name_short"`
}

// RawEvent is a scheduling period (gameweek) in the provider's calendar.
type RawEvent struct {
	ID        int  `json:"id"`
	IsCurrent bool `json:"is_current"`
	IsNext    bool `json:"is_next"`
}

// Bootstrap is the provider's roster snapshot.
type Bootstrap struct {
	Elements     []RawPlayer   `json:"elements"`
	Teams        []RawTeam     `json:"teams"`
	ElementTypes []RawPosition `json:"element_types"`
	Events       []RawEvent    `json:"events"`
}

// Fixture is one scheduled match from the provider's fixture snapshot.
// Event is nil when the fixture has no scheduling period assigned yet.
type Fixture struct {
	ID              int    `json:"id"`
	Event           *int   `json:"event"`
	Finished        bool   `json:"finished"`
	TeamH           int    `json:"team_h"`
	TeamA           int    `json:"team_a"`
	TeamHDifficulty int    `json:"team_h_difficulty"`
	TeamADifficulty int    `json:"team_a_difficulty"`
	EventName       string `json:"event_name,omitempty"`
}

// FixtureSummary reduces an upcoming fixture to what the scorer and
// narrative generator need. Difficulty is the provider's 1-5 rating for
// the subject team's side of the fixture.
type FixtureSummary struct {
	Opponent   string `json:"opponent"`
	Difficulty int    `json:"difficulty"`
	IsHome     bool   `json:"isHome"`
}

// Player is the normalized, self-contained per-player record. Constructed
// fresh on every fetch and never mutated afterward.
type Player struct {
	ID                 int              `json:"id"`
	Name               string           `json:"name"`
	Team               string           `json:"team"`
	TeamShort          string           `json:"teamShort"`
	Position           string           `json:"position"`
	PositionShort      string           `json:"positionShort"`
	Price              float64          `json:"price"`
	TotalPoints        int              `json:"totalPoints"`
	Form               float64          `json:"form"`
	PointsPerGame      float64          `json:"pointsPerGame"`
	PointsPerMillion   float64          `json:"pointsPerMillion"`
	Minutes            int              `json:"minutes"`
	OwnershipPct       float64          `json:"ownershipPct"`
	NetTransfersEvent  int              `json:"netTransfersEvent"`
	PriceChangeEvent   int              `json:"priceChangeEvent"`
	PriceChangeStart   int              `json:"priceChangeStart"`
	ChanceNext         *int             `json:"chanceNext"`
	Status             string           `json:"status"`
	News               string           `json:"news"`
	EPNext             float64          `json:"epNext"`
	NextFixtures       []FixtureSummary `json:"next3Fixtures"`
	AvgNextDifficulty  float64          `json:"avgNext3Difficulty"`
	TransferValueScore float64          `json:"transferValueScore"`
}

// Snippet is one externally sourced text snippet attached to a pick.
type Snippet struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Provenance values for a pick analysis.
const (
	SourceManual   = "manual"
	SourceFallback = "fallback"
)

// PickAnalysis is one annotated top pick.
type PickAnalysis struct {
	PlayerID   int       `json:"playerId"`
	PlayerName string    `json:"playerName"`
	TeamShort  string    `json:"teamShort"`
	Price      float64   `json:"price"`
	PickScore  float64   `json:"pickScore"`
	WhyBuy     string    `json:"whyBuy"`
	News       []Snippet `json:"news"`
	Source     string    `json:"source"`
}

// PicksPayload is the top-picks response body. Cached is only emitted when
// the payload was served from the cache slot.
type PicksPayload struct {
	GeneratedAt string         `json:"generatedAt"`
	Analyses    []PickAnalysis `json:"analyses"`
	Cached      bool           `json:"cached,omitempty"`
}

// RosterSnapshot is the full normalized roster plus gameweek metadata.
type RosterSnapshot struct {
	Players         []Player `json:"players"`
	CurrentGameweek int      `json:"currentGameweek"`
	NextGameweek    int      `json:"nextGameweek"`
	LastUpdated     string   `json:"lastUpdated"`
}
