package narrative_test

import (
	"strings"
	"testing"

	"github.com/scoutlab/fplscout/internal/domain/model"
	"github.com/scoutlab/fplscout/internal/domain/narrative"
	. "github.com/smartystreets/goconvey/convey"
)

func intPtr(v int) *int { return &v }

func basePlayer() model.Player {
	return model.Player{
		ID:            3,
		Name:          "Saka",
		Team:          "Arsenal",
		TeamShort:     "ARS",
		Price:         8.5,
		Form:          5.0,
		PointsPerGame: 4.0,
		Minutes:       900,
		OwnershipPct:  15.0,
		Status:        "a",
		NextFixtures: []model.FixtureSummary{
			{Opponent: "EVE", Difficulty: 3, IsHome: true},
			{Opponent: "BOU", Difficulty: 3, IsHome: false},
			{Opponent: "LIV", Difficulty: 3, IsHome: false},
		},
		AvgNextDifficulty: 3,
	}
}

func TestWhyBuyDeterminism(t *testing.T) {
	Convey("Given an identical player record", t, func() {
		p := basePlayer()

		Convey("Then two invocations produce byte-identical output", func() {
			So(narrative.WhyBuy(p), ShouldEqual, narrative.WhyBuy(p))
		})

		Convey("And the output is a non-empty single-spaced string", func() {
			out := narrative.WhyBuy(p)
			So(out, ShouldNotBeEmpty)
			So(strings.Contains(out, "  "), ShouldBeFalse)
			So(out, ShouldEqual, strings.TrimSpace(out))
		})
	})
}

func TestWhyBuyArchetypes(t *testing.T) {
	Convey("Given the ordered archetype classification", t, func() {
		Convey("Two easy fixtures and two home dates pick the fixture opener", func() {
			p := basePlayer()
			p.Form = 9.0 // would also qualify as in-form; fixture wins
			p.PointsPerGame = 6.0
			p.NextFixtures = []model.FixtureSummary{
				{Opponent: "EVE", Difficulty: 2, IsHome: true},
				{Opponent: "BOU", Difficulty: 2, IsHome: true},
				{Opponent: "LIV", Difficulty: 4, IsHome: false},
			}
			out := narrative.WhyBuy(p)
			So(out, ShouldContainSubstring, "fixture‑driven buy")
		})

		Convey("Hot form with neutral fixtures picks the form opener", func() {
			p := basePlayer()
			p.ID = 3 // index 0 of the pool
			p.Form = 7.5
			p.PointsPerGame = 5.5
			out := narrative.WhyBuy(p)
			So(out, ShouldContainSubstring, "is in real form")
		})

		Convey("Low ownership with secure minutes picks the differential opener", func() {
			p := basePlayer()
			p.OwnershipPct = 4.0
			p.Minutes = 700
			out := narrative.WhyBuy(p)
			So(out, ShouldContainSubstring, "classic differential")
		})

		Convey("A strong projection picks the expected-points opener", func() {
			p := basePlayer()
			p.OwnershipPct = 30.0
			p.EPNext = 6.0
			out := narrative.WhyBuy(p)
			So(out, ShouldContainSubstring, "projected well for the next GW")
		})

		Convey("A cheap price picks the budget opener", func() {
			p := basePlayer()
			p.OwnershipPct = 30.0
			p.Price = 4.4
			out := narrative.WhyBuy(p)
			So(out, ShouldContainSubstring, "budget enabler")
		})

		Convey("A big price tag picks the premium opener", func() {
			p := basePlayer()
			p.OwnershipPct = 30.0
			p.Price = 12.5
			out := narrative.WhyBuy(p)
			So(out, ShouldContainSubstring, "premium you buy")
		})

		Convey("Two hard fixtures pick the brave opener", func() {
			p := basePlayer()
			p.OwnershipPct = 30.0
			p.NextFixtures = []model.FixtureSummary{
				{Opponent: "MCI", Difficulty: 5, IsHome: false},
				{Opponent: "LIV", Difficulty: 4, IsHome: true},
				{Opponent: "EVE", Difficulty: 3, IsHome: true},
			}
			out := narrative.WhyBuy(p)
			So(out, ShouldContainSubstring, "brave buy")
		})

		Convey("Nothing matching falls back to the form opener", func() {
			p := basePlayer() // mid form, mid price, mid ownership, neutral run
			out := narrative.WhyBuy(p)
			So(out, ShouldContainSubstring, "is in real form")
		})
	})
}

func TestWhyBuyNotes(t *testing.T) {
	Convey("Given the note ladders", t, func() {
		Convey("An availability percentage below 75 is called out", func() {
			p := basePlayer()
			p.ChanceNext = intPtr(50)
			out := narrative.WhyBuy(p)
			So(out, ShouldContainSubstring, "Availability risk (50% chance of playing).")
		})

		Convey("A non-available status without a percentage is flagged", func() {
			p := basePlayer()
			p.Status = "d"
			out := narrative.WhyBuy(p)
			So(out, ShouldContainSubstring, "Availability risk flagged.")
		})

		Convey("A fully available player gets no availability note", func() {
			out := narrative.WhyBuy(basePlayer())
			So(out, ShouldNotContainSubstring, "Availability risk")
		})

		Convey("Strong value is framed by points per million", func() {
			p := basePlayer()
			p.PointsPerMillion = 0.8
			out := narrative.WhyBuy(p)
			So(out, ShouldContainSubstring, "Value looks strong at £8.5m (0.80 PPM).")
		})

		Convey("Net transfers in are humanized", func() {
			p := basePlayer()
			p.NetTransfersEvent = 12345
			out := narrative.WhyBuy(p)
			So(out, ShouldContainSubstring, "12,345 net in")
		})

		Convey("A price dip produces a note with sign folded in", func() {
			p := basePlayer()
			p.PriceChangeEvent = -2
			out := narrative.WhyBuy(p)
			So(out, ShouldContainSubstring, "Price just dipped £0.2m.")
		})

		Convey("An easy run with minutes produces the buy-now verdict", func() {
			p := basePlayer()
			p.NextFixtures = []model.FixtureSummary{
				{Opponent: "EVE", Difficulty: 2, IsHome: false},
				{Opponent: "BOU", Difficulty: 1, IsHome: false},
				{Opponent: "LIV", Difficulty: 4, IsHome: true},
			}
			out := narrative.WhyBuy(p)
			So(out, ShouldContainSubstring, "Verdict: buy now and ride the short‑term run.")
		})

		Convey("A hard run produces the conditional verdict", func() {
			p := basePlayer()
			p.NextFixtures = []model.FixtureSummary{
				{Opponent: "MCI", Difficulty: 5, IsHome: false},
				{Opponent: "LIV", Difficulty: 5, IsHome: false},
				{Opponent: "EVE", Difficulty: 3, IsHome: true},
			}
			out := narrative.WhyBuy(p)
			So(out, ShouldContainSubstring, "Verdict: buy only if you need his role")
		})

		Convey("Everything else produces the role-dependent verdict", func() {
			out := narrative.WhyBuy(basePlayer())
			So(out, ShouldContainSubstring, "Verdict: viable buy if the role fits your squad build.")
		})
	})
}

func TestCuratedSet(t *testing.T) {
	Convey("Given explicit curated entries", t, func() {
		set := narrative.NewCuratedSet([]narrative.CuratedAnalysis{
			{PlayerID: 100, WhyBuy: "Hand-written case for this pick.", News: []model.Snippet{{Title: "t", URL: "https://www.bbc.com/x", Snippet: "s"}}},
			{PlayerID: 101}, // no narrative; ignored
		})

		Convey("Lookup returns only entries with a narrative", func() {
			a, ok := set.Lookup(100)
			So(ok, ShouldBeTrue)
			So(a.WhyBuy, ShouldEqual, "Hand-written case for this pick.")

			_, ok = set.Lookup(101)
			So(ok, ShouldBeFalse)
			So(set.Size(), ShouldEqual, 1)
		})
	})

	Convey("The embedded dataset parses", t, func() {
		set, err := narrative.LoadCurated()
		So(err, ShouldBeNil)
		So(set, ShouldNotBeNil)
	})
}
