package normalize_test

import (
	"testing"

	"github.com/scoutlab/fplscout/internal/domain/model"
	"github.com/scoutlab/fplscout/internal/domain/normalize"
	. "github.com/smartystreets/goconvey/convey"
)

func intPtr(v int) *int { return &v }

func testBootstrap() *model.Bootstrap {
	return &model.Bootstrap{
		Teams: []model.RawTeam{
			{ID: 1, Name: "Arsenal", ShortName: "ARS"},
			{ID: 2, Name: "Liverpool", ShortName: "LIV"},
		},
		ElementTypes: []model.RawPosition{
			{ID: 3, SingularName: "Midfielder", SingularNameShort: "MID"},
		},
		Events: []model.RawEvent{
			{ID: 7, IsCurrent: true},
			{ID: 8, IsNext: true},
		},
		Elements: []model.RawPlayer{
			{
				ID: 100, WebName: "Saka", Team: 1, ElementType: 3,
				NowCost: 45, Minutes: 900,
				Form: "6.5", PointsPerGame: "5.4", SelectedByPercent: "25.1",
				TransfersInEvent: 5000, TransfersOutEvent: 2000, EPNext: "6.2",
			},
			{
				ID: 101, WebName: "Benchwarmer", Team: 1, ElementType: 3,
				NowCost: 40, Minutes: 0,
				Form: "0.0", PointsPerGame: "0.0",
			},
		},
	}
}

func TestNormalize(t *testing.T) {
	Convey("Given a bootstrap snapshot and no fixtures", t, func() {
		n := normalize.New()

		Convey("When normalizing", func() {
			players := n.Normalize(testBootstrap(), nil, 8)

			Convey("Then players with zero minutes are excluded entirely", func() {
				So(len(players), ShouldEqual, 1)
				So(players[0].ID, ShouldEqual, 100)
			})

			Convey("And price is the integer cost divided by 10", func() {
				So(players[0].Price, ShouldEqual, 4.5)
			})

			Convey("And string-encoded numerics are parsed", func() {
				So(players[0].Form, ShouldEqual, 6.5)
				So(players[0].PointsPerGame, ShouldEqual, 5.4)
				So(players[0].OwnershipPct, ShouldEqual, 25.1)
				So(players[0].EPNext, ShouldEqual, 6.2)
			})

			Convey("And points per million divides PPG by price", func() {
				So(players[0].PointsPerMillion, ShouldEqual, 5.4/4.5)
			})

			Convey("And net transfers are in minus out", func() {
				So(players[0].NetTransfersEvent, ShouldEqual, 3000)
			})

			Convey("And the empty lookahead defaults difficulty to the neutral 3", func() {
				So(players[0].NextFixtures, ShouldBeEmpty)
				So(players[0].AvgNextDifficulty, ShouldEqual, 3)
			})

			Convey("And the ranking scalar follows the formula", func() {
				expected := 6.5*2 + (5.4 / 4.5) - 3*1.5
				So(players[0].TransferValueScore, ShouldEqual, expected)
			})

			Convey("And lookups resolve to display names", func() {
				So(players[0].Team, ShouldEqual, "Arsenal")
				So(players[0].TeamShort, ShouldEqual, "ARS")
				So(players[0].Position, ShouldEqual, "Midfielder")
				So(players[0].PositionShort, ShouldEqual, "MID")
			})
		})

		Convey("When a player references an unknown team and position", func() {
			b := testBootstrap()
			b.Elements[0].Team = 99
			b.Elements[0].ElementType = 99
			players := n.Normalize(b, nil, 8)

			Convey("Then fallback names are substituted and the pipeline continues", func() {
				So(len(players), ShouldEqual, 1)
				So(players[0].Team, ShouldEqual, "Unknown")
				So(players[0].TeamShort, ShouldEqual, "UNK")
				So(players[0].Position, ShouldEqual, "Unknown")
				So(players[0].PositionShort, ShouldEqual, "UNK")
			})
		})

		Convey("When numeric strings fail to parse", func() {
			b := testBootstrap()
			b.Elements[0].Form = "n/a"
			b.Elements[0].PointsPerGame = ""
			players := n.Normalize(b, nil, 8)

			Convey("Then they default to zero, never an error", func() {
				So(players[0].Form, ShouldEqual, 0)
				So(players[0].PointsPerGame, ShouldEqual, 0)
				So(players[0].PointsPerMillion, ShouldEqual, 0)
			})
		})

		Convey("When the cost is zero", func() {
			b := testBootstrap()
			b.Elements[0].NowCost = 0
			players := n.Normalize(b, nil, 8)

			Convey("Then price is exactly zero and PPM guards the division", func() {
				So(players[0].Price, ShouldEqual, 0)
				So(players[0].PointsPerMillion, ShouldEqual, 0)
			})
		})

		Convey("When the cost is 999", func() {
			b := testBootstrap()
			b.Elements[0].NowCost = 999
			players := n.Normalize(b, nil, 8)
			So(players[0].Price, ShouldEqual, 99.9)
		})

		Convey("When a player carries availability data", func() {
			b := testBootstrap()
			b.Elements[0].ChanceNext = intPtr(50)
			b.Elements[0].Status = "d"
			b.Elements[0].News = "Knock - 50% chance of playing"
			players := n.Normalize(b, nil, 8)

			So(*players[0].ChanceNext, ShouldEqual, 50)
			So(players[0].Status, ShouldEqual, "d")
			So(players[0].News, ShouldNotBeEmpty)
		})
	})

	Convey("Given fixtures within the lookahead window", t, func() {
		n := normalize.New()
		b := testBootstrap()
		fixtures := []model.Fixture{
			{ID: 1, Event: intPtr(8), TeamH: 1, TeamA: 2, TeamHDifficulty: 2, TeamADifficulty: 4},
			{ID: 2, Event: intPtr(9), TeamH: 2, TeamA: 1, TeamHDifficulty: 3, TeamADifficulty: 4},
		}

		Convey("Then the average difficulty is the mean over the lookahead list", func() {
			players := n.Normalize(b, fixtures, 8)
			So(len(players[0].NextFixtures), ShouldEqual, 2)
			So(players[0].AvgNextDifficulty, ShouldEqual, 3) // (2+4)/2
		})
	})
}

func TestResolveGameweeks(t *testing.T) {
	Convey("Given a provider calendar", t, func() {
		Convey("When current and next are flagged", func() {
			current, next := normalize.ResolveGameweeks([]model.RawEvent{
				{ID: 7, IsCurrent: true},
				{ID: 8, IsNext: true},
			})
			So(current, ShouldEqual, 7)
			So(next, ShouldEqual, 8)
		})

		Convey("When only next is flagged, current borrows it", func() {
			current, next := normalize.ResolveGameweeks([]model.RawEvent{
				{ID: 1, IsNext: true},
			})
			So(current, ShouldEqual, 1)
			So(next, ShouldEqual, 1)
		})

		Convey("When only current is flagged, next is one past it", func() {
			current, next := normalize.ResolveGameweeks([]model.RawEvent{
				{ID: 38, IsCurrent: true},
			})
			So(current, ShouldEqual, 38)
			So(next, ShouldEqual, 39)
		})

		Convey("When the calendar is empty, both default from period 1", func() {
			current, next := normalize.ResolveGameweeks(nil)
			So(current, ShouldEqual, 1)
			So(next, ShouldEqual, 2)
		})
	})
}
