package scoring_test

import (
	"testing"

	"github.com/scoutlab/fplscout/internal/domain/model"
	"github.com/scoutlab/fplscout/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTransferValue(t *testing.T) {
	Convey("Given the transfer-value formula", t, func() {
		Convey("When form=5, ppm=2 and average difficulty=3", func() {
			score := scoring.TransferValue(5, 2, 3)

			Convey("Then the score is 5*2 + 2 - 3*1.5 = 7.5", func() {
				So(score, ShouldEqual, 7.5)
			})
		})

		Convey("When every input is zero", func() {
			So(scoring.TransferValue(0, 0, 0), ShouldEqual, 0)
		})

		Convey("When difficulty dominates, the score goes negative", func() {
			So(scoring.TransferValue(1, 0, 5), ShouldEqual, 2-7.5)
		})
	})
}

func TestTopN(t *testing.T) {
	Convey("Given a roster with distinct scores", t, func() {
		players := []model.Player{
			{ID: 1, TransferValueScore: 3.0},
			{ID: 2, TransferValueScore: 9.0},
			{ID: 3, TransferValueScore: 6.0},
			{ID: 4, TransferValueScore: 1.0},
		}

		Convey("When selecting the top 3", func() {
			top := scoring.TopN(players, 3)

			Convey("Then they come back descending by score", func() {
				So(len(top), ShouldEqual, 3)
				So(top[0].ID, ShouldEqual, 2)
				So(top[1].ID, ShouldEqual, 3)
				So(top[2].ID, ShouldEqual, 1)
			})

			Convey("And the input slice is left untouched", func() {
				So(players[0].ID, ShouldEqual, 1)
				So(players[3].ID, ShouldEqual, 4)
			})
		})

		Convey("When n exceeds the roster size", func() {
			top := scoring.TopN(players, 10)
			So(len(top), ShouldEqual, 4)
		})
	})

	Convey("Given tied scores", t, func() {
		players := []model.Player{
			{ID: 10, TransferValueScore: 5.0},
			{ID: 11, TransferValueScore: 5.0},
			{ID: 12, TransferValueScore: 5.0},
		}

		Convey("Then ties keep the normalizer's output order", func() {
			top := scoring.TopN(players, 3)
			So(top[0].ID, ShouldEqual, 10)
			So(top[1].ID, ShouldEqual, 11)
			So(top[2].ID, ShouldEqual, 12)
		})
	})
}

func TestRoundScore(t *testing.T) {
	Convey("Given raw scores", t, func() {
		So(scoring.RoundScore(7.25), ShouldEqual, 7.3)
		So(scoring.RoundScore(7.24), ShouldEqual, 7.2)
		So(scoring.RoundScore(2.349), ShouldEqual, 2.3)
		So(scoring.RoundScore(-2.06), ShouldEqual, -2.1)
	})
}
