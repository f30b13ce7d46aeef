package fpl_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/scoutlab/fplscout/internal/adapters/fpl"
	. "github.com/smartystreets/goconvey/convey"
)

const bootstrapBody = `{
	"elements": [
		{"id": 17, "web_name": "Saka", "team": 1, "element_type": 3,
		 "now_cost": 85, "minutes": 1200, "form": "6.2",
		 "points_per_game": "5.9", "selected_by_percent": "42.3",
		 "status": "a", "chance_of_playing_next_round": 75}
	],
	"teams": [{"id": 1, "name": "Arsenal", "short_name": "ARS"}],
	"element_types": [{"id": 3, "singular_name": "Midfielder", "singular_name_short": "MID"}],
	"events": [{"id": 7, "is_current": true}, {"id": 8, "is_next": true}]
}`

const fixturesBody = `[
	{"id": 101, "event": 8, "finished": false,
	 "team_h": 1, "team_a": 2, "team_h_difficulty": 2, "team_a_difficulty": 4},
	{"id": 102, "event": null, "finished": false,
	 "team_h": 3, "team_a": 1, "team_h_difficulty": 3, "team_a_difficulty": 3}
]`

func TestClientBootstrap(t *testing.T) {
	Convey("Given a provider serving a roster snapshot", t, func() {
		var gotUA, gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(bootstrapBody))
		}))
		defer srv.Close()

		client := fpl.NewClient(fpl.WithBaseURL(srv.URL), fpl.WithUserAgent("scout-test/1.0"))

		Convey("When fetching the bootstrap", func() {
			b, err := client.Bootstrap(context.Background())
			So(err, ShouldBeNil)

			Convey("Then the request targets the snapshot path with the configured agent", func() {
				So(gotPath, ShouldEqual, "/bootstrap-static/")
				So(gotUA, ShouldEqual, "scout-test/1.0")
			})

			Convey("Then all sections parse, string numerics included", func() {
				So(len(b.Elements), ShouldEqual, 1)
				p := b.Elements[0]
				So(p.ID, ShouldEqual, 17)
				So(p.WebName, ShouldEqual, "Saka")
				So(p.NowCost, ShouldEqual, 85)
				So(p.Form, ShouldEqual, "6.2")
				So(p.ChanceNext, ShouldNotBeNil)
				So(*p.ChanceNext, ShouldEqual, 75)

				So(b.Teams[0].ShortName, ShouldEqual, "ARS")
				So(b.ElementTypes[0].SingularNameShort, ShouldEqual, "MID")
				So(b.Events[0].IsCurrent, ShouldBeTrue)
				So(b.Events[1].IsNext, ShouldBeTrue)
			})
		})
	})
}

func TestClientFixtures(t *testing.T) {
	Convey("Given a provider serving a fixture snapshot", t, func() {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(fixturesBody))
		}))
		defer srv.Close()

		client := fpl.NewClient(fpl.WithBaseURL(srv.URL))

		Convey("When fetching the fixtures", func() {
			fixtures, err := client.Fixtures(context.Background())
			So(err, ShouldBeNil)
			So(gotPath, ShouldEqual, "/fixtures/")

			Convey("Then scheduled and unscheduled fixtures both parse", func() {
				So(len(fixtures), ShouldEqual, 2)
				So(fixtures[0].Event, ShouldNotBeNil)
				So(*fixtures[0].Event, ShouldEqual, 8)
				So(fixtures[0].TeamHDifficulty, ShouldEqual, 2)
				So(fixtures[1].Event, ShouldBeNil)
			})
		})
	})
}

func TestClientFailures(t *testing.T) {
	Convey("Given a provider in a bad mood", t, func() {
		Convey("When it returns a non-success status", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer srv.Close()

			client := fpl.NewClient(fpl.WithBaseURL(srv.URL))
			_, err := client.Bootstrap(context.Background())

			Convey("Then the status sentinel surfaces", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, fpl.ErrUpstreamStatus), ShouldBeTrue)
			})
		})

		Convey("When it returns garbage", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>not json</html>"))
			}))
			defer srv.Close()

			client := fpl.NewClient(fpl.WithBaseURL(srv.URL))
			_, err := client.Fixtures(context.Background())
			So(err, ShouldNotBeNil)
		})
	})
}
