package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/owenfield/frontoffice/internal/adapters/http/api"
	storage "github.com/owenfield/frontoffice/internal/adapters/storage"
	model "github.com/owenfield/frontoffice/internal/domain/model"
	rng "github.com/owenfield/frontoffice/internal/domain/rng"
	sim "github.com/owenfield/frontoffice/internal/domain/sim"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeDeps backs the handlers with a real orchestrator over an in-memory
// world, plus an in-memory slot map.
type fakeDeps struct {
	orch  *sim.Orchestrator
	world model.World
	slots map[string]model.World
}

func newFakeDeps(seed int64, opts ...sim.Option) *fakeDeps {
	orch := sim.New(rng.New(seed), opts...)
	return &fakeDeps{
		orch:  orch,
		world: orch.NewWorld(sim.DefaultLeagueParams()),
		slots: map[string]model.World{},
	}
}

func (f *fakeDeps) World(context.Context) (model.World, error) {
	return f.world.Clone(), nil
}

func (f *fakeDeps) AdvanceWeek(context.Context) (model.World, error) {
	next, err := f.orch.AdvanceWeek(f.world)
	if err != nil {
		return model.World{}, err
	}
	f.world = next
	return next.Clone(), nil
}

func (f *fakeDeps) ResolveDecision(_ context.Context, optionIndex int) (model.World, error) {
	next, err := f.orch.ResolveDecision(f.world, optionIndex)
	if err != nil {
		return model.World{}, err
	}
	f.world = next
	return next.Clone(), nil
}

func (f *fakeDeps) SaveSlot(_ context.Context, slot string) error {
	f.slots[slot] = f.world.Clone()
	return nil
}

func (f *fakeDeps) LoadSlot(_ context.Context, slot string) (model.World, error) {
	w, ok := f.slots[slot]
	if !ok {
		return model.World{}, storage.ErrSlotNotFound
	}
	f.world = w.Clone()
	return w.Clone(), nil
}

func (f *fakeDeps) Slots(context.Context) ([]storage.SlotInfo, error) {
	out := make([]storage.SlotInfo, 0, len(f.slots))
	for name, w := range f.slots {
		out = append(out, storage.SlotInfo{Name: name, Week: w.State.Week, Year: w.State.Year})
	}
	return out, nil
}

func (f *fakeDeps) GetStats() map[string]interface{} {
	return map[string]interface{}{"week": f.world.State.Week}
}

func newTestServer(deps *fakeDeps) *httptest.Server {
	mux := http.NewServeMux()
	api.NewServer(deps, deps).Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func TestStateEndpoint(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := newFakeDeps(1)
		ts := newTestServer(deps)
		Reset(ts.Close)

		Convey("When GET /state is requested", func() {
			resp, err := http.Get(ts.URL + "/state")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the snapshot comes back intact", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var body struct {
					State      model.GameState   `json:"state"`
					Franchises []model.Franchise `json:"franchises"`
					Bankrupt   bool              `json:"bankrupt"`
				}
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body.State.Week, ShouldEqual, 1)
				So(body.Franchises, ShouldHaveLength, 20)
				So(body.Bankrupt, ShouldBeFalse)
			})
		})
	})
}

func TestAdvanceEndpoint(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := newFakeDeps(2, sim.WithDecisionChance(0))
		ts := newTestServer(deps)
		Reset(ts.Close)

		Convey("When POST /advance is requested", func() {
			resp, err := http.Post(ts.URL+"/advance", "application/json", nil)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the week moves forward and fixtures resolve", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var body struct {
					Week          int `json:"week"`
					MatchesPlayed int `json:"matches_played"`
				}
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body.Week, ShouldEqual, 2)
				So(body.MatchesPlayed, ShouldEqual, 8)
			})
		})

		Convey("When GET /advance is requested", func() {
			resp, err := http.Get(ts.URL + "/advance")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the method is rejected", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestDecisionEndpoint(t *testing.T) {
	Convey("Given a server with a pending decision", t, func() {
		deps := newFakeDeps(3)
		deps.world.State.PendingDecision = &model.Decision{
			ID:        "d1",
			AthleteID: deps.world.Athletes[0].ID,
			Title:     "Sponsorship offer",
			Options: []model.DecisionOption{
				{Label: "Sign the deal", CashDelta: 25_000},
			},
		}
		ts := newTestServer(deps)
		Reset(ts.Close)

		Convey("When advancing is attempted over the gate", func() {
			resp, err := http.Post(ts.URL+"/advance", "application/json", nil)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the conflict surfaces as 409", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusConflict)
			})
		})

		Convey("When the decision is read back", func() {
			resp, err := http.Get(ts.URL + "/decision")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the pending payload is served", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var body struct {
					Pending *model.Decision `json:"pending"`
				}
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body.Pending, ShouldNotBeNil)
				So(body.Pending.Title, ShouldEqual, "Sponsorship offer")
			})
		})

		Convey("When the decision is resolved", func() {
			resp, err := http.Post(ts.URL+"/decision", "application/json",
				strings.NewReader(`{"option_index":0}`))
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the gate opens for the next advance", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(deps.world.State.PendingDecision, ShouldBeNil)

				again, err := http.Post(ts.URL+"/advance", "application/json", nil)
				So(err, ShouldBeNil)
				defer again.Body.Close()
				So(again.StatusCode, ShouldEqual, http.StatusOK)
			})
		})

		Convey("When resolving with an out-of-range option", func() {
			resp, err := http.Post(ts.URL+"/decision", "application/json",
				strings.NewReader(`{"option_index":9}`))
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the request is a 400", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			})
		})
	})
}

func TestStandingsEndpoint(t *testing.T) {
	Convey("Given a server that has played some rounds", t, func() {
		deps := newFakeDeps(4, sim.WithDecisionChance(0))
		ts := newTestServer(deps)
		Reset(ts.Close)

		for i := 0; i < 5; i++ {
			resp, err := http.Post(ts.URL+"/advance", "application/json", nil)
			So(err, ShouldBeNil)
			resp.Body.Close()
		}

		Convey("When GET /standings is requested", func() {
			resp, err := http.Get(ts.URL + "/standings")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the table is ranked and amateur-free", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var rows []struct {
					Rank   int     `json:"rank"`
					Wins   int     `json:"wins"`
					Losses int     `json:"losses"`
					WinPct float64 `json:"win_pct"`
				}
				So(json.NewDecoder(resp.Body).Decode(&rows), ShouldBeNil)
				So(rows, ShouldHaveLength, 16)
				for i, row := range rows {
					So(row.Rank, ShouldEqual, i+1)
					So(row.Wins+row.Losses, ShouldEqual, 5)
					if i > 0 {
						So(row.WinPct, ShouldBeLessThanOrEqualTo, rows[i-1].WinPct)
					}
				}
			})
		})
	})
}

func TestSlotEndpoints(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := newFakeDeps(5, sim.WithDecisionChance(0))
		ts := newTestServer(deps)
		client := &http.Client{}
		Reset(ts.Close)

		Convey("When the world is saved, advanced and reloaded", func() {
			req, err := http.NewRequest(http.MethodPut, ts.URL+"/slots/campaign-1", nil)
			So(err, ShouldBeNil)
			resp, err := client.Do(req)
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			adv, err := http.Post(ts.URL+"/advance", "application/json", nil)
			So(err, ShouldBeNil)
			adv.Body.Close()
			So(deps.world.State.Week, ShouldEqual, 2)

			load, err := http.Post(ts.URL+"/slots/campaign-1/load", "application/json", nil)
			So(err, ShouldBeNil)
			defer load.Body.Close()

			Convey("Then the world rolls back to the saved week", func() {
				So(load.StatusCode, ShouldEqual, http.StatusOK)
				So(deps.world.State.Week, ShouldEqual, 1)

				list, err := http.Get(ts.URL + "/slots")
				So(err, ShouldBeNil)
				defer list.Body.Close()
				var slots []storage.SlotInfo
				So(json.NewDecoder(list.Body).Decode(&slots), ShouldBeNil)
				So(slots, ShouldHaveLength, 1)
				So(slots[0].Name, ShouldEqual, "campaign-1")
			})
		})

		Convey("When loading a slot that never existed", func() {
			resp, err := http.Post(ts.URL+"/slots/ghost/load", "application/json", nil)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the API answers 404", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestStatsEndpoint(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := newFakeDeps(6)
		ts := newTestServer(deps)
		Reset(ts.Close)

		Convey("When GET /stats is requested", func() {
			resp, err := http.Get(ts.URL + "/stats")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then provider stats are served as JSON", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var body map[string]any
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body["week"], ShouldAlmostEqual, 1, 1e-9)
			})
		})
	})
}
