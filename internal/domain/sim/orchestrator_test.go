package sim_test

import (
	"fmt"
	"testing"

	model "github.com/owenfield/frontoffice/internal/domain/model"
	rng "github.com/owenfield/frontoffice/internal/domain/rng"
	sim "github.com/owenfield/frontoffice/internal/domain/sim"
	types "github.com/owenfield/frontoffice/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func newWorld(seed int64) (*sim.Orchestrator, model.World) {
	o := sim.New(rng.New(seed))
	return o, o.NewWorld(sim.DefaultLeagueParams())
}

func TestNewWorld(t *testing.T) {
	Convey("Given a freshly generated world", t, func() {
		_, w := newWorld(1)

		Convey("Then the league has its full professional and amateur tiers", func() {
			So(w.Franchises, ShouldHaveLength, 20)
			amateurs := 0
			for _, f := range w.Franchises {
				if f.Amateur {
					amateurs++
				}
				So(f.Roster, ShouldHaveLength, 12)
				So(f.SharePrice, ShouldAlmostEqual, f.Valuation/model.SharePriceDivisor, 1e-9)
			}
			So(amateurs, ShouldEqual, 4)
		})

		Convey("Then the athlete pool matches the rosters", func() {
			So(w.Athletes, ShouldHaveLength, 20*12)
			clients := 0
			for _, a := range w.Athletes {
				if a.IsClient {
					clients++
				}
			}
			So(clients, ShouldEqual, 5)
		})

		Convey("Then the clock and the books start clean", func() {
			So(w.State.Week, ShouldEqual, 1)
			So(w.State.Year, ShouldEqual, 1)
			So(w.State.Cash, ShouldAlmostEqual, 150_000, 1e-9)
			So(w.State.PendingDecision, ShouldBeNil)
		})
	})
}

func TestAdvanceWeek(t *testing.T) {
	Convey("Given a fresh world", t, func() {
		o, w := newWorld(2)

		Convey("When one week is advanced", func() {
			next, err := o.AdvanceWeek(w)

			Convey("Then the clock moves and the input stays untouched", func() {
				So(err, ShouldBeNil)
				So(next.State.Week, ShouldEqual, 2)
				So(next.State.Year, ShouldEqual, 1)
				So(w.State.Week, ShouldEqual, 1)
				So(w.Matches, ShouldBeEmpty)
			})

			Convey("Then the professional field played a full round", func() {
				So(next.Matches, ShouldHaveLength, 8)
				games := 0
				for _, f := range next.Franchises {
					games += f.GamesPlayed()
				}
				So(games, ShouldEqual, 16)
			})

			Convey("Then every match stays internally consistent", func() {
				for _, m := range next.Matches {
					hs, as := 0, 0
					for q := 0; q < model.QuartersPerMatch; q++ {
						hs += m.HomeQuarters[q]
						as += m.AwayQuarters[q]
					}
					So(m.HomeScore, ShouldEqual, hs)
					So(m.AwayScore, ShouldEqual, as)
					So(m.PlayerOfMatch, ShouldNotBeEmpty)
				}
			})
		})
	})
}

func TestYearRollover(t *testing.T) {
	Convey("Given a world at week 52", t, func() {
		o, w := newWorld(3)
		w.State.Week = 52
		w.State.Year = 3
		w.State.Loans = []model.Loan{{ID: "l1", Balance: 100_000, WeeklyRate: 0.025}}

		ages := make(map[string]int, len(w.Athletes))
		for _, a := range w.Athletes {
			ages[a.ID] = a.Age
		}

		Convey("When the week is advanced", func() {
			next, err := o.AdvanceWeek(w)
			So(err, ShouldBeNil)

			Convey("Then week 52 rolls into week 1 of the next year", func() {
				So(next.State.Week, ShouldEqual, 1)
				So(next.State.Year, ShouldEqual, 4)
			})

			Convey("Then exactly one aging pass ran over the carried athletes", func() {
				for _, a := range next.Athletes {
					before, carried := ages[a.ID]
					if !carried {
						continue // academy graduate, created mid-transition
					}
					if a.Retired && before < 35 {
						continue
					}
					if !a.Retired {
						So(a.Age, ShouldEqual, before+1)
					}
				}
			})

			Convey("Then every franchise record reset before the new round", func() {
				for _, f := range next.Franchises {
					So(f.GamesPlayed(), ShouldBeLessThanOrEqualTo, 1)
				}
			})

			Convey("Then each academy produced one graduate", func() {
				academies := 0
				for _, f := range next.Franchises {
					if f.AcademyLevel > 0 {
						academies++
					}
				}
				So(len(next.Athletes)-len(w.Athletes), ShouldEqual, academies)
			})

			Convey("Then loan interest compounded on the pre-accrual balance", func() {
				So(next.State.Loans[0].Balance, ShouldAlmostEqual, 102_500, 1e-6)
			})
		})
	})
}

func TestDecisionGate(t *testing.T) {
	Convey("Given a world with a pending decision", t, func() {
		o, w := newWorld(4)
		w.State.PendingDecision = &model.Decision{
			ID:        "d1",
			AthleteID: w.Athletes[0].ID,
			Title:     "Contract dispute",
			Options: []model.DecisionOption{
				{Label: "Pay up", CashDelta: -10_000, LoyaltyDelta: 5},
				{Label: "Stall", MoraleDelta: -5},
			},
		}

		Convey("When advancing is attempted", func() {
			_, err := o.AdvanceWeek(w)

			Convey("Then the engine refuses", func() {
				So(err, ShouldEqual, sim.ErrDecisionPending)
			})
		})

		Convey("When the decision is resolved with the first option", func() {
			cash := w.State.Cash
			loyalty := w.Athletes[0].Loyalty
			next, err := o.ResolveDecision(w, 0)

			Convey("Then the effects land and the gate opens", func() {
				So(err, ShouldBeNil)
				So(next.State.PendingDecision, ShouldBeNil)
				So(next.State.Cash, ShouldAlmostEqual, cash-10_000, 1e-9)
				So(next.Athletes[0].Loyalty, ShouldEqual, loyalty+5)

				_, err := o.AdvanceWeek(next)
				So(err, ShouldBeNil)
			})
		})

		Convey("When resolving with an out-of-range option", func() {
			_, err := o.ResolveDecision(w, 5)

			Convey("Then the choice is rejected", func() {
				So(err, ShouldEqual, sim.ErrInvalidOption)
			})
		})
	})

	Convey("Given a world with nothing pending", t, func() {
		o, w := newWorld(4)

		Convey("When a resolution is attempted", func() {
			_, err := o.ResolveDecision(w, 0)

			Convey("Then the engine reports the empty gate", func() {
				So(err, ShouldEqual, sim.ErrNoDecisionPending)
			})
		})
	})
}

func TestDecisionFrequency(t *testing.T) {
	Convey("Given a long run with auto-resolution", t, func() {
		o, w := newWorld(5)

		Convey("When two hundred weeks are simulated", func() {
			drawn := 0
			for i := 0; i < 200; i++ {
				next, err := o.AdvanceWeek(w)
				So(err, ShouldBeNil)
				if next.State.PendingDecision != nil {
					drawn++
					next, err = o.ResolveDecision(next, 0)
					So(err, ShouldBeNil)
				}
				w = next
			}

			Convey("Then life events fire at roughly the weekly rate", func() {
				So(drawn, ShouldBeGreaterThan, 3)
				So(drawn, ShouldBeLessThan, 45)
			})
		})
	})
}

func TestRetentionCaps(t *testing.T) {
	Convey("Given tight retention caps", t, func() {
		o := sim.New(rng.New(6),
			sim.WithNotificationCap(30),
			sim.WithMatchHistoryCap(40),
			sim.WithDecisionChance(0))
		w := o.NewWorld(sim.DefaultLeagueParams())

		Convey("When several seasons run", func() {
			for i := 0; i < 120; i++ {
				next, err := o.AdvanceWeek(w)
				So(err, ShouldBeNil)
				w = next
			}

			Convey("Then history stays bounded with the newest entries kept", func() {
				So(len(w.Matches), ShouldEqual, 40)
				So(len(w.State.Notifications), ShouldBeLessThanOrEqualTo, 30)
				last := w.Matches[len(w.Matches)-1]
				So(last.Year, ShouldEqual, w.State.Year)
			})
		})
	})
}

func TestOffseasonSkipsFixtures(t *testing.T) {
	Convey("Given a league in the offseason", t, func() {
		o, w := newWorld(7)
		w.State.LeaguePhase = types.Offseason

		Convey("When the week is advanced", func() {
			next, err := o.AdvanceWeek(w)

			Convey("Then no fixtures are played", func() {
				So(err, ShouldBeNil)
				So(next.Matches, ShouldBeEmpty)
			})
		})
	})
}

func TestScoutingYield(t *testing.T) {
	Convey("Given an agency managing a franchise", t, func() {
		o := sim.New(rng.New(8), sim.WithDecisionChance(0))
		w := o.NewWorld(sim.DefaultLeagueParams())
		w.Franchises[0].ScoutingLevel = 4
		w.State.ManagedFranchiseID = w.Franchises[0].ID

		Convey("When the week is advanced", func() {
			next, err := o.AdvanceWeek(w)

			Convey("Then the scouting department pays out its yield", func() {
				So(err, ShouldBeNil)
				So(next.State.ScoutingPoints, ShouldEqual, 6)
			})
		})
	})
}

// buildPair creates a two-franchise world with rostered athletes at the
// given skill level and clean agency books.
func buildPair(skill int) model.World {
	w := model.World{
		State: model.GameState{
			Week:        1,
			Year:        1,
			LeaguePhase: types.RegularSeason,
		},
	}
	for _, id := range []string{"f1", "f2"} {
		f := model.Franchise{
			ID: id, Name: id,
			Valuation:    6_000_000,
			StadiumLevel: 1, MedicalLevel: 1, ScoutingLevel: 1, AcademyLevel: 1,
			Trend: types.Stable,
		}
		f.RecalcSharePrice()
		for i := 0; i < 5; i++ {
			a := model.Athlete{
				ID:            fmt.Sprintf("%s-%d", id, i),
				Name:          fmt.Sprintf("%s player %d", id, i),
				FranchiseID:   id,
				Age:           25,
				RetirementAge: 35,
				Skills:        model.SkillSet{Scoring: skill, Defense: skill, Playmaking: skill, Athleticism: skill},
			}
			a.RecalcRating()
			f.Roster = append(f.Roster, a.ID)
			w.Athletes = append(w.Athletes, a)
		}
		w.Franchises = append(w.Franchises, f)
	}
	return w
}

func TestDividendsTrackCurrentRevenue(t *testing.T) {
	Convey("Given full ownership of a franchise with no revenue on the books", t, func() {
		o := sim.New(rng.New(11), sim.WithDecisionChance(0))
		w := buildPair(70)
		w.Franchises[0].UserShares = 100

		Convey("When the week is advanced", func() {
			next, err := o.AdvanceWeek(w)
			So(err, ShouldBeNil)

			Convey("Then the franchise earned gate revenue this week", func() {
				So(next.Franchises[0].WeeklyRevenue, ShouldBeGreaterThan, 0)
			})

			Convey("Then the dividend is paid on this week's revenue", func() {
				// Sole income is the dividend; sole expense is base overhead.
				dividend := next.Franchises[0].WeeklyRevenue * 0.05
				So(next.State.Cash-w.State.Cash, ShouldAlmostEqual, dividend-2000, 1e-6)
			})
		})
	})
}
