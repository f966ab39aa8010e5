package matchsim_test

import (
	"fmt"
	"testing"

	matchsim "github.com/owenfield/frontoffice/internal/domain/matchsim"
	model "github.com/owenfield/frontoffice/internal/domain/model"
	rng "github.com/owenfield/frontoffice/internal/domain/rng"
	types "github.com/owenfield/frontoffice/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

// buildSide creates a franchise with count healthy athletes at the given skill level.
func buildSide(id string, count, skill int) (model.Franchise, []model.Athlete) {
	f := model.Franchise{
		ID: id, Name: id,
		StadiumLevel: 1, MedicalLevel: 1, ScoutingLevel: 1, AcademyLevel: 1,
		Trend: types.Stable,
	}
	athletes := make([]model.Athlete, 0, count)
	for i := 0; i < count; i++ {
		a := model.Athlete{
			ID:          fmt.Sprintf("%s-%02d", id, i),
			Name:        fmt.Sprintf("%s player %d", id, i),
			FranchiseID: id,
			Skills:      model.SkillSet{Scoring: skill, Defense: skill, Playmaking: skill, Athleticism: skill},
		}
		a.RecalcRating()
		athletes = append(athletes, a)
		f.Roster = append(f.Roster, a.ID)
	}
	return f, athletes
}

func TestSimulate(t *testing.T) {
	Convey("Given two full-strength franchises", t, func() {
		home, homeAthletes := buildSide("home", 12, 80)
		away, awayAthletes := buildSide("away", 12, 80)
		athletes := append(homeAthletes, awayAthletes...)
		idx := model.AthleteIndex(athletes)

		Convey("When a fixture is simulated", func() {
			res := matchsim.NewSimulator(rng.New(42)).Simulate(home, away, athletes, idx, 7, 1, types.MatchRegular)
			m := res.Match

			Convey("Then quarters sum to the final score on both sides", func() {
				hs, as := 0, 0
				for q := 0; q < model.QuartersPerMatch; q++ {
					hs += m.HomeQuarters[q]
					as += m.AwayQuarters[q]
				}
				So(m.HomeScore, ShouldEqual, hs)
				So(m.AwayScore, ShouldEqual, as)
				So(m.HomeScore, ShouldNotEqual, m.AwayScore)
			})

			Convey("Then each side fields its ten-man rotation", func() {
				So(m.BoxScore, ShouldHaveLength, 20)
				homeLines := 0
				for _, l := range m.BoxScore {
					if l.FranchiseID == "home" {
						homeLines++
					}
					So(l.Minutes, ShouldBeBetweenOrEqual, 10, 40)
				}
				So(homeLines, ShouldEqual, 10)
			})

			Convey("Then the player of the match is the top scorer", func() {
				bestPoints, bestID := -1, ""
				for _, l := range m.BoxScore {
					if l.Points > bestPoints {
						bestPoints, bestID = l.Points, l.AthleteID
					}
				}
				So(m.PlayerOfMatch, ShouldEqual, bestID)
			})

			Convey("Then every participant gets one appearance credited", func() {
				So(res.Deltas, ShouldHaveLength, 20)
				for _, d := range res.Deltas {
					So(d.GamesPlayed, ShouldEqual, 1)
				}
			})
		})
	})
}

func TestInjuredExcluded(t *testing.T) {
	Convey("Given a roster with its best athlete sidelined", t, func() {
		home, homeAthletes := buildSide("home", 11, 75)
		star := &homeAthletes[0]
		star.Skills = model.SkillSet{Scoring: 95, Defense: 95, Playmaking: 95, Athleticism: 95}
		star.RecalcRating()
		star.Injury = model.InjuryState{WeeksLeft: 3, Kind: "knee soreness"}

		away, awayAthletes := buildSide("away", 11, 75)
		athletes := append(homeAthletes, awayAthletes...)
		idx := model.AthleteIndex(athletes)

		Convey("When the fixture is simulated", func() {
			res := matchsim.NewSimulator(rng.New(9)).Simulate(home, away, athletes, idx, 3, 1, types.MatchRegular)

			Convey("Then the injured star never appears in the box score", func() {
				for _, l := range res.Match.BoxScore {
					So(l.AthleteID, ShouldNotEqual, star.ID)
				}
			})
		})
	})
}

func TestShortHandedRoster(t *testing.T) {
	Convey("Given a franchise with only three healthy athletes", t, func() {
		home, homeAthletes := buildSide("home", 3, 70)
		away, awayAthletes := buildSide("away", 12, 70)
		athletes := append(homeAthletes, awayAthletes...)
		idx := model.AthleteIndex(athletes)

		Convey("When the fixture is simulated", func() {
			res := matchsim.NewSimulator(rng.New(5)).Simulate(home, away, athletes, idx, 3, 1, types.MatchRegular)

			Convey("Then the match still resolves with the short rotation", func() {
				So(res.Match.BoxScore, ShouldHaveLength, 13)
				So(res.Match.HomeScore, ShouldBeGreaterThan, 0)
			})
		})
	})
}

func TestScoringSymmetry(t *testing.T) {
	Convey("Given two identically rated, fully healthy franchises", t, func() {
		home, homeAthletes := buildSide("home", 12, 80)
		away, awayAthletes := buildSide("away", 12, 80)
		athletes := append(homeAthletes, awayAthletes...)
		idx := model.AthleteIndex(athletes)

		Convey("When a thousand fixtures are simulated", func() {
			homeWins := 0
			const trials = 1000
			for seed := int64(0); seed < trials; seed++ {
				res := matchsim.NewSimulator(rng.New(seed)).Simulate(home, away, athletes, idx, 1, 1, types.MatchRegular)
				if res.Match.HomeScore > res.Match.AwayScore {
					homeWins++
				}
			}

			Convey("Then the home-win rate is statistically indistinguishable from 50%", func() {
				So(homeWins, ShouldBeGreaterThan, trials/2-50)
				So(homeWins, ShouldBeLessThan, trials/2+50)
			})
		})
	})
}

func TestTalentGap(t *testing.T) {
	Convey("Given a contender against a rebuilding side", t, func() {
		home, homeAthletes := buildSide("home", 12, 92)
		away, awayAthletes := buildSide("away", 12, 58)
		athletes := append(homeAthletes, awayAthletes...)
		idx := model.AthleteIndex(athletes)

		Convey("When two hundred fixtures are simulated", func() {
			homeWins := 0
			const trials = 200
			for seed := int64(0); seed < trials; seed++ {
				res := matchsim.NewSimulator(rng.New(seed)).Simulate(home, away, athletes, idx, 1, 1, types.MatchRegular)
				if res.Match.HomeScore > res.Match.AwayScore {
					homeWins++
				}
			}

			Convey("Then the stronger side wins the overwhelming majority", func() {
				So(homeWins, ShouldBeGreaterThan, trials*9/10)
			})
		})
	})
}
