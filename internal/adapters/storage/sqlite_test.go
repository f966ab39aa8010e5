package storage_test

import (
	"context"
	"testing"

	storage "github.com/owenfield/frontoffice/internal/adapters/storage"
	model "github.com/owenfield/frontoffice/internal/domain/model"
	types "github.com/owenfield/frontoffice/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleWorld() model.World {
	return model.World{
		State: model.GameState{
			Week: 17, Year: 3, Cash: 91_250.5,
			LeaguePhase: types.RegularSeason,
			DraftPhase:  types.DraftIdle,
			Loans: []model.Loan{
				{ID: "l1", Principal: 100_000, Balance: 84_300, WeeklyRate: 0.025},
			},
			PendingDecision: &model.Decision{
				ID: "d1", AthleteID: "a1", Title: "Contract dispute",
				Options: []model.DecisionOption{{Label: "Pay up", CashDelta: -10_000}},
			},
		},
		Athletes: []model.Athlete{
			{
				ID: "a1", Name: "Dre Okafor", Age: 27, Position: types.PointGuard,
				Skills: model.SkillSet{Scoring: 80, Defense: 70, Playmaking: 85, Athleticism: 75},
				Rating: 77, IsClient: true,
				Injury: model.InjuryState{WeeksLeft: 2, Kind: "ankle sprain"},
			},
		},
		Franchises: []model.Franchise{
			{ID: "f1", Name: "Harbor City Breakers", Roster: []string{"a1"},
				Valuation: 8_000_000, SharePrice: 80_000, Trend: types.Bullish,
				StadiumLevel: 2, MedicalLevel: 3, ScoutingLevel: 1, AcademyLevel: 2},
		},
		Matches: []model.Match{
			{ID: "m1", HomeID: "f1", AwayID: "f2", Week: 16, Year: 3,
				Kind: types.MatchRegular, HomeScore: 98, AwayScore: 91,
				HomeQuarters: [4]int{25, 24, 26, 23}, AwayQuarters: [4]int{22, 23, 24, 22}},
		},
	}
}

func TestSlotStore(t *testing.T) {
	Convey("Given an ephemeral slot store", t, func() {
		ctx := context.Background()
		s, err := storage.Open(ctx, ":memory:")
		So(err, ShouldBeNil)
		Reset(func() { s.Close() })

		Convey("When a snapshot is saved and reloaded", func() {
			So(s.Save(ctx, "autosave", sampleWorld()), ShouldBeNil)
			got, err := s.Load(ctx, "autosave")

			Convey("Then every field round-trips losslessly", func() {
				So(err, ShouldBeNil)
				So(got, ShouldResemble, sampleWorld())
			})
		})

		Convey("When the same slot is saved twice", func() {
			first := sampleWorld()
			So(s.Save(ctx, "autosave", first), ShouldBeNil)
			second := sampleWorld()
			second.State.Week = 18
			So(s.Save(ctx, "autosave", second), ShouldBeNil)

			Convey("Then the slot holds the newer snapshot only", func() {
				got, err := s.Load(ctx, "autosave")
				So(err, ShouldBeNil)
				So(got.State.Week, ShouldEqual, 18)

				slots, err := s.Slots(ctx)
				So(err, ShouldBeNil)
				So(slots, ShouldHaveLength, 1)
				So(slots[0].Week, ShouldEqual, 18)
			})
		})

		Convey("When loading a slot that never existed", func() {
			_, err := s.Load(ctx, "ghost")

			Convey("Then the not-found sentinel surfaces", func() {
				So(err, ShouldEqual, storage.ErrSlotNotFound)
			})
		})

		Convey("When saving under an empty name", func() {
			err := s.Save(ctx, "", sampleWorld())

			Convey("Then the slot name is rejected", func() {
				So(err, ShouldEqual, storage.ErrInvalidSlot)
			})
		})

		Convey("When a slot is deleted", func() {
			So(s.Save(ctx, "campaign-1", sampleWorld()), ShouldBeNil)
			So(s.Delete(ctx, "campaign-1"), ShouldBeNil)

			Convey("Then it is gone and re-deleting is harmless", func() {
				_, err := s.Load(ctx, "campaign-1")
				So(err, ShouldEqual, storage.ErrSlotNotFound)
				So(s.Delete(ctx, "campaign-1"), ShouldBeNil)
			})
		})
	})
}
