package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	service "github.com/owenfield/frontoffice/internal/app"
	sim "github.com/owenfield/frontoffice/internal/domain/sim"
	"github.com/owenfield/frontoffice/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newService(t *testing.T, seed int64) *service.Service {
	t.Helper()
	return service.New(
		service.WithSeed(seed),
		service.WithSavePath(filepath.Join(t.TempDir(), "slots.db")),
		service.WithAutosaveInterval(0),
		service.WithOrchestratorOptions(sim.WithDecisionChance(0)),
	)
}

func TestServiceLifecycle(t *testing.T) {
	Convey("Given a configured service", t, func() {
		ctx := context.Background()
		svc := newService(t, 11)

		Convey("When it starts", func() {
			So(svc.Start(ctx), ShouldBeNil)
			Reset(svc.Stop)

			Convey("Then a fresh world is available", func() {
				world, err := svc.World(ctx)
				So(err, ShouldBeNil)
				So(world.State.Week, ShouldEqual, 1)
				So(world.Franchises, ShouldHaveLength, 20)
			})

			Convey("Then starting again is a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})

			Convey("Then stats reflect the snapshot", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldBeTrue)
				So(stats["week"], ShouldEqual, 1)
				So(stats["athletes"], ShouldEqual, 240)
			})
		})
	})
}

func TestServiceAdvance(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := newService(t, 12)
		So(svc.Start(ctx), ShouldBeNil)
		Reset(svc.Stop)

		Convey("When several weeks are advanced", func() {
			for i := 0; i < 3; i++ {
				_, err := svc.AdvanceWeek(ctx)
				So(err, ShouldBeNil)
			}

			Convey("Then the authoritative snapshot kept pace", func() {
				world, err := svc.World(ctx)
				So(err, ShouldBeNil)
				So(world.State.Week, ShouldEqual, 4)
				So(len(world.Matches), ShouldEqual, 24)
			})
		})
	})
}

func TestServiceResume(t *testing.T) {
	Convey("Given a service that played and stopped", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "slots.db")
		opts := []service.Option{
			service.WithSeed(13),
			service.WithSavePath(path),
			service.WithAutosaveInterval(0),
			service.WithOrchestratorOptions(sim.WithDecisionChance(0)),
		}

		first := service.New(opts...)
		So(first.Start(ctx), ShouldBeNil)
		for i := 0; i < 5; i++ {
			_, err := first.AdvanceWeek(ctx)
			So(err, ShouldBeNil)
		}
		first.Stop()

		Convey("When a new service starts on the same save path", func() {
			second := service.New(opts...)
			So(second.Start(ctx), ShouldBeNil)
			Reset(second.Stop)

			Convey("Then the campaign resumes from the final autosave", func() {
				world, err := second.World(ctx)
				So(err, ShouldBeNil)
				So(world.State.Week, ShouldEqual, 6)
			})
		})
	})
}

func TestServiceSlots(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := newService(t, 14)
		So(svc.Start(ctx), ShouldBeNil)
		Reset(svc.Stop)

		Convey("When the world is saved, advanced and loaded back", func() {
			So(svc.SaveSlot(ctx, "before-deadline"), ShouldBeNil)
			_, err := svc.AdvanceWeek(ctx)
			So(err, ShouldBeNil)

			world, err := svc.LoadSlot(ctx, "before-deadline")

			Convey("Then the loaded snapshot rewinds the clock", func() {
				So(err, ShouldBeNil)
				So(world.State.Week, ShouldEqual, 1)

				current, err := svc.World(ctx)
				So(err, ShouldBeNil)
				So(current.State.Week, ShouldEqual, 1)
			})

			Convey("Then the slot shows up in the listing", func() {
				So(err, ShouldBeNil)
				slots, err := svc.Slots(ctx)
				So(err, ShouldBeNil)
				names := make([]string, len(slots))
				for i, s := range slots {
					names[i] = s.Name
				}
				So(names, ShouldContain, "before-deadline")
			})
		})
	})
}
