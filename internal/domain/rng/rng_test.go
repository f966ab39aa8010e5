package rng_test

import (
	"testing"

	rng "github.com/owenfield/frontoffice/internal/domain/rng"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDeterminism(t *testing.T) {
	Convey("Given two sources with the same seed", t, func() {
		a := rng.New(42)
		b := rng.New(42)

		Convey("Then they produce identical draw sequences", func() {
			for i := 0; i < 100; i++ {
				So(a.Float64(), ShouldEqual, b.Float64())
			}
			for i := 0; i < 100; i++ {
				So(a.IntN(1000), ShouldEqual, b.IntN(1000))
			}
		})
	})

	Convey("Given two sources with different seeds", t, func() {
		a := rng.New(1)
		b := rng.New(2)

		Convey("Then their sequences diverge", func() {
			same := true
			for i := 0; i < 20; i++ {
				if a.Float64() != b.Float64() {
					same = false
				}
			}
			So(same, ShouldBeFalse)
		})
	})
}

func TestRangeHelpers(t *testing.T) {
	Convey("Given a seeded source", t, func() {
		src := rng.New(7)

		Convey("When drawing from Range", func() {
			for i := 0; i < 1000; i++ {
				v := rng.Range(src, -5, 5)
				So(v, ShouldBeGreaterThanOrEqualTo, -5)
				So(v, ShouldBeLessThan, 5)
			}
		})

		Convey("When drawing from IntRange", func() {
			for i := 0; i < 1000; i++ {
				v := rng.IntRange(src, 30, 40)
				So(v, ShouldBeBetweenOrEqual, 30, 40)
			}
		})

		Convey("When IntRange bounds collapse", func() {
			So(rng.IntRange(src, 5, 5), ShouldEqual, 5)
			So(rng.IntRange(src, 5, 3), ShouldEqual, 5)
		})
	})
}

func TestShuffle(t *testing.T) {
	Convey("Given a seeded source", t, func() {
		src := rng.New(9)
		vals := []int{0, 1, 2, 3, 4, 5, 6, 7}
		src.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })

		Convey("Then the shuffle is a permutation", func() {
			seen := make(map[int]bool)
			for _, v := range vals {
				seen[v] = true
			}
			So(len(seen), ShouldEqual, 8)
		})
	})
}
