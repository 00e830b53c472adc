package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func result(event, category, student, school string, points int) model.Result {
	return model.Result{
		EventName:   event,
		Category:    category,
		StudentName: student,
		School:      school,
		Points:      points,
	}
}

func TestMemoryStoreReplace(t *testing.T) {
	Convey("Given an in-memory store", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()

		key := model.ReplaceKey{EventName: "Quiz Competition", Category: "General"}
		first := []model.Result{
			result("Quiz Competition", "General", "Asha", "Oakwood", 10),
			result("Quiz Competition", "General", "Meera", "Riverdale", 6),
		}

		Convey("When a batch is replaced twice under the same key", func() {
			n, err := store.Replace(ctx, key, first)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 2)

			second := []model.Result{
				result("Quiz Competition", "General", "Asha", "Oakwood", 10),
			}
			n, err = store.Replace(ctx, key, second)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 1)

			Convey("Then the second batch fully supersedes the first", func() {
				So(store.Count(ctx), ShouldEqual, 1)
				got, err := store.Search(ctx, "", 10)
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, 1)
				So(got[0].StudentName, ShouldEqual, "Asha")
			})
		})

		Convey("When another key shares the event name", func() {
			_, err := store.Replace(ctx, key, first)
			So(err, ShouldBeNil)

			other := model.ReplaceKey{EventName: "Quiz Competition", Category: "Under 16"}
			_, err = store.Replace(ctx, other, []model.Result{
				result("Quiz Competition", "Under 16", "Nila", "Hillside", 8),
			})
			So(err, ShouldBeNil)

			Convey("Then replacing one key leaves the other untouched", func() {
				_, err := store.Replace(ctx, key, nil)
				So(err, ShouldBeNil)
				So(store.Count(ctx), ShouldEqual, 1)
			})
		})
	})
}

func TestMemoryStoreStandings(t *testing.T) {
	Convey("Given results across several schools", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()

		_, err := store.Replace(ctx, model.ReplaceKey{EventName: "Quiz Competition", Category: "General"}, []model.Result{
			result("Quiz Competition", "General", "Asha", "Oakwood", 10),
			result("Quiz Competition", "General", "Meera", "Riverdale", 6),
		})
		So(err, ShouldBeNil)
		_, err = store.Replace(ctx, model.ReplaceKey{EventName: "Recitation", Category: "General"}, []model.Result{
			result("Recitation", "General", "Devi", "Riverdale", 4),
			result("Recitation", "General", "Tom", "Hillside", 10),
		})
		So(err, ShouldBeNil)

		Convey("When standings are computed", func() {
			standings, err := store.SchoolStandings(ctx)
			So(err, ShouldBeNil)

			Convey("Then schools rank by total points, ties in first-seen order", func() {
				So(standings, ShouldHaveLength, 3)
				So(standings[0], ShouldResemble, model.SchoolStanding{Rank: 1, School: "Oakwood", Points: 10})
				So(standings[1], ShouldResemble, model.SchoolStanding{Rank: 2, School: "Riverdale", Points: 10})
				So(standings[2], ShouldResemble, model.SchoolStanding{Rank: 3, School: "Hillside", Points: 10})
			})
		})
	})
}

func TestMemoryStoreSearch(t *testing.T) {
	Convey("Given a store with a deterministic clock", t, func() {
		ctx := context.Background()
		tick := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		store := repository.NewMemoryStore(repository.WithClock(func() time.Time {
			tick = tick.Add(time.Minute)
			return tick
		}))

		_, err := store.Replace(ctx, model.ReplaceKey{EventName: "Quiz Competition", Category: "General"}, []model.Result{
			{EventName: "Quiz Competition", Category: "General", ChestNo: "C101", StudentName: "Asha", School: "Oakwood"},
		})
		So(err, ShouldBeNil)
		_, err = store.Replace(ctx, model.ReplaceKey{EventName: "Recitation", Category: "General"}, []model.Result{
			{EventName: "Recitation", Category: "General", ChestNo: "C102", StudentName: "Ashik", School: "Riverdale"},
		})
		So(err, ShouldBeNil)

		Convey("When searching by a shared name prefix", func() {
			got, err := store.Search(ctx, "ash", 10)
			So(err, ShouldBeNil)

			Convey("Then matches come newest-update first", func() {
				So(got, ShouldHaveLength, 2)
				So(got[0].StudentName, ShouldEqual, "Ashik")
				So(got[1].StudentName, ShouldEqual, "Asha")
			})
		})

		Convey("When searching by chest number", func() {
			got, err := store.Search(ctx, "c101", 10)
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 1)
			So(got[0].StudentName, ShouldEqual, "Asha")
		})

		Convey("When the limit caps the result set", func() {
			got, err := store.Search(ctx, "", 1)
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 1)
		})

		Convey("When the limit is invalid", func() {
			_, err := store.Search(ctx, "asha", 0)
			So(err, ShouldEqual, repository.ErrInvalidLimit)
		})
	})
}
