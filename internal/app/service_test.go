package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/okian/podium/internal/adapters/repository"
	service "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

// workbookBytes assembles an in-memory xlsx with one sheet per entry.
func workbookBytes(t *testing.T, sheets map[string][][]interface{}, order []string) []byte {
	t.Helper()

	f := excelize.NewFile()
	for _, name := range order {
		idx, err := f.NewSheet(name)
		if err != nil {
			t.Fatalf("new sheet %q: %v", name, err)
		}
		f.SetActiveSheet(idx)
		for i, row := range sheets[name] {
			addr, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			r := row
			if err := f.SetSheetRow(name, addr, &r); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		t.Fatalf("delete default sheet: %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func quizSheet() [][]interface{} {
	return [][]interface{}{
		{"Fest 2026"},
		{},
		{"EVENT: Quiz Competition"},
		{},
		{"Sl No", "Chest No", "Name of Student", "Class", "School", "Grade", "Place"},
		{1, "C101", "Asha", "5A", "Oakwood", "A", "1st"},
		{2, "C102", "Meera", "5B", "Riverdale", "B", "2"},
	}
}

func oppanaSheet() [][]interface{} {
	return [][]interface{}{
		{},
		{},
		{"EVENT: GROUP OPPANA"},
		{},
		{"Sl No", "Chest No", "Name of Student", "Class", "School", "Grade", "Place"},
		{1, "T1", "Riverdale Blue", "", "Riverdale", "A", "First"},
	}
}

func notesSheet() [][]interface{} {
	return [][]interface{}{
		{"reminders"},
		{"judges at 9"},
		{"stage B closed"},
	}
}

func TestServiceUpload(t *testing.T) {
	Convey("Given a service over an in-memory store", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()
		svc := service.New(service.WithStore(store))

		data := workbookBytes(t, map[string][][]interface{}{
			"101":          quizSheet(),
			"GROUP OPPANA": oppanaSheet(),
			"Notes":        notesSheet(),
		}, []string{"101", "GROUP OPPANA", "Notes"})

		Convey("When a mixed workbook is uploaded", func() {
			summary, err := svc.Upload(ctx, data, nil)

			Convey("Then data sheets are stored and the notes sheet is skipped", func() {
				So(err, ShouldBeNil)
				So(summary.Count, ShouldEqual, 3)
				So(summary.Events, ShouldResemble, []string{"Quiz Competition", "GROUP OPPANA"})
				So(store.Count(ctx), ShouldEqual, 3)
			})

			Convey("Then group scoring applied to the group sheet", func() {
				got, err := store.Search(ctx, "riverdale blue", 10)
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, 1)
				So(got[0].Points, ShouldEqual, 20) // 10 place + 10 grade
			})
		})

		Convey("When the same workbook is uploaded twice", func() {
			_, err := svc.Upload(ctx, data, nil)
			So(err, ShouldBeNil)
			summary, err := svc.Upload(ctx, data, nil)
			So(err, ShouldBeNil)

			Convey("Then the replace keys keep the store idempotent", func() {
				So(summary.Count, ShouldEqual, 3)
				So(store.Count(ctx), ShouldEqual, 3)
			})
		})

		Convey("When the uploader supplies a category number", func() {
			three := 3
			_, err := svc.Upload(ctx, data, &three)
			So(err, ShouldBeNil)

			Convey("Then it overrides the embedded category on every record", func() {
				got, err := store.Search(ctx, "asha", 10)
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, 1)
				So(got[0].Category, ShouldEqual, "3")
			})

			Convey("Then re-uploading under the same number replaces, not duplicates", func() {
				_, err := svc.Upload(ctx, data, &three)
				So(err, ShouldBeNil)
				So(store.Count(ctx), ShouldEqual, 3)
			})
		})

		Convey("When the payload is empty", func() {
			_, err := svc.Upload(ctx, nil, nil)
			So(errors.Is(err, service.ErrEmptyUpload), ShouldBeTrue)
		})

		Convey("When the payload is not a workbook", func() {
			_, err := svc.Upload(ctx, []byte("plain text"), nil)
			So(errors.Is(err, service.ErrWorkbook), ShouldBeTrue)
		})
	})
}

// failAfterStore wraps a store and fails Replace from the nth call on.
type failAfterStore struct {
	repository.Store
	calls   int
	failAt  int
	errStub error
}

func (f *failAfterStore) Replace(ctx context.Context, key model.ReplaceKey, batch []model.Result) (int, error) {
	f.calls++
	if f.calls >= f.failAt {
		return 0, f.errStub
	}
	return f.Store.Replace(ctx, key, batch)
}

func TestServiceUploadStoreFailure(t *testing.T) {
	Convey("Given a store that fails on the second sheet", t, func() {
		ctx := context.Background()
		mem := repository.NewMemoryStore()
		stub := errors.New("connection reset")
		store := &failAfterStore{Store: mem, failAt: 2, errStub: stub}
		svc := service.New(service.WithStore(store))

		data := workbookBytes(t, map[string][][]interface{}{
			"101":          quizSheet(),
			"GROUP OPPANA": oppanaSheet(),
		}, []string{"101", "GROUP OPPANA"})

		Convey("When the upload runs", func() {
			_, err := svc.Upload(ctx, data, nil)

			Convey("Then the error surfaces and the first sheet's records remain", func() {
				So(errors.Is(err, stub), ShouldBeTrue)
				So(mem.Count(ctx), ShouldEqual, 2)
			})
		})
	})
}

func TestServiceConfigurableKeywords(t *testing.T) {
	Convey("Given a service with custom group keywords", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()
		svc := service.New(
			service.WithStore(store),
			service.WithGroupKeywords([]string{"ENSEMBLE"}),
		)

		data := workbookBytes(t, map[string][][]interface{}{
			"GROUP OPPANA": oppanaSheet(),
		}, []string{"GROUP OPPANA"})

		Convey("When an event matches none of the keywords", func() {
			_, err := svc.Upload(ctx, data, nil)
			So(err, ShouldBeNil)

			Convey("Then it scores on the individual table", func() {
				got, err := store.Search(ctx, "riverdale blue", 10)
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, 1)
				So(got[0].Points, ShouldEqual, 10) // 5 place + 5 grade
			})
		})
	})
}

func TestServiceReads(t *testing.T) {
	Convey("Given a populated service", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()
		svc := service.New(service.WithStore(store), service.WithMaxSearchLimit(1))

		data := workbookBytes(t, map[string][][]interface{}{
			"101": quizSheet(),
		}, []string{"101"})
		_, err := svc.Upload(ctx, data, nil)
		So(err, ShouldBeNil)

		Convey("When standings are requested", func() {
			standings, err := svc.Standings(ctx)
			So(err, ShouldBeNil)
			So(standings, ShouldHaveLength, 2)
			So(standings[0].School, ShouldEqual, "Oakwood")
			So(standings[0].Rank, ShouldEqual, 1)
		})

		Convey("When searching with the configured cap", func() {
			got, err := svc.Search(ctx, "")
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 1)
		})

		Convey("When stats are read", func() {
			stats := svc.GetStats()
			So(stats["records"], ShouldEqual, 2)
			So(stats["maxSearchLimit"], ShouldEqual, 1)
		})
	})
}
