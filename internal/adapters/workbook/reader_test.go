package workbook_test

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/okian/podium/internal/adapters/workbook"
	. "github.com/smartystreets/goconvey/convey"
)

// buildWorkbook writes a one-sheet xlsx into memory.
func buildWorkbook(t *testing.T, sheetName string, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		t.Fatalf("delete default sheet: %v", err)
	}

	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheetName, addr, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	Convey("Given an xlsx workbook in memory", t, func() {
		data := buildWorkbook(t, "101", [][]interface{}{
			{"Fest 2026"},
			{},
			{"EVENT: Quiz Competition"},
			{},
			{"Sl No", "Chest No", "Name of Student", "Class", "School", "Grade", "Place"},
			{1, "C101", "Asha", "5A", "Oakwood", "A", "1st"},
		})

		Convey("When decoded", func() {
			sheets, err := workbook.Decode(data)

			Convey("Then cells survive as coerced values in sheet order", func() {
				So(err, ShouldBeNil)
				So(sheets, ShouldHaveLength, 1)
				So(sheets[0].Name, ShouldEqual, "101")
				So(sheets[0].Rows.At(2, 0).String(), ShouldEqual, "EVENT: Quiz Competition")
				So(sheets[0].Rows.At(5, 2).String(), ShouldEqual, "Asha")
				So(sheets[0].Rows.At(5, 0).String(), ShouldEqual, "1")
			})
		})
	})

	Convey("Given bytes that are not a workbook", t, func() {
		_, err := workbook.Decode([]byte("not a spreadsheet"))

		Convey("Then decoding fails", func() {
			So(err, ShouldNotBeNil)
		})
	})
}
