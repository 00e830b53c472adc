// Command samplebook writes a small demo workbook exercising the shapes
// the ingestion pipeline has to tolerate: a found header with shifted
// columns, a group event, ordinal and Roman-numeral placements, and a
// non-data sheet.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

var out = flag.String("out", "sample-results.xlsx", "output workbook path")

func main() {
	flag.Parse()

	if err := write(*out); err != nil {
		fmt.Fprintln(os.Stderr, "samplebook:", err)
		os.Exit(1)
	}
	fmt.Println("wrote", *out)
}

func write(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	quiz := [][]interface{}{
		{"St. Mary's Fest 2026"},
		{},
		{"EVENT: Quiz Competition", "", "Category:", "Under 16"},
		{},
		{"Sl No", "Chest No", "Name of Student", "Class", "School", "Grade", "Place"},
		{1, "C101", "Asha", "5A", "Oakwood", "A", "1st"},
		{2, "C102", "Vivaan", "5B", "Riverdale", "B", "2nd"},
		{3, "C103", "Meera", "5A", "Oakwood", "", "-third"},
		{4, "C104", "Tom", "5C", "Hillside", "C", "I"},
	}
	if err := writeSheet(f, "101", quiz); err != nil {
		return err
	}

	oppana := [][]interface{}{
		{},
		{},
		{"EVENT: GROUP OPPANA", "", "Category:", "Senior"},
		{},
		{"Sl No", "Team", "Name of Student", "Class", "School", "Grade", "Place"},
		{1, "T1", "Riverdale Blue", "", "Riverdale", "B", "Second"},
		{2, "T2", "Oakwood Gold", "", "Oakwood", "A", "1"},
	}
	if err := writeSheet(f, "Group Oppana", oppana); err != nil {
		return err
	}

	// a sheet too small to hold a results table; the pipeline skips it
	notes := [][]interface{}{
		{"Notes"},
		{"judges arrive at 9"},
		{"stage B unavailable"},
	}
	if err := writeSheet(f, "Notes", notes); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell address: %w", err)
		}
		if err := f.SetSheetRow(name, addr, &row); err != nil {
			return fmt.Errorf("write sheet %q row %d: %w", name, i, err)
		}
	}
	return nil
}
