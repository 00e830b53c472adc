// Package workbook decodes an uploaded spreadsheet binary into raw sheets
// ready for normalization.
package workbook

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/okian/podium/internal/domain/cell"
	"github.com/okian/podium/internal/domain/sheet"
)

// Sheet pairs a worksheet's identifier with its coerced cell grid.
type Sheet struct {
	Name string
	Rows sheet.RawSheet
}

// Decode opens an in-memory workbook and returns its sheets in upload
// order. Every cell passes through cell.FromRaw so later stages only see
// the coerced union type.
func Decode(data []byte) ([]Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	names := f.GetSheetList()
	if len(names) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	sheets := make([]Sheet, 0, len(names))
	for _, name := range names {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}

		grid := make(sheet.RawSheet, len(rows))
		for i, row := range rows {
			coerced := make([]cell.Value, len(row))
			for j, raw := range row {
				coerced[j] = cell.FromRaw(raw)
			}
			grid[i] = coerced
		}
		sheets = append(sheets, Sheet{Name: name, Rows: grid})
	}

	return sheets, nil
}
