// Package sheet normalizes one worksheet of a results workbook into a
// batch of canonical records: it locates the data header, extracts the
// event metadata, and walks the data rows.
package sheet

import (
	"strings"

	"github.com/okian/podium/internal/domain/cell"
)

// RawSheet is the ordered cell grid of one worksheet, already coerced
// through the cell package. Row 0 is index 0.
type RawSheet [][]cell.Value

// At returns the value at (row, col), or an empty Value when either index
// falls outside the grid. A NotFound column therefore reads as empty
// rather than failing.
func (s RawSheet) At(row, col int) cell.Value {
	if row < 0 || row >= len(s) || col < 0 || col >= len(s[row]) {
		return cell.Value{}
	}
	return s[row][col]
}

// NotFound is the ColumnMap sentinel for a semantic field with no matching
// header cell. It is distinct from a real index 0.
const NotFound = -1

// headerScanWindow bounds how many leading rows are searched for the data
// header.
const headerScanWindow = 10

// defaultDataStart is the first data row assumed when no header row is
// located within the scan window.
const defaultDataStart = 5

// ColumnMap maps each semantic field to a zero-based column index, or
// NotFound.
type ColumnMap struct {
	Name   int
	Chest  int
	Class  int
	School int
	Grade  int
	Place  int
}

// DefaultColumns returns the static fallback mapping used when no header
// row is located. Chest and class columns only exist via a real header.
func DefaultColumns() ColumnMap {
	return ColumnMap{Name: 2, Chest: NotFound, Class: NotFound, School: 4, Grade: 5, Place: 6}
}

// HeaderLocator finds the data header row and derives a ColumnMap from it.
// It stands in for a schema: the "header found" and "use defaults"
// branches are distinct, testable paths.
type HeaderLocator struct{}

// NewHeaderLocator creates a locator.
func NewHeaderLocator() *HeaderLocator {
	return &HeaderLocator{}
}

// Locate scans the first rows of the sheet for the data header: the first
// row holding a cell containing "student" or "name". When found it returns
// the derived ColumnMap, the header row index, and true; the first data
// row is headerRow+1. Otherwise it returns the static defaults, the fixed
// default data start, and false.
func (l *HeaderLocator) Locate(rows RawSheet) (cols ColumnMap, dataStart int, found bool) {
	limit := min(len(rows), headerScanWindow)

	for i := 0; i < limit; i++ {
		normalized := make([]string, len(rows[i]))
		for j, v := range rows[i] {
			normalized[j] = strings.ToLower(v.String())
		}

		nameIdx := indexMatching(normalized, func(c string) bool {
			return strings.Contains(c, "student") || strings.Contains(c, "name")
		})
		if nameIdx == NotFound {
			continue
		}

		cols = ColumnMap{
			Name: nameIdx,
			Chest: indexMatching(normalized, func(c string) bool {
				return strings.Contains(c, "chest")
			}),
			Class: indexMatching(normalized, func(c string) bool {
				return strings.Contains(c, "class") || strings.Contains(c, "std")
			}),
			School: indexMatching(normalized, func(c string) bool {
				return strings.Contains(c, "school") || strings.Contains(c, "institution")
			}),
			Grade: indexMatching(normalized, func(c string) bool {
				return strings.Contains(c, "grade") || strings.Contains(c, "mark") || c == "1"
			}),
			Place: indexMatching(normalized, func(c string) bool {
				return strings.Contains(c, "place") || strings.Contains(c, "rank") || strings.Contains(c, "pos")
			}),
		}
		return cols, i + 1, true
	}

	return DefaultColumns(), defaultDataStart, false
}

// indexMatching returns the index of the first cell satisfying match, or
// NotFound.
func indexMatching(cells []string, match func(string) bool) int {
	for i, c := range cells {
		if match(c) {
			return i
		}
	}
	return NotFound
}
