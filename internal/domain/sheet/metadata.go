package sheet

import (
	"regexp"
	"strings"
)

// Meta is the per-sheet event metadata read from the fixed rows above the
// data table.
type Meta struct {
	EventName string
	Category  string
	EventCode string
}

// eventRow is the fixed row index holding the event name and category
// label.
const eventRow = 2

// miscEventCode marks sheets whose name cannot serve as a numeric event
// code.
const miscEventCode = "MISC"

var eventLabelRE = regexp.MustCompile(`(?i)^EVENT\s*:\s*`)

// ExtractMeta reads the event metadata from the sheet. ok is false when
// the sheet carries no event name; that is a structural signal that the
// sheet is not a results sheet, not an error.
//
// The category is the cell following a "category" label in the event row,
// accepted only when longer than one character; a stray digit next to the
// label is noise, not a category. Otherwise defaultCategory applies.
func ExtractMeta(rows RawSheet, sheetName, defaultCategory string) (Meta, bool) {
	raw := rows.At(eventRow, 0).String()
	eventName := strings.TrimSpace(eventLabelRE.ReplaceAllString(raw, ""))
	if eventName == "" {
		return Meta{}, false
	}

	meta := Meta{
		EventName: eventName,
		Category:  defaultCategory,
		EventCode: eventCode(sheetName),
	}

	if eventRow < len(rows) {
		for i, v := range rows[eventRow] {
			if !strings.Contains(strings.ToLower(v.String()), "category") {
				continue
			}
			if val := rows.At(eventRow, i+1).String(); len(val) > 1 {
				meta.Category = val
			}
			break
		}
	}

	return meta, true
}

// eventCode derives the event code from the worksheet identifier: purely
// numeric sheet names are codes, anything else falls back to MISC.
func eventCode(sheetName string) string {
	name := strings.TrimSpace(sheetName)
	if isNumeric(name) {
		return name
	}
	return miscEventCode
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
