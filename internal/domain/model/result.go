// Package model contains domain models passed between layers.
package model

import "time"

// Result is the canonical record produced from one data row of a results
// sheet. It is the unit of persistence; identity for replace semantics is
// the (EventName, Category) pair.
type Result struct {
	EventCode   string    // worksheet identifier, or "MISC"
	EventName   string    // trimmed event name from the sheet's metadata row
	Category    string    // embedded sheet label, external number, or the configured default
	ChestNo     string    // participant chest number, when the sheet carries one
	StudentName string    // required; rows without a name are rejected
	ClassName   string    // class/section, when the sheet carries one
	School      string
	Grade       string    // single uppercase letter or empty
	Place       string    // "First"/"Second"/"Third" or a capitalized residual
	Points      int       // placePoints + gradePoints, never negative
	UpdatedAt   time.Time // set by the store on insert
}

// ReplaceKey identifies the set of records one sheet batch supersedes.
type ReplaceKey struct {
	EventName string
	Category  string
}

// Key returns the replace key for a result.
func (r Result) Key() ReplaceKey {
	return ReplaceKey{EventName: r.EventName, Category: r.Category}
}

// Summary reports the outcome of one workbook upload.
type Summary struct {
	Count  int      // total records inserted across all sheets
	Events []string // event names in processing order, duplicates preserved
}

// SchoolStanding is one row of the school leaderboard: a grouped sum of
// points ranked descending with sequential 1-based ranks.
type SchoolStanding struct {
	Rank   int
	School string
	Points int
}
