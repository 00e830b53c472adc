// Package scoring defines the contract for computing points from
// normalized places and grades.
package scoring

import "strings"

// Default scoring configuration constants.
const (
	firstIndividual  = 5
	firstGroup       = 10
	secondIndividual = 3
	secondGroup      = 6
	thirdIndividual  = 1
	thirdGroup       = 2
)

// defaultGroupKeywords classifies an event as a group event when its name
// contains any of these, case-insensitive.
var defaultGroupKeywords = []string{"GROUP"}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithGroupKeywords replaces the group-event keyword list. Empty input
// keeps the default.
func WithGroupKeywords(keywords ...string) Option {
	return func(e *Engine) {
		if len(keywords) > 0 {
			e.groupKeywords = append([]string(nil), keywords...)
		}
	}
}

// Engine computes points for a result row. It is pure: no I/O, no state
// beyond the configured keyword list.
type Engine struct {
	groupKeywords []string
}

// NewEngine creates an Engine with configuration options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		groupKeywords: defaultGroupKeywords,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// IsGroup reports whether an event name denotes a group (team) event.
// The test is a case-insensitive substring match over the full name.
func (e *Engine) IsGroup(eventName string) bool {
	upper := strings.ToUpper(eventName)
	for _, kw := range e.groupKeywords {
		if strings.Contains(upper, strings.ToUpper(kw)) {
			return true
		}
	}
	return false
}

// PlacePoints returns the points awarded for a canonical place token.
// Unrecognized places score zero.
func (e *Engine) PlacePoints(place string, group bool) int {
	switch place {
	case "First":
		return pick(group, firstGroup, firstIndividual)
	case "Second":
		return pick(group, secondGroup, secondIndividual)
	case "Third":
		return pick(group, thirdGroup, thirdIndividual)
	}
	return 0
}

// GradePoints returns the points awarded for a letter grade.
// Unrecognized grades score zero.
func (e *Engine) GradePoints(grade string, group bool) int {
	switch grade {
	case "A":
		return pick(group, firstGroup, firstIndividual)
	case "B":
		return pick(group, secondGroup, secondIndividual)
	case "C":
		return pick(group, thirdGroup, thirdIndividual)
	}
	return 0
}

// Total returns the combined points for a row. Place and grade points are
// additive, never exclusive: a row carrying both scores both.
func (e *Engine) Total(place, grade string, group bool) int {
	return e.PlacePoints(place, group) + e.GradePoints(grade, group)
}

func pick(group bool, g, i int) int {
	if group {
		return g
	}
	return i
}
