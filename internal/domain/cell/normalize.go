package cell

import "strings"

// Canonical place tokens.
const (
	PlaceFirst  = "First"
	PlaceSecond = "Second"
	PlaceThird  = "Third"
)

// ordinal suffixes stripped from numeric placements like "1st" or "3RD".
var ordinalSuffixes = []string{"st", "nd", "rd", "th"}

// Grade normalizes a grade cell: uppercase, trimmed, with the legacy "1"
// encoding mapped to "A". Malformed input passes through unchanged.
func Grade(v Value) string {
	g := strings.ToUpper(v.String())
	if g == "1" {
		return "A"
	}
	return g
}

// Place normalizes a place cell into a canonical rank token. It lowercases,
// trims, strips one leading hyphen and an ordinal suffix on numeric forms,
// then classifies first-match-wins. A bare "i" is the Roman-numeral
// convention for first place on rank-only sheets; impliedGradeA signals
// that the row's grade should default to "A" when still blank.
//
// Unclassified tokens (free-text placements such as "Participation") pass
// through with the first letter capitalized. Never errors.
func Place(v Value) (place string, impliedGradeA bool) {
	raw := strings.ToLower(v.String())
	raw = strings.TrimPrefix(raw, "-")
	raw = stripOrdinal(raw)

	switch {
	case strings.Contains(raw, "fir") || raw == "1":
		return PlaceFirst, false
	case strings.Contains(raw, "seco") || raw == "2":
		return PlaceSecond, false
	case strings.Contains(raw, "thi") || raw == "3":
		return PlaceThird, false
	case raw == "i":
		return PlaceFirst, true
	}
	return capitalize(raw), false
}

// stripOrdinal removes a trailing ordinal suffix from numeric-plus-suffix
// forms only; "first" keeps its "st".
func stripOrdinal(s string) string {
	for _, suf := range ordinalSuffixes {
		trimmed, ok := strings.CutSuffix(s, suf)
		if ok && trimmed != "" && isDigits(trimmed) {
			return trimmed
		}
	}
	return s
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
