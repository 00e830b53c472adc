// Package cell turns raw heterogeneous spreadsheet cell values into
// canonical tokens.
//
// Every cell passes through exactly one coercion point (Value.String) before
// any semantic interpretation, so a legitimate numeric zero is never
// collapsed into an absent cell.
package cell

import (
	"strconv"
	"strings"
)

// Kind discriminates the coerced cell value union.
type Kind int

const (
	// Empty marks a missing cell or one holding only whitespace.
	Empty Kind = iota
	// Text marks a non-numeric string cell.
	Text
	// Number marks a cell whose text parses as a number. The original
	// text is retained so "0" and "01" survive coercion unchanged.
	Number
)

// Value is a single coerced cell.
type Value struct {
	kind Kind
	text string
}

// FromRaw classifies a raw cell string into a Value.
func FromRaw(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Value{kind: Empty}
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return Value{kind: Number, text: s}
	}
	return Value{kind: Text, text: s}
}

// Kind returns the value's discriminator.
func (v Value) Kind() Kind { return v.kind }

// String is the single documented coercion to text. Empty yields "",
// Number and Text yield the trimmed original text.
func (v Value) String() string { return v.text }

// IsEmpty reports whether the cell held no usable content.
func (v Value) IsEmpty() bool { return v.kind == Empty }
