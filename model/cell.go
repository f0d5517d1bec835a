package model

import (
	"regexp"
	"strconv"
)

// CellKind identifies which member of the cell union is populated.
type CellKind int

const (
	// KindMissing indicates an absent value.
	KindMissing CellKind = iota
	// KindNumber indicates a numeric value.
	KindNumber
	// KindText indicates a text value.
	KindText
)

// String returns the string representation of the cell kind.
func (k CellKind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Cell is a closed tagged union holding one of a numeric value, a text
// value, or nothing. The zero Cell is missing.
type Cell struct {
	kind CellKind
	num  float64
	text string
}

// Missing returns a cell holding no value.
func Missing() Cell {
	return Cell{}
}

// Number returns a cell holding a numeric value.
func Number(f float64) Cell {
	return Cell{kind: KindNumber, num: f}
}

// Text returns a cell holding a text value.
func Text(s string) Cell {
	return Cell{kind: KindText, text: s}
}

// Kind returns which member of the union is populated.
func (c Cell) Kind() CellKind { return c.kind }

// IsMissing reports whether the cell holds no value.
func (c Cell) IsMissing() bool { return c.kind == KindMissing }

// Number returns the numeric value, or 0 if the cell is not numeric.
func (c Cell) Number() float64 { return c.num }

// Text returns the text value, or "" if the cell is not text.
func (c Cell) Text() string { return c.text }

// String renders the cell as a plain field: numbers in %g form, text
// verbatim, missing as the empty string.
func (c Cell) String() string {
	switch c.kind {
	case KindNumber:
		return strconv.FormatFloat(c.num, 'g', -1, 64)
	case KindText:
		return c.text
	default:
		return ""
	}
}

// Equal reports whether two cells hold the same kind and value.
func (c Cell) Equal(o Cell) bool {
	if c.kind != o.kind {
		return false
	}
	switch c.kind {
	case KindNumber:
		return c.num == o.num
	case KindText:
		return c.text == o.text
	default:
		return true
	}
}

// numberRe is the numeric literal grammar shared by every reader: optional
// sign, digits, optional decimal point with fractional digits, optional
// exponent. Fields like ".5" or "3." remain text.
var numberRe = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// Coerce converts a trimmed field into a cell. An empty field becomes
// missing; a field matching the numeric literal grammar becomes a number;
// anything else remains text.
func Coerce(field string) Cell {
	if field == "" {
		return Missing()
	}
	if numberRe.MatchString(field) {
		if f, err := strconv.ParseFloat(field, 64); err == nil {
			return Number(f)
		}
	}
	return Text(field)
}
