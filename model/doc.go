// Package model provides the intermediate representation (IR) for tabular
// data.
//
// This package defines the user-facing data structures that every reader and
// writer in the module produces or consumes, making them the primary API for
// working with tables regardless of where they came from.
//
// # Cells
//
// A [Cell] is a closed tagged union over the three kinds of value a table
// cell can hold:
//
//   - [Number] - a float64 value
//   - [Text] - a string value
//   - [Missing] - an absent value
//
// The zero Cell is missing. There is no dynamic value type; consumers switch
// on [Cell.Kind] rather than inspecting runtime types.
//
// # Tables
//
// A [Table] is an ordered sequence of named columns and an ordered sequence
// of rows. Column order is insertion order and is preserved by every encoder
// in the module. [Table.AppendRow] enforces the width invariant: every row
// holds exactly one cell per column.
//
// # Coercion
//
// [Coerce] converts a raw text field into a Cell, recognizing numeric
// literals by a fixed grammar (optional sign, digits, optional fraction,
// optional exponent). Every reader in the module uses the same grammar, so a
// field that decodes as a number from a CSV file also decodes as a number
// from an org document.
package model
