package orgtbl

import (
	"github.com/ligonlabs/orgtab/model"
	"github.com/ligonlabs/orgtab/strutil"
)

// suggestionFloor is the minimum similarity for a block name to be offered
// as a "closest match" in a NotFoundError.
const suggestionFloor = 0.6

// DecodeOptions controls decoding.
type DecodeOptions struct {
	// RequireRows makes decoding fail with *EmptyTableError when the table
	// has a header but no data rows. Off by default: empty tables are legal.
	RequireRows bool
}

// Decode parses the first org table found in text. The first table-syntax
// row is the header; heading rules are skipped wherever they appear; every
// field is trimmed and coerced through the shared numeric grammar, with
// empty fields becoming missing cells.
//
// Decode is pure: it never mutates text and returns a fresh Table per call.
func Decode(text string, opts *DecodeOptions) (*model.Table, error) {
	if opts == nil {
		opts = &DecodeOptions{}
	}
	region, start := tableRegion(text)
	return decodeRegion(region, start, "", opts)
}

// DecodeNamed locates the table labeled `#+name: name` in doc and decodes
// it. When the document holds several blocks with the same name, the first
// wins. A missing name, or a name annotation with no table after it, yields
// a *NotFoundError; when another block name is close to the requested one,
// the error carries it as a suggestion.
func DecodeNamed(doc, name string, opts *DecodeOptions) (*model.Table, error) {
	if opts == nil {
		opts = &DecodeOptions{}
	}
	region, start, annotated := namedRegion(doc, name)
	if region == nil {
		err := &NotFoundError{Name: name}
		if !annotated {
			if s, score := strutil.MostSimilar(name, scanNames(doc)); score >= suggestionFloor {
				err.Suggestion = s
			}
		}
		return nil, err
	}
	return decodeRegion(region, start, name, opts)
}

// Names returns every block name annotated in doc, in order of appearance.
func Names(doc string) []string {
	return scanNames(doc)
}

// decodeRegion parses a run of table-syntax lines. firstLine is the 1-based
// line number of the first, used in error positions; name labels errors when
// decoding by name.
func decodeRegion(region []string, firstLine int, name string, opts *DecodeOptions) (*model.Table, error) {
	var header []string
	var t *model.Table
	for i, line := range region {
		if isRuleLine(line) {
			continue
		}
		fields := splitRow(line)
		if header == nil {
			header = fields
			t = model.NewTable(fields...)
			continue
		}
		if len(fields) != len(header) {
			return nil, &MalformedRowError{Line: firstLine + i, Fields: len(fields), Want: len(header)}
		}
		cells := make([]model.Cell, len(fields))
		for j, f := range fields {
			cells[j] = model.Coerce(f)
		}
		if err := t.AppendRow(cells...); err != nil {
			return nil, err
		}
	}
	if header == nil {
		return nil, &NotFoundError{Name: name}
	}
	if opts.RequireRows && t.RowCount() == 0 {
		return nil, &EmptyTableError{Name: name}
	}
	return t, nil
}
