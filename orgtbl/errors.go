package orgtbl

import "fmt"

// NotFoundError reports that a requested named block is absent from the
// document, or that no table follows its name annotation.
type NotFoundError struct {
	Name       string // the requested block name; "" when decoding raw text
	Suggestion string // closest known block name, when one is close enough
}

func (e *NotFoundError) Error() string {
	if e.Name == "" {
		return "orgtbl: no table found"
	}
	if e.Suggestion != "" {
		return fmt.Sprintf("orgtbl: no table named %q (closest match: %q)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("orgtbl: no table named %q", e.Name)
}

// MalformedRowError reports a data row whose field count disagrees with the
// header row.
type MalformedRowError struct {
	Line   int // 1-based line number within the decoded text
	Fields int // fields found on the row
	Want   int // fields in the header
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("orgtbl: row at line %d has %d fields, header has %d", e.Line, e.Fields, e.Want)
}

// EmptyTableError reports a table with a header but no data rows, when the
// caller required rows.
type EmptyTableError struct {
	Name string // the block name, when decoding by name
}

func (e *EmptyTableError) Error() string {
	if e.Name == "" {
		return "orgtbl: table has no data rows"
	}
	return fmt.Sprintf("orgtbl: table %q has no data rows", e.Name)
}
