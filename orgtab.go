// Package orgtab provides a fluent API for reading tables out of org-mode
// documents and other tabular files, and for rendering tables back to
// org-mode text.
//
// Basic usage:
//
//	table, err := orgtab.Open("paper.org").Named("results").Table()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Print(orgtab.Render(table, nil))
//
// Open dispatches on the file's format, so the same call reads CSV, TSV,
// XLSX, and HTML sources:
//
//	table, err := orgtab.Open("book.xlsx").Sheet("2024").Table()
//
// For advanced use cases, the lower-level orgtbl, csvtab, xlsxtab, and
// htmltab packages are also available.
package orgtab

import (
	"fmt"
	"io"
	"strings"

	"github.com/ligonlabs/orgtab/model"
	"github.com/ligonlabs/orgtab/orgtbl"
)

// Extractor reads one table from a source, configured fluently. Terminal
// operations (Table, Names) perform the read; configuration methods return
// a derived Extractor and never fail.
type Extractor struct {
	filename string
	reader   io.Reader
	source   string
	isText   bool
	options  ExtractOptions
}

// Open prepares to read a table from a file. The format is detected from
// the filename extension, falling back to content sniffing.
//
// Example:
//
//	table, err := orgtab.Open("paper.org").Named("results").Table()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader prepares to read an org-mode document from an already-opened
// reader. The caller keeps responsibility for closing it.
func FromReader(r io.Reader) *Extractor {
	return &Extractor{
		reader:  r,
		options: defaultOptions(),
	}
}

// FromString prepares to read an org-mode document held in memory.
func FromString(doc string) *Extractor {
	return &Extractor{
		source:  doc,
		isText:  true,
		options: defaultOptions(),
	}
}

// Named selects the table labeled `#+name: name`. Only meaningful for
// org-mode sources.
func (e *Extractor) Named(name string) *Extractor {
	out := e.with()
	out.options.name = name
	return out
}

// Sheet selects a worksheet by name. Only meaningful for XLSX sources.
func (e *Extractor) Sheet(name string) *Extractor {
	out := e.with()
	out.options.sheet = name
	return out
}

// TableIndex selects which table of an HTML document to read, 0-based.
func (e *Extractor) TableIndex(i int) *Extractor {
	out := e.with()
	out.options.tableIndex = i
	return out
}

// RequireRows makes Table fail with *orgtbl.EmptyTableError when the
// decoded table has a header but no data rows.
func (e *Extractor) RequireRows() *Extractor {
	out := e.with()
	out.options.requireRows = true
	return out
}

// Table performs the read and returns the table.
func (e *Extractor) Table() (*model.Table, error) {
	if e.filename != "" {
		return readTable(e.filename, e.options)
	}
	doc, err := e.document()
	if err != nil {
		return nil, err
	}
	return decodeDocument(doc, e.options)
}

// Names performs the read and returns every block name annotated in the
// document, in order.
func (e *Extractor) Names() ([]string, error) {
	doc, err := e.document()
	if err != nil {
		return nil, err
	}
	return orgtbl.Names(doc), nil
}

// document materializes the source text.
func (e *Extractor) document() (string, error) {
	switch {
	case e.isText:
		return e.source, nil
	case e.reader != nil:
		data, err := io.ReadAll(e.reader)
		if err != nil {
			return "", fmt.Errorf("orgtab: reading source: %w", err)
		}
		return string(data), nil
	case e.filename != "":
		data, err := readFileBytes(e.filename)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("orgtab: no source configured")
	}
}

// with clones the extractor so configuration never mutates shared state.
func (e *Extractor) with() *Extractor {
	out := *e
	out.options = e.options.clone()
	return &out
}

// decodeDocument decodes org text, by name when one is configured.
func decodeDocument(doc string, opts ExtractOptions) (*model.Table, error) {
	dopts := &orgtbl.DecodeOptions{RequireRows: opts.requireRows}
	if opts.name != "" {
		return orgtbl.DecodeNamed(doc, opts.name, dopts)
	}
	return orgtbl.Decode(doc, dopts)
}

// Parse decodes the first org table found in text. It is shorthand for
// FromString(text).Table().
func Parse(text string) (*model.Table, error) {
	return orgtbl.Decode(text, nil)
}

// Render encodes a table as org-mode text. A nil opts uses the defaults,
// under which Parse(Render(t)) reproduces t.
func Render(t *model.Table, opts *orgtbl.EncodeOptions) string {
	return orgtbl.Encode(t, opts)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	table := orgtab.Must(orgtab.Open("paper.org").Named("results").Table())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// sniffText reports whether data is likely a text document rather than a
// binary container.
func sniffText(data []byte) bool {
	return !strings.ContainsRune(string(data[:min(len(data), 512)]), 0)
}
