// Package htmltab reads tables from HTML documents.
package htmltab

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/ligonlabs/orgtab/model"
)

// ErrNoTable indicates a document with no table at the requested position.
var ErrNoTable = errors.New("htmltab: no table found in document")

// Options controls reading.
type Options struct {
	// Index selects which table in the document to read, in document
	// order, 0-based. Zero means the first table.
	Index int
}

// ReadFile reads one table from an HTML file.
func ReadFile(filename string, opts *Options) (*model.Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("htmltab: opening file: %w", err)
	}
	defer f.Close()

	return Read(f, opts)
}

// Read reads one table from an HTML document. The header row comes from the
// thead section or a leading row of th cells; a table with neither treats
// its first row as the header. Cell text is trimmed and coerced through the
// shared numeric grammar.
func Read(r io.Reader, opts *Options) (*model.Table, error) {
	if opts == nil {
		opts = &Options{}
	}
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmltab: parsing HTML: %w", err)
	}

	tables := findTables(doc)
	if opts.Index < 0 || opts.Index >= len(tables) {
		return nil, ErrNoTable
	}

	return tableFromNode(tables[opts.Index])
}

// Count returns how many tables the document holds.
func Count(r io.Reader) (int, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return 0, fmt.Errorf("htmltab: parsing HTML: %w", err)
	}
	return len(findTables(doc)), nil
}

// findTables collects table elements in document order.
func findTables(n *html.Node) []*html.Node {
	var tables []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "table" {
			tables = append(tables, n)
			return // nested tables are not supported
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return tables
}

// tableFromNode converts a table element into a model.Table.
func tableFromNode(tableNode *html.Node) (*model.Table, error) {
	var rows [][]string
	headerRows := 0

	// Find thead, tbody, or direct tr children.
	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead":
			for _, row := range sectionRows(c) {
				rows = append(rows, row)
				headerRows++
			}
		case "tbody":
			rows = append(rows, sectionRows(c)...)
		case "tr":
			if row := rowFields(c); len(row) > 0 {
				rows = append(rows, row)
			}
		}
	}
	if len(rows) == 0 {
		return nil, ErrNoTable
	}

	// Without a thead, the first row is the header.
	if headerRows == 0 {
		headerRows = 1
	}

	header := rows[headerRows-1]
	t := model.NewTable(header...)
	for i, row := range rows[headerRows:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("htmltab: row %d has %d cells, header has %d",
				i+1, len(row), len(header))
		}
		cells := make([]model.Cell, len(row))
		for j, f := range row {
			cells[j] = model.Coerce(f)
		}
		if err := t.AppendRow(cells...); err != nil {
			return nil, fmt.Errorf("htmltab: %w", err)
		}
	}
	return t, nil
}

// sectionRows parses the tr children of a thead or tbody.
func sectionRows(section *html.Node) [][]string {
	var rows [][]string
	for c := section.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "tr" {
			if row := rowFields(c); len(row) > 0 {
				rows = append(rows, row)
			}
		}
	}
	return rows
}

// rowFields extracts trimmed cell text from a tr element.
func rowFields(tr *html.Node) []string {
	var row []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			row = append(row, strings.TrimSpace(textContent(c)))
		}
	}
	return row
}

// textContent concatenates the text nodes beneath n.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
