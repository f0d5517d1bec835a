// Package csvtab converts between delimiter-separated text and the Table
// model. The first record is the header; fields are coerced through the
// shared numeric grammar.
package csvtab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ligonlabs/orgtab/model"
)

// Options controls reading and writing.
type Options struct {
	// Comma is the field delimiter. Zero means ',' on read and write; use
	// '\t' for TSV.
	Comma rune

	// TrimFields trims surrounding whitespace from every field before
	// coercion. On by default when Options is nil.
	TrimFields bool
}

func (o *Options) withDefaults() Options {
	if o == nil {
		return Options{Comma: ',', TrimFields: true}
	}
	out := *o
	if out.Comma == 0 {
		out.Comma = ','
	}
	return out
}

// Read parses delimiter-separated text into a Table. The first record
// supplies the column names.
func Read(r io.Reader, opts *Options) (*model.Table, error) {
	o := opts.withDefaults()
	cr := csv.NewReader(r)
	cr.Comma = o.Comma
	cr.FieldsPerRecord = 0 // every record must match the header width

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("csvtab: input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("csvtab: reading header: %w", err)
	}
	if o.TrimFields {
		trimAll(header)
	}

	t := model.NewTable(header...)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvtab: reading record: %w", err)
		}
		if o.TrimFields {
			trimAll(record)
		}
		cells := make([]model.Cell, len(record))
		for i, f := range record {
			cells[i] = model.Coerce(f)
		}
		if err := t.AppendRow(cells...); err != nil {
			return nil, fmt.Errorf("csvtab: %w", err)
		}
	}
	return t, nil
}

// ReadFile parses a delimiter-separated file into a Table.
func ReadFile(filename string, opts *Options) (*model.Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("csvtab: opening file: %w", err)
	}
	defer f.Close()

	return Read(f, opts)
}

// Write renders a Table as delimiter-separated text, header first. Numbers
// are written in %g form and missing cells as empty fields, so reading the
// output back reproduces the table.
func Write(w io.Writer, t *model.Table, opts *Options) error {
	o := opts.withDefaults()
	cw := csv.NewWriter(w)
	cw.Comma = o.Comma

	if err := cw.Write(t.Columns()); err != nil {
		return fmt.Errorf("csvtab: writing header: %w", err)
	}
	record := make([]string, t.ColCount())
	for i := 0; i < t.RowCount(); i++ {
		for j := range record {
			record[j] = t.Cell(i, j).String()
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csvtab: writing record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func trimAll(fields []string) {
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
}
