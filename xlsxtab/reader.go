// Package xlsxtab reads tables from Excel (.xlsx) workbooks.
package xlsxtab

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ligonlabs/orgtab/model"
)

// ErrNoSheets indicates a workbook with no worksheets.
var ErrNoSheets = errors.New("xlsxtab: workbook has no worksheets")

// Options controls reading.
type Options struct {
	// Sheet selects the worksheet by name. Empty means the first sheet.
	Sheet string
}

// ReadFile reads one worksheet of an xlsx file into a Table. The first
// non-empty row supplies the column names; shorter rows are padded with
// missing cells, as Excel omits trailing empties.
func ReadFile(filename string, opts *Options) (*model.Table, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("xlsxtab: opening workbook: %w", err)
	}
	defer f.Close()

	return fromFile(f, opts)
}

// Read reads one worksheet of an xlsx stream into a Table.
func Read(r io.Reader, opts *Options) (*model.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("xlsxtab: opening workbook: %w", err)
	}
	defer f.Close()

	return fromFile(f, opts)
}

func fromFile(f *excelize.File, opts *Options) (*model.Table, error) {
	if opts == nil {
		opts = &Options{}
	}
	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoSheets
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("xlsxtab: reading sheet %q: %w", sheet, err)
	}

	var t *model.Table
	var width int
	for i, row := range rows {
		if t == nil {
			if rowEmpty(row) {
				continue
			}
			header := make([]string, len(row))
			for j, v := range row {
				header[j] = strings.TrimSpace(v)
			}
			width = len(header)
			t = model.NewTable(header...)
			continue
		}
		if len(row) > width {
			return nil, fmt.Errorf("xlsxtab: sheet %q row %d has %d cells, header has %d",
				sheet, i+1, len(row), width)
		}
		cells := make([]model.Cell, width)
		for j := range cells {
			if j < len(row) {
				cells[j] = model.Coerce(strings.TrimSpace(row[j]))
			} else {
				cells[j] = model.Missing()
			}
		}
		if err := t.AppendRow(cells...); err != nil {
			return nil, fmt.Errorf("xlsxtab: %w", err)
		}
	}
	if t == nil {
		return nil, fmt.Errorf("xlsxtab: sheet %q is empty", sheet)
	}
	return t, nil
}

func rowEmpty(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
