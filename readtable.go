package orgtab

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/ligonlabs/orgtab/csvtab"
	"github.com/ligonlabs/orgtab/format"
	"github.com/ligonlabs/orgtab/htmltab"
	"github.com/ligonlabs/orgtab/model"
	"github.com/ligonlabs/orgtab/xlsxtab"
)

// ErrUnknownFormat indicates a file whose format could not be determined
// from its extension or contents.
var ErrUnknownFormat = errors.New("orgtab: unknown file format")

// ReadTable reads a tabular file into a Table, dispatching on the detected
// format: org documents, CSV, TSV, XLSX workbooks, and HTML pages are
// supported. Use Open for per-format configuration (block name, worksheet,
// table index).
func ReadTable(filename string) (*model.Table, error) {
	return readTable(filename, defaultOptions())
}

// readTable dispatches to the reader for the file's format.
func readTable(filename string, opts ExtractOptions) (*model.Table, error) {
	f := format.Detect(filename)
	if f == format.Unknown {
		data, err := readFileBytes(filename)
		if err != nil {
			return nil, err
		}
		if f = format.DetectFromMagic(data); f == format.Unknown {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, filename)
		}
		return readTableBytes(data, f, opts)
	}

	switch f {
	case format.CSV:
		return csvtab.ReadFile(filename, nil)
	case format.TSV:
		return csvtab.ReadFile(filename, &csvtab.Options{Comma: '\t', TrimFields: true})
	case format.XLSX:
		return xlsxtab.ReadFile(filename, &xlsxtab.Options{Sheet: opts.sheet})
	case format.HTML:
		return htmltab.ReadFile(filename, &htmltab.Options{Index: opts.tableIndex})
	default: // format.Org
		data, err := readFileBytes(filename)
		if err != nil {
			return nil, err
		}
		return decodeDocument(string(data), opts)
	}
}

// readTableBytes handles content already in memory after magic sniffing.
func readTableBytes(data []byte, f format.Format, opts ExtractOptions) (*model.Table, error) {
	switch f {
	case format.XLSX:
		return xlsxtab.Read(bytes.NewReader(data), &xlsxtab.Options{Sheet: opts.sheet})
	case format.HTML:
		return htmltab.Read(bytes.NewReader(data), &htmltab.Options{Index: opts.tableIndex})
	case format.Org:
		if !sniffText(data) {
			return nil, ErrUnknownFormat
		}
		return decodeDocument(string(data), opts)
	default:
		return nil, ErrUnknownFormat
	}
}

func readFileBytes(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("orgtab: reading file: %w", err)
	}
	return data, nil
}
