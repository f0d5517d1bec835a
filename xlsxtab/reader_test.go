package xlsxtab

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ligonlabs/orgtab/model"
)

// writeWorkbook builds a small two-sheet workbook on disk for the tests.
func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	// Sheet1 exists by default; fill it.
	rows := [][]any{
		{"Country", "GDP"},
		{"France", 2780.0},
		{"Nauru", nil},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}

	if _, err := f.NewSheet("extra"); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}
	if err := f.SetSheetRow("extra", "A1", &[]any{"only"}); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}
	if err := f.SetSheetRow("extra", "A2", &[]any{42.0}); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}

	path := filepath.Join(t.TempDir(), "sample.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

func TestReadFileFirstSheet(t *testing.T) {
	path := writeWorkbook(t)

	tbl, err := ReadFile(path, nil)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	cols := tbl.Columns()
	if len(cols) != 2 || cols[0] != "Country" || cols[1] != "GDP" {
		t.Errorf("Columns() = %v", cols)
	}
	if tbl.RowCount() != 2 {
		t.Fatalf("RowCount() = %d, want 2", tbl.RowCount())
	}
	if got := tbl.Cell(0, 1); !got.Equal(model.Number(2780)) {
		t.Errorf("Cell(0,1) = %v %q", got.Kind(), got.String())
	}
	// Excel omits trailing empty cells; the reader pads them back.
	if got := tbl.Cell(1, 1); !got.IsMissing() {
		t.Errorf("Cell(1,1) = %v, want missing", got.Kind())
	}
}

func TestReadFileNamedSheet(t *testing.T) {
	path := writeWorkbook(t)

	tbl, err := ReadFile(path, &Options{Sheet: "extra"})
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if cols := tbl.Columns(); len(cols) != 1 || cols[0] != "only" {
		t.Errorf("Columns() = %v", cols)
	}
	if got := tbl.Cell(0, 0); !got.Equal(model.Number(42)) {
		t.Errorf("Cell(0,0) = %v %q", got.Kind(), got.String())
	}
}

func TestReadFileMissingSheet(t *testing.T) {
	path := writeWorkbook(t)

	if _, err := ReadFile(path, &Options{Sheet: "nope"}); err == nil {
		t.Errorf("ReadFile with unknown sheet should fail")
	}
}

func TestReadFileNotAWorkbook(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "absent.xlsx"), nil); err == nil {
		t.Errorf("ReadFile of a missing file should fail")
	}
}
