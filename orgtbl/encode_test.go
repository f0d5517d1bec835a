package orgtbl

import (
	"strings"
	"testing"

	"github.com/ligonlabs/orgtab/model"
)

func mustAppend(t *testing.T, tbl *model.Table, cells ...model.Cell) {
	t.Helper()
	if err := tbl.AppendRow(cells...); err != nil {
		t.Fatalf("AppendRow: %v", err)
	}
}

func TestEncodeBasic(t *testing.T) {
	tbl := model.NewTable("Country", "GDP")
	mustAppend(t, tbl, model.Text("France"), model.Number(2780))
	mustAppend(t, tbl, model.Text("Nauru"), model.Number(0.15))

	got := Encode(tbl, nil)
	want := `| Country | GDP  |
|---------+------|
| France  | 2780 |
| Nauru   | 0.15 |
`
	if got != want {
		t.Errorf("Encode:\ngot\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeEmptyTable(t *testing.T) {
	tbl := model.NewTable("A", "B")

	got := Encode(tbl, nil)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Encode of empty table = %d lines, want 2:\n%s", len(lines), got)
	}
	if lines[0] != "| A | B |" {
		t.Errorf("header line = %q", lines[0])
	}
	if !isRuleLine(lines[1]) {
		t.Errorf("second line = %q, want a heading rule", lines[1])
	}
}

func TestEncodeZeroColumns(t *testing.T) {
	if got := Encode(model.NewTable(), nil); got != "" {
		t.Errorf("Encode of column-less table = %q, want empty", got)
	}
}

func TestEncodeMissingCells(t *testing.T) {
	tbl := model.NewTable("A", "B")
	mustAppend(t, tbl, model.Missing(), model.Number(1))

	got := Encode(tbl, nil)
	if !strings.Contains(got, "|   | 1 |") {
		t.Errorf("missing cell should render as an empty field:\n%s", got)
	}

	got = Encode(tbl, &EncodeOptions{MissingText: "---"})
	if !strings.Contains(got, "| --- | 1 |") {
		t.Errorf("MissingText option not honored:\n%s", got)
	}
}

func TestEncodeAllMissingColumn(t *testing.T) {
	tbl := model.NewTable("A", "B")
	mustAppend(t, tbl, model.Number(1), model.Missing())
	mustAppend(t, tbl, model.Number(2), model.Missing())

	got := Encode(tbl, nil)
	// The header still renders even though every value beneath is missing.
	if !strings.HasPrefix(got, "| A | B |") {
		t.Errorf("header line missing:\n%s", got)
	}
}

func TestEncodeFloatFmt(t *testing.T) {
	tbl := model.NewTable("x")
	mustAppend(t, tbl, model.Number(1.23456))

	got := Encode(tbl, &EncodeOptions{FloatFmt: "%.2f"})
	if !strings.Contains(got, "| 1.23 |") {
		t.Errorf("FloatFmt not honored:\n%s", got)
	}
}

func TestEncodeWideRunes(t *testing.T) {
	tbl := model.NewTable("名前", "n")
	mustAppend(t, tbl, model.Text("東京"), model.Number(1))
	mustAppend(t, tbl, model.Text("ab"), model.Number(2))

	got := Encode(tbl, nil)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	// CJK runes occupy two display cells, so "ab" gets two cells of extra
	// padding to line up with 東京.
	if !strings.Contains(lines[3], "| ab   |") {
		t.Errorf("wide-rune alignment wrong:\n%s", got)
	}
}

// Round-trip law: decode(encode(T)) == T for tables without presentation
// annotations.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	tbl := model.NewTable("name", "value", "note")
	mustAppend(t, tbl, model.Text("alpha"), model.Number(1.5), model.Text("ok"))
	mustAppend(t, tbl, model.Text("beta"), model.Missing(), model.Missing())
	mustAppend(t, tbl, model.Text("gamma"), model.Number(-350), model.Text("neg"))
	mustAppend(t, tbl, model.Text("delta"), model.Number(1e-9), model.Text("small"))

	back, err := Decode(Encode(tbl, nil), nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !tbl.Equal(back) {
		t.Errorf("round trip mismatch:\noriginal\n%s\ndecoded\n%s", tbl.GetText(), back.GetText())
	}
}

func TestEncodeDecodeRoundTripEmpty(t *testing.T) {
	tbl := model.NewTable("A", "B")

	back, err := Decode(Encode(tbl, nil), nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !tbl.Equal(back) {
		t.Errorf("empty-table round trip: got %d cols %d rows", back.ColCount(), back.RowCount())
	}
}
