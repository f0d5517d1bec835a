package orgtbl

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"

	"github.com/ligonlabs/orgtab/model"
)

// EncodeOptions controls table rendering.
type EncodeOptions struct {
	// FloatFmt is the fmt verb applied to numeric cells, e.g. "%.2f".
	// The default "%g" round-trips through Decode without loss.
	FloatFmt string

	// MissingText renders missing cells. Empty by default; "---" matches
	// the org-mode habit of marking absent values explicitly.
	MissingText string

	// MathDelimiters wraps annotated estimates and their companion
	// statistics in \( ... \) for LaTeX export. Consulted by Annotate.
	MathDelimiters bool

	// StarThresholds are the two-tailed |t| cutoffs for one, two, and
	// three significance stars. Zero value means the conventional
	// 90/95/99% levels (1.65, 1.96, 2.58). Consulted by Annotate.
	StarThresholds [3]float64
}

var defaultStarThresholds = [3]float64{1.65, 1.96, 2.58}

// withDefaults returns a copy of opts with zero fields filled in. A nil
// receiver yields all defaults.
func (o *EncodeOptions) withDefaults() EncodeOptions {
	var out EncodeOptions
	if o != nil {
		out = *o
	}
	if out.FloatFmt == "" {
		out.FloatFmt = "%g"
	}
	if out.StarThresholds == ([3]float64{}) {
		out.StarThresholds = defaultStarThresholds
	}
	return out
}

// Encode renders a table as org-mode table text: a header row, a heading
// rule, and one line per data row, with columns padded to a common display
// width. Encoding never fails; a table with zero rows yields the header and
// rule only.
func Encode(t *model.Table, opts *EncodeOptions) string {
	o := opts.withDefaults()
	cols := t.Columns()
	if len(cols) == 0 {
		return ""
	}

	// Render every cell up front so column widths are known.
	rendered := make([][]string, t.RowCount())
	widths := make([]int, len(cols))
	for j, c := range cols {
		widths[j] = displayWidth(c)
	}
	for i := 0; i < t.RowCount(); i++ {
		row := make([]string, len(cols))
		for j := range cols {
			s := renderCell(t.Cell(i, j), o)
			if w := displayWidth(s); w > widths[j] {
				widths[j] = w
			}
			row[j] = s
		}
		rendered[i] = row
	}

	var sb strings.Builder
	writeRow(&sb, cols, widths)
	writeRule(&sb, widths)
	for _, row := range rendered {
		writeRow(&sb, row, widths)
	}
	return sb.String()
}

// renderCell formats one cell as a plain field.
func renderCell(c model.Cell, o EncodeOptions) string {
	switch c.Kind() {
	case model.KindNumber:
		return fmt.Sprintf(o.FloatFmt, c.Number())
	case model.KindText:
		return c.Text()
	default:
		return o.MissingText
	}
}

// writeRow writes one table line, padding each field to its column width.
func writeRow(sb *strings.Builder, fields []string, widths []int) {
	sb.WriteString("|")
	for j, f := range fields {
		sb.WriteString(" ")
		sb.WriteString(f)
		sb.WriteString(strings.Repeat(" ", widths[j]-displayWidth(f)))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

// writeRule writes the heading rule beneath the header, e.g. |----+----|.
func writeRule(sb *strings.Builder, widths []int) {
	sb.WriteString("|")
	for j, w := range widths {
		sb.WriteString(strings.Repeat("-", w+2))
		if j < len(widths)-1 {
			sb.WriteString("+")
		}
	}
	sb.WriteString("|\n")
}

// displayWidth returns the column width of s, counting East Asian wide and
// fullwidth runes as two cells so mixed-script tables still align.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}
