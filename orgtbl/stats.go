package orgtbl

import (
	"fmt"
	"math"

	"github.com/ligonlabs/orgtab/model"
)

// Annotations supplies companion statistics for an estimates table. Each
// companion must have the same shape (column names and row count) as the
// estimates; cells align by position. A missing companion cell means no
// annotation for that estimate. Non-numeric estimate cells (row labels,
// say) are passed through untouched.
type Annotations struct {
	// StdErrs holds per-cell standard errors, rendered in parentheses on a
	// synthetic row beneath each estimate row.
	StdErrs *model.Table

	// TStats overrides the estimate/stderr ratio used for significance
	// stars. When nil, the ratio is derived from StdErrs.
	TStats *model.Table

	// NoStars suppresses significance stars even when a ratio is
	// available.
	NoStars bool

	// ConfLow and ConfHigh bound confidence intervals, rendered [lo,hi]
	// beneath each estimate.
	ConfLow  *model.Table
	ConfHigh *model.Table
}

// Annotate derives a presentation table from estimates and companion
// statistics: estimates gain significance stars from a two-tailed threshold
// comparison, and standard errors and confidence intervals appear on
// synthetic rows interleaved beneath each estimate row. The result holds
// only text and missing cells and is intended for Encode; the numeric
// estimates are not recoverable from it.
func Annotate(t *model.Table, ann Annotations, opts *EncodeOptions) (*model.Table, error) {
	o := opts.withDefaults()
	for _, companion := range []struct {
		name string
		tbl  *model.Table
	}{
		{"StdErrs", ann.StdErrs},
		{"TStats", ann.TStats},
		{"ConfLow", ann.ConfLow},
		{"ConfHigh", ann.ConfHigh},
	} {
		if err := checkShape(t, companion.tbl, companion.name); err != nil {
			return nil, err
		}
	}
	if (ann.ConfLow == nil) != (ann.ConfHigh == nil) {
		return nil, fmt.Errorf("orgtbl: ConfLow and ConfHigh must be supplied together")
	}

	out := model.NewTable(t.Columns()...)
	for i := 0; i < t.RowCount(); i++ {
		estRow := make([]model.Cell, t.ColCount())
		subRow := make([]model.Cell, t.ColCount())
		hasSub := false

		for j := 0; j < t.ColCount(); j++ {
			cell := t.Cell(i, j)
			if cell.Kind() != model.KindNumber {
				estRow[j] = cell
				subRow[j] = model.Missing()
				continue
			}

			est := fmt.Sprintf(o.FloatFmt, cell.Number())
			if stars := rowStars(t, ann, i, j, o.StarThresholds); stars != "" {
				est += "^{" + stars + "}"
				est = mathWrap(est, o)
			}
			estRow[j] = model.Text(est)

			if sub := subField(ann, i, j, o); sub != "" {
				subRow[j] = model.Text(sub)
				hasSub = true
			} else {
				subRow[j] = model.Missing()
			}
		}

		if err := out.AppendRow(estRow...); err != nil {
			return nil, err
		}
		if hasSub {
			if err := out.AppendRow(subRow...); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// rowStars computes the significance stars for the estimate at (i, j), or
// "" when no ratio is available or stars are suppressed.
func rowStars(t *model.Table, ann Annotations, i, j int, thresholds [3]float64) string {
	if ann.NoStars {
		return ""
	}
	if ann.TStats != nil {
		if ts := ann.TStats.Cell(i, j); ts.Kind() == model.KindNumber {
			return starsFor(ts.Number(), thresholds)
		}
		return ""
	}
	if ann.StdErrs == nil {
		return ""
	}
	se := ann.StdErrs.Cell(i, j)
	if se.Kind() != model.KindNumber || se.Number() == 0 {
		return ""
	}
	return starsFor(t.Cell(i, j).Number()/se.Number(), thresholds)
}

// starsFor maps a two-tailed test statistic onto significance stars.
func starsFor(t float64, thresholds [3]float64) string {
	abs := math.Abs(t)
	switch {
	case abs > thresholds[2]:
		return "***"
	case abs > thresholds[1]:
		return "**"
	case abs > thresholds[0]:
		return "*"
	default:
		return ""
	}
}

// subField renders the synthetic-row field beneath the estimate at (i, j):
// the standard error in parentheses, the confidence interval in brackets,
// or both separated by a space.
func subField(ann Annotations, i, j int, o EncodeOptions) string {
	var parts []string
	if ann.StdErrs != nil {
		if se := ann.StdErrs.Cell(i, j); se.Kind() == model.KindNumber {
			parts = append(parts, mathWrap("("+fmt.Sprintf(o.FloatFmt, se.Number())+")", o))
		}
	}
	if ann.ConfLow != nil && ann.ConfHigh != nil {
		lo := ann.ConfLow.Cell(i, j)
		hi := ann.ConfHigh.Cell(i, j)
		if lo.Kind() == model.KindNumber && hi.Kind() == model.KindNumber {
			iv := fmt.Sprintf("[%s,%s]",
				fmt.Sprintf(o.FloatFmt, lo.Number()),
				fmt.Sprintf(o.FloatFmt, hi.Number()))
			parts = append(parts, mathWrap(iv, o))
		}
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return parts[0] + " " + parts[1]
	}
}

// mathWrap encloses s in LaTeX inline-math delimiters when enabled.
func mathWrap(s string, o EncodeOptions) string {
	if !o.MathDelimiters {
		return s
	}
	return `\(` + s + `\)`
}

// checkShape verifies that a companion table aligns with the estimates.
func checkShape(t, companion *model.Table, name string) error {
	if companion == nil {
		return nil
	}
	if companion.RowCount() != t.RowCount() || companion.ColCount() != t.ColCount() {
		return fmt.Errorf("orgtbl: %s is %dx%d, estimates are %dx%d",
			name, companion.RowCount(), companion.ColCount(), t.RowCount(), t.ColCount())
	}
	tc := t.Columns()
	for i, c := range companion.Columns() {
		if c != tc[i] {
			return fmt.Errorf("orgtbl: %s column %d is %q, estimates have %q", name, i, c, tc[i])
		}
	}
	return nil
}
