package orgtbl

import (
	"regexp"
	"strings"
)

// nameRe matches a `#+name: identifier` annotation line. Org keywords are
// case-insensitive.
var nameRe = regexp.MustCompile(`(?i)^\s*#\+name:\s*(\S+)\s*$`)

// isTableLine reports whether the line is org table syntax (starts with the
// row delimiter after leading whitespace).
func isTableLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "|")
}

// isRuleLine reports whether the line is a heading rule such as |---+---|.
// A rule contains only delimiters, dashes, and plus signs, with at least
// one dash.
func isRuleLine(line string) bool {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "|") {
		return false
	}
	dash := false
	for _, r := range s {
		switch r {
		case '|', '+', ' ':
		case '-':
			dash = true
		default:
			return false
		}
	}
	return dash
}

// isHeadingLine reports whether the line starts an org heading, which ends
// any block in progress.
func isHeadingLine(line string) bool {
	trimmed := strings.TrimLeft(line, "*")
	return strings.HasPrefix(line, "*") && strings.HasPrefix(trimmed, " ")
}

// blockName returns the identifier from a name annotation line, or "".
func blockName(line string) string {
	m := nameRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}

// splitRow splits a table-syntax line into trimmed fields, discarding the
// empty leading and trailing fields produced by the row's outer delimiters.
func splitRow(line string) []string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")
	parts := strings.Split(s, "|")
	fields := make([]string, len(parts))
	for i, p := range parts {
		fields[i] = strings.TrimSpace(p)
	}
	return fields
}

// tableRegion returns the first run of table-syntax lines in text, along
// with the 1-based line number where it starts. The run ends at the first
// non-table line.
func tableRegion(text string) ([]string, int) {
	lines := strings.Split(text, "\n")
	start := -1
	var region []string
	for i, line := range lines {
		if isTableLine(line) {
			if start < 0 {
				start = i
			}
			region = append(region, line)
			continue
		}
		if start >= 0 {
			break
		}
	}
	return region, start + 1
}

// namedRegion locates the table lines following the first `#+name: name`
// annotation in doc. It returns the table lines and the 1-based line number
// of the first one. When the document holds several blocks with the same
// name, the first wins. The bool reports whether the annotation itself was
// found; the lines are nil when no table follows it.
func namedRegion(doc, name string) (region []string, start int, annotated bool) {
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		id := blockName(line)
		if id == "" || !strings.EqualFold(id, name) {
			continue
		}
		annotated = true
		for j := i + 1; j < len(lines); j++ {
			next := lines[j]
			if isTableLine(next) {
				region, start = collectTable(lines, j)
				return region, start, true
			}
			// Other #+ keyword lines (captions, attributes) may sit
			// between the name and its table. Anything else ends the
			// block.
			if strings.TrimSpace(next) == "" || isHeadingLine(next) || blockName(next) != "" {
				return nil, 0, true
			}
			if !strings.HasPrefix(strings.TrimSpace(next), "#+") {
				return nil, 0, true
			}
		}
		return nil, 0, true
	}
	return nil, 0, false
}

// collectTable gathers consecutive table-syntax lines starting at index j,
// returning them with the 1-based line number of the first.
func collectTable(lines []string, j int) ([]string, int) {
	var region []string
	for ; j < len(lines); j++ {
		if !isTableLine(lines[j]) {
			break
		}
		region = append(region, lines[j])
	}
	return region, j - len(region) + 1
}

// scanNames returns every block name annotated in doc, in order of
// appearance. Duplicates are reported as-is so callers can detect them.
func scanNames(doc string) []string {
	var names []string
	for _, line := range strings.Split(doc, "\n") {
		if id := blockName(line); id != "" {
			names = append(names, id)
		}
	}
	return names
}
