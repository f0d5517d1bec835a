// Package format provides tabular file format detection for the orgtab
// library.
package format

import (
	"path/filepath"
	"strings"
)

// Format represents a supported tabular source format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Org indicates an org-mode document or table block.
	Org
	// CSV indicates comma-separated values.
	CSV
	// TSV indicates tab-separated values.
	TSV
	// XLSX indicates a Microsoft Excel (.xlsx) workbook.
	XLSX
	// HTML indicates an HTML document.
	HTML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Org:
		return "Org"
	case CSV:
		return "CSV"
	case TSV:
		return "TSV"
	case XLSX:
		return "XLSX"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Org:
		return ".org"
	case CSV:
		return ".csv"
	case TSV:
		return ".tsv"
	case XLSX:
		return ".xlsx"
	case HTML:
		return ".html"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".org":
		return Org
	case ".csv":
		return CSV
	case ".tsv", ".tab":
		return TSV
	case ".xlsx":
		return XLSX
	case ".html", ".htm":
		return HTML
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine format. This backs up
// extension-based detection for files with misleading or absent extensions.
// Returns Unknown when the content is ambiguous.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// ZIP magic: PK\x03\x04. XLSX is the only ZIP container we read.
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return XLSX
	}

	if detectHTMLMagic(data) {
		return HTML
	}

	if detectOrgMagic(data) {
		return Org
	}

	return Unknown
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	head := strings.ToLower(string(data[:min(len(data), 256)]))
	head = strings.TrimLeft(head, " \t\r\n")
	return strings.HasPrefix(head, "<!doctype") ||
		strings.HasPrefix(head, "<html") ||
		strings.HasPrefix(head, "<?xml")
}

// detectOrgMagic checks if the data looks like org-mode text: a keyword
// line (#+title:, #+name:, ...), a table row, or a heading near the top.
func detectOrgMagic(data []byte) bool {
	head := string(data[:min(len(data), 1024)])
	for i, line := range strings.Split(head, "\n") {
		if i >= 10 {
			break
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#+") || strings.HasPrefix(trimmed, "|") {
			return true
		}
		if strings.HasPrefix(line, "* ") {
			return true
		}
	}
	return false
}
