package format

import "testing"

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Org, "Org"},
		{CSV, "CSV"},
		{TSV, "TSV"},
		{XLSX, "XLSX"},
		{HTML, "HTML"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Org, ".org"},
		{CSV, ".csv"},
		{TSV, ".tsv"},
		{XLSX, ".xlsx"},
		{HTML, ".html"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"notes.org", Org},
		{"notes.ORG", Org},
		{"data.csv", CSV},
		{"data.CSV", CSV},
		{"data.tsv", TSV},
		{"data.tab", TSV},
		{"book.xlsx", XLSX},
		{"book.XLSX", XLSX},
		{"page.html", HTML},
		{"page.htm", HTML},
		{"page.HTM", HTML},
		{"data.txt", Unknown},
		{"data", Unknown},
		{"", Unknown},
		{"/path/to/notes.org", Org},
		{"/path/to/data.csv", CSV},
		{"/path/to/book.xlsx", XLSX},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"zip container", []byte{0x50, 0x4B, 0x03, 0x04, 0x00}, XLSX},
		{"doctype", []byte("<!DOCTYPE html><html></html>"), HTML},
		{"html tag", []byte("<html><body></body></html>"), HTML},
		{"leading whitespace html", []byte("\n  <html>"), HTML},
		{"org keyword", []byte("#+title: Results\n\nSome text."), Org},
		{"org name annotation", []byte("#+name: tbl\n| a |\n"), Org},
		{"org table row", []byte("| A | B |\n|---+---|\n"), Org},
		{"org heading", []byte("* Introduction\nBody text.\n"), Org},
		{"plain prose", []byte("Just some ordinary text here.\nMore text.\n"), Unknown},
		{"too short", []byte("ab"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}
