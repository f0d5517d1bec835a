package orgtab

// ExtractOptions holds configuration for table extraction.
type ExtractOptions struct {
	// Source selection
	name       string // org block name
	sheet      string // xlsx worksheet
	tableIndex int    // html table position

	// Decoding options
	requireRows bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		name:        "", // "" means the first table
		sheet:       "", // "" means the first worksheet
		tableIndex:  0,
		requireRows: false,
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return o
}
