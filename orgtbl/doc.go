// Package orgtbl encodes and decodes org-mode tables.
//
// An org-mode table is plain text: each row starts and ends with the `|`
// delimiter, and a dash rule such as `|---+---|` conventionally separates
// the header row from the data rows. Inside a larger org document, a table
// may be labeled by a `#+name: identifier` line immediately before it, and
// [DecodeNamed] locates a table by that label.
//
// Decoding produces a [model.Table]: the first table row is the header,
// rules are skipped wherever they appear, fields are trimmed, and every
// field is coerced through the numeric literal grammar in [model.Coerce].
// Encoding renders a Table back to aligned org text; for a table free of
// presentation annotations, Decode(Encode(t)) reproduces t exactly.
//
// Statistical presentation (significance stars, standard errors beneath
// estimates, confidence intervals) is a separate stage: [Annotate] derives
// a text-only presentation table from an estimates table and companion
// statistics, which is then rendered by [Encode] like any other table. The
// codec itself knows nothing about statistics.
package orgtbl
