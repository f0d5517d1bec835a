// Package main provides the CLI entry point for orgtab.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ligonlabs/orgtab"
	"github.com/ligonlabs/orgtab/csvtab"
	"github.com/ligonlabs/orgtab/model"
	"github.com/ligonlabs/orgtab/orgtbl"
)

var (
	outputPath string
	blockName  string
	sheetName  string
	tableIndex int
	toFormat   string
	floatFmt   string
	missing    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orgtab",
		Short: "Convert tabular data to and from org-mode tables",
		Long: `orgtab reads tables from org documents, CSV/TSV files, Excel
workbooks, and HTML pages, and renders them as org-mode tables or CSV.`,
		SilenceUsage: true,
	}

	convertCmd := &cobra.Command{
		Use:   "convert [input]",
		Short: "Read a tabular file and write it in another format",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	convertCmd.Flags().StringVar(&blockName, "name", "", "Org block name to extract")
	convertCmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet name for xlsx input")
	convertCmd.Flags().IntVar(&tableIndex, "table", 0, "Table index for HTML input (0-based)")
	convertCmd.Flags().StringVar(&toFormat, "to", "org", "Output format: org, csv")
	convertCmd.Flags().StringVar(&floatFmt, "float-fmt", "", "fmt verb for numeric cells, e.g. %.2f")
	convertCmd.Flags().StringVar(&missing, "missing", "", `Rendering for missing cells, e.g. "---"`)

	namesCmd := &cobra.Command{
		Use:   "names [document.org]",
		Short: "List the named blocks in an org document",
		Args:  cobra.ExactArgs(1),
		RunE:  runNames,
	}

	showCmd := &cobra.Command{
		Use:   "show [document.org]",
		Short: "Print one table from an org document",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	showCmd.Flags().StringVar(&blockName, "name", "", "Org block name to extract")

	rootCmd.AddCommand(convertCmd, namesCmd, showCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	tbl, err := extractor(args[0]).Table()
	if err != nil {
		return err
	}
	return writeTable(tbl)
}

func runNames(cmd *cobra.Command, args []string) error {
	names, err := orgtab.Open(args[0]).Names()
	if err != nil {
		return err
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	e := orgtab.Open(args[0])
	if blockName != "" {
		e = e.Named(blockName)
	}
	tbl, err := e.Table()
	if err != nil {
		return err
	}
	fmt.Print(orgtab.Render(tbl, encodeOptions()))
	return nil
}

// extractor configures an Extractor from the convert flags.
func extractor(input string) *orgtab.Extractor {
	e := orgtab.Open(input)
	if blockName != "" {
		e = e.Named(blockName)
	}
	if sheetName != "" {
		e = e.Sheet(sheetName)
	}
	if tableIndex != 0 {
		e = e.TableIndex(tableIndex)
	}
	return e
}

func encodeOptions() *orgtbl.EncodeOptions {
	return &orgtbl.EncodeOptions{
		FloatFmt:    floatFmt,
		MissingText: missing,
	}
}

// writeTable renders the table in the requested output format.
func writeTable(tbl *model.Table) error {
	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch toFormat {
	case "org":
		_, err := fmt.Fprint(out, orgtab.Render(tbl, encodeOptions()))
		return err
	case "csv":
		return csvtab.Write(out, tbl, nil)
	default:
		return fmt.Errorf("unsupported output format %q (want org or csv)", toFormat)
	}
}
