package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/cashpilot/cashpilot"
)

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger to a file" }
func (*exportCmd) Usage() string {
	return `pilot export [-format <json|csv|xlsx>] [-o <file>]

  Exports the ledger. JSON is the full state and the only format that
  can be imported back; CSV and XLSX are flat transaction listings. With
  -o - the export goes to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "Export format: json, csv or xlsx.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to a dated filename in the current directory.")
}

// exportFilename is the default dated filename for one export format.
func exportFilename(format string) string {
	date := cashpilot.Today().String()
	if format == "json" {
		return fmt.Sprintf("cash_pilot_backup_%s.json", date)
	}
	return fmt.Sprintf("cash_pilot_transactions_%s.%s", date, format)
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var export func(io.Writer, cashpilot.State) error
	switch c.format {
	case "json":
		export = cashpilot.ExportJSON
	case "csv":
		export = cashpilot.ExportCSV
	case "xlsx":
		export = cashpilot.ExportXLSX
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want json, csv or xlsx)\n", c.format)
		return subcommands.ExitUsageError
	}

	state, st, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	st.Close()

	if c.output == "-" {
		if err := export(os.Stdout, state); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	filename := c.output
	if filename == "" {
		filename = exportFilename(c.format)
	}
	out, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := export(out, state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported to %s\n", filename)
	return subcommands.ExitSuccess
}
