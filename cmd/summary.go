package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/cashpilot/cashpilot"
	"github.com/cashpilot/cashpilot/renderer"
)

type summaryCmd struct {
	start string
	date  string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show totals and per-category breakdowns" }
func (*summaryCmd) Usage() string {
	return `pilot summary [-s <start date>] [-d <end date>]

  Shows the total balance, income and expense totals and the breakdown
  per category, over the whole history or a date range.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "The start date for a custom range.")
	f.StringVar(&c.date, "d", "", "The end date for the range.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var from, to cashpilot.Date
	var err error
	if c.start != "" {
		if from, err = cashpilot.ParseDate(c.start); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.date != "" {
		if to, err = cashpilot.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	state, st, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	st.Close()

	printMarkdown(renderer.Summary(state, from, to))
	return subcommands.ExitSuccess
}
