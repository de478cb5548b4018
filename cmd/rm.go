package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete transactions" }
func (*rmCmd) Usage() string {
	return `pilot rm <tx id>...

  Deletes transactions by id. The balance effect of each one is reversed,
  and a repayment's loan has its status re-derived, which can turn a paid
  loan active again.
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one transaction id is required.")
		return subcommands.ExitUsageError
	}

	state, st, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for _, id := range f.Args() {
		if state.Transaction(id) == nil {
			st.Close()
			fmt.Fprintf(os.Stderr, "Error: unknown transaction %q\n", id)
			return subcommands.ExitFailure
		}
		state = state.DeleteTransaction(id)
	}

	if err := saveState(st, state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %d transaction(s)\n", f.NArg())
	return subcommands.ExitSuccess
}
