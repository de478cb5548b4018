package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/cashpilot/cashpilot/renderer"
)

type loansCmd struct {
	rm string
}

func (*loansCmd) Name() string     { return "loans" }
func (*loansCmd) Synopsis() string { return "list loans, or remove one" }
func (*loansCmd) Usage() string {
	return `pilot loans [-rm <loan id>]

  Lists all loans with principal, total due, repaid amount and status.
  With -rm, removes the loan instead: its transactions stay in the
  history but no longer reference it.
`
}

func (c *loansCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rm, "rm", "", "Id of a loan to remove.")
}

func (c *loansCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, st, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.rm != "" {
		if state.Loan(c.rm) == nil {
			st.Close()
			fmt.Fprintf(os.Stderr, "Error: unknown loan %q\n", c.rm)
			return subcommands.ExitFailure
		}
		state = state.RemoveLoan(c.rm)
		if err := saveState(st, state); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Removed loan %s\n", c.rm)
		return subcommands.ExitSuccess
	}

	st.Close()
	printMarkdown(renderer.Loans(state))
	return subcommands.ExitSuccess
}
