package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show record counts and disk usage" }
func (*statusCmd) Usage() string {
	return `pilot status

  Shows how many transactions, accounts and loans the ledger holds, the
  total balance, and the disk space the database uses.
`
}

func (*statusCmd) SetFlags(f *flag.FlagSet) {}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, st, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	fmt.Printf("transactions: %d\n", len(state.Transactions))
	fmt.Printf("accounts:     %d\n", len(state.Accounts))
	fmt.Printf("loans:        %d\n", len(state.Loans))
	fmt.Printf("balance:      %s\n", state.TotalBalance())
	fmt.Printf("pin:          %v\n", st.HasPIN())
	fmt.Printf("disk usage:   %s\n", st.Usage())
	return subcommands.ExitSuccess
}
