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

type accountCmd struct {
	add      bool
	name     string
	currency string
	rm       string
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "list, add or remove accounts" }
func (*accountCmd) Usage() string {
	return `pilot account [-add -name <name> [-currency <code>]] [-rm <account id>]

  Without flags, lists all accounts with their balances. With -add,
  creates a new account with a zero balance. With -rm, removes an
  account; an account still referenced by transactions cannot be removed.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Add a new account.")
	f.StringVar(&c.name, "name", "", "Name of the account to add.")
	f.StringVar(&c.currency, "currency", "USD", "Currency code of the account to add.")
	f.StringVar(&c.rm, "rm", "", "Id of an account to remove.")
}

func (c *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, st, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case c.add:
		if c.name == "" {
			st.Close()
			fmt.Fprintln(os.Stderr, "Error: -name is required with -add.")
			return subcommands.ExitUsageError
		}
		var acc cashpilot.Account
		state, acc = state.AddAccount(c.name, c.currency)
		if err := saveState(st, state); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Created account %s (%s)\n", acc.ID, acc.Name)
		return subcommands.ExitSuccess

	case c.rm != "":
		if state.Account(c.rm) == nil {
			st.Close()
			fmt.Fprintf(os.Stderr, "Error: unknown account %q\n", c.rm)
			return subcommands.ExitFailure
		}
		next := state.RemoveAccount(c.rm)
		if next.Account(c.rm) != nil {
			st.Close()
			fmt.Fprintf(os.Stderr, "Error: account %q still has transactions; delete them first.\n", c.rm)
			return subcommands.ExitFailure
		}
		if err := saveState(st, next); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Removed account %s\n", c.rm)
		return subcommands.ExitSuccess

	default:
		st.Close()
		printMarkdown(renderer.Accounts(state))
		return subcommands.ExitSuccess
	}
}
