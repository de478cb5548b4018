package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type pinCmd struct {
	set    bool
	remove bool
}

func (*pinCmd) Name() string     { return "pin" }
func (*pinCmd) Synopsis() string { return "set or remove the PIN" }
func (*pinCmd) Usage() string {
	return `pilot pin -set | -remove

  Sets or removes the PIN protecting the ledger. Only a salted hash is
  stored. Changing or removing the PIN requires the current one.
`
}

func (c *pinCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.set, "set", false, "Set (or replace) the PIN.")
	f.BoolVar(&c.remove, "remove", false, "Remove the PIN.")
}

func (c *pinCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.set == c.remove {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -set or -remove is required.")
		return subcommands.ExitUsageError
	}

	// openStore verifies the current PIN when one is set.
	st, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	if c.remove {
		if !st.HasPIN() {
			fmt.Println("No PIN is set.")
			return subcommands.ExitSuccess
		}
		if err := st.RemovePIN(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Println("PIN removed.")
		return subcommands.ExitSuccess
	}

	pin, err := readSecret("New PIN: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	confirm, err := readSecret("Confirm PIN: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if pin != confirm {
		fmt.Fprintln(os.Stderr, "Error: PINs do not match.")
		return subcommands.ExitFailure
	}
	if err := st.SetPIN(pin); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("PIN set.")
	return subcommands.ExitSuccess
}
