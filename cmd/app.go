// Package cmd implements the CLI application to manage a Cash Pilot ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"golang.org/x/term"

	"github.com/cashpilot/cashpilot"
	"github.com/cashpilot/cashpilot/store"
)

// Commands is the list of all subcommands. A main package registers them
// on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&editCmd{},
	&rmCmd{},
	&txCmd{},
	&loanCmd{},
	&loansCmd{},
	&repayCmd{},
	&accountCmd{},
	&categoryCmd{},
	&settingsCmd{},
	&summaryCmd{},
	&adviseCmd{},
	&exportCmd{},
	&importCmd{},
	&pinCmd{},
	&statusCmd{},
	&topicCmd{},
}

// As a CLI application the lifecycle is very short lived, so it is ok to
// use global variables for the app-wide flags.

var dataFile = flag.String("data", "", "Path to the database file. Overrides the config file.")
var configFile = flag.String("config", "", "Path to the config file.")

// openStore opens the database resolved from the -data flag, the config
// file, or the default location, and enforces the PIN if one is set.
func openStore() (*store.Store, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}

	path := cfg.DataPath
	if *dataFile != "" {
		path = *dataFile
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, err
	}

	if err := requirePIN(st); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

// loadState opens the store and loads the current state from it. The
// caller owns the returned store and must Close it.
func loadState() (cashpilot.State, *store.Store, error) {
	st, err := openStore()
	if err != nil {
		return cashpilot.State{}, nil, err
	}
	return st.Load(), st, nil
}

// saveState persists the state and closes the store.
func saveState(st *store.Store, s cashpilot.State) error {
	defer st.Close()
	if err := st.Save(s); err != nil {
		return fmt.Errorf("could not save: %w", err)
	}
	return nil
}

// requirePIN prompts for the PIN when one is set and verifies it.
func requirePIN(st *store.Store) error {
	if !st.HasPIN() {
		return nil
	}
	pin, err := readSecret("PIN: ")
	if err != nil {
		return err
	}
	if !st.VerifyPIN(pin) {
		return fmt.Errorf("incorrect PIN")
	}
	return nil
}

// readSecret reads a line from the terminal without echo, falling back to
// a plain read when stdin is not a terminal (tests, pipes).
func readSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("could not read input: %w", err)
		}
		return string(b), nil
	}
	var s string
	if _, err := fmt.Fscanln(os.Stdin, &s); err != nil {
		return "", fmt.Errorf("could not read input: %w", err)
	}
	return s, nil
}
