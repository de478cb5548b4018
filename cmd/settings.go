package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"github.com/cashpilot/cashpilot"
)

type settingsCmd struct {
	currency string
	dark     string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change the user settings" }
func (*settingsCmd) Usage() string {
	return `pilot settings [-currency <code>] [-dark <true|false>]

  Without flags, shows the current settings. The currency is the display
  currency for totals; account currencies are unaffected.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "Display currency code.")
	f.StringVar(&c.dark, "dark", "", "Dark mode preference: true or false.")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var patch cashpilot.SettingsPatch
	if c.currency != "" {
		patch.Currency = &c.currency
	}
	if c.dark != "" {
		dark, err := strconv.ParseBool(c.dark)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -dark must be true or false, got %q\n", c.dark)
			return subcommands.ExitUsageError
		}
		patch.DarkMode = &dark
	}

	state, st, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if patch.Currency == nil && patch.DarkMode == nil {
		st.Close()
		fmt.Printf("currency: %s\ndark mode: %v\n", state.Settings.Currency, state.Settings.DarkMode)
		return subcommands.ExitSuccess
	}

	state = state.UpdateSettings(patch)
	if err := saveState(st, state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Settings updated.")
	return subcommands.ExitSuccess
}
