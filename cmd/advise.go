package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/cashpilot/cashpilot"
	"github.com/cashpilot/cashpilot/agent"
)

type adviseCmd struct {
	interactive bool
	model       string
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "get AI-generated financial advice" }
func (*adviseCmd) Usage() string {
	return `pilot advise [-i] [-model <name>]

  Sends a summary of the ledger (total balance, recent transactions,
  active loans) to a Gemini model and prints its advice. With -i, starts
  an interactive chat session instead. Requires GEMINI_API_KEY.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.interactive, "i", false, "Start an interactive chat session.")
	f.StringVar(&c.model, "model", "", "Gemini model to use. Overrides the config file.")
}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	model := cfg.Model
	if c.model != "" {
		model = c.model
	}

	state, st, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	st.Close()

	advisor, err := agent.NewAdvisor(ctx, model)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	summary := cashpilot.NewAdviceSummary(state)

	if c.interactive {
		if err := advisor.Run(ctx, os.Stdout, os.Stdin, summary, f.Args()...); err != nil {
			fmt.Fprintln(os.Stderr, "Advisor failed:", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	advice, err := advisor.Advise(ctx, summary)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(advice)
	return subcommands.ExitSuccess
}
