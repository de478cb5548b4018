package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/cashpilot/cashpilot"
)

type categoryCmd struct {
	kind string
	add  string
	rm   string
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "list, add or remove categories" }
func (*categoryCmd) Usage() string {
	return `pilot category [-kind <income|expense>] [-add <name>] [-rm <name>]

  Without -add or -rm, lists the categories. Transactions keep their
  category label even after it is removed from the list.
`
}

func (c *categoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "expense", "Category list: income or expense.")
	f.StringVar(&c.add, "add", "", "Name of a category to add.")
	f.StringVar(&c.rm, "rm", "", "Name of a category to remove.")
}

func (c *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := cashpilot.ParseCategoryKind(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	state, st, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case c.add != "":
		state = state.AddCategory(kind, c.add)
		if err := saveState(st, state); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Added %s category %q\n", kind, c.add)
		return subcommands.ExitSuccess

	case c.rm != "":
		state = state.RemoveCategory(kind, c.rm)
		if err := saveState(st, state); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Removed %s category %q\n", kind, c.rm)
		return subcommands.ExitSuccess

	default:
		st.Close()
		cats := state.Settings.Categories.Expense
		if kind == cashpilot.IncomeCategory {
			cats = state.Settings.Categories.Income
		}
		fmt.Printf("%s categories: %s\n", kind, strings.Join(cats, ", "))
		return subcommands.ExitSuccess
	}
}
