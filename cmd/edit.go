package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/cashpilot/cashpilot"
)

type editCmd struct {
	id       string
	kind     string
	amount   string
	category string
	date     string
	account  string
	notes    string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing transaction" }
func (*editCmd) Usage() string {
	return `pilot edit -id <tx id> [-type ...] [-amount ...] [-category ...] [-account ...] [-date ...] [-notes ...]

  Replaces the given fields of a transaction. Balances are reconciled on
  both the old and the new account, and a linked loan's status is
  re-derived.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the transaction to edit.")
	f.StringVar(&c.kind, "type", "", "New transaction type: INCOME or EXPENSE.")
	f.StringVar(&c.amount, "amount", "", "New amount.")
	f.StringVar(&c.category, "category", "", "New category.")
	f.StringVar(&c.date, "date", "", "New date.")
	f.StringVar(&c.account, "account", "", "New account id.")
	f.StringVar(&c.notes, "notes", "", "New notes.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	state, st, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	existing := state.Transaction(c.id)
	if existing == nil {
		st.Close()
		fmt.Fprintf(os.Stderr, "Error: unknown transaction %q\n", c.id)
		return subcommands.ExitFailure
	}
	tx := *existing

	if c.kind != "" {
		kind, err := cashpilot.ParseTxKind(c.kind)
		if err != nil {
			st.Close()
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		tx.Kind = kind
	}
	if c.account != "" {
		if state.Account(c.account) == nil {
			st.Close()
			fmt.Fprintf(os.Stderr, "Error: unknown account %q\n", c.account)
			return subcommands.ExitFailure
		}
		tx.AccountID = c.account
	}
	if c.amount != "" {
		amount, err := decimal.NewFromString(c.amount)
		if err != nil || amount.IsNegative() {
			st.Close()
			fmt.Fprintf(os.Stderr, "Error: -amount must be a non-negative number, got %q\n", c.amount)
			return subcommands.ExitUsageError
		}
		tx.Amount = cashpilot.M(amount, state.AccountCurrency(tx.AccountID))
	}
	if c.category != "" {
		tx.Category = c.category
	}
	if c.date != "" {
		date, err := cashpilot.ParseDate(c.date)
		if err != nil {
			st.Close()
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		tx.Date = date
	}
	if c.notes != "" {
		tx.Notes = c.notes
	}

	state = state.UpdateTransaction(tx)

	if err := saveState(st, state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated transaction %s\n", tx.ID)
	return subcommands.ExitSuccess
}
