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

type addCmd struct {
	kind     string
	amount   string
	category string
	date     string
	account  string
	notes    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense transaction" }
func (*addCmd) Usage() string {
	return `pilot add -type <INCOME|EXPENSE> -amount <amount> -category <category> [-account <id>] [-date <date>] [-notes <text>]

  Records a transaction and updates the account balance.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "", "Transaction type: INCOME or EXPENSE.")
	f.StringVar(&c.amount, "amount", "", "Amount, non-negative.")
	f.StringVar(&c.category, "category", "", "Category name.")
	f.StringVar(&c.date, "date", "", "Date of the transaction. Defaults to today.")
	f.StringVar(&c.account, "account", "", "Account id. Defaults to the first account.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := cashpilot.ParseTxKind(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil || amount.IsNegative() {
		fmt.Fprintf(os.Stderr, "Error: -amount must be a non-negative number, got %q\n", c.amount)
		return subcommands.ExitUsageError
	}
	if c.category == "" {
		fmt.Fprintln(os.Stderr, "Error: -category is required.")
		return subcommands.ExitUsageError
	}

	date := cashpilot.Today()
	if c.date != "" {
		date, err = cashpilot.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	state, st, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	accountID := c.account
	if accountID == "" && len(state.Accounts) > 0 {
		accountID = state.Accounts[0].ID
	}
	if state.Account(accountID) == nil {
		st.Close()
		fmt.Fprintf(os.Stderr, "Error: unknown account %q\n", accountID)
		return subcommands.ExitFailure
	}

	tx := cashpilot.Transaction{
		ID:        cashpilot.NewTransactionID(),
		Amount:    cashpilot.M(amount, state.AccountCurrency(accountID)),
		Kind:      kind,
		Category:  c.category,
		Date:      date,
		Notes:     c.notes,
		AccountID: accountID,
	}
	state = state.AddTransaction(tx)

	if err := saveState(st, state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded transaction %s\n", tx.ID)
	return subcommands.ExitSuccess
}
