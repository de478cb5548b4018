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

type repayCmd struct {
	loan    string
	amount  string
	account string
	date    string
	notes   string
}

func (*repayCmd) Name() string     { return "repay" }
func (*repayCmd) Synopsis() string { return "record a repayment against a loan" }
func (*repayCmd) Usage() string {
	return `pilot repay -loan <loan id> -amount <amount> [-account <id>] [-date <date>] [-notes <text>]

  Records a repayment. The transaction direction follows the loan: income
  for a loan given, expense for a loan taken. The loan turns PAID when
  repayments reach the total due, within one cent.
`
}

func (c *repayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.loan, "loan", "", "Id of the loan being repaid.")
	f.StringVar(&c.amount, "amount", "", "Repayment amount.")
	f.StringVar(&c.account, "account", "", "Account id. Defaults to the first account.")
	f.StringVar(&c.date, "date", "", "Date of the repayment. Defaults to today.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
}

func (c *repayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.loan == "" {
		fmt.Fprintln(os.Stderr, "Error: -loan is required.")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil || amount.IsNegative() {
		fmt.Fprintf(os.Stderr, "Error: -amount must be a non-negative number, got %q\n", c.amount)
		return subcommands.ExitUsageError
	}

	date := cashpilot.Today()
	if c.date != "" {
		if date, err = cashpilot.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	state, st, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if state.Loan(c.loan) == nil {
		st.Close()
		fmt.Fprintf(os.Stderr, "Error: unknown loan %q\n", c.loan)
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

	state = state.AddRepayment(c.loan, cashpilot.RepaymentDraft{
		Amount:    cashpilot.M(amount, state.AccountCurrency(accountID)),
		AccountID: accountID,
		Date:      date,
		Notes:     c.notes,
	})

	loan := state.Loan(c.loan)
	if err := saveState(st, state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded repayment on loan %s (status %s)\n", loan.ID, loan.Status)
	return subcommands.ExitSuccess
}
