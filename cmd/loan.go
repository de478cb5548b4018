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

type loanCmd struct {
	kind         string
	counterparty string
	principal    string
	rate         string
	start        string
	due          string
	notes        string
}

func (*loanCmd) Name() string     { return "loan" }
func (*loanCmd) Synopsis() string { return "record a new loan" }
func (*loanCmd) Usage() string {
	return `pilot loan -type <GIVEN|TAKEN> -counterparty <name> -principal <amount> [-rate <percent>] [-start <date>] [-due <date>] [-notes <text>]

  Records a loan and the matching principal transaction: an expense when
  money is lent out (GIVEN), an income when it is borrowed (TAKEN).
`
}

func (c *loanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "", "Loan type: GIVEN (money lent out) or TAKEN (money borrowed).")
	f.StringVar(&c.counterparty, "counterparty", "", "The other party of the loan.")
	f.StringVar(&c.principal, "principal", "", "Principal amount.")
	f.StringVar(&c.rate, "rate", "0", "Simple interest rate, in percent.")
	f.StringVar(&c.start, "start", "", "Start date. Defaults to today.")
	f.StringVar(&c.due, "due", "", "Due date.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
}

func (c *loanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := cashpilot.ParseLoanType(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if c.counterparty == "" {
		fmt.Fprintln(os.Stderr, "Error: -counterparty is required.")
		return subcommands.ExitUsageError
	}
	principal, err := decimal.NewFromString(c.principal)
	if err != nil || principal.IsNegative() {
		fmt.Fprintf(os.Stderr, "Error: -principal must be a non-negative number, got %q\n", c.principal)
		return subcommands.ExitUsageError
	}
	rate, err := decimal.NewFromString(c.rate)
	if err != nil || rate.IsNegative() {
		fmt.Fprintf(os.Stderr, "Error: -rate must be a non-negative number, got %q\n", c.rate)
		return subcommands.ExitUsageError
	}

	start := cashpilot.Today()
	if c.start != "" {
		if start, err = cashpilot.ParseDate(c.start); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	var due cashpilot.Date
	if c.due != "" {
		if due, err = cashpilot.ParseDate(c.due); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing due date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	state, st, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var loan cashpilot.Loan
	state, loan = state.AddLoan(cashpilot.LoanDraft{
		Type:         kind,
		Counterparty: c.counterparty,
		Principal:    cashpilot.M(principal, state.Settings.Currency),
		InterestRate: rate,
		StartDate:    start,
		DueDate:      due,
		Notes:        c.notes,
	})

	if err := saveState(st, state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded loan %s (total due %s)\n", loan.ID, cashpilot.TotalDue(loan))
	return subcommands.ExitSuccess
}
