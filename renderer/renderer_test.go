package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cashpilot/cashpilot"
)

func testState() cashpilot.State {
	s := cashpilot.DefaultState()
	s = s.AddTransaction(cashpilot.Transaction{
		ID:        "tx_1",
		Amount:    cashpilot.M(1200, "USD"),
		Kind:      cashpilot.Income,
		Category:  "Salary",
		Date:      cashpilot.MustParseDate("2026-01-05"),
		Notes:     "january pay",
		AccountID: "acc_1",
	})
	s = s.AddTransaction(cashpilot.Transaction{
		ID:        "tx_2",
		Amount:    cashpilot.M(300, "USD"),
		Kind:      cashpilot.Expense,
		Category:  "Rent",
		Date:      cashpilot.MustParseDate("2026-01-06"),
		AccountID: "acc_1",
	})
	return s
}

func TestTransactions(t *testing.T) {
	s := testState()
	got := Transactions(s, s.Transactions)

	for _, want := range []string{"# Transactions", "2026-01-05", "INCOME", "Salary", "Main Wallet", "january pay", "Rent"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestTransactions_Empty(t *testing.T) {
	s := cashpilot.DefaultState()
	if got := Transactions(s, nil); !strings.Contains(got, "No transactions recorded.") {
		t.Errorf("empty listing = %q", got)
	}
}

func TestTransactions_UnknownAccount(t *testing.T) {
	s := testState()
	txs := []cashpilot.Transaction{{ID: "tx_x", Amount: cashpilot.M(1, "USD"), Kind: cashpilot.Expense, Date: cashpilot.MustParseDate("2026-01-01"), AccountID: "acc_gone"}}
	if got := Transactions(s, txs); !strings.Contains(got, "Unknown Account") {
		t.Errorf("dangling account not rendered as Unknown Account:\n%s", got)
	}
}

func TestTransaction_OneLine(t *testing.T) {
	s := testState()
	if got := Transaction(s, *s.Transaction("tx_1")); !strings.Contains(got, "Received") || !strings.Contains(got, "Salary") {
		t.Errorf("Transaction() = %q", got)
	}
	if got := Transaction(s, *s.Transaction("tx_2")); !strings.Contains(got, "Spent") || !strings.Contains(got, "Rent") {
		t.Errorf("Transaction() = %q", got)
	}
}

func TestLoans(t *testing.T) {
	s := testState()
	s, loan := s.AddLoan(cashpilot.LoanDraft{
		Type:         cashpilot.Given,
		Counterparty: "Alice",
		Principal:    cashpilot.M(500, "USD"),
		InterestRate: decimal.NewFromInt(5),
		StartDate:    cashpilot.MustParseDate("2026-02-01"),
		DueDate:      cashpilot.MustParseDate("2026-12-31"),
	})
	s = s.AddRepayment(loan.ID, cashpilot.RepaymentDraft{
		Amount:    cashpilot.M(100, "USD"),
		AccountID: "acc_1",
		Date:      cashpilot.MustParseDate("2026-03-01"),
	})

	got := Loans(s)
	for _, want := range []string{"# Loans", "Alice", "GIVEN", "$525.00", "$100.00", "2026-12-31", "ACTIVE"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestLoans_Empty(t *testing.T) {
	if got := Loans(cashpilot.DefaultState()); !strings.Contains(got, "No loans recorded.") {
		t.Errorf("empty loan book = %q", got)
	}
}

func TestAccounts(t *testing.T) {
	s := testState()
	got := Accounts(s)
	for _, want := range []string{"# Accounts", "acc_1", "Main Wallet", "$900.00", "USD"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestSummary(t *testing.T) {
	s := testState()
	got := Summary(s, cashpilot.Date{}, cashpilot.Date{})
	for _, want := range []string{"# Summary", "Total Balance: $900.00", "Income by Category", "Expenses by Category", "Salary", "Rent"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestSummary_RangeInTitle(t *testing.T) {
	s := testState()
	got := Summary(s, cashpilot.MustParseDate("2026-01-01"), cashpilot.Date{})
	if !strings.Contains(got, "Summary 2026-01-01 to ...") {
		t.Errorf("title missing the range:\n%s", got)
	}
}
