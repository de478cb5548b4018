// Package renderer turns ledger state into markdown for terminal display.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/cashpilot/cashpilot"
)

// Transactions renders a transaction listing as a markdown table.
func Transactions(s cashpilot.State, txs []cashpilot.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		accountName := "Unknown Account"
		if acc := s.Account(tx.AccountID); acc != nil {
			accountName = acc.Name
		}
		amount := tx.Amount.In(s.AccountCurrency(tx.AccountID))
		rows = append(rows, []string{
			tx.Date.String(),
			string(tx.Kind),
			tx.Category,
			amount.String(),
			accountName,
			tx.Notes,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Type", "Category", "Amount", "Account", "Notes"},
		Rows:   rows,
	})
	return doc.String()
}

// Transaction renders a one-line description of a transaction.
func Transaction(s cashpilot.State, tx cashpilot.Transaction) string {
	amount := tx.Amount.In(s.AccountCurrency(tx.AccountID))
	switch tx.Kind {
	case cashpilot.Income:
		return fmt.Sprintf("Received %s in %s on %s", amount, tx.Category, tx.Date)
	case cashpilot.Expense:
		return fmt.Sprintf("Spent %s on %s on %s", amount, tx.Category, tx.Date)
	default:
		return fmt.Sprintf("%s %s on %s", tx.Kind, amount, tx.Date)
	}
}

// Loans renders the loan book as a markdown table, with the repaid amount
// recomputed from the current transaction list.
func Loans(s cashpilot.State) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Loans")
	if len(s.Loans) == 0 {
		doc.PlainText("No loans recorded.")
		return doc.String()
	}

	rows := make([][]string, 0, len(s.Loans))
	for _, loan := range s.Loans {
		repaid := cashpilot.TotalRepaid(s.Transactions, loan)
		cur := s.Settings.Currency
		due := ""
		if !loan.DueDate.IsZero() {
			due = loan.DueDate.String()
		}
		rows = append(rows, []string{
			loan.ID,
			string(loan.Type),
			loan.Counterparty,
			loan.Principal.In(cur).String(),
			cashpilot.TotalDue(loan).In(cur).String(),
			repaid.In(cur).String(),
			due,
			string(loan.Status),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Type", "Counterparty", "Principal", "Total Due", "Repaid", "Due Date", "Status"},
		Rows:   rows,
	})
	return doc.String()
}

// Accounts renders the account list with balances as a markdown table.
func Accounts(s cashpilot.State) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")
	rows := make([][]string, 0, len(s.Accounts))
	for _, acc := range s.Accounts {
		rows = append(rows, []string{
			acc.ID,
			acc.Name,
			acc.Balance.In(acc.Currency).String(),
			acc.Currency,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Name", "Balance", "Currency"},
		Rows:   rows,
	})
	return doc.String()
}

// Summary renders totals and per-category breakdowns over a date range.
func Summary(s cashpilot.State, from, to cashpilot.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Summary"
	if !from.IsZero() || !to.IsZero() {
		title = fmt.Sprintf("Summary %s to %s", orOpen(from), orOpen(to))
	}
	doc.H1(title)
	doc.PlainText(fmt.Sprintf("Total Balance: %s", s.TotalBalance()))

	income := s.TotalByKind(cashpilot.Income, from, to)
	expense := s.TotalByKind(cashpilot.Expense, from, to)
	doc.PlainText(fmt.Sprintf("Income: %s | Expenses: %s | Net: %s", income, expense, income.Sub(expense)))

	for _, section := range []struct {
		title string
		kind  cashpilot.TxKind
	}{
		{"Income by Category", cashpilot.Income},
		{"Expenses by Category", cashpilot.Expense},
	} {
		breakdown := s.CategoryBreakdown(section.kind, from, to)
		if len(breakdown) == 0 {
			continue
		}
		doc.H2(section.title)
		rows := make([][]string, 0, len(breakdown))
		for _, ct := range breakdown {
			rows = append(rows, []string{ct.Category, ct.Total.String()})
		}
		doc.Table(md.TableSet{
			Header: []string{"Category", "Total"},
			Rows:   rows,
		})
	}
	return doc.String()
}

func orOpen(d cashpilot.Date) string {
	if d.IsZero() {
		return "..."
	}
	return d.String()
}
