package cashpilot

import (
	"fmt"
	"log"
	"slices"

	"github.com/shopspring/decimal"
)

// This file implements the ledger engine: the public operations that mutate
// accounts, transactions and loans together.
//
// Every operation takes the current state by value and returns the next one.
// Not-found conditions are recovered locally: the operation logs and returns
// the state unchanged, favoring availability over strictness. Callers are
// expected to validate user input before invoking an operation.

// Synthesized transaction categories.
const (
	CategoryLoanPrincipal = "Loan Principal"
	CategoryLoanRepayment = "Loan Repayment"
)

// fallbackAccountID is credited when a loan principal is disbursed while no
// account exists yet. The effect is then a no-op until such an account appears.
const fallbackAccountID = "acc_default"

// AddTransaction prepends a fully-formed transaction to the ledger and
// applies its balance effect. It always succeeds.
func (s State) AddTransaction(tx Transaction) State {
	s.Transactions = append([]Transaction{tx}, s.Transactions...)
	return s.applyEffect(tx)
}

// UpdateTransaction replaces the stored transaction carrying the same id.
//
// The old version's effect is reversed on the old account and the new
// version's effect applied on the new account, independently, so moving a
// transaction between accounts reconciles both. When the transaction is
// linked to a loan, the loan's status is re-derived from the post-update
// transaction list.
func (s State) UpdateTransaction(updated Transaction) State {
	idx := slices.IndexFunc(s.Transactions, func(t Transaction) bool { return t.ID == updated.ID })
	if idx < 0 {
		log.Printf("update: transaction %q not found, ignoring", updated.ID)
		return s
	}
	old := s.Transactions[idx]

	s = s.reverseEffect(old)
	s = s.applyEffect(updated)

	txs := slices.Clone(s.Transactions)
	txs[idx] = updated
	s.Transactions = txs

	if updated.RelatedLoanID != "" {
		s = s.reconcileLoanByID(updated.RelatedLoanID)
	}
	return s
}

// DeleteTransaction removes a transaction and reverses every side effect it
// originally caused: its balance effect, and, for a loan-linked transaction,
// its membership in the loan's repayment list (re-deriving the status, which
// can revert the loan from paid to active).
func (s State) DeleteTransaction(id string) State {
	idx := slices.IndexFunc(s.Transactions, func(t Transaction) bool { return t.ID == id })
	if idx < 0 {
		log.Printf("delete: transaction %q not found, ignoring", id)
		return s
	}
	tx := s.Transactions[idx]

	s = s.reverseEffect(tx)

	remaining := slices.Delete(slices.Clone(s.Transactions), idx, idx+1)

	if tx.RelatedLoanID != "" {
		if li := slices.IndexFunc(s.Loans, func(l Loan) bool { return l.ID == tx.RelatedLoanID }); li >= 0 {
			loans := slices.Clone(s.Loans)
			loan := loans[li]
			loan.Repayments = slices.DeleteFunc(slices.Clone(loan.Repayments), func(rid string) bool { return rid == id })
			// Derive from the list that excludes the deleted transaction.
			loans[li] = reconcileLoan(loan, remaining)
			s.Loans = loans
		}
	}

	s.Transactions = remaining
	return s
}

// LoanDraft is the user input for creating a loan. The engine assigns the
// id, the initial status and the repayment list.
type LoanDraft struct {
	Type         LoanType
	Counterparty string
	Principal    Money
	InterestRate decimal.Decimal // percentage, default 0
	StartDate    Date
	DueDate      Date
	Notes        string
}

// AddLoan records a new loan and synthesizes its single principal
// disbursement transaction: an expense when money is lent out, an income
// when money is borrowed. The principal lands on the first account of the
// ledger; no account-selection input exists for loan principals.
func (s State) AddLoan(draft LoanDraft) (State, Loan) {
	loan := Loan{
		ID:           NewLoanID(),
		Type:         draft.Type,
		Counterparty: draft.Counterparty,
		Principal:    draft.Principal,
		InterestRate: draft.InterestRate,
		StartDate:    draft.StartDate,
		DueDate:      draft.DueDate,
		Status:       Active,
		Notes:        draft.Notes,
		Repayments:   []string{},
	}

	kind := Income
	if loan.Type == Given {
		kind = Expense
	}
	accountID := fallbackAccountID
	if len(s.Accounts) > 0 {
		accountID = s.Accounts[0].ID
	}
	tx := Transaction{
		ID:            NewTransactionID(),
		Amount:        loan.Principal,
		Kind:          kind,
		Category:      CategoryLoanPrincipal,
		Date:          loan.StartDate,
		Notes:         fmt.Sprintf("Loan %s - %s", loan.Type, loan.Counterparty),
		AccountID:     accountID,
		RelatedLoanID: loan.ID,
	}

	s.Loans = append([]Loan{loan}, s.Loans...)
	s = s.AddTransaction(tx)
	return s, loan
}

// RepaymentDraft is the user input for a loan repayment. It deliberately has
// no transaction kind: the persisted direction is derived from the loan, so
// the transient "repayment" type can never be stored.
type RepaymentDraft struct {
	Amount    Money
	AccountID string
	Date      Date
	Notes     string
}

// AddRepayment records a repayment against a loan: it synthesizes the
// transaction (income for a given loan, expense for a taken one), appends
// its id to the loan's repayment list, applies the balance effect, and
// decides the new status from the repayments persisted before this one plus
// the new amount.
func (s State) AddRepayment(loanID string, draft RepaymentDraft) State {
	li := slices.IndexFunc(s.Loans, func(l Loan) bool { return l.ID == loanID })
	if li < 0 {
		log.Printf("repay: loan %q not found, ignoring", loanID)
		return s
	}
	loan := s.Loans[li]

	kind := Expense
	if loan.Type == Given {
		kind = Income
	}
	tx := Transaction{
		ID:            NewTransactionID(),
		Amount:        draft.Amount,
		Kind:          kind,
		Category:      CategoryLoanRepayment,
		Date:          draft.Date,
		Notes:         draft.Notes,
		AccountID:     draft.AccountID,
		RelatedLoanID: loanID,
	}

	previous := TotalRepaid(s.Transactions, loan)
	loan.Repayments = append(slices.Clone(loan.Repayments), tx.ID)
	loan.Status = DeriveStatus(loan, previous.Add(tx.Amount))

	loans := slices.Clone(s.Loans)
	loans[li] = loan
	s.Loans = loans

	return s.AddTransaction(tx)
}

// RemoveLoan deletes a loan and detaches its transactions: their balance
// effects stay applied and they remain in the history as plain entries, but
// they no longer reference the loan.
func (s State) RemoveLoan(id string) State {
	li := slices.IndexFunc(s.Loans, func(l Loan) bool { return l.ID == id })
	if li < 0 {
		log.Printf("remove loan: loan %q not found, ignoring", id)
		return s
	}
	s.Loans = slices.Delete(slices.Clone(s.Loans), li, li+1)

	txs := slices.Clone(s.Transactions)
	for i := range txs {
		if txs[i].RelatedLoanID == id {
			txs[i].RelatedLoanID = ""
		}
	}
	s.Transactions = txs
	return s
}

// reconcileLoanByID re-derives the status of one loan from the current
// transaction list. Unknown loans are ignored.
func (s State) reconcileLoanByID(id string) State {
	li := slices.IndexFunc(s.Loans, func(l Loan) bool { return l.ID == id })
	if li < 0 {
		return s
	}
	loans := slices.Clone(s.Loans)
	loans[li] = reconcileLoan(loans[li], s.Transactions)
	s.Loans = loans
	return s
}

// SettingsPatch is a partial settings update; nil fields are left untouched.
type SettingsPatch struct {
	Currency   *string
	DarkMode   *bool
	Categories *Categories
}

// UpdateSettings shallow-merges the patch into the settings.
func (s State) UpdateSettings(patch SettingsPatch) State {
	if patch.Currency != nil {
		s.Settings.Currency = *patch.Currency
	}
	if patch.DarkMode != nil {
		s.Settings.DarkMode = *patch.DarkMode
	}
	if patch.Categories != nil {
		s.Settings.Categories = *patch.Categories
	}
	return s
}

// AddCategory appends a name to the selected category list. Duplicates are
// allowed, matching the loose list semantics of the settings.
func (s State) AddCategory(kind CategoryKind, name string) State {
	cats := s.Settings.Categories
	switch kind {
	case IncomeCategory:
		cats.Income = append(slices.Clone(cats.Income), name)
	case ExpenseCategory:
		cats.Expense = append(slices.Clone(cats.Expense), name)
	}
	s.Settings.Categories = cats
	return s
}

// RemoveCategory filters a name out of the selected category list.
func (s State) RemoveCategory(kind CategoryKind, name string) State {
	drop := func(c string) bool { return c == name }
	cats := s.Settings.Categories
	switch kind {
	case IncomeCategory:
		cats.Income = slices.DeleteFunc(slices.Clone(cats.Income), drop)
	case ExpenseCategory:
		cats.Expense = slices.DeleteFunc(slices.Clone(cats.Expense), drop)
	}
	s.Settings.Categories = cats
	return s
}

// AddAccount appends a new account with a zero balance and a fresh id.
func (s State) AddAccount(name, currency string) (State, Account) {
	acc := Account{ID: NewAccountID(), Name: name, Balance: Money{}, Currency: currency}
	s.Accounts = append(slices.Clone(s.Accounts), acc)
	return s, acc
}

// RemoveAccount deletes an account from the ledger. An account still
// referenced by transactions is kept: deleting it would leave dangling
// references behind, so the operation logs and returns the state unchanged.
func (s State) RemoveAccount(id string) State {
	if slices.ContainsFunc(s.Transactions, func(t Transaction) bool { return t.AccountID == id }) {
		log.Printf("remove account: account %q still has transactions, ignoring", id)
		return s
	}
	s.Accounts = slices.DeleteFunc(slices.Clone(s.Accounts), func(a Account) bool { return a.ID == id })
	return s
}

// TotalBalance sums all account balances, tagged with the settings currency.
func (s State) TotalBalance() Money {
	var total Money
	for _, acc := range s.Accounts {
		total = total.Add(acc.Balance)
	}
	return total.In(s.Settings.Currency)
}

// RecomputeBalances rebuilds every account balance from scratch from the
// transaction list. The engine maintains balances incrementally; this is the
// reference computation used to audit them (and by tests).
func (s State) RecomputeBalances() State {
	accounts := slices.Clone(s.Accounts)
	for i := range accounts {
		accounts[i].Balance = Money{}
	}
	s.Accounts = accounts
	for _, tx := range s.Transactions {
		s = s.applyEffect(tx)
	}
	return s
}
