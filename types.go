package cashpilot

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TxKind is the persisted direction of a transaction. Only income and
// expense are ever stored; a repayment is a draft-only notion that the
// engine rewrites before persisting (see RepaymentDraft).
type TxKind string

const (
	Income  TxKind = "INCOME"
	Expense TxKind = "EXPENSE"
)

// ParseTxKind parses a string into a TxKind.
func ParseTxKind(s string) (TxKind, error) {
	switch TxKind(s) {
	case Income, Expense:
		return TxKind(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// LoanType tells the direction of a loan: money lent out or money borrowed.
type LoanType string

const (
	Given LoanType = "GIVEN" // money lent out to the counterparty
	Taken LoanType = "TAKEN" // money borrowed from the counterparty
)

// ParseLoanType parses a string into a LoanType.
func ParseLoanType(s string) (LoanType, error) {
	switch LoanType(s) {
	case Given, Taken:
		return LoanType(s), nil
	default:
		return "", fmt.Errorf("unknown loan type: %q", s)
	}
}

// LoanStatus is the derived payoff status of a loan. It is recomputed from
// the repayment transactions, never advanced monotonically.
type LoanStatus string

const (
	Active LoanStatus = "ACTIVE"
	Paid   LoanStatus = "PAID"
)

// CategoryKind selects one of the two category lists in the user settings.
type CategoryKind string

const (
	IncomeCategory  CategoryKind = "income"
	ExpenseCategory CategoryKind = "expense"
)

// ParseCategoryKind parses a string into a CategoryKind.
func ParseCategoryKind(s string) (CategoryKind, error) {
	switch CategoryKind(s) {
	case IncomeCategory, ExpenseCategory:
		return CategoryKind(s), nil
	default:
		return "", fmt.Errorf("unknown category kind: %q (want income or expense)", s)
	}
}

// Account is a named balance bucket with a currency code. Its balance is
// maintained incrementally by the engine: the sum of the signed effects of
// all transactions currently referencing it.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Balance  Money  `json:"balance"`
	Currency string `json:"currency"`
}

// Transaction is an atomic ledger entry. The amount is always stored
// non-negative; the direction comes from Kind.
type Transaction struct {
	ID            string `json:"id"`
	Amount        Money  `json:"amount"`
	Kind          TxKind `json:"type"`
	Category      string `json:"category"`
	Date          Date   `json:"date"`
	Notes         string `json:"notes,omitempty"`
	AccountID     string `json:"accountId"`
	RelatedLoanID string `json:"relatedLoanId,omitempty"`
}

// Loan is a borrowing or lending agreement. Repayments lists the ids of the
// transactions that count toward its payoff.
type Loan struct {
	ID           string          `json:"id"`
	Type         LoanType        `json:"type"`
	Counterparty string          `json:"counterparty"`
	Principal    Money           `json:"principal"`
	InterestRate decimal.Decimal `json:"interestRate"` // simple interest, in percent
	StartDate    Date            `json:"startDate"`
	DueDate      Date            `json:"dueDate"`
	Status       LoanStatus      `json:"status"`
	Notes        string          `json:"notes,omitempty"`
	Repayments   []string        `json:"repayments"`
}

// Categories holds the two user-managed category lists.
type Categories struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

// Settings holds the user preferences persisted with the ledger.
type Settings struct {
	Currency   string     `json:"currency"`
	DarkMode   bool       `json:"darkMode"`
	Categories Categories `json:"categories"`
}

// State is the aggregate root: the unit of persistence and the sole
// argument and result type of every engine operation.
type State struct {
	Transactions []Transaction `json:"transactions"`
	Loans        []Loan        `json:"loans"`
	Accounts     []Account     `json:"accounts"`
	Settings     Settings      `json:"settings"`
}

// DefaultCategories are the category lists a fresh ledger starts with.
func DefaultCategories() Categories {
	return Categories{
		Income:  []string{"Salary", "Freelance", "Investment", "Gift", "Other"},
		Expense: []string{"Food", "Transport", "Rent", "Utilities", "Entertainment", "Health", "Shopping", "Other"},
	}
}

// DefaultState returns the state of a fresh ledger: a single main wallet
// and the default category lists.
func DefaultState() State {
	return State{
		Transactions: []Transaction{},
		Loans:        []Loan{},
		Accounts: []Account{
			{ID: "acc_1", Name: "Main Wallet", Balance: Money{}, Currency: "USD"},
		},
		Settings: Settings{
			Currency:   "USD",
			DarkMode:   false,
			Categories: DefaultCategories(),
		},
	}
}

// Account returns the account with the given id, or nil if unknown.
func (s State) Account(id string) *Account {
	for i := range s.Accounts {
		if s.Accounts[i].ID == id {
			return &s.Accounts[i]
		}
	}
	return nil
}

// Loan returns the loan with the given id, or nil if unknown.
func (s State) Loan(id string) *Loan {
	for i := range s.Loans {
		if s.Loans[i].ID == id {
			return &s.Loans[i]
		}
	}
	return nil
}

// Transaction returns the transaction with the given id, or nil if unknown.
func (s State) Transaction(id string) *Transaction {
	for i := range s.Transactions {
		if s.Transactions[i].ID == id {
			return &s.Transactions[i]
		}
	}
	return nil
}

// AccountCurrency resolves the display currency for an account id, falling
// back to the settings currency for dangling references.
func (s State) AccountCurrency(id string) string {
	if acc := s.Account(id); acc != nil {
		return acc.Currency
	}
	return s.Settings.Currency
}

// NewAccountID mints a unique account id.
func NewAccountID() string { return "acc_" + uuid.NewString() }

// NewTransactionID mints a unique transaction id.
func NewTransactionID() string { return "tx_" + uuid.NewString() }

// NewLoanID mints a unique loan id.
func NewLoanID() string { return "loan_" + uuid.NewString() }
