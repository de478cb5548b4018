package cashpilot

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for tests to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// NO is a helper for tests to create money with no currency set
func NO(v float64) Money { return M(v, "") }

// D is a helper for tests to parse a date from const
func D(s string) Date { return MustParseDate(s) }

// twoAccounts returns a state with a wallet and a bank account, no history.
func twoAccounts() State {
	s := DefaultState()
	s.Accounts = []Account{
		{ID: "acc_1", Name: "Main Wallet", Balance: Money{}, Currency: "USD"},
		{ID: "acc_2", Name: "Bank", Balance: Money{}, Currency: "USD"},
	}
	return s
}

// incomeTx builds a minimal income transaction for tests.
func incomeTx(id string, amount Money, account string) Transaction {
	return Transaction{
		ID:        id,
		Amount:    amount,
		Kind:      Income,
		Category:  "Salary",
		Date:      D("2026-01-15"),
		AccountID: account,
	}
}

// expenseTx builds a minimal expense transaction for tests.
func expenseTx(id string, amount Money, account string) Transaction {
	return Transaction{
		ID:        id,
		Amount:    amount,
		Kind:      Expense,
		Category:  "Food",
		Date:      D("2026-01-20"),
		AccountID: account,
	}
}
