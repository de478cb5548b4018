package cashpilot

import (
	"log"
	"slices"
)

// This file implements balance reconciliation: the signed effect of a
// transaction on its account, and the helpers that apply or reverse it.

// Effect returns the signed balance impact of a transaction, derived from
// its kind: income adds, expense subtracts. The stored amount itself is
// always non-negative.
func Effect(tx Transaction) Money {
	switch tx.Kind {
	case Income:
		return tx.Amount
	case Expense:
		return tx.Amount.Neg()
	default:
		// A repayment never survives as a persisted kind; reaching this is a
		// caller error. Treat it as a neutral entry rather than corrupt a balance.
		log.Printf("effect: transaction %q has invalid kind %q, treating as neutral", tx.ID, tx.Kind)
		return Money{}
	}
}

// creditAccount returns a copy of the state with delta added to the balance
// of the given account. Unknown accounts are left untouched: a transaction
// pointing at a removed account must not fail the whole operation.
func (s State) creditAccount(id string, delta Money) State {
	idx := slices.IndexFunc(s.Accounts, func(a Account) bool { return a.ID == id })
	if idx < 0 {
		return s
	}
	accounts := slices.Clone(s.Accounts)
	accounts[idx].Balance = accounts[idx].Balance.Add(delta)
	s.Accounts = accounts
	return s
}

// applyEffect adds the transaction's effect to its account balance.
func (s State) applyEffect(tx Transaction) State {
	return s.creditAccount(tx.AccountID, Effect(tx))
}

// reverseEffect subtracts the transaction's effect from its account balance,
// used before re-applying an updated transaction or after removing one.
func (s State) reverseEffect(tx Transaction) State {
	return s.creditAccount(tx.AccountID, Effect(tx).Neg())
}
