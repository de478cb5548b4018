package cashpilot

import (
	"slices"

	"github.com/shopspring/decimal"
)

// This file implements the loan status engine: deriving a loan's payoff
// status from the set of persisted repayment transactions.

// payoffEpsilon is the tolerance, in currency units, under which a loan is
// considered fully repaid. Amounts are exact decimals, but interest-derived
// totals can carry more digits than any repayment ever will.
var payoffEpsilon = decimal.NewFromFloat(0.01)

var percent = decimal.NewFromInt(100)

// TotalDue returns the amount that settles the loan: principal plus simple
// interest at the loan's fixed rate.
func TotalDue(loan Loan) Money {
	factor := decimal.NewFromInt(1).Add(loan.InterestRate.Div(percent))
	return loan.Principal.Mul(factor)
}

// TotalRepaid sums the amounts of the transactions in txs that the loan
// lists as repayments. It always recomputes from the transaction list it is
// given: repayments can be deleted or edited independently, so a cached sum
// can never be trusted.
func TotalRepaid(txs []Transaction, loan Loan) Money {
	var repaid Money
	for _, tx := range txs {
		if slices.Contains(loan.Repayments, tx.ID) {
			repaid = repaid.Add(tx.Amount)
		}
	}
	return repaid
}

// DeriveStatus returns Paid when the repaid amount covers the total due
// within the payoff tolerance, Active otherwise. It is pure and total, and
// must be consulted after every operation that can change the repaid amount
// or the repayment list: the status can revert from Paid to Active when a
// repayment is deleted.
func DeriveStatus(loan Loan, repaid Money) LoanStatus {
	due := TotalDue(loan)
	if repaid.Decimal().GreaterThanOrEqual(due.Decimal().Sub(payoffEpsilon)) {
		return Paid
	}
	return Active
}

// reconcileLoan returns a copy of the loan with its status derived from the
// given transaction list.
func reconcileLoan(loan Loan, txs []Transaction) Loan {
	loan.Status = DeriveStatus(loan, TotalRepaid(txs, loan))
	return loan
}
