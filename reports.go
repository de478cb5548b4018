package cashpilot

import (
	"sort"
)

// CategoryTotal is a per-category aggregate over a date range.
type CategoryTotal struct {
	Category string
	Total    Money
}

// inRange reports whether a date falls in [from, to]. A zero bound is open.
func inRange(d, from, to Date) bool {
	if !from.IsZero() && d.Before(from) {
		return false
	}
	if !to.IsZero() && d.After(to) {
		return false
	}
	return true
}

// TotalByKind sums the amounts of all transactions of one kind in [from, to].
func (s State) TotalByKind(kind TxKind, from, to Date) Money {
	var total Money
	for _, tx := range s.Transactions {
		if tx.Kind == kind && inRange(tx.Date, from, to) {
			total = total.Add(tx.Amount)
		}
	}
	return total.In(s.Settings.Currency)
}

// CategoryBreakdown aggregates transactions of one kind per category over
// [from, to], sorted by descending total then by name for a stable render.
func (s State) CategoryBreakdown(kind TxKind, from, to Date) []CategoryTotal {
	totals := make(map[string]Money)
	for _, tx := range s.Transactions {
		if tx.Kind == kind && inRange(tx.Date, from, to) {
			totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
		}
	}

	breakdown := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		breakdown = append(breakdown, CategoryTotal{Category: category, Total: total.In(s.Settings.Currency)})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		a, b := breakdown[i], breakdown[j]
		if !a.Total.Equal(b.Total) {
			return b.Total.LessThan(a.Total)
		}
		return a.Category < b.Category
	})
	return breakdown
}

// TransactionsInRange returns the transactions dated within [from, to],
// preserving their ledger order (most recent first).
func (s State) TransactionsInRange(from, to Date) []Transaction {
	var txs []Transaction
	for _, tx := range s.Transactions {
		if inRange(tx.Date, from, to) {
			txs = append(txs, tx)
		}
	}
	return txs
}
