package cashpilot

import (
	"testing"
)

// reportState builds a small history spread over three months.
func reportState() State {
	s := twoAccounts()
	add := func(id string, kind TxKind, category, date string, amount float64) {
		s = s.AddTransaction(Transaction{
			ID: id, Amount: USD(amount), Kind: kind,
			Category: category, Date: D(date), AccountID: "acc_1",
		})
	}
	add("tx_1", Income, "Salary", "2026-01-05", 3000)
	add("tx_2", Expense, "Rent", "2026-01-06", 1200)
	add("tx_3", Expense, "Food", "2026-01-20", 300)
	add("tx_4", Expense, "Food", "2026-02-10", 250)
	add("tx_5", Income, "Freelance", "2026-02-15", 800)
	add("tx_6", Expense, "Transport", "2026-03-01", 90)
	return s
}

func TestTotalByKind(t *testing.T) {
	s := reportState()
	tests := []struct {
		name     string
		kind     TxKind
		from, to Date
		want     Money
	}{
		{"all income", Income, Date{}, Date{}, USD(3800)},
		{"all expenses", Expense, Date{}, Date{}, USD(1840)},
		{"january expenses", Expense, D("2026-01-01"), D("2026-01-31"), USD(1500)},
		{"open start", Expense, Date{}, D("2026-01-31"), USD(1500)},
		{"open end", Income, D("2026-02-01"), Date{}, USD(800)},
		{"bounds are inclusive", Expense, D("2026-01-06"), D("2026-01-20"), USD(1500)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.TotalByKind(tt.kind, tt.from, tt.to); !got.Equal(tt.want) {
				t.Errorf("TotalByKind() = %s, want %s", got.Decimal(), tt.want.Decimal())
			}
		})
	}
}

func TestCategoryBreakdown(t *testing.T) {
	s := reportState()
	got := s.CategoryBreakdown(Expense, Date{}, Date{})

	want := []struct {
		category string
		total    Money
	}{
		{"Rent", USD(1200)},
		{"Food", USD(550)},
		{"Transport", USD(90)},
	}
	if len(got) != len(want) {
		t.Fatalf("breakdown has %d entries, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Category != w.category || !got[i].Total.Equal(w.total) {
			t.Errorf("breakdown[%d] = %s %s, want %s %s",
				i, got[i].Category, got[i].Total.Decimal(), w.category, w.total.Decimal())
		}
	}
}

func TestCategoryBreakdown_TiesSortByName(t *testing.T) {
	s := twoAccounts().
		AddTransaction(Transaction{ID: "tx_1", Amount: USD(10), Kind: Expense, Category: "Zoo", Date: D("2026-01-01"), AccountID: "acc_1"}).
		AddTransaction(Transaction{ID: "tx_2", Amount: USD(10), Kind: Expense, Category: "Art", Date: D("2026-01-02"), AccountID: "acc_1"})

	got := s.CategoryBreakdown(Expense, Date{}, Date{})
	if got[0].Category != "Art" || got[1].Category != "Zoo" {
		t.Errorf("tied categories = [%s %s], want alphabetical", got[0].Category, got[1].Category)
	}
}

func TestTransactionsInRange(t *testing.T) {
	s := reportState()
	got := s.TransactionsInRange(D("2026-02-01"), D("2026-02-28"))
	if len(got) != 2 {
		t.Fatalf("got %d transactions, want 2", len(got))
	}
	// Ledger order, most recent first.
	if got[0].ID != "tx_5" || got[1].ID != "tx_4" {
		t.Errorf("order = [%s %s], want [tx_5 tx_4]", got[0].ID, got[1].ID)
	}
}
