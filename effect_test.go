package cashpilot

import "testing"

func TestEffect(t *testing.T) {
	tests := []struct {
		name string
		tx   Transaction
		want Money
	}{
		{"income is positive", incomeTx("tx_1", USD(100), "acc_1"), USD(100)},
		{"expense is negative", expenseTx("tx_1", USD(40), "acc_1"), USD(-40)},
		{"invalid kind is neutral", Transaction{ID: "tx_1", Amount: USD(10), Kind: "REPAYMENT"}, USD(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Effect(tt.tx); !got.Equal(tt.want) {
				t.Errorf("Effect() = %s, want %s", got.Decimal(), tt.want.Decimal())
			}
		})
	}
}

func TestCreditAccount_UnknownIsNoop(t *testing.T) {
	s := twoAccounts()
	got := s.applyEffect(incomeTx("tx_1", USD(10), "acc_ghost"))
	for _, acc := range got.Accounts {
		if !acc.Balance.IsZero() {
			t.Errorf("account %s balance changed to %s", acc.ID, acc.Balance)
		}
	}
}
