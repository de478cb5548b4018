package cashpilot

// AdviceSummary is the read-only digest of the ledger handed to the advice
// collaborator. It is bounded on purpose: recent transactions are capped so
// the summary stays small regardless of the ledger size.
type AdviceSummary struct {
	TotalBalance       Money          `json:"totalBalance"`
	TransactionCount   int            `json:"transactionCount"`
	RecentTransactions []Transaction  `json:"recentTransactions"`
	ActiveLoans        []LoanExposure `json:"activeLoans"`
	Currency           string         `json:"currency"`
}

// LoanExposure is the advice-facing view of an active loan.
type LoanExposure struct {
	Type         LoanType `json:"type"`
	Counterparty string   `json:"counterparty"`
	Amount       Money    `json:"amount"`
	Due          Date     `json:"due"`
}

// maxRecentTransactions caps the transaction sample in the advice summary.
const maxRecentTransactions = 20

// NewAdviceSummary digests the ledger state for the advisor. It never
// exposes anything the advisor could mutate.
func NewAdviceSummary(s State) AdviceSummary {
	recent := s.Transactions
	if len(recent) > maxRecentTransactions {
		recent = recent[:maxRecentTransactions]
	}

	var loans []LoanExposure
	for _, loan := range s.Loans {
		if loan.Status != Active {
			continue
		}
		loans = append(loans, LoanExposure{
			Type:         loan.Type,
			Counterparty: loan.Counterparty,
			Amount:       loan.Principal,
			Due:          loan.DueDate,
		})
	}

	return AdviceSummary{
		TotalBalance:       s.TotalBalance(),
		TransactionCount:   len(s.Transactions),
		RecentTransactions: recent,
		ActiveLoans:        loans,
		Currency:           s.Settings.Currency,
	}
}
