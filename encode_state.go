package cashpilot

import (
	"encoding/json"
	"fmt"
	"io"
)

// The ledger is persisted as one JSON document. Decoding is deliberately
// forgiving: a missing or malformed snapshot falls back to defaults field by
// field, so one bad field never loses the rest of the data.

// EncodeState writes the state as a single indented JSON document.
func EncodeState(w io.Writer, s State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("could not encode ledger state: %w", err)
	}
	return nil
}

// DecodeState reads a snapshot and merges it with defaults. It never fails:
// unreadable input or a malformed document yields the default state.
func DecodeState(r io.Reader) State {
	data, err := io.ReadAll(r)
	if err != nil {
		return DefaultState()
	}
	return MergeDefaults(data)
}

// rawState mirrors State with every field left raw, so each one can be
// decoded, and defaulted, independently.
type rawState struct {
	Transactions json.RawMessage `json:"transactions"`
	Loans        json.RawMessage `json:"loans"`
	Accounts     json.RawMessage `json:"accounts"`
	Settings     struct {
		Currency   json.RawMessage `json:"currency"`
		DarkMode   json.RawMessage `json:"darkMode"`
		Categories struct {
			Income  json.RawMessage `json:"income"`
			Expense json.RawMessage `json:"expense"`
		} `json:"categories"`
	} `json:"settings"`
}

// MergeDefaults builds a State from a JSON document, replacing every field
// that is absent or does not decode with its default.
func MergeDefaults(data []byte) State {
	def := DefaultState()

	var raw rawState
	if err := json.Unmarshal(data, &raw); err != nil {
		return def
	}

	s := def
	if txs := decodeOr(raw.Transactions, def.Transactions); txs != nil {
		s.Transactions = txs
	}
	if loans := decodeOr(raw.Loans, def.Loans); loans != nil {
		s.Loans = loans
	}
	// An empty account list is as unusable as a missing one: keep the default wallet.
	if accounts := decodeOr(raw.Accounts, def.Accounts); len(accounts) > 0 {
		s.Accounts = accounts
	}
	if cur := decodeOr(raw.Settings.Currency, ""); cur != "" {
		s.Settings.Currency = cur
	}
	s.Settings.DarkMode = decodeOr(raw.Settings.DarkMode, def.Settings.DarkMode)
	if inc := decodeOr(raw.Settings.Categories.Income, def.Settings.Categories.Income); inc != nil {
		s.Settings.Categories.Income = inc
	}
	if exp := decodeOr(raw.Settings.Categories.Expense, def.Settings.Categories.Expense); exp != nil {
		s.Settings.Categories.Expense = exp
	}
	return s
}

// decodeOr decodes raw into a value of type T, returning fallback when the
// field is absent or malformed.
func decodeOr[T any](raw json.RawMessage, fallback T) T {
	if len(raw) == 0 {
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback
	}
	return v
}
