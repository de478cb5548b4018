// Package cashpilot implements the ledger core of a personal finance
// tracker: accounts, transactions, loans and budgeting categories.
//
// The whole domain state lives in a single [State] value. Every public
// operation is a pure transition taking the current state and returning
// the next one; persistence and rendering are left to the surrounding
// packages (store, cmd, renderer, agent).
package cashpilot
