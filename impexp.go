package cashpilot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/xuri/excelize/v2"
)

// this file contains functions to handle the backup import/export formats.
// The JSON backup is the full ledger state; the CSV and XLSX exports are
// flat transaction listings for spreadsheet use.

// ErrInvalidBackup is returned when an imported document is structurally
// unusable as a backup. The caller can warn the user without touching the
// persisted snapshot.
var ErrInvalidBackup = errors.New("invalid backup file format")

// ExportJSON writes the full ledger state as a JSON backup document.
func ExportJSON(w io.Writer, s State) error {
	return EncodeState(w, s)
}

// ImportState reads a JSON backup and returns the state it describes,
// merged field by field with defaults.
//
// A backup must at minimum carry array-typed "transactions" and "accounts"
// fields; anything else is rejected with ErrInvalidBackup so existing data
// is never overwritten by a bogus file. The caller replaces the persisted
// snapshot wholesale with the result.
func ImportState(r io.Reader) (State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return State{}, fmt.Errorf("could not read backup: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return State{}, fmt.Errorf("%w: not a JSON document: %v", ErrInvalidBackup, err)
	}
	for _, field := range []string{"$.transactions", "$.accounts"} {
		v, err := jsonpath.Get(field, doc)
		if err != nil {
			return State{}, fmt.Errorf("%w: missing %s", ErrInvalidBackup, field)
		}
		if _, ok := v.([]any); !ok {
			return State{}, fmt.Errorf("%w: %s is not an array", ErrInvalidBackup, field)
		}
	}

	return MergeDefaults(data), nil
}

// csvHeader lists the exported transaction columns, in order.
var csvHeader = []string{"ID", "Date", "Type", "Category", "Amount", "Currency", "Account", "Notes", "Related Loan ID"}

// ExportCSV writes all transactions as CSV. The notes column is always
// quoted, with double quotes escaped by doubling them.
func ExportCSV(w io.Writer, s State) error {
	if _, err := fmt.Fprintln(w, strings.Join(csvHeader, ",")); err != nil {
		return fmt.Errorf("could not write CSV header: %w", err)
	}
	for _, tx := range s.Transactions {
		if _, err := fmt.Fprintln(w, strings.Join(csvRow(s, tx), ",")); err != nil {
			return fmt.Errorf("could not write CSV row for %q: %w", tx.ID, err)
		}
	}
	return nil
}

// csvRow flattens one transaction, resolving its account name and currency.
func csvRow(s State, tx Transaction) []string {
	accountName := "Unknown Account"
	if acc := s.Account(tx.AccountID); acc != nil {
		accountName = acc.Name
	}
	safeNotes := strings.ReplaceAll(tx.Notes, `"`, `""`)
	return []string{
		tx.ID,
		tx.Date.String(),
		string(tx.Kind),
		tx.Category,
		tx.Amount.Decimal().String(),
		s.AccountCurrency(tx.AccountID),
		accountName,
		`"` + safeNotes + `"`,
		tx.RelatedLoanID,
	}
}

// ExportXLSX writes all transactions as a single-sheet XLSX workbook with
// the same columns as the CSV export.
func ExportXLSX(w io.Writer, s State) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Transactions"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("could not name worksheet: %w", err)
	}

	header := make([]any, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("could not write worksheet header: %w", err)
	}

	for i, tx := range s.Transactions {
		accountName := "Unknown Account"
		if acc := s.Account(tx.AccountID); acc != nil {
			accountName = acc.Name
		}
		amount, _ := tx.Amount.Decimal().Float64()
		row := []any{
			tx.ID,
			tx.Date.String(),
			string(tx.Kind),
			tx.Category,
			amount,
			s.AccountCurrency(tx.AccountID),
			accountName,
			tx.Notes,
			tx.RelatedLoanID,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("could not compute cell for row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("could not write worksheet row for %q: %w", tx.ID, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("could not write workbook: %w", err)
	}
	return nil
}
