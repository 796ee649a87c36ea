// Package ledger reads, writes, and validates the flat transaction
// ledger file that feeds the analytics engine.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// Header is the CSV header for ledger.csv.
const Header = "id,timestamp,kind,counterparty,credit,debit,balance,description"

const (
	numFields  = 8
	colID      = 0
	colTime    = 1
	colKind    = 2
	colCparty  = 3
	colCredit  = 4
	colDebit   = 5
	colBalance = 6
	colDesc    = 7
)

// ReadTransactions reads all transactions from a ledger.csv reader.
// A malformed row fails the whole read; rows are never skipped
// silently.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes transactions to a ledger.csv writer
// (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendTransactions appends transactions to an existing ledger.csv
// writer (no header).
func AppendTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(txn.ID)
	row[colTime] = txn.Timestamp.Format(model.TimestampFormat)
	row[colKind] = string(txn.Kind)
	row[colCparty] = txn.Counterparty
	row[colCredit] = txn.Credit.String()
	row[colDebit] = txn.Debit.String()
	row[colBalance] = txn.Balance.String()
	row[colDesc] = txn.Description
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	id, err := strconv.Atoi(record[colID])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}

	ts, err := time.Parse(model.TimestampFormat, record[colTime])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing timestamp %q: %w", record[colTime], err)
	}

	credit, err := decimal.NewFromString(record[colCredit])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
	}

	debit, err := decimal.NewFromString(record[colDebit])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
	}

	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}

	return model.Transaction{
		ID:           id,
		Timestamp:    ts,
		Kind:         model.Kind(record[colKind]),
		Counterparty: record[colCparty],
		Credit:       credit,
		Debit:        debit,
		Balance:      balance,
		Description:  record[colDesc],
	}, nil
}
