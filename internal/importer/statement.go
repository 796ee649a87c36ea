package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// StatementParser parses generic bank statement CSV exports with the
// columns Date, Description, Type, Party, Money In, Money Out,
// Balance. Empty money cells are treated as zero.
type StatementParser struct{}

const (
	stmtNumFields  = 7
	stmtColDate    = 0
	stmtColDesc    = 1
	stmtColType    = 2
	stmtColParty   = 3
	stmtColIn      = 4
	stmtColOut     = 5
	stmtColBalance = 6
)

// statementDateFormats are tried in order; exports carry either a full
// timestamp or a bare date.
var statementDateFormats = []string{
	model.TimestampFormat,
	"2006-01-02",
}

// Format returns the parser name.
func (p *StatementParser) Format() string { return "statement" }

// Parse reads a statement CSV and returns transactions in file order.
func (p *StatementParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = stmtNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := parseStatementRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseStatementRow(rec []string) (model.Transaction, error) {
	ts, err := parseStatementDate(rec[stmtColDate])
	if err != nil {
		return model.Transaction{}, err
	}

	credit, err := parseMoney(rec[stmtColIn])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing money in %q: %w", rec[stmtColIn], err)
	}

	debit, err := parseMoney(rec[stmtColOut])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing money out %q: %w", rec[stmtColOut], err)
	}

	balance, err := parseMoney(rec[stmtColBalance])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing balance %q: %w", rec[stmtColBalance], err)
	}

	return model.Transaction{
		Timestamp:    ts,
		Kind:         kindFromStatementType(rec[stmtColType]),
		Counterparty: rec[stmtColParty],
		Credit:       credit,
		Debit:        debit,
		Balance:      balance,
		Description:  rec[stmtColDesc],
	}, nil
}

func parseStatementDate(s string) (time.Time, error) {
	for _, layout := range statementDateFormats {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing date %q: unrecognized format", s)
}

func parseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// kindFromStatementType maps the export's transaction type column to a
// ledger kind. Unrecognized types become KindUnknown rather than
// failing the import.
func kindFromStatementType(s string) model.Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bank", "transfer", "ach":
		return model.KindBank
	case "p2p", "peer-to-peer":
		return model.KindPeerToPeer
	case "merchant", "pos", "card":
		return model.KindMerchant
	case "api":
		return model.KindAPI
	case "internal purchase", "internal-purchase":
		return model.KindInternalPurchase
	default:
		return model.KindUnknown
	}
}
