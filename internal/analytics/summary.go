package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// Summary holds whole-ledger totals.
type Summary struct {
	Transactions int             `json:"transactions"`
	TotalCredit  decimal.Decimal `json:"totalCredit"`
	TotalDebit   decimal.Decimal `json:"totalDebit"`
	Net          decimal.Decimal `json:"net"`
	Balance      decimal.Decimal `json:"balance"` // latest recorded balance
}

// Summarize totals the whole ledger. Balance is the snapshot of the
// newest transaction in normalized-date order (latest input row on
// ties), zero for an empty ledger.
func Summarize(txns []model.Transaction) Summary {
	s := Summary{
		TotalCredit: decimal.Zero,
		TotalDebit:  decimal.Zero,
		Net:         decimal.Zero,
		Balance:     decimal.Zero,
	}
	for _, t := range txns {
		s.Transactions++
		s.TotalCredit = s.TotalCredit.Add(t.Credit)
		s.TotalDebit = s.TotalDebit.Add(t.Debit)
	}
	s.Net = s.TotalCredit.Sub(s.TotalDebit)

	if sorted := sortedByDay(txns); len(sorted) > 0 {
		s.Balance = sorted[len(sorted)-1].Balance
	}
	return s
}
