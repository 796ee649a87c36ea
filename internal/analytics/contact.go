package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/dateutil"
	"github.com/ledgerlens/ledgerlens/internal/model"
)

// ContactStats describes all activity with a single counterparty.
type ContactStats struct {
	Name        string          `json:"name"`
	Count       int             `json:"count"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	Net         decimal.Decimal `json:"net"`
	FirstDay    time.Time       `json:"firstDay"` // zero when Count == 0
	LastDay     time.Time       `json:"lastDay"`  // zero when Count == 0
}

// MonthCount is the number of transactions in one calendar month.
type MonthCount struct {
	Month string `json:"month"` // "2006-01"
	Count int    `json:"count"`
}

// ContactTransactions returns the transactions whose counterparty
// matches name exactly, in input order.
func ContactTransactions(txns []model.Transaction, name string) []model.Transaction {
	var matched []model.Transaction
	for _, t := range txns {
		if t.Counterparty == name {
			matched = append(matched, t)
		}
	}
	return matched
}

// ContactSummary computes totals and the first/last activity days for
// a single counterparty.
func ContactSummary(txns []model.Transaction, name string) ContactStats {
	stats := ContactStats{
		Name:        name,
		TotalCredit: decimal.Zero,
		TotalDebit:  decimal.Zero,
		Net:         decimal.Zero,
	}
	for _, t := range txns {
		if t.Counterparty != name {
			continue
		}
		day := dateutil.Normalize(t.Timestamp)
		if stats.Count == 0 || day.Before(stats.FirstDay) {
			stats.FirstDay = day
		}
		if stats.Count == 0 || day.After(stats.LastDay) {
			stats.LastDay = day
		}
		stats.Count++
		stats.TotalCredit = stats.TotalCredit.Add(t.Credit)
		stats.TotalDebit = stats.TotalDebit.Add(t.Debit)
	}
	stats.Net = stats.TotalCredit.Sub(stats.TotalDebit)
	return stats
}

// MonthlyFrequency buckets a counterparty's transactions per calendar
// month, chronologically. Months with no activity are omitted.
func MonthlyFrequency(txns []model.Transaction, name string) []MonthCount {
	counts := make(map[string]int)
	for _, t := range txns {
		if t.Counterparty != name {
			continue
		}
		counts[t.Timestamp.Format("2006-01")]++
	}

	months := make([]string, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]MonthCount, 0, len(months))
	for _, m := range months {
		out = append(out, MonthCount{Month: m, Count: counts[m]})
	}
	return out
}
