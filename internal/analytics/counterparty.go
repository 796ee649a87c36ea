package analytics

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// CounterpartySummary rolls up all transactions with one contact or
// merchant.
type CounterpartySummary struct {
	Name        string          `json:"name"`
	Count       int             `json:"count"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	Net         decimal.Decimal `json:"net"`
}

// Metric selects the ranking dimension for TopN.
type Metric string

const (
	MetricCount  Metric = "count"
	MetricCredit Metric = "credit"
	MetricDebit  Metric = "debit"
	MetricNet    Metric = "net"
)

// ParseMetric converts a CLI flag value into a Metric.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricCount, MetricCredit, MetricDebit, MetricNet:
		return Metric(s), nil
	}
	return "", fmt.Errorf("unknown metric %q (want count, credit, debit, or net)", s)
}

// AggregateByCounterparty groups transactions by exact counterparty
// name, in first-seen order. Names compare case-sensitively with no
// normalization of variants. kind restricts the pass to one
// transaction kind; model.KindAny keeps every kind. The input slice is
// never mutated or reordered.
func AggregateByCounterparty(txns []model.Transaction, kind model.Kind) []CounterpartySummary {
	index := make(map[string]int)
	var summaries []CounterpartySummary
	for _, t := range txns {
		if kind != model.KindAny && t.Kind != kind {
			continue
		}
		i, ok := index[t.Counterparty]
		if !ok {
			i = len(summaries)
			index[t.Counterparty] = i
			summaries = append(summaries, CounterpartySummary{
				Name:        t.Counterparty,
				TotalCredit: decimal.Zero,
				TotalDebit:  decimal.Zero,
			})
		}
		s := &summaries[i]
		s.Count++
		s.TotalCredit = s.TotalCredit.Add(t.Credit)
		s.TotalDebit = s.TotalDebit.Add(t.Debit)
		s.Net = s.TotalCredit.Sub(s.TotalDebit)
	}
	return summaries
}

// TopN returns the n highest summaries by metric, descending. The sort
// is stable, so ties keep the first-seen order of the grouping pass.
// The input slice is left untouched.
func TopN(summaries []CounterpartySummary, n int, metric Metric) []CounterpartySummary {
	ranked := make([]CounterpartySummary, len(summaries))
	copy(ranked, summaries)
	sort.SliceStable(ranked, func(i, j int) bool {
		switch metric {
		case MetricCount:
			return ranked[i].Count > ranked[j].Count
		case MetricCredit:
			return ranked[i].TotalCredit.GreaterThan(ranked[j].TotalCredit)
		case MetricDebit:
			return ranked[i].TotalDebit.GreaterThan(ranked[j].TotalDebit)
		default:
			return ranked[i].Net.GreaterThan(ranked[j].Net)
		}
	})
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
