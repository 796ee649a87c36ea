// Package analytics derives time-bucketed and counterparty-bucketed
// summaries from a flat transaction ledger. Every function is pure:
// it reads the caller's slice, never mutates it, and holds no state
// between calls. The reference day is always an explicit parameter so
// callers (and tests) control "today".
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/dateutil"
	"github.com/ledgerlens/ledgerlens/internal/model"
)

// FlowBucket is one time window's aggregate money flow.
type FlowBucket struct {
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// WeeklyFlow buckets the 7 calendar days ending at refDay into daily
// income/expense sums, oldest day first. Every day appears, zero-filled
// when nothing matched. Labels are weekday short names ("Mon").
func WeeklyFlow(txns []model.Transaction, refDay time.Time) []FlowBucket {
	ref := dateutil.Normalize(refDay)
	buckets := make([]FlowBucket, 0, 7)
	for i := 6; i >= 0; i-- {
		day := ref.AddDate(0, 0, -i)
		income := decimal.Zero
		expense := decimal.Zero
		for _, t := range txns {
			if dateutil.Normalize(t.Timestamp).Equal(day) {
				income = income.Add(t.Credit)
				expense = expense.Add(t.Debit)
			}
		}
		buckets = append(buckets, FlowBucket{
			Label:   day.Format("Mon"),
			Income:  income,
			Expense: expense,
		})
	}
	return buckets
}

// window is a half-open [Start, End) calendar range.
type window struct {
	Start time.Time
	End   time.Time
	Label string
}

// contains reports whether a normalized day falls inside the window.
func (w window) contains(day time.Time) bool {
	return !day.Before(w.Start) && day.Before(w.End)
}

// monthWindows returns the four Friday-aligned windows of the rolling
// month ending at refDay, oldest first. The newest window ends the day
// after refDay so it includes refDay but no future days; earlier
// windows are full 7-day weeks. The windows are anchored to the most
// recent Friday, not to refDay's own weekday, so boundaries stay
// stable day-to-day except at the Friday rollover. Flow and balance
// views both use these boundaries.
func monthWindows(refDay time.Time) [4]window {
	ref := dateutil.Normalize(refDay)
	weekStart := dateutil.StartOfWeek(ref)

	var windows [4]window
	for i := 4; i > 0; i-- {
		start := weekStart.AddDate(0, 0, -7*(i-1))
		var end time.Time
		if i == 1 {
			end = ref.AddDate(0, 0, 1)
		} else {
			end = start.AddDate(0, 0, 7)
		}

		var label string
		switch i {
		case 1:
			label = "This week"
		case 2:
			label = "Last week"
		default:
			label = dateutil.MonthDay(start) + " -- " + dateutil.MonthDay(end.AddDate(0, 0, -1))
		}

		windows[4-i] = window{Start: start, End: end, Label: label}
	}
	return windows
}

// MonthlyFlow buckets the rolling month ending at refDay into four
// Friday-aligned weekly windows, oldest first. Every window appears,
// zero-filled when nothing matched.
func MonthlyFlow(txns []model.Transaction, refDay time.Time) []FlowBucket {
	windows := monthWindows(refDay)
	buckets := make([]FlowBucket, 0, len(windows))
	for _, w := range windows {
		income := decimal.Zero
		expense := decimal.Zero
		for _, t := range txns {
			if w.contains(dateutil.Normalize(t.Timestamp)) {
				income = income.Add(t.Credit)
				expense = expense.Add(t.Debit)
			}
		}
		buckets = append(buckets, FlowBucket{
			Label:   w.Label,
			Income:  income,
			Expense: expense,
		})
	}
	return buckets
}
