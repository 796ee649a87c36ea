package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/dateutil"
	"github.com/ledgerlens/ledgerlens/internal/model"
)

// DayActivity aggregates one calendar day of ledger activity.
type DayActivity struct {
	Date   time.Time       `json:"date"`
	Count  int             `json:"count"`
	Credit decimal.Decimal `json:"credit"`
	Debit  decimal.Decimal `json:"debit"`
	Net    decimal.Decimal `json:"net"`
}

// Intensity is an ordinal classification of a day's transaction
// volume, used to drive heat-map coloring. The raw count is always
// carried alongside it so callers can apply their own scale.
type Intensity int

const (
	IntensityNone Intensity = iota
	IntensityLow
	IntensityMedium
	IntensityHigh
)

// String returns the lowercase name of the intensity level.
func (i Intensity) String() string {
	switch i {
	case IntensityLow:
		return "low"
	case IntensityMedium:
		return "medium"
	case IntensityHigh:
		return "high"
	default:
		return "none"
	}
}

// ClassifyIntensity maps a day's transaction count to an intensity
// level: 0 none, 1-2 low, 3-4 medium, 5 and up high.
func ClassifyIntensity(count int) Intensity {
	switch {
	case count >= 5:
		return IntensityHigh
	case count >= 3:
		return IntensityMedium
	case count >= 1:
		return IntensityLow
	default:
		return IntensityNone
	}
}

// GroupByDay accumulates transactions into per-calendar-day activity,
// keyed by normalized date. Net is recomputed from the day's credit
// and debit totals on every update rather than accumulated on its own.
func GroupByDay(txns []model.Transaction) map[time.Time]DayActivity {
	days := make(map[time.Time]DayActivity)
	for _, t := range txns {
		day := dateutil.Normalize(t.Timestamp)
		a, ok := days[day]
		if !ok {
			a = DayActivity{Date: day, Credit: decimal.Zero, Debit: decimal.Zero}
		}
		a.Count++
		a.Credit = a.Credit.Add(t.Credit)
		a.Debit = a.Debit.Add(t.Debit)
		a.Net = a.Credit.Sub(a.Debit)
		days[day] = a
	}
	return days
}

// ActivityWindow returns one DayActivity per calendar day for the
// `days` consecutive days ending at refDay, oldest first. Days with no
// transactions appear with a zero count. The heat-map view uses a
// 90-day window.
func ActivityWindow(txns []model.Transaction, refDay time.Time, days int) []DayActivity {
	byDay := GroupByDay(txns)
	ref := dateutil.Normalize(refDay)
	out := make([]DayActivity, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := ref.AddDate(0, 0, -i)
		a, ok := byDay[day]
		if !ok {
			a = DayActivity{
				Date:   day,
				Credit: decimal.Zero,
				Debit:  decimal.Zero,
				Net:    decimal.Zero,
			}
		}
		out = append(out, a)
	}
	return out
}
