package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/dateutil"
	"github.com/ledgerlens/ledgerlens/internal/model"
)

// BalancePoint is the account balance at the end of one time window,
// taken from the nearest preceding ledger entry.
type BalancePoint struct {
	Label   string          `json:"label"`
	Balance decimal.Decimal `json:"balance"`
}

// BalanceAt returns the balance recorded by the most recent
// transaction whose normalized date is on or before asOfDay (strictly
// before when inclusive is false). Ties on the same day resolve to the
// transaction latest in input order. Returns zero when the ledger has
// no history that early.
func BalanceAt(txns []model.Transaction, asOfDay time.Time, inclusive bool) decimal.Decimal {
	return balanceFrom(sortedByDay(txns), asOfDay, inclusive)
}

// WeeklyBalances returns one balance snapshot per day for the 7
// calendar days ending at refDay, oldest first. Each day's snapshot
// includes transactions on the day itself.
func WeeklyBalances(txns []model.Transaction, refDay time.Time) []BalancePoint {
	ref := dateutil.Normalize(refDay)
	sorted := sortedByDay(txns)
	points := make([]BalancePoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := ref.AddDate(0, 0, -i)
		points = append(points, BalancePoint{
			Label:   day.Format("Mon"),
			Balance: balanceFrom(sorted, day, true),
		})
	}
	return points
}

// MonthlyBalances returns one balance snapshot per rolling-month
// window ending at refDay, oldest first. A window's snapshot is taken
// at its open upper bound, so the lookup is exclusive; boundaries are
// identical to MonthlyFlow's.
func MonthlyBalances(txns []model.Transaction, refDay time.Time) []BalancePoint {
	windows := monthWindows(refDay)
	sorted := sortedByDay(txns)
	points := make([]BalancePoint, 0, len(windows))
	for _, w := range windows {
		points = append(points, BalancePoint{
			Label:   w.Label,
			Balance: balanceFrom(sorted, w.End, false),
		})
	}
	return points
}

// balanceFrom scans a date-sorted ledger backward for the newest
// transaction at or before (inclusive) / strictly before asOfDay.
func balanceFrom(sorted []model.Transaction, asOfDay time.Time, inclusive bool) decimal.Decimal {
	asOf := dateutil.Normalize(asOfDay)
	for i := len(sorted) - 1; i >= 0; i-- {
		day := dateutil.Normalize(sorted[i].Timestamp)
		if inclusive && !day.After(asOf) {
			return sorted[i].Balance
		}
		if !inclusive && day.Before(asOf) {
			return sorted[i].Balance
		}
	}
	return decimal.Zero
}

// sortedByDay returns a copy of txns ordered ascending by normalized
// date. The sort is stable: same-day transactions keep input order.
func sortedByDay(txns []model.Transaction) []model.Transaction {
	sorted := make([]model.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dateutil.Normalize(sorted[i].Timestamp).Before(dateutil.Normalize(sorted[j].Timestamp))
	})
	return sorted
}
