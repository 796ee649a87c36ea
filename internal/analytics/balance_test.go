package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

func TestBalanceAt_Inclusive(t *testing.T) {
	txns := []model.Transaction{
		tx(1, "2024-01-01", "A", "100", "0", "100"),
		tx(2, "2024-01-01", "B", "0", "30", "70"),
		tx(3, "2024-01-03", "A", "0", "20", "50"),
	}

	got := BalanceAt(txns, day(2024, 1, 2), true)
	assert.True(t, got.Equal(dec("70")))

	got = BalanceAt(txns, day(2024, 1, 3), true)
	assert.True(t, got.Equal(dec("50")))
}

func TestBalanceAt_Exclusive(t *testing.T) {
	txns := []model.Transaction{
		tx(1, "2024-01-01", "A", "100", "0", "100"),
		tx(2, "2024-01-03", "A", "0", "20", "80"),
	}

	// Exclusive mode ignores transactions on the boundary day itself.
	got := BalanceAt(txns, day(2024, 1, 3), false)
	assert.True(t, got.Equal(dec("100")))

	got = BalanceAt(txns, day(2024, 1, 4), false)
	assert.True(t, got.Equal(dec("80")))
}

func TestBalanceAt_NoHistory(t *testing.T) {
	assert.True(t, BalanceAt(nil, day(2024, 1, 1), true).IsZero())

	txns := []model.Transaction{tx(1, "2024-06-01", "A", "10", "0", "10")}
	assert.True(t, BalanceAt(txns, day(2024, 1, 1), true).IsZero())
}

func TestBalanceAt_SameDayTiesKeepInputOrder(t *testing.T) {
	// Two transactions on the same day: the later input row wins.
	txns := []model.Transaction{
		tx(1, "2024-01-01", "A", "100", "0", "100"),
		tx(2, "2024-01-01", "B", "0", "30", "70"),
	}
	got := BalanceAt(txns, day(2024, 1, 1), true)
	assert.True(t, got.Equal(dec("70")))
}

func TestBalanceAt_UnsortedInput(t *testing.T) {
	txns := []model.Transaction{
		tx(3, "2024-01-05", "A", "0", "20", "80"),
		tx(1, "2024-01-01", "A", "100", "0", "100"),
	}
	got := BalanceAt(txns, day(2024, 1, 2), true)
	assert.True(t, got.Equal(dec("100")))

	// The caller's slice must keep its order.
	assert.Equal(t, 3, txns[0].ID)
	assert.Equal(t, 1, txns[1].ID)
}

func TestBalanceAt_Pure(t *testing.T) {
	txns := []model.Transaction{
		tx(1, "2024-01-01", "A", "100", "0", "100"),
		tx(2, "2024-01-03", "A", "0", "20", "80"),
	}
	first := BalanceAt(txns, day(2024, 1, 2), true)
	for i := 0; i < 5; i++ {
		assert.True(t, first.Equal(BalanceAt(txns, day(2024, 1, 2), true)))
	}
}

func TestWeeklyBalances(t *testing.T) {
	ref := day(2024, 3, 15)
	txns := []model.Transaction{
		tx(1, "2024-03-10", "A", "100", "0", "100"),
		tx(2, "2024-03-14", "A", "0", "40", "60"),
	}

	points := WeeklyBalances(txns, ref)
	require.Len(t, points, 7)

	// 3/9: before any transaction.
	assert.True(t, points[0].Balance.IsZero())
	// 3/10 through 3/13 carry the 3/10 snapshot.
	for i := 1; i <= 4; i++ {
		assert.True(t, points[i].Balance.Equal(dec("100")), "point %d", i)
	}
	// 3/14 and 3/15 carry the 3/14 snapshot.
	assert.True(t, points[5].Balance.Equal(dec("60")))
	assert.True(t, points[6].Balance.Equal(dec("60")))
}

func TestMonthlyBalances_SharesFlowBoundaries(t *testing.T) {
	ref := day(2024, 3, 15) // Friday
	txns := []model.Transaction{
		tx(1, "2024-02-29", "A", "10", "0", "10"),
		tx(2, "2024-03-15", "A", "5", "0", "15"),
	}

	points := MonthlyBalances(txns, ref)
	flows := MonthlyFlow(txns, ref)
	require.Len(t, points, 4)
	for i := range points {
		assert.Equal(t, flows[i].Label, points[i].Label)
	}

	// Window [2/23, 3/1) ends exclusively at 3/1: sees the 2/29 entry.
	assert.True(t, points[0].Balance.Equal(dec("10")))
	// Window [3/1, 3/8): nothing new, still 2/29's snapshot.
	assert.True(t, points[1].Balance.Equal(dec("10")))
	// Last week [3/8, 3/15): exclusive end hides the 3/15 entry.
	assert.True(t, points[2].Balance.Equal(dec("10")))
	// This week ends at 3/16, so 3/15 is visible.
	assert.True(t, points[3].Balance.Equal(dec("15")))
}

func TestMonthlyBalances_Empty(t *testing.T) {
	points := MonthlyBalances(nil, day(2024, 3, 15))
	require.Len(t, points, 4)
	for _, p := range points {
		assert.True(t, p.Balance.IsZero())
	}
}
