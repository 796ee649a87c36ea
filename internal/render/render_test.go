package render

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/ledgerlens/internal/analytics"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestFlowTable(t *testing.T) {
	buckets := []analytics.FlowBucket{
		{Label: "Mon", Income: dec("100"), Expense: dec("25.50")},
		{Label: "This week", Income: decimal.Zero, Expense: decimal.Zero},
	}
	out := FlowTable(DefaultStyles(), buckets)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Mon")
	assert.Contains(t, lines[0], "+100.00")
	assert.Contains(t, lines[0], "-25.50")
	assert.Contains(t, lines[1], "This week")
}

func TestBalanceTable(t *testing.T) {
	points := []analytics.BalancePoint{
		{Label: "Last week", Balance: dec("2487.60")},
	}
	out := BalanceTable(DefaultStyles(), points)
	assert.Contains(t, out, "Last week")
	assert.Contains(t, out, "2487.60")
}

func TestHeatGrid_SevenPerRow(t *testing.T) {
	window := make([]analytics.DayActivity, 90)
	for i := range window {
		window[i] = analytics.DayActivity{Date: time.Now()}
	}
	out := HeatGrid(DefaultStyles(), window)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// 90 cells: 12 full rows of 7 plus a 6-cell remainder.
	require.Len(t, lines, 13)
	assert.Equal(t, 7, strings.Count(lines[0], "■"))
	assert.Equal(t, 6, strings.Count(lines[12], "■"))
}

func TestContactList(t *testing.T) {
	summaries := []analytics.CounterpartySummary{
		{Name: "Alice", Count: 3, Net: dec("80")},
		{Name: "", Count: 1, Net: dec("-5")},
	}
	out := ContactList(DefaultStyles(), summaries)

	assert.Contains(t, out, "1. Alice")
	assert.Contains(t, out, "3 txns")
	assert.Contains(t, out, "+80.00")
	assert.Contains(t, out, "(no counterparty)")
	assert.Contains(t, out, "-5.00")
}

func TestSummaryCard(t *testing.T) {
	out := SummaryCard(DefaultStyles(), analytics.Summary{
		Transactions: 4,
		TotalCredit:  dec("100"),
		TotalDebit:   dec("20"),
		Net:          dec("80"),
		Balance:      dec("80"),
	})
	assert.Contains(t, out, "Transactions: 4")
	assert.Contains(t, out, "100.00")
	assert.Contains(t, out, "80.00")
}
