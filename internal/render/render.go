// Package render formats analytics results for the terminal. All
// chart-like output lives here, outside the engine, so the engine
// stays plain data in, plain data out.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/analytics"
)

// Styles holds the lipgloss styles for every view.
type Styles struct {
	Label   lipgloss.Style
	Income  lipgloss.Style
	Expense lipgloss.Style
	Balance lipgloss.Style
	Muted   lipgloss.Style
	Heat    map[analytics.Intensity]lipgloss.Style
}

// DefaultStyles returns the standard color scheme. Heat colors are
// keyed by intensity class, so a counterparty or day always renders
// the same color across runs.
func DefaultStyles() Styles {
	return Styles{
		Label:   lipgloss.NewStyle().Bold(true),
		Income:  lipgloss.NewStyle().Foreground(lipgloss.Color("#00af5f")),
		Expense: lipgloss.NewStyle().Foreground(lipgloss.Color("#d75f5f")),
		Balance: lipgloss.NewStyle().Foreground(lipgloss.Color("#5f87d7")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		Heat: map[analytics.Intensity]lipgloss.Style{
			analytics.IntensityNone:   lipgloss.NewStyle().Foreground(lipgloss.Color("#3a3a3a")),
			analytics.IntensityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#5faf5f")),
			analytics.IntensityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("#00d75f")),
			analytics.IntensityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff87")),
		},
	}
}

// FlowTable renders flow buckets as an aligned income/expense table.
func FlowTable(s Styles, buckets []analytics.FlowBucket) string {
	var b strings.Builder
	width := labelWidth(buckets)
	for _, bucket := range buckets {
		fmt.Fprintf(&b, "%-*s  %s  %s\n",
			width,
			s.Label.Render(bucket.Label),
			s.Income.Render(fmt.Sprintf("+%s", money(bucket.Income))),
			s.Expense.Render(fmt.Sprintf("-%s", money(bucket.Expense))),
		)
	}
	return b.String()
}

// BalanceTable renders balance snapshots, one per line.
func BalanceTable(s Styles, points []analytics.BalancePoint) string {
	var b strings.Builder
	width := 0
	for _, p := range points {
		if len(p.Label) > width {
			width = len(p.Label)
		}
	}
	for _, p := range points {
		fmt.Fprintf(&b, "%-*s  %s\n",
			width,
			s.Label.Render(p.Label),
			s.Balance.Render(money(p.Balance)),
		)
	}
	return b.String()
}

// HeatGrid renders day activity as one cell per day, seven per row,
// oldest first.
func HeatGrid(s Styles, window []analytics.DayActivity) string {
	var b strings.Builder
	for i, a := range window {
		style := s.Heat[analytics.ClassifyIntensity(a.Count)]
		b.WriteString(style.Render("■"))
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	if len(window)%7 != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// ContactList renders ranked counterparty summaries.
func ContactList(s Styles, summaries []analytics.CounterpartySummary) string {
	var b strings.Builder
	for i, c := range summaries {
		name := c.Name
		if name == "" {
			name = s.Muted.Render("(no counterparty)")
		} else {
			name = s.Label.Render(name)
		}
		net := s.Income.Render("+" + money(c.Net))
		if c.Net.IsNegative() {
			net = s.Expense.Render(money(c.Net))
		}
		fmt.Fprintf(&b, "%2d. %s  %s  %s\n",
			i+1,
			name,
			s.Muted.Render(fmt.Sprintf("%d txns", c.Count)),
			net,
		)
	}
	return b.String()
}

// SummaryCard renders whole-ledger totals.
func SummaryCard(s Styles, sum analytics.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", s.Label.Render("Transactions:"), sum.Transactions)
	fmt.Fprintf(&b, "%s %s\n", s.Label.Render("Total credit:"), s.Income.Render(money(sum.TotalCredit)))
	fmt.Fprintf(&b, "%s  %s\n", s.Label.Render("Total debit:"), s.Expense.Render(money(sum.TotalDebit)))
	fmt.Fprintf(&b, "%s    %s\n", s.Label.Render("Net flow:"), money(sum.Net))
	fmt.Fprintf(&b, "%s     %s\n", s.Label.Render("Balance:"), s.Balance.Render(money(sum.Balance)))
	return b.String()
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func labelWidth(buckets []analytics.FlowBucket) int {
	width := 0
	for _, b := range buckets {
		if len(b.Label) > width {
			width = len(b.Label)
		}
	}
	return width
}
