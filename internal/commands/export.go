package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/analytics"
	"github.com/ledgerlens/ledgerlens/internal/dateutil"
	"github.com/ledgerlens/ledgerlens/internal/model"
)

// Report bundles every derived series into one serializable document
// for downstream dashboards.
type Report struct {
	ID           string                          `json:"id"`
	GeneratedAt  time.Time                       `json:"generatedAt"`
	AsOf         string                          `json:"asOf"`
	Summary      analytics.Summary               `json:"summary"`
	WeekFlow     []analytics.FlowBucket          `json:"weekFlow"`
	MonthFlow    []analytics.FlowBucket          `json:"monthFlow"`
	WeekBalance  []analytics.BalancePoint        `json:"weekBalance"`
	MonthBalance []analytics.BalancePoint        `json:"monthBalance"`
	Heatmap      []heatmapDay                    `json:"heatmap"`
	TopContacts  []analytics.CounterpartySummary `json:"topContacts"`
	TopMerchants []analytics.CounterpartySummary `json:"topMerchants"`
}

func newExportCommand() *cobra.Command {
	var ledgerPath string
	var asOf string
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all derived series as one JSON report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := loadTransactions(ledgerPath)
			if err != nil {
				return err
			}
			refDay, err := parseAsOf(asOf)
			if err != nil {
				return err
			}

			report := buildReport(txns, refDay)

			if outPath == "" {
				return printJSON(cmd.OutOrStdout(), report)
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			defer f.Close()
			if err := printJSON(f, report); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote report %s to %s\n", report.ID, outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "ledger file (default from config or $LEDGERLENS_LEDGER)")
	cmd.Flags().StringVar(&asOf, "as-of", "", "reference day YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	return cmd
}

func buildReport(txns []model.Transaction, refDay time.Time) Report {
	cfg := loadConfig()

	window := analytics.ActivityWindow(txns, refDay, cfg.Heatmap.Days)
	heat := make([]heatmapDay, 0, len(window))
	for _, a := range window {
		heat = append(heat, heatmapDay{
			Date:      a.Date.Format(dateutil.DayFormat),
			Count:     a.Count,
			Intensity: analytics.ClassifyIntensity(a.Count).String(),
		})
	}

	contacts := analytics.AggregateByCounterparty(txns, model.KindAny)
	merchants := analytics.AggregateByCounterparty(txns, model.KindMerchant)

	return Report{
		ID:           uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		AsOf:         dateutil.Normalize(refDay).Format(dateutil.DayFormat),
		Summary:      analytics.Summarize(txns),
		WeekFlow:     analytics.WeeklyFlow(txns, refDay),
		MonthFlow:    analytics.MonthlyFlow(txns, refDay),
		WeekBalance:  analytics.WeeklyBalances(txns, refDay),
		MonthBalance: analytics.MonthlyBalances(txns, refDay),
		Heatmap:      heat,
		TopContacts:  analytics.TopN(contacts, cfg.Contacts.TopN, analytics.MetricCount),
		TopMerchants: analytics.TopN(merchants, cfg.Contacts.TopN, analytics.MetricDebit),
	}
}
