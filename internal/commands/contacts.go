package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/analytics"
	"github.com/ledgerlens/ledgerlens/internal/dateutil"
	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/ledgerlens/ledgerlens/internal/render"
)

func newContactsCommand() *cobra.Command {
	var ledgerPath string
	var top int
	var metricName string
	var kindName string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Top counterparties by a chosen metric",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := loadTransactions(ledgerPath)
			if err != nil {
				return err
			}

			metric, err := analytics.ParseMetric(metricName)
			if err != nil {
				return err
			}

			kind := model.Kind(kindName)
			if kind != model.KindAny && !model.ValidKind(kind) {
				return fmt.Errorf("unknown kind %q", kindName)
			}

			if top <= 0 {
				top = loadConfig().Contacts.TopN
			}

			summaries := analytics.AggregateByCounterparty(txns, kind)
			ranked := analytics.TopN(summaries, top, metric)

			if asJSON {
				return printJSON(cmd.OutOrStdout(), ranked)
			}
			fmt.Fprint(cmd.OutOrStdout(), render.ContactList(render.DefaultStyles(), ranked))
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "ledger file (default from config or $LEDGERLENS_LEDGER)")
	cmd.Flags().IntVar(&top, "top", 0, "number of counterparties (default from config, 10)")
	cmd.Flags().StringVar(&metricName, "metric", "count", "ranking metric: count, credit, debit, or net")
	cmd.Flags().StringVar(&kindName, "kind", "", "restrict to one transaction kind")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")

	return cmd
}

// newMerchantsCommand is the merchant-only spending view: merchant
// kind, ranked by total debit.
func newMerchantsCommand() *cobra.Command {
	var ledgerPath string
	var top int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "merchants",
		Short: "Top merchants by spend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := loadTransactions(ledgerPath)
			if err != nil {
				return err
			}
			if top <= 0 {
				top = loadConfig().Contacts.TopN
			}

			summaries := analytics.AggregateByCounterparty(txns, model.KindMerchant)
			ranked := analytics.TopN(summaries, top, analytics.MetricDebit)

			if asJSON {
				return printJSON(cmd.OutOrStdout(), ranked)
			}
			fmt.Fprint(cmd.OutOrStdout(), render.ContactList(render.DefaultStyles(), ranked))
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "ledger file (default from config or $LEDGERLENS_LEDGER)")
	cmd.Flags().IntVar(&top, "top", 0, "number of merchants (default from config, 10)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")

	return cmd
}

// contactDetail is the JSON shape of the per-contact view.
type contactDetail struct {
	Stats  analytics.ContactStats `json:"stats"`
	Months []analytics.MonthCount `json:"months"`
}

func newContactCommand() *cobra.Command {
	var ledgerPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "contact <name>",
		Short: "Detail for a single counterparty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := loadTransactions(ledgerPath)
			if err != nil {
				return err
			}

			name := args[0]
			stats := analytics.ContactSummary(txns, name)
			months := analytics.MonthlyFrequency(txns, name)

			if asJSON {
				return printJSON(cmd.OutOrStdout(), contactDetail{Stats: stats, Months: months})
			}

			s := render.DefaultStyles()
			out := cmd.OutOrStdout()
			if stats.Count == 0 {
				fmt.Fprintf(out, "no transactions with %q\n", name)
				return nil
			}
			fmt.Fprintf(out, "%s: %d transactions, net %s\n", name, stats.Count, stats.Net.StringFixed(2))
			fmt.Fprintf(out, "received %s, sent %s\n", stats.TotalCredit.StringFixed(2), stats.TotalDebit.StringFixed(2))
			fmt.Fprintf(out, "active %s to %s\n", stats.FirstDay.Format(dateutil.DayFormat), stats.LastDay.Format(dateutil.DayFormat))
			for _, m := range months {
				fmt.Fprintf(out, "  %s  %s\n", m.Month, s.Muted.Render(fmt.Sprintf("%d txns", m.Count)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "ledger file (default from config or $LEDGERLENS_LEDGER)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")

	return cmd
}
