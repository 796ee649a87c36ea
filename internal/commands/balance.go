package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/analytics"
	"github.com/ledgerlens/ledgerlens/internal/render"
)

func newBalanceCommand() *cobra.Command {
	var ledgerPath string
	var asOf string
	var rangeName string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Balance snapshots at bucket boundaries",
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

			var points []analytics.BalancePoint
			switch rangeName {
			case "week":
				points = analytics.WeeklyBalances(txns, refDay)
			case "month":
				points = analytics.MonthlyBalances(txns, refDay)
			default:
				return fmt.Errorf("unknown range %q (want week or month)", rangeName)
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), points)
			}
			fmt.Fprint(cmd.OutOrStdout(), render.BalanceTable(render.DefaultStyles(), points))
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "ledger file (default from config or $LEDGERLENS_LEDGER)")
	cmd.Flags().StringVar(&asOf, "as-of", "", "reference day YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&rangeName, "range", "week", "snapshot range: week or month")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")

	return cmd
}
