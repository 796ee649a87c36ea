package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/analytics"
	"github.com/ledgerlens/ledgerlens/internal/render"
)

func newSummaryCommand() *cobra.Command {
	var ledgerPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Whole-ledger totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := loadTransactions(ledgerPath)
			if err != nil {
				return err
			}

			sum := analytics.Summarize(txns)
			if asJSON {
				return printJSON(cmd.OutOrStdout(), sum)
			}
			fmt.Fprint(cmd.OutOrStdout(), render.SummaryCard(render.DefaultStyles(), sum))
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "ledger file (default from config or $LEDGERLENS_LEDGER)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")

	return cmd
}
