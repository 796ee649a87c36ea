package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/analytics"
	"github.com/ledgerlens/ledgerlens/internal/dateutil"
	"github.com/ledgerlens/ledgerlens/internal/render"
)

// heatmapDay is the JSON shape of one heat-map cell: the raw count and
// the intensity class together, so callers can apply their own scale.
type heatmapDay struct {
	Date      string `json:"date"`
	Count     int    `json:"count"`
	Intensity string `json:"intensity"`
}

func newHeatmapCommand() *cobra.Command {
	var ledgerPath string
	var asOf string
	var days int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Day-activity heat map",
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
			if days <= 0 {
				days = loadConfig().Heatmap.Days
			}

			window := analytics.ActivityWindow(txns, refDay, days)

			if asJSON {
				out := make([]heatmapDay, 0, len(window))
				for _, a := range window {
					out = append(out, heatmapDay{
						Date:      a.Date.Format(dateutil.DayFormat),
						Count:     a.Count,
						Intensity: analytics.ClassifyIntensity(a.Count).String(),
					})
				}
				return printJSON(cmd.OutOrStdout(), out)
			}
			fmt.Fprint(cmd.OutOrStdout(), render.HeatGrid(render.DefaultStyles(), window))
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "ledger file (default from config or $LEDGERLENS_LEDGER)")
	cmd.Flags().StringVar(&asOf, "as-of", "", "reference day YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&days, "days", 0, "window length in days (default from config, 90)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")

	return cmd
}
