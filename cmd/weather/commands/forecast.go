package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"weatheradvisor/internal/advisor"
)

// forecast: current conditions plus the per-day briefs.
func forecastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forecast",
		Short: "Show current conditions and the forecast summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLocation(); err != nil {
				return err
			}
			rep, err := appCtx.Weather.Fetch(cmd.Context(), locationFlag, daysFlag)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), advisor.Summary(rep))
			return nil
		},
	}
}
