package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"weatheradvisor/internal/chart"
)

// temp: temperature trend chart.
func tempCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "temp",
		Short: "Show the temperature trend chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLocation(); err != nil {
				return err
			}
			rep, err := appCtx.Weather.Fetch(cmd.Context(), locationFlag, daysFlag)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), chart.Temperature(rep))
			return nil
		},
	}
}
