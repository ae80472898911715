package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"weatheradvisor/internal/chart"
)

// rain: precipitation chances chart.
func rainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rain",
		Short: "Show the precipitation chances chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLocation(); err != nil {
				return err
			}
			rep, err := appCtx.Weather.Fetch(cmd.Context(), locationFlag, daysFlag)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), chart.Rain(rep))
			return nil
		},
	}
}
