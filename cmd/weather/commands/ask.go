package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"weatheradvisor/internal/advisor"
	"weatheradvisor/internal/location"
)

// ask <question...>: answer a natural-language weather question.
func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask a weather question in plain language",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := strings.Join(args, " ")

			parsed := appCtx.Questions.Parse(cmd.Context(), q)
			if parsed.Location == "" {
				parsed.Location = location.Sanitize(locationFlag)
			}
			if parsed.Location == "" {
				return fmt.Errorf("include a location in your question or set one with -l")
			}

			rep, err := appCtx.Weather.Fetch(cmd.Context(), parsed.Location, parsed.Days)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), advisor.Answer(parsed, rep))
			return nil
		},
	}
}
