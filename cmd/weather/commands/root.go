package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"weatheradvisor/internal/app"
)

var (
	locationFlag string
	daysFlag     int
	wttrFlag     string
	timeoutFlag  time.Duration

	appCtx *app.App
)

// NewRoot builds the root command and its tree. Split out of Execute so
// tests can run commands with their own args and output streams.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "weather",
		Short: "Weather advisor CLI",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			appCtx = app.New(app.Config{
				WttrBase: wttrFlag,
				Timeout:  timeoutFlag,
			})
		},
		// The project started as a placeholder that only greeted; a bare
		// invocation still does, and the real functionality lives in the
		// subcommands.
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Hello")
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&locationFlag, "location", "l", "", "city or location name (e.g. Perth)")
	root.PersistentFlags().IntVarP(&daysFlag, "days", "d", 3, "forecast days (1-5)")
	root.PersistentFlags().StringVar(&wttrFlag, "wttr", "", "wttr.in base URL override")
	root.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 0, "forecast lookup timeout")

	root.AddCommand(forecastCmd(), tempCmd(), rainCmd(), askCmd(), menuCmd())
	return root
}

func Execute() error {
	return NewRoot().Execute()
}

func requireLocation() error {
	if locationFlag == "" {
		return fmt.Errorf("location required (-l)")
	}
	return nil
}
