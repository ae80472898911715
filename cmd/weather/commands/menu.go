package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"weatheradvisor/internal/advisor"
	"weatheradvisor/internal/chart"
	"weatheradvisor/internal/domain"
	"weatheradvisor/internal/location"
)

// menu: the interactive console loop the advisor started life as.
func menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive console menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			return runMenu(cmd, in, out)
		},
	}
}

func runMenu(cmd *cobra.Command, in *bufio.Scanner, out io.Writer) error {
	fmt.Fprintln(out, "\n====== Weather Advisor ======")
	for {
		fmt.Fprintln(out, "\nMenu:")
		fmt.Fprintln(out, "  1) Current + Forecast summary")
		fmt.Fprintln(out, "  2) Show Temperature Trend (chart)")
		fmt.Fprintln(out, "  3) Show Precipitation Chances (chart)")
		fmt.Fprintln(out, "  4) Ask a Question (natural language)")
		fmt.Fprintln(out, "  5) Quit")

		choice, ok := prompt(in, out, "Choose an option (1-5): ")
		if !ok {
			return nil // stdin closed
		}

		switch choice {
		case "5":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		case "1", "2", "3":
			if err := runLookup(cmd, in, out, choice); err != nil {
				fmt.Fprintln(out, err.Error())
			}
		case "4":
			if err := runAsk(cmd, in, out); err != nil {
				fmt.Fprintln(out, err.Error())
			}
		default:
			fmt.Fprintln(out, "Please choose 1-5.")
		}
	}
}

func runLookup(cmd *cobra.Command, in *bufio.Scanner, out io.Writer, choice string) error {
	loc, ok := prompt(in, out, "Enter city/location (e.g., Perth): ")
	if !ok {
		return nil
	}
	daysIn, ok := prompt(in, out, "How many forecast days (1-5)? ")
	if !ok {
		return nil
	}
	days, err := strconv.Atoi(strings.TrimSpace(daysIn))
	if err != nil {
		days = domain.DefaultForecastDays
	}

	rep, err := appCtx.Weather.Fetch(cmd.Context(), loc, days)
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		fmt.Fprintln(out, "\n"+advisor.Summary(rep))
	case "2":
		fmt.Fprintln(out, "\n"+chart.Temperature(rep))
	case "3":
		fmt.Fprintln(out, "\n"+chart.Rain(rep))
	}
	return nil
}

func runAsk(cmd *cobra.Command, in *bufio.Scanner, out io.Writer) error {
	q, ok := prompt(in, out, "\nAsk about the weather (e.g., 'Do I need an umbrella tomorrow in Perth?')\n> ")
	if !ok {
		return nil
	}

	parsed := appCtx.Questions.Parse(cmd.Context(), q)
	if parsed.Location == "" {
		locIn, ok := prompt(in, out, "Which location? ")
		if !ok {
			return nil
		}
		parsed.Location = location.Sanitize(locIn)
		if parsed.Location == "" {
			parsed.Location = "Perth"
		}
	}

	rep, err := appCtx.Weather.Fetch(cmd.Context(), parsed.Location, parsed.Days)
	if err != nil {
		fmt.Fprintln(out, "Could not fetch weather. Try again.")
		return nil
	}
	fmt.Fprintln(out, "\n"+advisor.Answer(parsed, rep)+"\n")
	return nil
}

func prompt(in *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprint(out, label)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}
