package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"weatheradvisor/internal/domain"
)

const barWidth = 40

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
	minStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	avgStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	maxStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	rainStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Temperature renders min/avg/max bars per forecast day, scaled to a
// shared axis across the report.
func Temperature(r domain.Report) string {
	if len(r.Forecast) == 0 {
		return "No forecast data to chart."
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, d := range r.Forecast {
		lo = math.Min(lo, d.MinTempC)
		hi = math.Max(hi, d.MaxTempC)
	}
	if hi <= lo {
		hi = lo + 1
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Temperature Trend — %s", r.Location)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("scale %.0f°C .. %.0f°C", lo, hi)))
	b.WriteString("\n\n")

	for _, d := range r.Forecast {
		b.WriteString(d.Date + "\n")
		writeBar(&b, "min", minStyle, d.MinTempC, lo, hi)
		writeBar(&b, "avg", avgStyle, d.AvgTempC, lo, hi)
		writeBar(&b, "max", maxStyle, d.MaxTempC, lo, hi)
	}
	return b.String()
}

// Rain renders each day's maximum hourly rain chance on a fixed 0..100
// axis.
func Rain(r domain.Report) string {
	if len(r.Forecast) == 0 {
		return "No forecast data to chart."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Precipitation Chances — %s", r.Location)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("scale 0% .. 100%"))
	b.WriteString("\n\n")

	for _, d := range r.Forecast {
		// Upstream data can report chances outside 0..100; the bar math
		// needs the clamp.
		chance := d.MaxRainChance()
		if chance < 0 {
			chance = 0
		}
		if chance > 100 {
			chance = 100
		}
		n := chance * barWidth / 100
		bar := strings.Repeat("█", n) + strings.Repeat("░", barWidth-n)
		fmt.Fprintf(&b, "%s  %s %3d%%\n", d.Date, rainStyle.Render(bar), chance)
	}
	return b.String()
}

func writeBar(b *strings.Builder, label string, style lipgloss.Style, v, lo, hi float64) {
	n := int((v - lo) / (hi - lo) * barWidth)
	if n < 0 {
		n = 0
	}
	if n > barWidth {
		n = barWidth
	}
	bar := strings.Repeat("█", n) + strings.Repeat("░", barWidth-n)
	fmt.Fprintf(b, "  %s %s %5.1f°C\n", labelStyle.Render(label), style.Render(bar), v)
}
