package chart_test

import (
	"strings"
	"testing"

	"weatheradvisor/internal/chart"
	"weatheradvisor/internal/domain"
)

func report() domain.Report {
	return domain.Report{
		Location: "Perth",
		Forecast: []domain.Day{
			{Date: "2026-08-31", MinTempC: 10, AvgTempC: 15, MaxTempC: 20,
				Hourly: []domain.Hour{{Time: "1200", ChanceOfRain: 50}}},
			{Date: "2026-09-01", MinTempC: 12, AvgTempC: 17, MaxTempC: 22,
				Hourly: []domain.Hour{{Time: "1200", ChanceOfRain: 100}}},
		},
	}
}

func TestTemperature(t *testing.T) {
	out := chart.Temperature(report())
	if !strings.Contains(out, "Temperature Trend — Perth") {
		t.Fatalf("missing title:\n%s", out)
	}
	for _, want := range []string{"2026-08-31", "2026-09-01", "min", "avg", "max", "10.0°C", "22.0°C"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q:\n%s", want, out)
		}
	}
}

func TestRain(t *testing.T) {
	out := chart.Rain(report())
	if !strings.Contains(out, "Precipitation Chances — Perth") {
		t.Fatalf("missing title:\n%s", out)
	}
	if !strings.Contains(out, " 50%") || !strings.Contains(out, "100%") {
		t.Fatalf("missing percentages:\n%s", out)
	}
	// A 100% day fills the whole bar.
	if !strings.Contains(out, strings.Repeat("█", 40)) {
		t.Fatalf("expected a full bar:\n%s", out)
	}
}

func TestRain_OutOfRangeChance(t *testing.T) {
	r := domain.Report{
		Location: "Perth",
		Forecast: []domain.Day{
			{Date: "2026-08-31", Hourly: []domain.Hour{{Time: "1200", ChanceOfRain: 150}}},
			{Date: "2026-09-01", Hourly: []domain.Hour{{Time: "1200", ChanceOfRain: -5}}},
		},
	}
	out := chart.Rain(r)
	if !strings.Contains(out, strings.Repeat("█", 40)) {
		t.Fatalf("over-range day should fill the bar:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("░", 40)) {
		t.Fatalf("under-range day should leave the bar empty:\n%s", out)
	}
	if !strings.Contains(out, "100%") || !strings.Contains(out, "  0%") {
		t.Fatalf("percentages should be clamped:\n%s", out)
	}
}

func TestEmptyForecast(t *testing.T) {
	empty := domain.Report{Location: "Perth"}
	if got := chart.Temperature(empty); got != "No forecast data to chart." {
		t.Fatalf("temperature: %q", got)
	}
	if got := chart.Rain(empty); got != "No forecast data to chart." {
		t.Fatalf("rain: %q", got)
	}
}
