package advisor

import (
	"fmt"
	"strings"

	"weatheradvisor/internal/domain"
	"weatheradvisor/internal/location"
)

// Answer builds the reply to a parsed question: a humanized lead line
// for the asked attribute, a blank line, then the forecast block.
func Answer(q domain.Question, r domain.Report) string {
	loc := r.Location
	if loc == "" {
		loc = "your location"
	}

	selected := pickDays(r.Forecast, q.When, q.Days)
	if len(selected) == 0 {
		return fmt.Sprintf("Sorry, I couldn't find a forecast for %s.", loc)
	}

	whenText := strings.ReplaceAll(string(q.When), "_", " ")
	d0 := selected[0]

	var lead string
	switch q.Attribute {
	case domain.Precipitation, domain.Rain:
		chance := d0.MaxRainChance()
		lead = fmt.Sprintf("%s (%d%% chance of rain %s in %s).",
			umbrellaVerdict(chance), chance, whenText, loc)
	case domain.Temperature:
		lead = fmt.Sprintf("Expect about %.0f°C in %s %s (min %.0f°C / max %.0f°C).",
			d0.AvgTempC, loc, whenText, d0.MinTempC, d0.MaxTempC)
	case domain.Wind:
		w := d0.MaxWindKmph()
		lead = fmt.Sprintf("It'll be %s in %s %s (gusts up to ~%d km/h).",
			windLabel(w), loc, whenText, w)
	case domain.Humidity:
		lead = fmt.Sprintf("Humidity in %s %s will average around %d%%.",
			loc, whenText, d0.AvgHumidity())
	default:
		lead = fmt.Sprintf("In %s %s, expect about %.0f°C (min %.0f°C / max %.0f°C) with up to %d%% chance of rain.",
			loc, whenText, d0.AvgTempC, d0.MinTempC, d0.MaxTempC, d0.MaxRainChance())
	}

	lines := []string{lead, "", forecastHeader(loc, q.When, len(selected))}
	for _, day := range selected {
		lines = append(lines, "• "+DayBrief(day))
	}
	return strings.Join(lines, "\n")
}

// Summary renders current conditions plus the full per-day forecast, the
// shape the console menu prints for option 1.
func Summary(r domain.Report) string {
	loc := r.Location
	if loc == "" {
		loc = "Unknown"
	}
	desc := r.Current.Desc
	if desc == "" {
		desc = "N/A"
	}

	lines := []string{
		fmt.Sprintf("Current weather in %s: %.0f°C, %s", loc, r.Current.TempC, desc),
		"",
		"Forecast:",
	}
	for _, d := range r.Forecast {
		lines = append(lines, "  "+DayBrief(d))
	}
	return strings.Join(lines, "\n")
}

// DayBrief is the one-line summary of a forecast day.
func DayBrief(d domain.Day) string {
	date := d.Date
	if date == "" {
		date = "Unknown date"
	}
	return fmt.Sprintf("%s: ~%.0f°C (min %.0f°C / max %.0f°C), rain up to %d%%, %s",
		date, d.AvgTempC, d.MinTempC, d.MaxTempC, d.MaxRainChance(), d.MiddayDesc())
}

func pickDays(days []domain.Day, when domain.When, n int) []domain.Day {
	if len(days) == 0 {
		return nil
	}
	switch when {
	case domain.Tomorrow:
		if len(days) >= 2 {
			return days[1:2]
		}
		return days[:1]
	case domain.NextNDays:
		if n > len(days) {
			n = len(days)
		}
		return days[:n]
	}
	return days[:1]
}

func forecastHeader(loc string, when domain.When, count int) string {
	if count == 1 {
		label := location.Title(strings.ReplaceAll(string(when), "_", " "))
		return fmt.Sprintf("Forecast for %s — %s:", loc, label)
	}
	return fmt.Sprintf("Forecast for %s — next %d days:", loc, count)
}

func umbrellaVerdict(chance int) string {
	switch {
	case chance >= 60:
		return "Yes—bring an umbrella."
	case chance >= 30:
		return "Maybe—pack one just in case."
	}
	return "Probably not—rain chance is low."
}

func windLabel(kmph int) string {
	switch {
	case kmph >= 60:
		return "very windy"
	case kmph >= 40:
		return "windy"
	case kmph >= 25:
		return "a bit breezy"
	}
	return "light winds"
}
