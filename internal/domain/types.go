package domain

// MaxForecastDays is the longest forecast wttr.in will serve us.
const MaxForecastDays = 5

// DefaultForecastDays is used whenever a request does not say how far ahead
// to look.
const DefaultForecastDays = 3

// ClampDays forces a day count into the supported range. Zero and negative
// values fall back to the default.
func ClampDays(n int) int {
	if n <= 0 {
		return DefaultForecastDays
	}
	if n > MaxForecastDays {
		return MaxForecastDays
	}
	return n
}

// Hour is a single hourly observation. The same shape carries current
// conditions, where Time is empty and rain chance may be absent.
type Hour struct {
	Time         string  `json:"time,omitempty"`
	TempC        float64 `json:"temp_c"`
	ChanceOfRain int     `json:"chance_of_rain"`
	WindKmph     int     `json:"wind_kmph"`
	Humidity     int     `json:"humidity"`
	Desc         string  `json:"desc,omitempty"`
}

// Day is one forecast day with its hourly breakdown.
type Day struct {
	Date     string  `json:"date"`
	MinTempC float64 `json:"min_temp_c"`
	AvgTempC float64 `json:"avg_temp_c"`
	MaxTempC float64 `json:"max_temp_c"`
	Hourly   []Hour  `json:"hourly,omitempty"`
}

// MaxRainChance returns the highest hourly chance of rain for the day.
func (d Day) MaxRainChance() int {
	max := 0
	for _, h := range d.Hourly {
		if h.ChanceOfRain > max {
			max = h.ChanceOfRain
		}
	}
	return max
}

// MaxWindKmph returns the strongest hourly wind speed for the day.
func (d Day) MaxWindKmph() int {
	max := 0
	for _, h := range d.Hourly {
		if h.WindKmph > max {
			max = h.WindKmph
		}
	}
	return max
}

// AvgHumidity returns the mean hourly humidity, rounded to the nearest
// whole percent. Days without hourly data report zero.
func (d Day) AvgHumidity() int {
	if len(d.Hourly) == 0 {
		return 0
	}
	total := 0
	for _, h := range d.Hourly {
		total += h.Humidity
	}
	return int(float64(total)/float64(len(d.Hourly)) + 0.5)
}

// MiddayDesc returns a description for the day, preferring midday slots
// so the text matches what most of the day looks like.
func (d Day) MiddayDesc() string {
	for _, want := range []string{"1200", "900", "1500"} {
		for _, h := range d.Hourly {
			if h.Time == want && h.Desc != "" {
				return h.Desc
			}
		}
	}
	for _, h := range d.Hourly {
		if h.Desc != "" {
			return h.Desc
		}
	}
	return "—"
}

// Report is the normalized result of a weather lookup.
type Report struct {
	Location string `json:"location"`
	Current  Hour   `json:"current"`
	Forecast []Day  `json:"forecast"`
}

// When says which part of the forecast a question is about.
type When string

const (
	Today     When = "today"
	Tomorrow  When = "tomorrow"
	NextNDays When = "next_n_days"
)

// NormalizeWhen maps unknown values to Today.
func NormalizeWhen(s string) When {
	switch When(s) {
	case Today, Tomorrow, NextNDays:
		return When(s)
	}
	return Today
}

// Attribute is the aspect of the weather a question asks about.
type Attribute string

const (
	Temperature   Attribute = "temperature"
	Precipitation Attribute = "precipitation"
	Rain          Attribute = "rain"
	Wind          Attribute = "wind"
	Humidity      Attribute = "humidity"
	Summary       Attribute = "summary"
)

// NormalizeAttribute maps unknown values to Summary.
func NormalizeAttribute(s string) Attribute {
	switch Attribute(s) {
	case Temperature, Precipitation, Rain, Wind, Humidity, Summary:
		return Attribute(s)
	}
	return Summary
}

// Question is the structured form of a natural-language weather question.
type Question struct {
	Location  string    `json:"location"`
	Days      int       `json:"days"`
	When      When      `json:"when"`
	Attribute Attribute `json:"attribute"`
}

// DefaultQuestion is what an empty or unparseable question resolves to.
func DefaultQuestion() Question {
	return Question{Days: DefaultForecastDays, When: Today, Attribute: Summary}
}
