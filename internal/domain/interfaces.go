package domain

import "context"

// WeatherClient fetches a forecast for a location.
type WeatherClient interface {
	// Fetch sanitizes location, clamps days to 1..MaxForecastDays and
	// returns the normalized report.
	Fetch(ctx context.Context, location string, days int) (Report, error)
}

// QuestionParser turns a natural-language weather question into a
// structured Question. Parsing never fails; questions that cannot be
// understood resolve to DefaultQuestion values.
type QuestionParser interface {
	Parse(ctx context.Context, question string) Question
}
