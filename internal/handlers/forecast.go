package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"weatheradvisor/internal/domain"
	"weatheradvisor/internal/location"
)

// ForecastHandler serves the chart data endpoints.
type ForecastHandler struct {
	weather     domain.WeatherClient
	defaultDays int
}

func NewForecastHandler(weather domain.WeatherClient, defaultDays int) *ForecastHandler {
	return &ForecastHandler{weather: weather, defaultDays: domain.ClampDays(defaultDays)}
}

// TempsResponse feeds the temperature chart.
type TempsResponse struct {
	Location string    `json:"location"`
	Dates    []string  `json:"dates"`
	Min      []float64 `json:"min"`
	Avg      []float64 `json:"avg"`
	Max      []float64 `json:"max"`
}

// Temps returns per-day min/avg/max temperatures for ?location and ?days.
func (h *ForecastHandler) Temps(c *fiber.Ctx) error {
	rep, ok, err := h.fetch(c)
	if !ok {
		return err
	}

	out := TempsResponse{
		Location: rep.Location,
		Dates:    make([]string, 0, len(rep.Forecast)),
		Min:      make([]float64, 0, len(rep.Forecast)),
		Avg:      make([]float64, 0, len(rep.Forecast)),
		Max:      make([]float64, 0, len(rep.Forecast)),
	}
	for _, d := range rep.Forecast {
		out.Dates = append(out.Dates, d.Date)
		out.Min = append(out.Min, d.MinTempC)
		out.Avg = append(out.Avg, d.AvgTempC)
		out.Max = append(out.Max, d.MaxTempC)
	}
	return c.JSON(out)
}

// RainResponse feeds the precipitation chart.
type RainResponse struct {
	Location string   `json:"location"`
	Dates    []string `json:"dates"`
	Chance   []int    `json:"chance"`
}

// Rain returns each day's maximum hourly rain chance.
func (h *ForecastHandler) Rain(c *fiber.Ctx) error {
	rep, ok, err := h.fetch(c)
	if !ok {
		return err
	}

	out := RainResponse{
		Location: rep.Location,
		Dates:    make([]string, 0, len(rep.Forecast)),
		Chance:   make([]int, 0, len(rep.Forecast)),
	}
	for _, d := range rep.Forecast {
		out.Dates = append(out.Dates, d.Date)
		out.Chance = append(out.Chance, d.MaxRainChance())
	}
	return c.JSON(out)
}

// fetch validates the query and retrieves the report. ok=false means an
// error response has already been written; err then carries only the
// write result for the handler to return.
func (h *ForecastHandler) fetch(c *fiber.Ctx) (rep domain.Report, ok bool, err error) {
	loc := location.Sanitize(c.Query("location"))
	if loc == "" {
		return domain.Report{}, false, c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Please provide a valid 'location'."})
	}
	days := c.QueryInt("days", h.defaultDays)

	rep, err = h.weather.Fetch(c.Context(), loc, days)
	if err != nil {
		slog.Error("weather fetch failed", "location", loc, "err", err)
		return domain.Report{}, false, c.Status(fiber.StatusBadGateway).
			JSON(fiber.Map{"error": "Could not fetch weather for '" + loc + "'."})
	}
	return rep, true, nil
}
