package handlers

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"weatheradvisor/internal/advisor"
	"weatheradvisor/internal/domain"
	"weatheradvisor/internal/location"
)

// AskHandler answers natural-language weather questions.
type AskHandler struct {
	weather   domain.WeatherClient
	questions domain.QuestionParser
}

func NewAskHandler(weather domain.WeatherClient, questions domain.QuestionParser) *AskHandler {
	return &AskHandler{weather: weather, questions: questions}
}

// AskRequest is the /api/ask body.
type AskRequest struct {
	Question        string `json:"question"`
	DefaultLocation string `json:"default_location"`
}

// AskResponse carries the humanized answer.
type AskResponse struct {
	Answer string `json:"answer"`
}

// Ask parses the question, falls back to the caller's default location,
// fetches the forecast and replies with a humanized answer.
func (h *AskHandler) Ask(c *fiber.Ctx) error {
	var req AskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing 'question'."})
	}
	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing 'question'."})
	}

	parsed := h.questions.Parse(c.Context(), req.Question)
	if parsed.Location == "" {
		parsed.Location = location.Sanitize(req.DefaultLocation)
	}
	if parsed.Location == "" {
		return c.JSON(AskResponse{
			Answer: "Please include a location in your question or set a default location.",
		})
	}

	rep, err := h.weather.Fetch(c.Context(), parsed.Location, parsed.Days)
	if err != nil {
		slog.Error("weather fetch failed", "location", parsed.Location, "err", err)
		return c.Status(fiber.StatusBadGateway).JSON(AskResponse{
			Answer: "Sorry, I couldn't retrieve weather data right now.",
		})
	}
	return c.JSON(AskResponse{Answer: advisor.Answer(parsed, rep)})
}
