package api

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"weatheradvisor/internal/config"
	"weatheradvisor/internal/domain"
	"weatheradvisor/internal/handlers"
)

// Deps are the services the API serves.
type Deps struct {
	Weather   domain.WeatherClient
	Questions domain.QuestionParser
}

// New builds the weatherd Fiber application.
func New(cfg config.Config, deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "weatherd",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	app.Use(requestid.New())
	app.Use(recover.New())
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		slog.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
		)
		return err
	})

	forecast := handlers.NewForecastHandler(deps.Weather, cfg.DefaultDays)
	ask := handlers.NewAskHandler(deps.Weather, deps.Questions)

	app.Get("/", home)
	app.Get("/healthz", health)
	app.Get("/api/temps", forecast.Temps)
	app.Get("/api/rain", forecast.Rain)
	app.Post("/api/ask", ask.Ask)

	return app
}

func health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

const landingPage = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>Weather Advisor</title></head>
<body>
<h1>Weather Advisor</h1>
<p>Endpoints:</p>
<ul>
<li><code>GET /api/temps?location=Perth&amp;days=3</code></li>
<li><code>GET /api/rain?location=Perth&amp;days=3</code></li>
<li><code>POST /api/ask</code> with <code>{"question": "...", "default_location": "..."}</code></li>
<li><code>GET /healthz</code></li>
</ul>
</body>
</html>
`

func home(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(landingPage)
}
