package app

import "weatheradvisor/internal/domain"

// App bundles the services the commands and handlers depend on.
type App struct {
	Weather   domain.WeatherClient
	Questions domain.QuestionParser
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	return &App{
		Weather:   newWeatherClient(cfg),
		Questions: newQuestionParser(),
	}
}
