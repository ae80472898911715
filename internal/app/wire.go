package app

import (
	"net/http"

	"weatheradvisor/internal/domain"
	"weatheradvisor/internal/ollama"
	"weatheradvisor/internal/question"
	"weatheradvisor/internal/wttr"
)

func newWeatherClient(cfg Config) domain.WeatherClient {
	httpClient := cfg.HTTP
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = wttr.DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return wttr.New(cfg.WttrBase, httpClient)
}

func newQuestionParser() domain.QuestionParser {
	// The Ollama client keeps its own short timeout; parsing must stay
	// fast even when the model host is unreachable.
	return question.New(ollama.NewFromEnv(nil))
}
