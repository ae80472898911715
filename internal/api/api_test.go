package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weatheradvisor/internal/api"
	"weatheradvisor/internal/config"
	"weatheradvisor/internal/domain"
	"weatheradvisor/internal/question"
)

type stubWeather struct {
	report domain.Report
	err    error
}

func (s *stubWeather) Fetch(ctx context.Context, loc string, days int) (domain.Report, error) {
	if s.err != nil {
		return domain.Report{}, s.err
	}
	rep := s.report
	if days < len(rep.Forecast) {
		rep.Forecast = rep.Forecast[:days]
	}
	return rep, nil
}

func sampleReport() domain.Report {
	return domain.Report{
		Location: "Perth",
		Forecast: []domain.Day{
			{Date: "2026-08-31", MinTempC: 12, AvgTempC: 18, MaxTempC: 24,
				Hourly: []domain.Hour{{Time: "1200", ChanceOfRain: 70, Humidity: 50, Desc: "Light rain"}}},
			{Date: "2026-09-01", MinTempC: 10, AvgTempC: 15, MaxTempC: 20,
				Hourly: []domain.Hour{{Time: "1200", ChanceOfRain: 10, Desc: "Clear"}}},
		},
	}
}

func TestTemps_OK(t *testing.T) {
	app := api.New(config.Default(), api.Deps{
		Weather:   &stubWeather{report: sampleReport()},
		Questions: question.New(nil),
	})

	req := httptest.NewRequest("GET", "/api/temps?location=Perth&days=2", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Location string    `json:"location"`
		Dates    []string  `json:"dates"`
		Min      []float64 `json:"min"`
		Avg      []float64 `json:"avg"`
		Max      []float64 `json:"max"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Perth", body.Location)
	assert.Equal(t, []string{"2026-08-31", "2026-09-01"}, body.Dates)
	assert.Equal(t, []float64{12, 10}, body.Min)
	assert.Equal(t, []float64{24, 20}, body.Max)
}

func TestTemps_MissingLocation(t *testing.T) {
	app := api.New(config.Default(), api.Deps{
		Weather:   &stubWeather{report: sampleReport()},
		Questions: question.New(nil),
	})

	req := httptest.NewRequest("GET", "/api/temps?location=tomorrow", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestRain_UpstreamFailure(t *testing.T) {
	app := api.New(config.Default(), api.Deps{
		Weather:   &stubWeather{err: errors.New("wttr down")},
		Questions: question.New(nil),
	})

	req := httptest.NewRequest("GET", "/api/rain?location=Perth", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 502, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Could not fetch weather for 'Perth'.", body["error"])
}

func TestRain_OK(t *testing.T) {
	app := api.New(config.Default(), api.Deps{
		Weather:   &stubWeather{report: sampleReport()},
		Questions: question.New(nil),
	})

	req := httptest.NewRequest("GET", "/api/rain?location=Perth&days=2", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Chance []int `json:"chance"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []int{70, 10}, body.Chance)
}

func TestAsk_OK(t *testing.T) {
	app := api.New(config.Default(), api.Deps{
		Weather:   &stubWeather{report: sampleReport()},
		Questions: question.New(nil),
	})

	payload := `{"question": "Do I need an umbrella in Perth?"}`
	req := httptest.NewRequest("POST", "/api/ask", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Answer string `json:"answer"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Answer, "umbrella")
}

func TestAsk_DefaultLocationFallback(t *testing.T) {
	app := api.New(config.Default(), api.Deps{
		Weather:   &stubWeather{report: sampleReport()},
		Questions: question.New(nil),
	})

	payload := `{"question": "Will it rain tomorrow?", "default_location": "Perth"}`
	req := httptest.NewRequest("POST", "/api/ask", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Answer string `json:"answer"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Answer, "Perth")
}

func TestAsk_NoLocationAtAll(t *testing.T) {
	app := api.New(config.Default(), api.Deps{
		Weather:   &stubWeather{report: sampleReport()},
		Questions: question.New(nil),
	})

	payload := `{"question": "Will it rain tomorrow?"}`
	req := httptest.NewRequest("POST", "/api/ask", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Answer string `json:"answer"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Please include a location in your question or set a default location.", body.Answer)
}

func TestAsk_MissingQuestion(t *testing.T) {
	app := api.New(config.Default(), api.Deps{
		Weather:   &stubWeather{report: sampleReport()},
		Questions: question.New(nil),
	})

	req := httptest.NewRequest("POST", "/api/ask", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	app := api.New(config.Default(), api.Deps{
		Weather:   &stubWeather{},
		Questions: question.New(nil),
	})

	req := httptest.NewRequest("GET", "/healthz", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(raw))
}

func TestHome(t *testing.T) {
	app := api.New(config.Default(), api.Deps{
		Weather:   &stubWeather{},
		Questions: question.New(nil),
	})

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Weather Advisor")
}
