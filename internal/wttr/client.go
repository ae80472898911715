package wttr

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"weatheradvisor/internal/domain"
	"weatheradvisor/internal/location"
)

// DefaultBase is the public wttr.in endpoint.
const DefaultBase = "https://wttr.in"

// DefaultTimeout bounds a single forecast lookup.
const DefaultTimeout = 6 * time.Second

// ErrEmptyLocation means the location was blank or nothing remained
// after sanitizing.
var ErrEmptyLocation = errors.New("location is empty after sanitizing")

// Client talks to a wttr.in-compatible server.
type Client struct {
	base string
	http *http.Client
}

// New returns a Client for base. An empty base selects the public
// endpoint; a nil httpClient gets a default with DefaultTimeout.
func New(base string, httpClient *http.Client) *Client {
	if base == "" {
		base = DefaultBase
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{base: base, http: httpClient}
}

// Fetch retrieves and normalizes the forecast for a location. The
// location is sanitized first and days is clamped to the supported
// range; the returned forecast never exceeds days entries.
func (c *Client) Fetch(ctx context.Context, loc string, days int) (domain.Report, error) {
	loc = location.Sanitize(loc)
	if loc == "" {
		return domain.Report{}, ErrEmptyLocation
	}
	days = domain.ClampDays(days)

	u := c.base + "/" + url.PathEscape(loc) + "?format=j1"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.Report{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Report{}, errors.Wrapf(err, "wttr get %q", loc)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return domain.Report{}, errors.Errorf("wttr get %q: %s", loc, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Report{}, errors.Wrapf(err, "wttr read %q", loc)
	}

	root := gjson.ParseBytes(body)
	report := domain.Report{
		Location: location.Title(loc),
		Current:  parseCurrent(root.Get("current_condition.0")),
	}
	for _, day := range root.Get("weather").Array() {
		if len(report.Forecast) >= days {
			break
		}
		report.Forecast = append(report.Forecast, parseDay(day))
	}
	return report, nil
}

func parseCurrent(v gjson.Result) domain.Hour {
	return domain.Hour{
		TempC:        v.Get("temp_C").Float(),
		ChanceOfRain: clampPercent(v.Get("chanceofrain").Int()),
		WindKmph:     int(v.Get("windspeedKmph").Int()),
		Humidity:     int(v.Get("humidity").Int()),
		Desc:         v.Get("weatherDesc.0.value").String(),
	}
}

func parseDay(v gjson.Result) domain.Day {
	d := domain.Day{
		Date:     v.Get("date").String(),
		MinTempC: v.Get("mintempC").Float(),
		AvgTempC: v.Get("avgtempC").Float(),
		MaxTempC: v.Get("maxtempC").Float(),
	}
	for _, h := range v.Get("hourly").Array() {
		d.Hourly = append(d.Hourly, domain.Hour{
			Time:         h.Get("time").String(),
			TempC:        h.Get("tempC").Float(),
			ChanceOfRain: clampPercent(h.Get("chanceofrain").Int()),
			WindKmph:     int(h.Get("windspeedKmph").Int()),
			Humidity:     int(h.Get("humidity").Int()),
			Desc:         h.Get("weatherDesc.0.value").String(),
		})
	}
	return d
}

// clampPercent keeps rain chances inside 0..100 no matter what the
// payload says.
func clampPercent(n int64) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return int(n)
}

var _ domain.WeatherClient = (*Client)(nil)
