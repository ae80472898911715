package app

import (
	"net/http"
	"time"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	WttrBase string        // wttr.in base URL, empty for the public endpoint
	Timeout  time.Duration // forecast lookup timeout, zero for the default
	HTTP     *http.Client  // optional; a default client is built when nil
}
