package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Environment knobs, kept compatible with the original advisor.
const (
	EnvHost    = "OLLAMA_HOST"
	EnvModel   = "WEATHER_ADVISOR_OLLAMA_MODEL"
	EnvDisable = "WEATHER_ADVISOR_DISABLE_OLLAMA"
)

const (
	defaultHost  = "http://127.0.0.1:11434"
	defaultModel = "llama3.1"

	// DefaultTimeout is deliberately short: if the model is slow or not
	// running, the rule-based parser takes over.
	DefaultTimeout = 4 * time.Second
)

// Client posts generate requests to an Ollama server.
type Client struct {
	host  string
	model string
	http  *http.Client
}

// New returns a Client for host and model, with defaults for empty
// values. A nil httpClient gets a default with DefaultTimeout.
func New(host, model string, httpClient *http.Client) *Client {
	if host == "" {
		host = defaultHost
	}
	if model == "" {
		model = defaultModel
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{host: strings.TrimRight(host, "/"), model: model, http: httpClient}
}

// NewFromEnv builds a Client from OLLAMA_HOST and
// WEATHER_ADVISOR_OLLAMA_MODEL. Returns nil when
// WEATHER_ADVISOR_DISABLE_OLLAMA=1, which callers treat as "no LLM".
func NewFromEnv(httpClient *http.Client) *Client {
	if strings.TrimSpace(os.Getenv(EnvDisable)) == "1" {
		return nil
	}
	return New(os.Getenv(EnvHost), os.Getenv(EnvModel), httpClient)
}

type generateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Options map[string]any `json:"options"`
	Stream  bool           `json:"stream"`
}

// GenerateJSON runs a prompt with temperature zero and returns the first
// JSON object span from the model's response text.
func (c *Client) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:   c.model,
		Prompt:  prompt,
		Options: map[string]any{"temperature": 0.0},
		Stream:  false,
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "ollama generate")
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return "", errors.Errorf("ollama generate: %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "ollama read")
	}
	text := strings.TrimSpace(gjson.GetBytes(raw, "response").String())

	start, end := strings.Index(text, "{"), strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", errors.New("ollama response contains no JSON object")
	}
	return text[start : end+1], nil
}
