package question

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"weatheradvisor/internal/domain"
	"weatheradvisor/internal/location"
	"weatheradvisor/internal/ollama"
)

const parserPrompt = "You are a weather question parser. Output JSON with keys: " +
	"location (string|null), days (1..5), when ('today'|'tomorrow'|'next_n_days'), " +
	"attribute ('temperature'|'rain'|'precipitation'|'wind'|'humidity'|'summary'). " +
	"If 'this weekend' -> next_n_days + days=3. " +
	"Default: location=null, days=3, when='today', attribute='summary'."

var (
	// "in Perth", "at new york" up to a sane length; sanitizing trims
	// any trailing time words the capture swallows.
	locPattern   = regexp.MustCompile(`\b(?:in|at)\s+([a-zA-Z][a-zA-Z\s\-']{1,60})`)
	nextNPattern = regexp.MustCompile(`\bnext\s+(\d)\s+day`)
)

// Service parses weather questions.
type Service struct {
	llm *ollama.Client // nil when no model is available
}

// New constructs a Service. Pass a nil llm to run rules only.
func New(llm *ollama.Client) *Service {
	return &Service{llm: llm}
}

// Parse converts a question into its structured form. Empty questions
// return defaults. The LLM path is tried first; any failure there falls
// through to the rule-based parser.
func (s *Service) Parse(ctx context.Context, q string) domain.Question {
	q = strings.TrimSpace(q)
	if q == "" {
		return domain.DefaultQuestion()
	}

	if s.llm != nil {
		if parsed, ok := s.parseWithLLM(ctx, q); ok {
			return parsed
		}
	}
	return parseWithRules(q)
}

func (s *Service) parseWithLLM(ctx context.Context, q string) (domain.Question, bool) {
	prompt := parserPrompt + "\nUser question: " + q + "\nJSON:"
	text, err := s.llm.GenerateJSON(ctx, prompt)
	if err != nil {
		return domain.Question{}, false
	}
	v := gjson.Parse(text)
	if !v.IsObject() {
		return domain.Question{}, false
	}

	out := domain.DefaultQuestion()
	out.Location = location.Title(location.Sanitize(v.Get("location").String()))
	if days := v.Get("days"); days.Exists() {
		out.Days = domain.ClampDays(int(days.Int()))
	}
	out.When = domain.NormalizeWhen(v.Get("when").String())
	out.Attribute = domain.NormalizeAttribute(v.Get("attribute").String())
	return out, true
}

func parseWithRules(q string) domain.Question {
	low := strings.ToLower(q)
	out := domain.DefaultQuestion()

	// The regex runs over the lowercased question, so restore title case
	// for display.
	if m := locPattern.FindStringSubmatch(low); m != nil {
		out.Location = location.Title(location.Sanitize(m[1]))
	}

	if strings.Contains(low, "tomorrow") {
		out.When, out.Days = domain.Tomorrow, 1
	}
	if m := nextNPattern.FindStringSubmatch(low); m != nil {
		n, _ := strconv.Atoi(m[1])
		out.When, out.Days = domain.NextNDays, domain.ClampDays(n)
	}
	if strings.Contains(low, "weekend") {
		out.When, out.Days = domain.NextNDays, 3
	}

	switch {
	case containsAny(low, "rain", "umbrella", "precip"):
		out.Attribute = domain.Precipitation
	case containsAny(low, "windy", "wind"):
		out.Attribute = domain.Wind
	case containsAny(low, "humid"):
		out.Attribute = domain.Humidity
	case containsAny(low, "hot", "cold", "warm", "temp"):
		out.Attribute = domain.Temperature
	}
	return out
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

var _ domain.QuestionParser = (*Service)(nil)
