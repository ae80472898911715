package location

import (
	"regexp"
	"strings"
	"unicode"
)

// Words that describe when, not where. Dropped during sanitizing.
var timeWords = map[string]struct{}{
	"today": {}, "tomorrow": {}, "tonight": {}, "weekend": {},
	"morning": {}, "afternoon": {}, "evening": {},
	"next": {}, "day": {}, "days": {}, "week": {}, "weeks": {},
	"month": {}, "months": {},
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
	"this": {},
}

var prepositions = map[string]struct{}{
	"in": {}, "at": {}, "on": {}, "for": {},
}

var (
	// Keep letters, whitespace, hyphens, apostrophes (O'Connor) and commas.
	disallowed = regexp.MustCompile(`[^A-Za-z\s\-',]`)
	separators = regexp.MustCompile(`[,\s]+`)
)

// Sanitize removes time words, prepositions and stray numbers from a
// user-entered location. Returns "" when nothing usable remains.
func Sanitize(raw string) string {
	cleaned := disallowed.ReplaceAllString(strings.TrimSpace(raw), " ")

	var keep []string
	for _, p := range separators.Split(cleaned, -1) {
		if p == "" {
			continue
		}
		low := strings.ToLower(p)
		if _, ok := timeWords[low]; ok {
			continue
		}
		if _, ok := prepositions[low]; ok {
			continue
		}
		keep = append(keep, p)
	}
	return strings.Trim(strings.Join(keep, " "), " ,")
}

// Title capitalizes the first letter of every word and lowercases the
// rest, treating any non-letter as a word boundary ("o'connor" becomes
// "O'Connor").
func Title(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}
	return b.String()
}
