package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"weatheradvisor/internal/location"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain city", "Perth", "Perth"},
		{"trailing time word", "Perth Tomorrow", "Perth"},
		{"leading preposition", "in Sydney", "Sydney"},
		{"phrase with count", "Melbourne next 3 days", "Melbourne"},
		{"weekend phrase", "Brisbane this weekend", "Brisbane"},
		{"apostrophe kept", "O'Connor", "O'Connor"},
		{"hyphen kept", "Tel-Aviv", "Tel-Aviv"},
		{"comma separated", "Perth, Australia", "Perth Australia"},
		{"digits dropped", "Perth 3", "Perth"},
		{"punctuation stripped", "Perth!?", "Perth"},
		{"only time words", "tomorrow morning", ""},
		{"empty", "", ""},
		{"whitespace", "   ", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, location.Sanitize(tc.in))
		})
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Perth", location.Title("perth"))
	assert.Equal(t, "New York", location.Title("new york"))
	assert.Equal(t, "O'Connor", location.Title("o'connor"))
	assert.Equal(t, "Tel-Aviv", location.Title("tel-aviv"))
	assert.Equal(t, "", location.Title(""))
}
