package answercheck

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "2x+3", "2x+3"},
		{"keeps whitespace", "1 1/2\n", "1 1/2\n"},
		{"zero width space", "1\u200b2", "12"},
		{"zero width joiners", "a\u200c\u200db", "ab"},
		{"word joiner", "3\u20604", "34"},
		{"byte order mark", "\ufeff42", "42"},
		{"control characters", "4\x002\x07", "42"},
		{"unicode math kept", "½ × π", "½ × π"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeTruncates(t *testing.T) {
	long := strings.Repeat("9", MaxAnswerLength+500)
	got := Sanitize(long)
	if n := utf8.RuneCountInString(got); n != MaxAnswerLength {
		t.Errorf("Sanitize length = %d, want %d", n, MaxAnswerLength)
	}
}
