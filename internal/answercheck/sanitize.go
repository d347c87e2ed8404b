// Package answercheck decides whether a free-form student answer is
// mathematically equal to a stored correct answer.
//
// Every function is a pure function of its inputs plus a fixed table
// of replacement rules and tolerance thresholds; there is no I/O and
// no shared mutable state, so all entry points are safe for
// concurrent use. Untrusted input is a value to classify, never a
// fault: nothing here panics or returns an error for bad student
// input — parsers degrade to "not this form" and comparisons to
// "no match".
package answercheck

import "unicode"

// MaxAnswerLength caps raw input before any processing. Anything a
// student legitimately types fits well under it; the cap bounds
// worst-case parse cost on pathological input.
const MaxAnswerLength = 10000

// Sanitize truncates raw input to MaxAnswerLength runes and strips
// zero-width and control characters (ordinary whitespace is kept).
// It is the mandatory first step for any untrusted input.
func Sanitize(raw string) string {
	out := make([]rune, 0, len(raw))
	n := 0
	for _, r := range raw {
		if n >= MaxAnswerLength {
			break
		}
		n++
		if isZeroWidth(r) {
			continue
		}
		if unicode.IsControl(r) && r != '\t' && r != '\n' && r != '\r' {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// isZeroWidth reports whether r is an invisible formatting character
// that makes visually identical strings compare unequal.
func isZeroWidth(r rune) bool {
	switch r {
	case '\u200b', // zero width space
		'\u200c', // zero width non-joiner
		'\u200d', // zero width joiner
		'\u2060', // word joiner
		'\ufeff': // byte order mark
		return true
	}
	return false
}
