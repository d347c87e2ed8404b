package answercheck

import (
	"strings"

	"github.com/tutorbase/grading-backend/internal/model"
)

// SplitBlankAnswer splits a single-string fill-in-the-blank
// submission into its ordered per-blank values. Accepted separators
// are comma, semicolon and pipe. Empty slots are preserved so a
// skipped blank does not shift the answers after it.
func SplitBlankAnswer(user string) []string {
	if strings.TrimSpace(user) == "" {
		return []string{}
	}
	out := []string{}
	start := 0
	for i, r := range user {
		if r == ',' || r == ';' || r == '|' {
			out = append(out, strings.TrimSpace(user[start:i]))
			start = i + 1
		}
	}
	return append(out, strings.TrimSpace(user[start:]))
}

// ValidateFillBlank compares an ordered list of user values against
// the blank descriptors, per position, using the same comparison
// rules as short answers. The aggregate is correct only when every
// blank matches; a missing value for a blank is incorrect for that
// blank, never an error.
func ValidateFillBlank(values []string, blanks []model.BlankDescriptor, mode model.MatchMode) model.FillBlankResult {
	result := model.FillBlankResult{Blanks: make([]model.BlankResult, 0, len(blanks))}
	if len(blanks) == 0 {
		return result
	}

	correct := 0
	for i := range blanks {
		b := &blanks[i]
		slot := b.Slot(i)

		var user string
		if slot >= 0 && slot < len(values) {
			user = values[slot]
		}

		expected := b.Value.String()
		if expected == "" {
			expected = b.Latex
		}

		c := compareWithAlternates(user, expected, b.Alternates, nil, mode)
		br := model.BlankResult{
			Position:          slot,
			IsCorrect:         c.matched,
			MatchType:         c.matchType,
			NormalizedUser:    Normalize(user),
			NormalizedCorrect: Normalize(expected),
		}
		if c.matched {
			correct++
		}
		result.Blanks = append(result.Blanks, br)
	}

	result.BlanksCorrect = correct
	result.IsCorrect = correct == len(blanks)
	return result
}

// ValidateMatching compares the user's ordered right-side indices
// against the correct correspondence, position by position. The -1
// sentinel (unmatched) and out-of-range indices are always incorrect
// for their position. The aggregate is correct only when every
// position matches.
func ValidateMatching(user, correct []int, pairs []model.MatchingPair) model.MatchingResult {
	result := model.MatchingResult{Positions: make([]bool, len(correct))}
	if len(correct) == 0 {
		return result
	}

	matches := 0
	for i, want := range correct {
		got := -1
		if i < len(user) {
			got = user[i]
		}
		if got < 0 {
			continue
		}
		if len(pairs) > 0 && got >= len(pairs) {
			continue
		}
		if got == want {
			result.Positions[i] = true
			matches++
		}
	}

	result.MatchesCorrect = matches
	result.IsCorrect = matches == len(correct)
	return result
}
