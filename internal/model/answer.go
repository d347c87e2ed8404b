package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// AnswerType enumerates the answer formats the grading engine dispatches on.
type AnswerType string

const (
	AnswerTypeMultipleChoice AnswerType = "multiple_choice"
	AnswerTypeTrueFalse      AnswerType = "true_false"
	AnswerTypeNumeric        AnswerType = "numeric"
	AnswerTypeShortAnswer    AnswerType = "short_answer"
	AnswerTypeExpression     AnswerType = "expression"
	AnswerTypeFillBlank      AnswerType = "fill_blank"
	AnswerTypeMatching       AnswerType = "matching"
	AnswerTypeLongAnswer     AnswerType = "long_answer"
)

// MatchMode selects the equivalence policy applied when grading.
// A question is graded by exactly one mode, and the mode used is
// recorded on the ValidationResult for audit.
type MatchMode string

const (
	// ModeStrict accepts only exact matches after normalization.
	ModeStrict MatchMode = "strict"
	// ModeTolerant adds fraction, decimal, scientific and percentage
	// comparisons under the magnitude-aware tolerance policy.
	ModeTolerant MatchMode = "tolerant"
	// ModeAlgebraic adds expression evaluation and symbolic
	// equivalence on top of ModeTolerant.
	ModeAlgebraic MatchMode = "algebraic"
)

// ParseMatchMode parses a mode string. Unknown or empty input returns
// ModeAlgebraic, the default policy, with ok=false.
func ParseMatchMode(s string) (MatchMode, bool) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeStrict:
		return ModeStrict, true
	case ModeTolerant:
		return ModeTolerant, true
	case ModeAlgebraic:
		return ModeAlgebraic, true
	default:
		return ModeAlgebraic, false
	}
}

// MatchType tags which comparison rule decided a verdict.
type MatchType string

const (
	MatchExact      MatchType = "exact"
	MatchNumeric    MatchType = "numeric"
	MatchFraction   MatchType = "fraction"
	MatchScientific MatchType = "scientific"
	MatchPercentage MatchType = "percentage"
	MatchExpression MatchType = "expression"
	MatchAlternate  MatchType = "alternate"
	MatchNone       MatchType = "none"

	// Diagnostic tags. These let the caller distinguish "wrong" from
	// "ungradable" — they are never produced for a valid comparison.
	MatchManualRequired      MatchType = "manual_required"
	MatchNoAnswerData        MatchType = "no_answer_data"
	MatchMatchingDataMissing MatchType = "matching_data_missing"
)

// FlexString accepts a JSON string, number or boolean, since question
// storage records canonical answers in all three shapes.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if s := string(data); s == "true" || s == "false" {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the underlying string value.
func (f FlexString) String() string { return string(f) }

// AnswerDescriptor is the stored correct answer for a question.
// Exactly one of the type-specific shapes (choices, blanks, matches)
// is populated, consistent with AnswerType.
type AnswerDescriptor struct {
	AnswerType     AnswerType        `json:"answer_type"`
	Value          FlexString        `json:"value,omitempty"`
	Latex          string            `json:"latex,omitempty"`
	Alternates     []string          `json:"alternates,omitempty"`
	Tolerance      *float64          `json:"tolerance,omitempty"`
	Choices        []string          `json:"choices,omitempty"`
	CorrectIndex   *int              `json:"correct_index,omitempty"`
	Blanks         []BlankDescriptor `json:"blanks,omitempty"`
	CorrectMatches []int             `json:"correct_matches,omitempty"`
	Pairs          []MatchingPair    `json:"pairs,omitempty"`
}

// CorrectValue returns the canonical correct-answer string, falling
// back to the LaTeX form when the plain value is absent.
func (d *AnswerDescriptor) CorrectValue() string {
	if v := d.Value.String(); v != "" {
		return v
	}
	return d.Latex
}

// BlankDescriptor describes one blank of a fill-in-the-blank question.
// Position defines correspondence to the user's ordered answer list;
// when nil, the array index is used.
type BlankDescriptor struct {
	Position   *int       `json:"position,omitempty"`
	Value      FlexString `json:"value"`
	Latex      string     `json:"latex,omitempty"`
	Alternates []string   `json:"alternates,omitempty"`
}

// Slot returns the answer-list slot this blank corresponds to.
func (b *BlankDescriptor) Slot(index int) int {
	if b.Position != nil {
		return *b.Position
	}
	return index
}

// MatchingPair is one left/right pair of a matching question.
type MatchingPair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// ValidationResult is the immutable verdict produced by one grading
// call. It is a snapshot used both for the gating decision and for
// human review logs; it is never mutated after construction.
type ValidationResult struct {
	IsCorrect         bool            `json:"is_correct"`
	MatchType         MatchType       `json:"match_type"`
	Mode              MatchMode       `json:"mode"`
	NormalizedUser    string          `json:"normalized_user"`
	NormalizedCorrect string          `json:"normalized_correct"`
	Tolerance         *float64        `json:"tolerance,omitempty"`
	UserValue         *float64        `json:"user_value,omitempty"`
	CorrectValue      *float64        `json:"correct_value,omitempty"`
	Blanks            []BlankResult   `json:"blanks,omitempty"`
	Matching          *MatchingResult `json:"matching,omitempty"`
}

// BlankResult reports the verdict for a single blank.
type BlankResult struct {
	Position          int       `json:"position"`
	IsCorrect         bool      `json:"is_correct"`
	MatchType         MatchType `json:"match_type"`
	NormalizedUser    string    `json:"normalized_user"`
	NormalizedCorrect string    `json:"normalized_correct"`
}

// FillBlankResult aggregates per-blank verdicts. IsCorrect is true
// only when every blank matched.
type FillBlankResult struct {
	IsCorrect     bool          `json:"is_correct"`
	BlanksCorrect int           `json:"blanks_correct"`
	Blanks        []BlankResult `json:"blanks"`
}

// MatchingResult aggregates per-position verdicts of a matching
// question. IsCorrect is true only when every position matched.
type MatchingResult struct {
	IsCorrect      bool   `json:"is_correct"`
	MatchesCorrect int    `json:"matches_correct"`
	Positions      []bool `json:"positions"`
}

// ParseSelections parses a comma-separated list of right-side indices
// ("0,2,1") as submitted for a matching question. Unparseable slots
// become the -1 sentinel, which is always incorrect for that position.
func ParseSelections(s string) []int {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			n = -1
		}
		out = append(out, n)
	}
	return out
}
