package model

import "encoding/json"

// GradeRequest is the payload for grading one answer attempt.
// Exactly one of Answer, Answers or Selections carries the student's
// submission, depending on the answer type:
//   - Answer: single-value types (numeric, short_answer, true_false, ...)
//   - Answers: fill_blank (ordered per-blank values)
//   - Selections: matching (ordered right-side indices, -1 = unmatched)
//
// Descriptor is kept raw so it can be schema-validated before decoding;
// descriptors arrive from question storage and are not trusted blindly.
type GradeRequest struct {
	Answer     string          `json:"answer,omitempty"`
	Answers    []string        `json:"answers,omitempty"`
	Selections []int           `json:"selections,omitempty"`
	AnswerType string          `json:"answer_type" binding:"required,oneof=multiple_choice true_false numeric short_answer expression fill_blank matching long_answer"`
	Descriptor json.RawMessage `json:"descriptor" binding:"required"`
	Mode       string          `json:"mode,omitempty" binding:"omitempty,oneof=strict tolerant algebraic"`
}

// CompareRequest is the payload for a direct two-answer comparison.
type CompareRequest struct {
	User       string   `json:"user" binding:"required"`
	Correct    string   `json:"correct" binding:"required"`
	Alternates []string `json:"alternates,omitempty" binding:"omitempty,max=32,dive,max=10000"`
	Mode       string   `json:"mode,omitempty" binding:"omitempty,oneof=strict tolerant algebraic"`
}

// CompareResponse reports a direct comparison verdict with the
// canonical forms used, for audit display.
type CompareResponse struct {
	Equal             bool   `json:"equal"`
	NormalizedUser    string `json:"normalized_user"`
	NormalizedCorrect string `json:"normalized_correct"`
}

// NormalizeRequest is the payload for the canonical-form endpoint.
type NormalizeRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// NormalizeResponse returns the canonical form of an answer.
type NormalizeResponse struct {
	Normalized string `json:"normalized"`
}
