package answercheck

import (
	"strconv"
	"strings"

	"github.com/tutorbase/grading-backend/internal/model"
)

// ValidateAnswer grades one answer attempt against its descriptor
// under the given mode and assembles the structured verdict. It is
// total: malformed student input and malformed descriptors both
// resolve to a verdict, never an error.
func ValidateAnswer(user string, d model.AnswerDescriptor, mode model.MatchMode) model.ValidationResult {
	switch d.AnswerType {
	case model.AnswerTypeMultipleChoice:
		return validateMultipleChoice(user, d, mode)
	case model.AnswerTypeTrueFalse:
		return validateTrueFalse(user, d, mode)
	case model.AnswerTypeNumeric:
		return validateNumeric(user, d, mode)
	case model.AnswerTypeLongAnswer:
		// Never auto-graded; the caller routes to human review
		// instead of showing "incorrect".
		return model.ValidationResult{
			IsCorrect:      false,
			MatchType:      model.MatchManualRequired,
			Mode:           mode,
			NormalizedUser: Normalize(user),
		}
	case model.AnswerTypeFillBlank:
		fb := ValidateFillBlank(SplitBlankAnswer(user), d.Blanks, mode)
		mt := model.MatchExact
		if len(d.Blanks) == 0 {
			mt = model.MatchNoAnswerData
		} else if !fb.IsCorrect {
			mt = model.MatchNone
		}
		return model.ValidationResult{
			IsCorrect:      fb.IsCorrect,
			MatchType:      mt,
			Mode:           mode,
			NormalizedUser: Normalize(user),
			Blanks:         fb.Blanks,
		}
	case model.AnswerTypeMatching:
		return validateMatchingAnswer(model.ParseSelections(user), d, mode)
	default:
		// short_answer, expression and anything undeclared get the
		// full comparison chain.
		return validateShortAnswer(user, d, mode)
	}
}

// ValidateSelections grades a matching attempt submitted as an index
// list rather than a string.
func ValidateSelections(selections []int, d model.AnswerDescriptor, mode model.MatchMode) model.ValidationResult {
	return validateMatchingAnswer(selections, d, mode)
}

// ValidateBlankValues grades a fill-in-the-blank attempt submitted as
// an ordered value list rather than a delimited string.
func ValidateBlankValues(values []string, d model.AnswerDescriptor, mode model.MatchMode) model.ValidationResult {
	fb := ValidateFillBlank(values, d.Blanks, mode)
	mt := model.MatchExact
	if len(d.Blanks) == 0 {
		mt = model.MatchNoAnswerData
	} else if !fb.IsCorrect {
		mt = model.MatchNone
	}
	return model.ValidationResult{
		IsCorrect:      fb.IsCorrect,
		MatchType:      mt,
		Mode:           mode,
		NormalizedUser: strings.Join(values, ","),
		Blanks:         fb.Blanks,
	}
}

func validateMultipleChoice(user string, d model.AnswerDescriptor, mode model.MatchMode) model.ValidationResult {
	res := model.ValidationResult{Mode: mode, NormalizedUser: Normalize(user), MatchType: model.MatchNone}
	if d.CorrectIndex == nil {
		res.MatchType = model.MatchNoAnswerData
		return res
	}
	idx, err := strconv.Atoi(strings.TrimSpace(user))
	if err != nil {
		// A non-numeric selection is incorrect, not an error.
		return res
	}
	if len(d.Choices) > 0 && (idx < 0 || idx >= len(d.Choices)) {
		return res
	}
	res.NormalizedCorrect = strconv.Itoa(*d.CorrectIndex)
	if idx == *d.CorrectIndex {
		res.IsCorrect = true
		res.MatchType = model.MatchExact
	}
	return res
}

func validateTrueFalse(user string, d model.AnswerDescriptor, mode model.MatchMode) model.ValidationResult {
	res := model.ValidationResult{Mode: mode, NormalizedUser: Normalize(user), MatchType: model.MatchNone}

	// Strict on the student side: only the literal tokens count.
	// Abbreviations like "t" or "yes" are incorrect, not errors.
	var userTruth bool
	switch res.NormalizedUser {
	case "true":
		userTruth = true
	case "false":
		userTruth = false
	default:
		return res
	}

	// Tolerant on the descriptor side: storage encodes truth as
	// "true", true or 1 depending on the question author's tooling.
	correctTruth := false
	switch strings.ToLower(strings.TrimSpace(d.CorrectValue())) {
	case "true", "1":
		correctTruth = true
	}
	res.NormalizedCorrect = strconv.FormatBool(correctTruth)
	if userTruth == correctTruth {
		res.IsCorrect = true
		res.MatchType = model.MatchExact
	}
	return res
}

func validateNumeric(user string, d model.AnswerDescriptor, mode model.MatchMode) model.ValidationResult {
	nu := Normalize(user)
	nc := Normalize(d.CorrectValue())
	res := model.ValidationResult{Mode: mode, NormalizedUser: nu, NormalizedCorrect: nc, MatchType: model.MatchNone}

	cv, _, okC := extractNumber(d.CorrectValue(), nc)
	if !okC {
		res.MatchType = model.MatchNoAnswerData
		return res
	}
	res.CorrectValue = &cv

	if nu == nc {
		res.IsCorrect = true
		res.MatchType = model.MatchExact
		return res
	}

	// Students must submit a computed value. An unevaluated
	// expression that merely restates the problem is wrong even when
	// it is mathematically equal.
	if isUnevaluatedExpression(nu) {
		return res
	}

	uv, uf, okU := extractNumber(user, nu)
	if !okU {
		// Last resort: leftovers like "-(4)" that the form parsers
		// reject but are still plain values.
		uv, okU = Evaluate(nu)
		uf = formPlain
	}
	if !okU {
		return res
	}
	res.UserValue = &uv

	tol := SmartTolerance(cv)
	if d.Tolerance != nil {
		tol = *d.Tolerance
	}
	res.Tolerance = &tol

	if withinTolerance(uv, cv, tol) {
		res.IsCorrect = true
		res.MatchType = numericMatchType(uf, formPlain)
	}
	return res
}

// isUnevaluatedExpression reports whether a normalized numeric answer
// still contains unreduced computation: exponents, function calls, or
// arithmetic between operands. Fractions, scientific notation and
// percentages are accepted value forms, not computation.
func isUnevaluatedExpression(normalized string) bool {
	if _, ok := ParseScientific(normalized); ok {
		return false
	}
	if _, ok := ParseFraction(normalized); ok {
		return false
	}
	s := strings.TrimPrefix(normalized, "-")
	if strings.ContainsAny(s, "+*^") {
		return true
	}
	// A minus past the first rune is a binary subtraction.
	if strings.Contains(s, "-") {
		return true
	}
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return true
		}
	}
	return false
}

func validateShortAnswer(user string, d model.AnswerDescriptor, mode model.MatchMode) model.ValidationResult {
	nu := Normalize(user)
	nc := Normalize(d.CorrectValue())
	res := model.ValidationResult{Mode: mode, NormalizedUser: nu, NormalizedCorrect: nc}

	if d.CorrectValue() == "" && len(d.Alternates) == 0 {
		res.MatchType = model.MatchNoAnswerData
		return res
	}

	c := compareWithAlternates(user, d.CorrectValue(), d.Alternates, d.Tolerance, mode)
	res.IsCorrect = c.matched
	res.MatchType = c.matchType
	res.Tolerance = c.tolerance
	res.UserValue = c.userValue
	res.CorrectValue = c.correctValue
	return res
}

func validateMatchingAnswer(selections []int, d model.AnswerDescriptor, mode model.MatchMode) model.ValidationResult {
	res := model.ValidationResult{Mode: mode, MatchType: model.MatchNone}
	if len(d.CorrectMatches) == 0 {
		res.MatchType = model.MatchMatchingDataMissing
		return res
	}
	mr := ValidateMatching(selections, d.CorrectMatches, d.Pairs)
	res.Matching = &mr
	res.IsCorrect = mr.IsCorrect
	if mr.IsCorrect {
		res.MatchType = model.MatchExact
	}
	return res
}
