package answercheck

import (
	"strconv"

	"github.com/tutorbase/grading-backend/internal/model"
)

// numericForm classifies which surface form a numeric answer took.
type numericForm int

const (
	formPlain numericForm = iota
	formFraction
	formScientific
	formPercent
)

// comparison is the outcome of one user-vs-correct comparison,
// carrying the values the dispatcher copies onto the audit result.
type comparison struct {
	matched      bool
	matchType    model.MatchType
	tolerance    *float64
	userValue    *float64
	correctValue *float64
}

func noMatch() comparison {
	return comparison{matchType: model.MatchNone}
}

// extractNumber pulls a numeric value out of an answer, trying the
// raw string first (mixed numbers die under whitespace removal) and
// then the normalized forms.
func extractNumber(raw, normalized string) (float64, numericForm, bool) {
	if v, ok := ParseMixedNumber(raw); ok {
		return v, formFraction, true
	}
	if v, ok := ParseScientific(normalized); ok {
		return v, formScientific, true
	}
	if v, err := strconv.ParseFloat(normalized, 64); err == nil {
		return v, formPlain, true
	}
	if v, ok := ParseFraction(normalized); ok {
		return v, formFraction, true
	}
	if v, ok := ParsePercent(normalized); ok {
		return v, formPercent, true
	}
	return 0, formPlain, false
}

// compareOne runs the comparison chain for a single correct answer.
// Rules are tried generous-to-strict order per the active mode; the
// first satisfied rule wins and sets the match type.
func compareOne(rawUser, rawCorrect string, tol *float64, mode model.MatchMode) comparison {
	nu, nc := Normalize(rawUser), Normalize(rawCorrect)
	if nu == "" || nc == "" {
		return noMatch()
	}

	// Exact after normalization — the only rule strict mode allows.
	if nu == nc {
		return comparison{matched: true, matchType: model.MatchExact}
	}
	if mode == model.ModeStrict {
		return noMatch()
	}

	// Simplified-fraction equality on exact integer arithmetic, so
	// 2/4 matches 1/2 without float rounding in the way.
	if un, ud, ok := ParseSimplifiedFraction(nu); ok {
		if cn, cd, ok := ParseSimplifiedFraction(nc); ok && un == cn && ud == cd {
			return comparison{matched: true, matchType: model.MatchFraction}
		}
	}

	// Numeric comparison across all accepted surface forms.
	uv, uf, okU := extractNumber(rawUser, nu)
	cv, cf, okC := extractNumber(rawCorrect, nc)
	if okU && okC {
		tolerance := SmartTolerance(cv)
		if tol != nil {
			tolerance = *tol
		}
		if withinTolerance(uv, cv, tolerance) {
			return comparison{
				matched:      true,
				matchType:    numericMatchType(uf, cf),
				tolerance:    &tolerance,
				userValue:    &uv,
				correctValue: &cv,
			}
		}
		// Both sides are plain numbers that disagree; expression
		// rules cannot save a wrong number.
		if uf == formPlain && cf == formPlain {
			return comparison{matchType: model.MatchNone, userValue: &uv, correctValue: &cv, tolerance: &tolerance}
		}
	}

	if mode != model.ModeAlgebraic {
		return noMatch()
	}

	// Expression evaluation equality.
	if ev, okE := Evaluate(nu); okE {
		if ec, okC := Evaluate(nc); okC {
			tolerance := SmartTolerance(ec)
			if tol != nil {
				tolerance = *tol
			}
			if withinTolerance(ev, ec, tolerance) {
				return comparison{matched: true, matchType: model.MatchExpression, tolerance: &tolerance, userValue: &ev, correctValue: &ec}
			}
			return comparison{matchType: model.MatchNone, userValue: &ev, correctValue: &ec, tolerance: &tolerance}
		}
	}

	// Symbolic equivalence via normalization, algebra and sampling.
	if Equivalent(rawUser, rawCorrect) {
		return comparison{matched: true, matchType: model.MatchExpression}
	}

	return noMatch()
}

// numericMatchType tags a successful numeric comparison by the most
// specific surface form involved.
func numericMatchType(uf, cf numericForm) model.MatchType {
	switch {
	case uf == formScientific || cf == formScientific:
		return model.MatchScientific
	case uf == formPercent || cf == formPercent:
		return model.MatchPercentage
	case uf == formFraction || cf == formFraction:
		return model.MatchFraction
	default:
		return model.MatchNumeric
	}
}

// compareWithAlternates runs compareOne against the canonical answer
// and then every accepted alternate. A match on an alternate is
// tagged MatchAlternate.
func compareWithAlternates(rawUser, rawCorrect string, alternates []string, tol *float64, mode model.MatchMode) comparison {
	if c := compareOne(rawUser, rawCorrect, tol, mode); c.matched {
		return c
	}
	for _, alt := range alternates {
		if c := compareOne(rawUser, alt, tol, mode); c.matched {
			c.matchType = model.MatchAlternate
			return c
		}
	}
	return noMatch()
}

// CompareAnswers reports whether a user answer matches the correct
// answer or any alternate under the full generous policy.
func CompareAnswers(user, correct string, alternates []string) bool {
	return compareWithAlternates(user, correct, alternates, nil, model.ModeAlgebraic).matched
}

// CompareNumeric reports whether a user answer equals a numeric
// correct value. An optional explicit tolerance overrides the
// magnitude-aware default.
func CompareNumeric(user string, correct float64, tolerance ...float64) bool {
	uv, _, ok := extractNumber(user, Normalize(user))
	if !ok {
		return false
	}
	tol := SmartTolerance(correct)
	if len(tolerance) > 0 && tolerance[0] > 0 {
		tol = tolerance[0]
	}
	return withinTolerance(uv, correct, tol)
}
