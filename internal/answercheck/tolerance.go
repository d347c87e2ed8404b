package answercheck

import "math"

// SmartTolerance derives the comparison epsilon from the magnitude of
// the reference value. A single global epsilon either rejects valid
// rounding on large answers or accepts gross errors on small ones;
// this table behaves reasonably across the grade-school-to-calculus
// range. An explicit tolerance on the descriptor always overrides it.
func SmartTolerance(reference float64) float64 {
	mag := math.Abs(reference)
	switch {
	case mag < 1:
		return 0.001
	case mag < 10:
		return 0.01
	case mag < 100:
		return 0.05
	default:
		return mag * 0.001
	}
}

// withinTolerance reports whether user agrees with correct under the
// given tolerance; pass tol <= 0 to use SmartTolerance(correct).
func withinTolerance(user, correct, tol float64) bool {
	if tol <= 0 {
		tol = SmartTolerance(correct)
	}
	return math.Abs(user-correct) <= tol
}
