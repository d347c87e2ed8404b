package answercheck

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	fractionRe = regexp.MustCompile(`^\(?(-?\d+)\)?[/:]\(?(-?\d+)\)?$`)

	// Mixed numbers: "1 1/2", "1-1/2". Runs on the raw string — the
	// normalizer's whitespace removal destroys the boundary between
	// the whole part and the fraction.
	mixedNumberRe = regexp.MustCompile(`^\s*(-?\d+)[ -](\d+)\s*/\s*(\d+)\s*$`)

	// Written-form scientific notation after normalization:
	// "3.2*10^5", "3.2x10^5", "3.2*10^(-5)".
	writtenSciRe = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)[*x]10\^\(?(-?\d+)\)?$`)

	// Standard e-notation, kept separate from plain decimals so the
	// comparison chain can tag the match kind.
	eNotationRe = regexp.MustCompile(`^-?\d+(?:\.\d+)?e[+-]?\d+$`)

	percentRe = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)%$`)
)

// ParseFraction recognizes "a/b", "a:b" and parenthesized "(a)/(b)"
// and returns the quotient. Zero denominators and non-matches return
// ok=false.
func ParseFraction(s string) (float64, bool) {
	s = unwrapParens(s)
	m := fractionRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	num, err1 := strconv.ParseFloat(m[1], 64)
	den, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0, false
	}
	return num / den, true
}

// ParseSimplifiedFraction parses an integer fraction and reduces it
// to lowest terms with the sign on the numerator. Used for the
// simplified-fraction equality path, which must not lose precision
// to float division.
func ParseSimplifiedFraction(s string) (num, den int64, ok bool) {
	s = unwrapParens(s)
	m := fractionRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	num, err1 := strconv.ParseInt(m[1], 10, 64)
	den, err2 := strconv.ParseInt(m[2], 10, 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0, 0, false
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	return num / g, den / g, true
}

// ParseMixedNumber recognizes "w n/d" and "w-n/d" on the raw,
// pre-normalization string. A negative whole part applies to the
// whole mixed number as a unit: -1 1/2 is -1.5, not -1 + 1/2.
func ParseMixedNumber(raw string) (float64, bool) {
	m := mixedNumberRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	whole, _ := strconv.ParseFloat(m[1], 64)
	num, _ := strconv.ParseFloat(m[2], 64)
	den, _ := strconv.ParseFloat(m[3], 64)
	if den == 0 {
		return 0, false
	}
	frac := num / den
	if strings.HasPrefix(strings.TrimSpace(raw), "-") {
		return whole - frac, true
	}
	return whole + frac, true
}

// ParseScientific recognizes standard e-notation and the written
// forms m*10^n and mx10^n (× is already * after normalization).
func ParseScientific(s string) (float64, bool) {
	if eNotationRe.MatchString(s) {
		v, err := strconv.ParseFloat(s, 64)
		return v, err == nil
	}
	m := writtenSciRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	mant, err1 := strconv.ParseFloat(m[1], 64)
	exp, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return mant * pow10(exp), true
}

// ParsePercent recognizes a trailing % and returns the decimal value
// (n/100).
func ParsePercent(s string) (float64, bool) {
	m := percentRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return n / 100, true
}

// parseNumber extracts a numeric value from a normalized answer in
// any accepted form: plain decimal, fraction, scientific notation or
// percentage.
func parseNumber(s string) (float64, bool) {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}
	if v, ok := ParseFraction(s); ok {
		return v, true
	}
	if v, ok := ParseScientific(s); ok {
		return v, true
	}
	if v, ok := ParsePercent(s); ok {
		return v, true
	}
	return 0, false
}

// unwrapParens strips one balanced outer paren pair, so "(1/2)"
// parses the same as "1/2".
func unwrapParens(s string) string {
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		depth := 0
		for i := 0; i < len(s); i++ {
			switch s[i] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 && i != len(s)-1 {
					return s
				}
			}
		}
		if depth == 0 {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// gcd returns the greatest common divisor of two non-negative ints.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func pow10(exp float64) float64 {
	result := 1.0
	n := int(exp)
	neg := n < 0
	if neg {
		n = -n
	}
	for i := 0; i < n; i++ {
		result *= 10
	}
	if neg {
		return 1 / result
	}
	return result
}
