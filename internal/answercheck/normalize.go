package answercheck

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	// Word-boundary list connectors. Must run before whitespace
	// removal, which would destroy the boundaries.
	andOrRe = regexp.MustCompile(`(?i)\s+(?:and|or)\s+`)

	whitespaceRe       = regexp.MustCompile(`\s+`)
	singleDigitParenRe = regexp.MustCompile(`\((\d)\)`)
	digitStarLetterRe  = regexp.MustCompile(`(\d)\*([a-z])`)
	leadingZeroRe      = regexp.MustCompile(`(^|[^\d.])0+(\d)`)
	decimalTailRe      = regexp.MustCompile(`\.\d+`)

	varPrefixRe = regexp.MustCompile(`^[a-z]=`)
	plusMinusRe = regexp.MustCompile(`^\+-(\d+(?:\.\d+)?(?:/\d+)?)$`)
)

// structuralPasses bounds the fixed-point loop over the brace-group
// LaTeX rules, which handles nested \frac / \sqrt inside-out.
const structuralPasses = 8

// Normalize canonicalizes a raw answer into the plain-ASCII
// intermediate form every comparison runs on. It is total and
// idempotent; empty input yields the empty string.
//
// The pipeline order matters: later steps assume earlier ones ran.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	// 1. Protect word-boundary connectors, then drop whitespace and case.
	s := andOrRe.ReplaceAllString(raw, ",")
	s = strings.ToLower(whitespaceRe.ReplaceAllString(s, ""))

	// 2. Unicode glyphs, then LaTeX macros. Brace-group rules repeat
	// to a fixed point so nested structures resolve inside-out.
	s = applyRewrites(s, unicodeRewrites)
	s = applyRewrites(s, latexRewrites)
	for i := 0; i < structuralPasses; i++ {
		next := applyRewrites(s, latexStructural)
		if next == s {
			break
		}
		s = next
	}
	s = applyRewrites(s, latexDelimiters)

	// 3. Cosmetic cleanup.
	s = singleDigitParenRe.ReplaceAllString(s, "$1")
	s = digitStarLetterRe.ReplaceAllString(s, "$1$2")
	s = leadingZeroRe.ReplaceAllString(s, "$1$2")
	s = decimalTailRe.ReplaceAllStringFunc(s, func(m string) string {
		m = strings.TrimRight(m, "0")
		if m == "." {
			return ""
		}
		return m
	})

	// 4. Trailing unit words on a purely numeric answer.
	s = stripTrailingUnit(s)

	// 5. Answer-shape canonicalization for multi-value answers.
	s = canonicalShape(s)

	return s
}

// unitWords are the trailing unit suffixes stripped when the rest of
// the answer is purely numeric. Checked longest-first so "cm" wins
// over "m".
var unitWords = []string{
	"millimeters", "millimeter", "centimeters", "centimeter",
	"kilometers", "kilometer", "meters", "meter",
	"inches", "inch", "feet", "foot", "yards", "yard", "miles", "mile",
	"seconds", "second", "minutes", "minute", "hours", "hour",
	"grams", "gram", "kilograms", "kilogram", "pounds", "pound",
	"ounces", "ounce", "liters", "liter", "milliliters", "milliliter",
	"gallons", "gallon", "degrees", "degree", "radians", "radian",
	"units", "unit", "sq", "cm", "mm", "km", "kg", "mg", "ml", "oz",
	"lbs", "lb", "ft", "yd", "mi", "in", "hr", "deg", "rad", "min",
	"sec", "m", "g", "l", "s", "h",
}

func init() {
	sort.Slice(unitWords, func(i, j int) bool {
		return len(unitWords[i]) > len(unitWords[j])
	})
}

func stripTrailingUnit(s string) string {
	for _, u := range unitWords {
		if !strings.HasSuffix(s, u) {
			continue
		}
		prefix := s[:len(s)-len(u)]
		if _, err := strconv.ParseFloat(prefix, 64); err == nil {
			return prefix
		}
	}
	return s
}

// canonicalShape produces an order-independent representation for
// multi-value answers (roots, solution sets): unwraps redundant outer
// parens, strips solved-variable prefixes, expands a leading ± on a
// bare number, and sorts comma lists.
func canonicalShape(s string) string {
	for {
		u := unwrapParens(s)
		if u == s {
			break
		}
		s = u
	}
	s = varPrefixRe.ReplaceAllString(s, "")

	if m := plusMinusRe.FindStringSubmatch(s); m != nil {
		s = "-" + m[1] + "," + m[1]
	}

	// Only top-level commas separate values; a comma inside parens
	// belongs to a function call like nthroot(27,3).
	parts := splitTopLevel(s)
	if len(parts) < 2 {
		return s
	}
	allNumeric := true
	for i := range parts {
		parts[i] = varPrefixRe.ReplaceAllString(parts[i], "")
		if _, err := strconv.ParseFloat(parts[i], 64); err != nil {
			allNumeric = false
		}
	}

	if allNumeric {
		sort.Slice(parts, func(i, j int) bool {
			vi, _ := strconv.ParseFloat(parts[i], 64)
			vj, _ := strconv.ParseFloat(parts[j], 64)
			return vi < vj
		})
	} else {
		sort.Strings(parts)
	}
	return strings.Join(parts, ",")
}

// splitTopLevel splits s on commas outside any paren pair.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}
