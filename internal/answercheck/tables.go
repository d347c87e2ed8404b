package answercheck

import (
	"regexp"
	"strings"
)

// rewrite is one normalization rule: either a literal replacement
// (re == nil) or a regexp substitution. Rules live in ordered slices,
// never maps — application order is part of the contract (for
// example `\left` must be consumed before the `\le` rule runs, or
// `\left` is corrupted into `<=ft`).
type rewrite struct {
	re  *regexp.Regexp
	old string
	new string
}

func lit(old, new string) rewrite { return rewrite{old: old, new: new} }
func rex(pattern, repl string) rewrite {
	return rewrite{re: regexp.MustCompile(pattern), new: repl}
}

// unicodeRewrites maps Unicode math glyphs to ASCII equivalents or
// named tokens. Applied after whitespace removal and lowercasing.
var unicodeRewrites = []rewrite{
	lit("×", "*"),
	lit("⋅", "*"),
	lit("·", "*"),
	lit("∙", "*"),
	lit("÷", "/"),
	lit("−", "-"), // minus sign U+2212
	lit("–", "-"), // en dash
	lit("—", "-"), // em dash
	lit("≤", "<="),
	lit("≥", ">="),
	lit("≠", "!="),
	lit("≈", "~="),
	lit("±", "+-"),
	lit("√", "sqrt"),
	lit("∛", "cbrt"),
	lit("π", "pi"),
	lit("∞", "infinity"),
	lit("∑", "sum"),
	lit("°", "deg"),

	// Superscript digits become explicit exponents (x² → x^2).
	lit("⁰", "^0"),
	lit("¹", "^1"),
	lit("²", "^2"),
	lit("³", "^3"),
	lit("⁴", "^4"),
	lit("⁵", "^5"),
	lit("⁶", "^6"),
	lit("⁷", "^7"),
	lit("⁸", "^8"),
	lit("⁹", "^9"),

	// Vulgar fractions. Parenthesized so the fraction survives as a
	// unit inside a larger expression.
	lit("½", "(1/2)"),
	lit("⅓", "(1/3)"),
	lit("⅔", "(2/3)"),
	lit("¼", "(1/4)"),
	lit("¾", "(3/4)"),
	lit("⅕", "(1/5)"),
	lit("⅖", "(2/5)"),
	lit("⅗", "(3/5)"),
	lit("⅘", "(4/5)"),
	lit("⅙", "(1/6)"),
	lit("⅚", "(5/6)"),
	lit("⅛", "(1/8)"),
	lit("⅜", "(3/8)"),
	lit("⅝", "(5/8)"),
	lit("⅞", "(7/8)"),

	// Greek letters commonly used as variables. Input is lowercased
	// before these rules run, so the lowercase forms cover Δ, Σ and
	// the other capitals too.
	lit("α", "alpha"),
	lit("β", "beta"),
	lit("γ", "gamma"),
	lit("δ", "delta"),
	lit("θ", "theta"),
	lit("λ", "lambda"),
	lit("μ", "mu"),
	lit("σ", "sigma"),
	lit("φ", "phi"),
	lit("ω", "omega"),
}

// latexRewrites maps LaTeX macros to the plain-text intermediate
// language. Runs after unicodeRewrites on a lowercased,
// whitespace-free string.
var latexRewrites = []rewrite{
	// \left and \right must go first — see rewrite doc comment.
	lit(`\left`, ""),
	lit(`\right`, ""),

	lit(`\times`, "*"),
	lit(`\cdot`, "*"),
	lit(`\div`, "/"),

	lit(`\leq`, "<="),
	lit(`\le`, "<="),
	lit(`\geq`, ">="),
	lit(`\ge`, ">="),
	lit(`\neq`, "!="),
	lit(`\ne`, "!="),
	lit(`\approx`, "~="),
	lit(`\pm`, "+-"),

	lit(`\pi`, "pi"),
	lit(`\infty`, "infinity"),
	lit(`\degree`, "deg"),

	// Spacing macros are deleted outright.
	lit(`\,`, ""),
	lit(`\:`, ""),
	lit(`\;`, ""),
	lit(`\!`, ""),
	lit(`\quad`, ""),
	lit(`\qquad`, ""),

	// Trig / log / exp names drop the backslash.
	lit(`\arcsin`, "arcsin"),
	lit(`\arccos`, "arccos"),
	lit(`\arctan`, "arctan"),
	lit(`\sinh`, "sinh"),
	lit(`\cosh`, "cosh"),
	lit(`\tanh`, "tanh"),
	lit(`\sin`, "sin"),
	lit(`\cos`, "cos"),
	lit(`\tan`, "tan"),
	lit(`\csc`, "csc"),
	lit(`\sec`, "sec"),
	lit(`\cot`, "cot"),
	lit(`\log`, "log"),
	lit(`\ln`, "ln"),
	lit(`\exp`, "exp"),
}

// latexStructural holds the regexp-based LaTeX rules that rewrite
// brace groups. Nesting is handled by reapplying the whole slice
// until a fixed point (bounded — see normalize.go).
var latexStructural = []rewrite{
	// \frac{a}{b} and its display aliases → (a)/(b).
	rex(`\\[dtc]?frac\{([^{}]*)\}\{([^{}]*)\}`, "($1)/($2)"),

	// \sqrt[n]{x} → nthroot(x,n), then plain \sqrt{x} → sqrt(x).
	rex(`\\sqrt\[([^\]{}]*)\]\{([^{}]*)\}`, "nthroot($2,$1)"),
	rex(`\\sqrt\{([^{}]*)\}`, "sqrt($1)"),

	// Text wrappers unwrap their content.
	rex(`\\(?:text|mathrm|mathbf|mathit|operatorname)\{([^{}]*)\}`, "$1"),

	// Braced scripts become parenthesized scripts.
	rex(`\^\{([^{}]*)\}`, "^($1)"),
	rex(`_\{([^{}]*)\}`, "_($1)"),
}

// latexDelimiters strips math-mode delimiters and whatever LaTeX
// syntax remains after the structural rules ran.
var latexDelimiters = []rewrite{
	lit(`\[`, ""),
	lit(`\]`, ""),
	lit(`\(`, ""),
	lit(`\)`, ""),
	lit("$$", ""),
	lit("$", ""),
	lit(`\`, ""),
	lit("{", ""),
	lit("}", ""),
}

// applyRewrites runs rules once, in order.
func applyRewrites(s string, rules []rewrite) string {
	for _, r := range rules {
		if r.re != nil {
			s = r.re.ReplaceAllString(s, r.new)
		} else {
			s = strings.ReplaceAll(s, r.old, r.new)
		}
	}
	return s
}
