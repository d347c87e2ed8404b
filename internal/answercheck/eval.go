package answercheck

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// The expression evaluator accepts the normalizer's intermediate
// language: + - * / ^, unary minus, parentheses, implicit
// multiplication (2x, 2(3), (1)(2)), function calls and the
// constants pi and e. Evaluation never panics; anything outside the
// language, an unbound variable or a non-finite result degrades to
// ok=false.

const maxParseDepth = 100

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokOp
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind  tokenKind
	value float64
	text  string
}

var errBadExpr = errors.New("unparseable expression")

// evalFuncs are the callable function names. Every function returns
// ok=false instead of NaN/Inf on domain errors.
var evalFuncs = map[string]func(args []float64) (float64, bool){
	"sqrt": func(a []float64) (float64, bool) {
		if len(a) != 1 || a[0] < 0 {
			return 0, false
		}
		return math.Sqrt(a[0]), true
	},
	"cbrt": func(a []float64) (float64, bool) {
		if len(a) != 1 {
			return 0, false
		}
		return math.Cbrt(a[0]), true
	},
	"nthroot": func(a []float64) (float64, bool) {
		if len(a) != 2 || a[1] == 0 {
			return 0, false
		}
		x, n := a[0], a[1]
		if x < 0 {
			// Odd integer roots of negatives are real.
			if n == math.Trunc(n) && int64(n)%2 != 0 {
				return -math.Pow(-x, 1/n), true
			}
			return 0, false
		}
		return math.Pow(x, 1/n), true
	},
	"abs":    wrap1(math.Abs),
	"sin":    wrap1(math.Sin),
	"cos":    wrap1(math.Cos),
	"tan":    wrap1(math.Tan),
	"arcsin": wrap1(math.Asin),
	"arccos": wrap1(math.Acos),
	"arctan": wrap1(math.Atan),
	"sinh":   wrap1(math.Sinh),
	"cosh":   wrap1(math.Cosh),
	"tanh":   wrap1(math.Tanh),
	"log": func(a []float64) (float64, bool) {
		if len(a) != 1 || a[0] <= 0 {
			return 0, false
		}
		return math.Log10(a[0]), true
	},
	"ln": func(a []float64) (float64, bool) {
		if len(a) != 1 || a[0] <= 0 {
			return 0, false
		}
		return math.Log(a[0]), true
	},
	"exp": wrap1(math.Exp),
}

var evalConsts = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

func wrap1(f func(float64) float64) func([]float64) (float64, bool) {
	return func(a []float64) (float64, bool) {
		if len(a) != 1 {
			return 0, false
		}
		v := f(a[0])
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	}
}

// ─── Lexer ──────────────────────────────────────────────────────────

func lex(s string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '.') {
				j++
			}
			v, err := strconv.ParseFloat(s[i:j], 64)
			if err != nil {
				return nil, errBadExpr
			}
			toks = append(toks, token{kind: tokNumber, value: v})
			i = j

		case c >= 'a' && c <= 'z':
			j := i
			for j < len(s) && s[j] >= 'a' && s[j] <= 'z' {
				j++
			}
			word := s[i:j]
			if _, isFunc := evalFuncs[word]; isFunc {
				toks = append(toks, token{kind: tokIdent, text: word})
			} else if _, isConst := evalConsts[word]; isConst {
				toks = append(toks, token{kind: tokIdent, text: word})
			} else {
				// Unknown letter runs are implicit products of
				// single-letter variables: xy means x*y.
				for _, r := range word {
					toks = append(toks, token{kind: tokIdent, text: string(r)})
				}
			}
			i = j

		case c == '+' || c == '-' || c == '*' || c == '/' || c == '^':
			toks = append(toks, token{kind: tokOp, text: string(c)})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen})
			i++
		case c == ',':
			toks = append(toks, token{kind: tokComma})
			i++
		default:
			return nil, errBadExpr
		}
	}
	if len(toks) == 0 {
		return nil, errBadExpr
	}
	return toks, nil
}

// ─── Parser (Pratt) ─────────────────────────────────────────────────

type nodeKind int

const (
	numNode nodeKind = iota
	varNode
	negNode
	binNode
	callNode
)

type node struct {
	kind nodeKind
	val  float64
	name string // variable, operator or function name
	args []*node
}

type parser struct {
	toks  []token
	pos   int
	depth int
}

func parseExpression(s string) (*node, error) {
	toks, err := lex(s)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.parse(0)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, errBadExpr
	}
	return n, nil
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

// Binding powers: addition 10, multiplication 20, unary minus 25,
// power 40 (right-associative).
func bindingPower(op string) int {
	switch op {
	case "+", "-":
		return 10
	case "*", "/":
		return 20
	case "^":
		return 40
	}
	return 0
}

func (p *parser) parse(minBP int) (*node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxParseDepth {
		return nil, errBadExpr
	}

	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		t, ok := p.peek()
		if !ok {
			break
		}

		switch t.kind {
		case tokOp:
			bp := bindingPower(t.text)
			if bp <= minBP {
				return left, nil
			}
			p.pos++
			// Power is right-associative.
			rhsBP := bp
			if t.text == "^" {
				rhsBP = bp - 1
			}
			right, err := p.parse(rhsBP)
			if err != nil {
				return nil, err
			}
			left = &node{kind: binNode, name: t.text, args: []*node{left, right}}

		case tokNumber, tokIdent, tokLParen:
			// Implicit multiplication: 2x, )(,  3(4).
			if bindingPower("*") <= minBP {
				return left, nil
			}
			right, err := p.parse(bindingPower("*"))
			if err != nil {
				return nil, err
			}
			left = &node{kind: binNode, name: "*", args: []*node{left, right}}

		default:
			return left, nil
		}
	}
	return left, nil
}

func (p *parser) parsePrimary() (*node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxParseDepth {
		return nil, errBadExpr
	}

	t, ok := p.next()
	if !ok {
		return nil, errBadExpr
	}

	switch t.kind {
	case tokNumber:
		return &node{kind: numNode, val: t.value}, nil

	case tokOp:
		switch t.text {
		case "-":
			operand, err := p.parse(25)
			if err != nil {
				return nil, err
			}
			return &node{kind: negNode, args: []*node{operand}}, nil
		case "+":
			return p.parsePrimary()
		}
		return nil, errBadExpr

	case tokLParen:
		inner, err := p.parse(0)
		if err != nil {
			return nil, err
		}
		if nt, ok := p.next(); !ok || nt.kind != tokRParen {
			return nil, errBadExpr
		}
		return inner, nil

	case tokIdent:
		if _, isFunc := evalFuncs[t.text]; isFunc {
			return p.parseCall(t.text)
		}
		return &node{kind: varNode, name: t.text}, nil
	}
	return nil, errBadExpr
}

func (p *parser) parseCall(name string) (*node, error) {
	if nt, ok := p.next(); !ok || nt.kind != tokLParen {
		return nil, errBadExpr
	}
	var args []*node
	for {
		arg, err := p.parse(0)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		nt, ok := p.next()
		if !ok {
			return nil, errBadExpr
		}
		if nt.kind == tokRParen {
			break
		}
		if nt.kind != tokComma {
			return nil, errBadExpr
		}
	}
	return &node{kind: callNode, name: name, args: args}, nil
}

// ─── Evaluation ─────────────────────────────────────────────────────

func evalNode(n *node, vars map[string]float64) (float64, bool) {
	switch n.kind {
	case numNode:
		return n.val, true

	case varNode:
		if v, ok := evalConsts[n.name]; ok {
			return v, true
		}
		if v, ok := vars[n.name]; ok {
			return v, true
		}
		return 0, false

	case negNode:
		v, ok := evalNode(n.args[0], vars)
		return -v, ok

	case binNode:
		a, okA := evalNode(n.args[0], vars)
		b, okB := evalNode(n.args[1], vars)
		if !okA || !okB {
			return 0, false
		}
		var v float64
		switch n.name {
		case "+":
			v = a + b
		case "-":
			v = a - b
		case "*":
			v = a * b
		case "/":
			if b == 0 {
				return 0, false
			}
			v = a / b
		case "^":
			v = math.Pow(a, b)
		default:
			return 0, false
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true

	case callNode:
		args := make([]float64, len(n.args))
		for i, a := range n.args {
			v, ok := evalNode(a, vars)
			if !ok {
				return 0, false
			}
			args[i] = v
		}
		f := evalFuncs[n.name]
		return f(args)
	}
	return 0, false
}

func collectVars(n *node, into map[string]struct{}) {
	if n.kind == varNode {
		if _, isConst := evalConsts[n.name]; !isConst {
			into[n.name] = struct{}{}
		}
		return
	}
	for _, a := range n.args {
		collectVars(a, into)
	}
}

// Evaluate evaluates a normalized arithmetic expression to a number.
// Expressions with free variables, syntax errors or non-finite
// results return ok=false.
func Evaluate(expr string) (float64, bool) {
	return EvaluateWith(expr, nil)
}

// EvaluateWith evaluates expr with the given variable bindings.
func EvaluateWith(expr string, vars map[string]float64) (float64, bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, false
	}
	n, err := parseExpression(expr)
	if err != nil {
		return 0, false
	}
	return evalNode(n, vars)
}

// freeVariables returns the unbound variable names of expr, or
// ok=false when expr does not parse.
func freeVariables(expr string) (map[string]struct{}, bool) {
	n, err := parseExpression(expr)
	if err != nil {
		return nil, false
	}
	vars := make(map[string]struct{})
	collectVars(n, vars)
	return vars, true
}
