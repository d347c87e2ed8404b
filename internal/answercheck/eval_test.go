package answercheck

import (
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want float64
		ok   bool
	}{
		{"2+3", 5, true},
		{"2+3*4", 14, true},
		{"(2+3)*4", 20, true},
		{"10/4", 2.5, true},
		{"2^5", 32, true},
		{"2^3^2", 512, true}, // right-associative
		{"-2^2", -4, true},   // negation binds looser than power
		{"(-2)^2", 4, true},
		{"2(3+1)", 8, true},
		{"(2)(3)", 6, true},
		{"sqrt(16)", 4, true},
		{"sqrt(2)^2", 2, true},
		{"cbrt(27)", 3, true},
		{"nthroot(27,3)", 3, true},
		{"nthroot(-8,3)", -2, true},
		{"abs(-7)", 7, true},
		{"log(100)", 2, true},
		{"ln(e)", 1, true},
		{"exp(0)", 1, true},
		{"sin(0)", 0, true},
		{"cos(0)", 1, true},
		{"2pi", 2 * math.Pi, true},
		{"+5", 5, true},

		{"1/0", 0, false},
		{"sqrt(-1)", 0, false},
		{"nthroot(-8,2)", 0, false},
		{"log(0)", 0, false},
		{"ln(-1)", 0, false},
		{"2x", 0, false}, // unbound variable
		{"2+", 0, false},
		{"(2+3", 0, false},
		{"", 0, false},
		{"hello world", 0, false},
		{"2..5", 0, false},
	}
	for _, tt := range tests {
		got, ok := Evaluate(tt.expr)
		if ok != tt.ok {
			t.Errorf("Evaluate(%q) ok = %v, want %v", tt.expr, ok, tt.ok)
			continue
		}
		if ok && math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, tt.want)
		}
	}
}

func TestEvaluateWith(t *testing.T) {
	tests := []struct {
		expr string
		vars map[string]float64
		want float64
		ok   bool
	}{
		{"2x+3", map[string]float64{"x": 2}, 7, true},
		{"x^2-1", map[string]float64{"x": 3}, 8, true},
		{"xy", map[string]float64{"x": 2, "y": 3}, 6, true},
		{"x/y", map[string]float64{"x": 1, "y": 0}, 0, false},
		{"x+z", map[string]float64{"x": 1}, 0, false},
		{"pi*r^2", map[string]float64{"r": 2}, 4 * math.Pi, true},
	}
	for _, tt := range tests {
		got, ok := EvaluateWith(tt.expr, tt.vars)
		if ok != tt.ok {
			t.Errorf("EvaluateWith(%q, %v) ok = %v, want %v", tt.expr, tt.vars, ok, tt.ok)
			continue
		}
		if ok && math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("EvaluateWith(%q, %v) = %v, want %v", tt.expr, tt.vars, got, tt.want)
		}
	}
}

func TestFreeVariables(t *testing.T) {
	tests := []struct {
		expr string
		want []string
		ok   bool
	}{
		{"2x+3", []string{"x"}, true},
		{"xy", []string{"x", "y"}, true},
		{"2pi", nil, true},    // constants are not free
		{"sin(t)", []string{"t"}, true},
		{"2+3", nil, true},
		{"2+", nil, false},
	}
	for _, tt := range tests {
		vars, ok := freeVariables(tt.expr)
		if ok != tt.ok {
			t.Errorf("freeVariables(%q) ok = %v, want %v", tt.expr, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if len(vars) != len(tt.want) {
			t.Errorf("freeVariables(%q) = %v, want %v", tt.expr, vars, tt.want)
			continue
		}
		for _, name := range tt.want {
			if _, present := vars[name]; !present {
				t.Errorf("freeVariables(%q) missing %q", tt.expr, name)
			}
		}
	}
}

func TestEvaluateDeepNesting(t *testing.T) {
	// Pathological nesting must degrade to ok=false, never recurse
	// without bound.
	deep := ""
	for i := 0; i < 500; i++ {
		deep += "("
	}
	deep += "1"
	for i := 0; i < 500; i++ {
		deep += ")"
	}
	if _, ok := Evaluate(deep); ok {
		t.Error("expected deep nesting to be rejected")
	}
}
