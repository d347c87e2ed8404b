package answercheck

import "testing"

func TestEquivalent(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical after normalization", "2x + 3", "2x+3", true},
		{"commuted sum", "2x+3", "3+2x", true},
		{"distributed product", "2(x+1)", "2x+2", true},
		{"squared binomial", "(x+1)^2", "x^2+2x+1", true},
		{"variable-free arithmetic", "2+2", "4", true},
		{"fraction vs decimal", "1/2", "0.5", true},
		{"different constant", "2x+3", "2x+4", false},
		{"different slope", "2x+3", "3x+3", false},
		{"different variable", "2x+3", "2y+3", false},
		{"commuted two-variable sum", "x+y", "y+x", true},
		{"commuted two-variable product", "xy", "yx", true},
		{"distributed two-variable product", "2(x+y)", "2x+2y", true},
		{"swapped difference", "x-y", "y-x", false},
		{"swapped coefficients", "x+2y", "2x+y", false},
		{"extra variable", "x+y", "2x", false},
		{"domain mismatch", "(x^2-1)/(x-1)", "x+1", false},
		{"empty side", "", "2x+3", false},
		{"unparseable side", "@@", "2x+3", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equivalent(tt.a, tt.b); got != tt.want {
				t.Errorf("Equivalent(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEquivalentSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"2x+3", "3+2x"},
		{"2x+3", "2x+4"},
		{"(x+1)^2", "x^2+2x+1"},
		{"x+y", "y+x"},
		{"x-y", "y-x"},
	}
	for _, p := range pairs {
		if Equivalent(p[0], p[1]) != Equivalent(p[1], p[0]) {
			t.Errorf("Equivalent not symmetric for %q, %q", p[0], p[1])
		}
	}
}
