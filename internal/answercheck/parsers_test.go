package answercheck

import (
	"math"
	"testing"
)

func TestParseFraction(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1/2", 0.5, true},
		{"-3/4", -0.75, true},
		{"3:4", 0.75, true},
		{"(1)/(2)", 0.5, true},
		{"(1/2)", 0.5, true},
		{"1/0", 0, false},
		{"1.5/2", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseFraction(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseFraction(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseSimplifiedFraction(t *testing.T) {
	tests := []struct {
		in       string
		num, den int64
		ok       bool
	}{
		{"2/4", 1, 2, true},
		{"1/2", 1, 2, true},
		{"-2/4", -1, 2, true},
		{"2/-4", -1, 2, true},
		{"6/3", 2, 1, true},
		{"0/5", 0, 1, true},
		{"1/0", 0, 0, false},
		{"0.5/2", 0, 0, false},
	}
	for _, tt := range tests {
		num, den, ok := ParseSimplifiedFraction(tt.in)
		if ok != tt.ok || num != tt.num || den != tt.den {
			t.Errorf("ParseSimplifiedFraction(%q) = %d/%d, %v; want %d/%d, %v",
				tt.in, num, den, ok, tt.num, tt.den, tt.ok)
		}
	}
}

func TestParseMixedNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1 1/2", 1.5, true},
		{"1-1/2", 1.5, true},
		{"2 3/4", 2.75, true},
		{"-1 1/2", -1.5, true},
		{"-2 1/4", -2.25, true},
		{"1 1/0", 0, false},
		{"1/2", 0, false},
		{"11/2", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseMixedNumber(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseMixedNumber(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseScientific(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"3.2e5", 320000, true},
		{"3.2e-2", 0.032, true},
		{"3.2*10^5", 320000, true},
		{"3.2x10^5", 320000, true},
		{"3.2*10^(-2)", 0.032, true},
		{"-1x10^3", -1000, true},
		{"3.2", 0, false},
		{"e5", 0, false},
		{"3.2*2^5", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseScientific(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseScientific(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ParseScientific(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"50%", 0.5, true},
		{"12.5%", 0.125, true},
		{"-10%", -0.1, true},
		{"50", 0, false},
		{"%", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParsePercent(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParsePercent(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{12, 8, 4},
		{8, 12, 4},
		{7, 13, 1},
		{0, 5, 5},
		{5, 0, 5},
	}
	for _, tt := range tests {
		if got := gcd(tt.a, tt.b); got != tt.want {
			t.Errorf("gcd(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestUnwrapParens(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(1/2)", "1/2"},
		{"1/2", "1/2"},
		{"(1)(2)", "(1)(2)"}, // not one outer pair
		{"()", ""},
		{"(", "("},
	}
	for _, tt := range tests {
		if got := unwrapParens(tt.in); got != tt.want {
			t.Errorf("unwrapParens(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
