package answercheck

import "testing"

func TestSmartTolerance(t *testing.T) {
	tests := []struct {
		reference float64
		want      float64
	}{
		{0, 0.001},
		{0.5, 0.001},
		{-0.5, 0.001},
		{1, 0.01},
		{5, 0.01},
		{-9.99, 0.01},
		{10, 0.05},
		{50, 0.05},
		{99.9, 0.05},
		{100, 0.1},
		{1000, 1},
		{-1000, 1},
	}
	for _, tt := range tests {
		if got := SmartTolerance(tt.reference); got != tt.want {
			t.Errorf("SmartTolerance(%v) = %v, want %v", tt.reference, got, tt.want)
		}
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name          string
		user, correct float64
		tol           float64
		want          bool
	}{
		{"exact", 50, 50, 0, true},
		{"inside band", 50.05, 50, 0, true},
		{"outside band", 50.06, 50, 0, false},
		{"small magnitude inside", 0.5005, 0.5, 0, true},
		{"small magnitude outside", 0.502, 0.5, 0, false},
		{"relative band large", 1000.9, 1000, 0, true},
		{"relative band large outside", 1001.1, 1000, 0, false},
		{"explicit override", 50.4, 50, 0.5, true},
		{"explicit override outside", 50.6, 50, 0.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := withinTolerance(tt.user, tt.correct, tt.tol); got != tt.want {
				t.Errorf("withinTolerance(%v, %v, %v) = %v, want %v",
					tt.user, tt.correct, tt.tol, got, tt.want)
			}
		})
	}
}
