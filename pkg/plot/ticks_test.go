package plot

import (
	"math"
	"testing"
)

func TestNiceTicks(t *testing.T) {
	tests := []struct {
		name     string
		lo, hi   float64
		max      int
		want     []float64
		wantStep float64
	}{
		{"unit", 0, 1, 6, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}, 0.2},
		{"zero to ten", 0, 10, 6, []float64{0, 2, 4, 6, 8, 10}, 2},
		{"symmetric", -1, 1, 5, []float64{-1, -0.5, 0, 0.5, 1}, 0.5},
		{"reversed input", 10, 0, 6, []float64{0, 2, 4, 6, 8, 10}, 2},
		{"offset", 0.3, 2.9, 4, []float64{1, 2}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, step := niceTicks(tt.lo, tt.hi, tt.max)
			if math.Abs(step-tt.wantStep) > 1e-12 {
				t.Errorf("step = %v, want %v", step, tt.wantStep)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ticks = %v, want %v", got, tt.want)
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("ticks[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNiceTicksDegenerate(t *testing.T) {
	if got, _ := niceTicks(1, 1, 5); got != nil {
		t.Errorf("equal bounds should give no ticks, got %v", got)
	}
	if got, _ := niceTicks(math.NaN(), 1, 5); got != nil {
		t.Errorf("NaN bound should give no ticks, got %v", got)
	}
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		v, step float64
		want    string
	}{
		{2, 1, "2"},
		{0.4, 0.2, "0.4"},
		{-0.5, 0.5, "-0.5"},
		{0.25, 0.25, "0.25"},
		{1e-17, 0.2, "0.0"},
		{1500, 500, "1500"},
	}
	for _, tt := range tests {
		if got := formatTick(tt.v, tt.step); got != tt.want {
			t.Errorf("formatTick(%v, %v) = %q, want %q", tt.v, tt.step, got, tt.want)
		}
	}
}
