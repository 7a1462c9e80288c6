package fuzzy

import (
	"math"
	"testing"
)

func TestAggregations(t *testing.T) {
	degrees := []float64{0.2, 0.8, 0.5}

	tests := []struct {
		name string
		agg  Aggregation
		want float64
	}{
		{"Mean", Mean, 0.5},
		{"Min", Min, 0.2},
		{"Max", Max, 0.8},
		{"Product", Product, 0.08},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.agg(degrees); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("%s(%v) = %v, want %v", tt.name, degrees, got, tt.want)
			}
		})
	}
}

func TestAggregations_Empty(t *testing.T) {
	for _, agg := range []Aggregation{Mean, Min, Max, Product} {
		if got := agg(nil); got != 0 {
			t.Errorf("aggregation of empty vector = %v, want 0", got)
		}
	}
}

func TestOWA(t *testing.T) {
	// Weights all on the largest degree reduce OWA to Max.
	owa := OWA([]float64{1, 0, 0})
	degrees := []float64{0.3, 0.9, 0.1}
	if got := owa(degrees); math.Abs(got-0.9) > 1e-12 {
		t.Errorf("OWA([1,0,0]) = %v, want 0.9", got)
	}

	// Uniform weights reduce OWA to Mean.
	owa = OWA([]float64{1.0 / 3, 1.0 / 3, 1.0 / 3})
	want := Mean(degrees)
	if got := owa(degrees); math.Abs(got-want) > 1e-12 {
		t.Errorf("uniform OWA = %v, want %v", got, want)
	}
}
