package render

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/quantaphy/multipole/internal/multipole"
)

// TestColormapUndefined verifies NaN samples take the panel face color.
func TestColormapUndefined(t *testing.T) {
	cm := NewColormap()
	if got := cm.At(math.NaN(), 1); got != Background {
		t.Errorf("Expected background for NaN, got %v", got)
	}
}

// TestColormapEndpoints verifies the diverging ramp: blue at the negative
// end, near-white at zero, red at the positive end.
func TestColormapEndpoints(t *testing.T) {
	cm := NewColormap()

	neg := cm.At(-1, 1)
	if neg.B <= neg.R {
		t.Errorf("Expected blue-dominant negative end, got %v", neg)
	}

	pos := cm.At(1, 1)
	if pos.R <= pos.B {
		t.Errorf("Expected red-dominant positive end, got %v", pos)
	}

	mid := cm.At(0, 1)
	if mid.R < 0xe0 || mid.G < 0xe0 || mid.B < 0xe0 {
		t.Errorf("Expected near-white midpoint, got %v", mid)
	}
}

// TestColormapClamps verifies out-of-range values clamp to the endpoints.
func TestColormapClamps(t *testing.T) {
	cm := NewColormap()
	if got, want := cm.At(-50, 1), cm.At(-1, 1); got != want {
		t.Errorf("Expected clamp to %v, got %v", want, got)
	}
	if got, want := cm.At(50, 1), cm.At(1, 1); got != want {
		t.Errorf("Expected clamp to %v, got %v", want, got)
	}
}

// TestColormapScaleInvariance verifies the mapping depends only on v/vmax.
func TestColormapScaleInvariance(t *testing.T) {
	cm := NewColormap()
	if got, want := cm.At(0.25, 0.5), cm.At(50, 100); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

// TestAutoScale verifies the per-field fallback bound.
func TestAutoScale(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		expected float64
	}{
		{name: "plain maximum", data: []float64{0.1, -0.5, 0.3, 0.2}, expected: 0.5},
		{name: "ignores NaN", data: []float64{math.NaN(), -0.5, 0.3, math.NaN()}, expected: 0.5},
		{name: "all undefined", data: []float64{math.NaN(), math.NaN(), math.NaN(), math.NaN()}, expected: multipole.ScaleFloor},
		{name: "degenerate tiny field", data: []float64{1e-9, -1e-9, 0, 0}, expected: multipole.ScaleFloor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := mat.NewDense(2, 2, tt.data)
			if got := AutoScale(field); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
