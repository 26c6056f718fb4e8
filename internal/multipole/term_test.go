package multipole

import (
	"errors"
	"math"
	"testing"
)

// testGrid returns a 9×9 grid over [-4, 4]² whose axis values are exact
// integers, with the origin sample masked.
func testGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid(GridConfig{Points: 9, RMax: 4, RMin: 0.5})
	if err != nil {
		t.Fatalf("Unexpected error building grid: %v", err)
	}
	return g
}

// TestTermValues verifies single-point potentials against hand-computed
// numbers at (x=3, y=4), where r=5 and cosθ=0.8.
func TestTermValues(t *testing.T) {
	g := testGrid(t)
	const i, j = 8, 7 // y=4, x=3

	tests := []struct {
		name     string
		l        Order
		coeff    float64
		expected float64
	}{
		{name: "monopole", l: Monopole, coeff: 2, expected: 0.4},
		{name: "dipole", l: Dipole, coeff: 2, expected: 0.064},
		{name: "quadrupole", l: Quadrupole, coeff: 2, expected: 0.00736},
		{name: "octupole", l: Octupole, coeff: 2, expected: 0.000256},
		{name: "negative coefficient", l: Monopole, coeff: -2, expected: -0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Term(tt.l, tt.coeff, g)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := v.At(i, j); !approxEqual(got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// TestTermRadialFalloff verifies each order falls off as 1/r^(l+1) along
// the axis, where cosθ stays fixed at 1.
func TestTermRadialFalloff(t *testing.T) {
	g := testGrid(t)
	// Straight up the y axis: (y=1, x=0) and (y=2, x=0).
	const iNear, iFar, j = 5, 6, 4

	for l := Monopole; l <= Octupole; l++ {
		v, err := Term(l, 1.0, g)
		if err != nil {
			t.Fatalf("Unexpected error for %v: %v", l, err)
		}
		ratio := v.At(iNear, j) / v.At(iFar, j)
		want := math.Pow(2, float64(l+1))
		if !approxEqual(ratio, want, 1e-9) {
			t.Errorf("%v: Expected falloff ratio %v, got %v", l, want, ratio)
		}
	}
}

// TestTermDipoleAntisymmetry verifies the dipole potential flips sign under
// y → -y.
func TestTermDipoleAntisymmetry(t *testing.T) {
	g := testGrid(t)
	v, err := Term(Dipole, 0.6, g)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// (y=3, x=2) against (y=-3, x=2).
	up, down := v.At(7, 6), v.At(1, 6)
	if !approxEqual(up, -down, 1e-12) {
		t.Errorf("Expected V(x,-y) = -V(x,y), got %v and %v", up, down)
	}
}

// TestTermZeroCoefficient verifies a zero weight produces an identically
// zero field outside the mask, for every order.
func TestTermZeroCoefficient(t *testing.T) {
	g := testGrid(t)
	for l := Monopole; l <= Octupole; l++ {
		v, err := Term(l, 0, g)
		if err != nil {
			t.Fatalf("Unexpected error for %v: %v", l, err)
		}
		n := g.Cfg.Points
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				got := v.At(i, j)
				if g.Masked(i, j) {
					if !math.IsNaN(got) {
						t.Fatalf("%v: Expected NaN at masked (%d,%d), got %v", l, i, j, got)
					}
					continue
				}
				if got != 0 {
					t.Fatalf("%v: Expected 0 at (%d,%d), got %v", l, i, j, got)
				}
			}
		}
	}
}

// TestTermMaskUndefined verifies masked points are NaN regardless of order
// or coefficient.
func TestTermMaskUndefined(t *testing.T) {
	g := testGrid(t)
	for l := Monopole; l <= Octupole; l++ {
		for _, coeff := range []float64{0, 1, -0.25, ReferenceCoeff} {
			v, err := Term(l, coeff, g)
			if err != nil {
				t.Fatalf("Unexpected error for %v: %v", l, err)
			}
			if got := v.At(4, 4); !math.IsNaN(got) { // origin, r=0
				t.Errorf("%v coeff=%v: Expected NaN at origin, got %v", l, coeff, got)
			}
		}
	}
}

// TestTermInvalidOrder verifies unsupported orders are rejected.
func TestTermInvalidOrder(t *testing.T) {
	g := testGrid(t)
	v, err := Term(Order(4), 1.0, g)
	if err == nil {
		t.Fatal("Expected error for order 4, got none")
	}
	if !errors.Is(err, ErrOrder) {
		t.Errorf("Expected ErrOrder, got %v", err)
	}
	if v != nil {
		t.Errorf("Expected nil field on error, got %v", v)
	}
}

// TestEvaluateTotal verifies the superposition equals the element-wise sum
// of the four term fields.
func TestEvaluateTotal(t *testing.T) {
	g := testGrid(t)
	w := Weights{1.0, -0.6, 0.4, 1.9}

	terms, total, err := Evaluate(w, g)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	n := g.Cfg.Points
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := terms[0].At(i, j) + terms[1].At(i, j) + terms[2].At(i, j) + terms[3].At(i, j)
			got := total.At(i, j)
			if math.IsNaN(sum) {
				if !math.IsNaN(got) {
					t.Fatalf("Expected NaN total at (%d,%d), got %v", i, j, got)
				}
				continue
			}
			if got != sum {
				t.Fatalf("Expected total %v at (%d,%d), got %v", sum, i, j, got)
			}
		}
	}
}

// TestSuperposeNaNPropagation verifies an undefined sample poisons the sum.
func TestSuperposeNaNPropagation(t *testing.T) {
	g := testGrid(t)
	a, _ := Term(Monopole, 1, g)
	b, _ := Term(Dipole, 0, g) // zero field, NaN on the mask

	total := Superpose(a, b)
	if got := total.At(4, 4); !math.IsNaN(got) {
		t.Errorf("Expected NaN at masked origin, got %v", got)
	}
	if got, want := total.At(8, 7), a.At(8, 7)+b.At(8, 7); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

// TestSuperposeEmpty verifies summing nothing yields nil.
func TestSuperposeEmpty(t *testing.T) {
	if got := Superpose(); got != nil {
		t.Errorf("Expected nil, got %v", got)
	}
}
