package multipole

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ReferenceScale fixes the color scale shared by every panel: the largest
// finite |V| across the four terms evaluated at coeff and across their
// superposition. A degenerate bound falls back to ScaleFloor, so the result
// is always strictly positive.
func ReferenceScale(g *Grid, coeff float64) float64 {
	var w Weights
	for l := range w {
		w[l] = coeff
	}
	terms, total, _ := Evaluate(w, g) // the four fixed orders always validate

	bound := 0.0
	for _, f := range terms {
		bound = math.Max(bound, MaxAbsFinite(f))
	}
	bound = math.Max(bound, MaxAbsFinite(total))

	if bound <= FloorThreshold {
		return ScaleFloor
	}
	return bound
}

// MaxAbsFinite returns the largest finite |v| in the field, 0 if none exist.
func MaxAbsFinite(m *mat.Dense) float64 {
	rows, cols := m.Dims()
	top := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := math.Abs(m.At(i, j))
			if !math.IsNaN(v) && !math.IsInf(v, 0) && v > top {
				top = v
			}
		}
	}
	return top
}
