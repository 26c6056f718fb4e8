package multipole

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Term evaluates a single multipole term over the grid. Each unmasked point
// is coeff · P_l(cosθ) · r^-(l+1); masked points are NaN. A zero coefficient
// skips the radial math and yields a zero field outside the mask.
func Term(l Order, coeff float64, g *Grid) (*mat.Dense, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}

	n := g.Cfg.Points
	v := mat.NewDense(n, n, nil)
	v.Apply(func(i, j int, r float64) float64 {
		if r < g.Cfg.RMin {
			return math.NaN()
		}
		if coeff == 0 {
			return 0
		}
		return coeff * legendre(l, g.Cos.At(i, j)) * math.Pow(r, -float64(l+1))
	}, g.R)
	return v, nil
}

// Superpose sums term fields element-wise. NaN at masked points carries
// through the sum.
func Superpose(fields ...*mat.Dense) *mat.Dense {
	if len(fields) == 0 {
		return nil
	}
	total := mat.DenseCopyOf(fields[0])
	for _, f := range fields[1:] {
		total.Add(total, f)
	}
	return total
}

// Evaluate computes the four term fields at the given weights plus their
// superposition. This is the full recompute performed on every redraw.
func Evaluate(w Weights, g *Grid) ([NumTerms]*mat.Dense, *mat.Dense, error) {
	var terms [NumTerms]*mat.Dense
	for l := Monopole; l <= Octupole; l++ {
		f, err := Term(l, w[l], g)
		if err != nil {
			return terms, nil, err
		}
		terms[l] = f
	}
	return terms, Superpose(terms[:]...), nil
}
