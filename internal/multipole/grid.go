package multipole

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// GridConfig holds sampling parameters for the square evaluation domain.
type GridConfig struct {
	Points int     // Samples per axis
	RMax   float64 // Half-width of the square [-RMax, RMax]²
	RMin   float64 // Radius of the masked singular region
}

// DefaultGridConfig returns the full-resolution display grid.
func DefaultGridConfig() GridConfig {
	return GridConfig{Points: GridPoints, RMax: RMax, RMin: RMin}
}

// SmallGridConfig returns a coarse grid for rapid iteration and tests.
func SmallGridConfig() GridConfig {
	return GridConfig{Points: 33, RMax: RMax, RMin: RMin}
}

// Grid is the sampled 2D slice: meshgrid coordinates plus the derived radius
// and cosθ fields. Row i fixes y, column j fixes x, both axes ascending.
type Grid struct {
	Cfg GridConfig
	X   *mat.Dense // x coordinate at (i, j)
	Y   *mat.Dense // y coordinate at (i, j)
	R   *mat.Dense // distance from the origin
	Cos *mat.Dense // cosθ = y/r, zero where r = 0
}

// NewGrid samples the domain described by cfg.
func NewGrid(cfg GridConfig) (*Grid, error) {
	if cfg.Points < 2 {
		return nil, fmt.Errorf("grid needs at least 2 points per axis, got %d", cfg.Points)
	}
	if cfg.RMin <= 0 || cfg.RMax <= cfg.RMin {
		return nil, fmt.Errorf("grid radii out of order: rmin=%g rmax=%g", cfg.RMin, cfg.RMax)
	}

	n := cfg.Points
	axis := make([]float64, n)
	floats.Span(axis, -cfg.RMax, cfg.RMax)

	g := &Grid{
		Cfg: cfg,
		X:   mat.NewDense(n, n, nil),
		Y:   mat.NewDense(n, n, nil),
		R:   mat.NewDense(n, n, nil),
		Cos: mat.NewDense(n, n, nil),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, y := axis[j], axis[i]
			r := math.Hypot(x, y)
			g.X.Set(i, j, x)
			g.Y.Set(i, j, y)
			g.R.Set(i, j, r)
			if r > 0 {
				g.Cos.Set(i, j, y/r)
			}
		}
	}
	return g, nil
}

// Masked reports whether the point lies inside the singular region.
func (g *Grid) Masked(i, j int) bool {
	return g.R.At(i, j) < g.Cfg.RMin
}
