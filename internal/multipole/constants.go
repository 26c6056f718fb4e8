// Package multipole evaluates electrostatic multipole potentials on a 2D
// slice through the symmetry axis. Every term is the exterior solution
// P_l(cosθ)/r^(l+1), so the whole field reduces to closed-form evaluation
// over a fixed grid.
package multipole

// Order indexes a term of the multipole expansion by its Legendre degree l.
type Order int

// The four supported expansion terms.
const (
	Monopole   Order = iota // l=0, falls off as 1/r
	Dipole                  // l=1, falls off as 1/r²
	Quadrupole              // l=2, falls off as 1/r³
	Octupole                // l=3, falls off as 1/r⁴
)

// NumTerms is the number of expansion terms carried.
const NumTerms = 4

// TermNames maps each order to its display name.
var TermNames = [NumTerms]string{"Monopole", "Dipole", "Quadrupole", "Octupole"}

// Grid defaults: a 260×260 sampling of the square [-3, 3]² with a small
// disc around the origin masked out as singular.
const (
	GridPoints = 260
	RMax       = 3.0
	RMin       = 0.1
)

// Slider range shared by every term weight.
const (
	WeightMin = -2.0
	WeightMax = 2.0
)

// ReferenceCoeff is the coefficient every term is evaluated at, once, to fix
// the color scale shared across panels. Smaller values saturate the panels
// sooner.
const ReferenceCoeff = 0.0003

// A computed color-scale bound at or below FloorThreshold is replaced by
// ScaleFloor so an all-zero field still renders.
const (
	FloorThreshold = 1e-6
	ScaleFloor     = 1.0
)

// DefaultWeights are the slider positions at startup.
var DefaultWeights = Weights{1.0, 0.6, 0.4, 0.3}
