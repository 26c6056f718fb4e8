package multipole

import (
	"errors"
	"fmt"
)

// ErrOrder reports a request for a term outside the supported expansion.
var ErrOrder = errors.New("unsupported multipole order")

// Validate checks that the order has a closed-form Legendre polynomial here.
func (l Order) Validate() error {
	if l < 0 || l >= NumTerms {
		return fmt.Errorf("l=%d: %w", int(l), ErrOrder)
	}
	return nil
}

// String returns the display name, or "Order(n)" outside the supported range.
func (l Order) String() string {
	if l.Validate() != nil {
		return fmt.Sprintf("Order(%d)", int(l))
	}
	return TermNames[l]
}

// Legendre evaluates the Legendre polynomial P_l(x) for l ≤ 3. Only the
// closed forms the expansion needs are carried; higher orders fail with
// ErrOrder.
func Legendre(l Order, x float64) (float64, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}
	return legendre(l, x), nil
}

func legendre(l Order, x float64) float64 {
	switch l {
	case Monopole:
		return 1
	case Dipole:
		return x
	case Quadrupole:
		return 0.5 * (3*x*x - 1)
	case Octupole:
		return 0.5 * (5*x*x*x - 3*x)
	}
	return 0
}
