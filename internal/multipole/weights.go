package multipole

// Weights holds the per-term coefficients, indexed by Order.
type Weights [NumTerms]float64

// Clamp bounds every weight to the slider range.
func (w Weights) Clamp() Weights {
	for i, v := range w {
		if v < WeightMin {
			w[i] = WeightMin
		} else if v > WeightMax {
			w[i] = WeightMax
		}
	}
	return w
}

// WithTerm returns a copy of w with the weight for l replaced and clamped.
// An out-of-range order leaves the weights untouched.
func (w Weights) WithTerm(l Order, v float64) Weights {
	if l.Validate() != nil {
		return w
	}
	w[l] = v
	return w.Clamp()
}
