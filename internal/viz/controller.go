// Package viz hosts the interactive figure: an ebiten window shell over the
// CPU-rendered canvas, slider input, and PNG snapshots.
package viz

import "github.com/quantaphy/multipole/internal/multipole"

// Controller owns the weight vector between events. Updates are pure value
// transitions; the dirty flag tells the app a redraw is due.
type Controller struct {
	weights multipole.Weights
	dirty   bool
}

// NewController starts at the given weights with a redraw pending.
func NewController(start multipole.Weights) *Controller {
	return &Controller{weights: start.Clamp(), dirty: true}
}

// Weights returns the current weight vector.
func (c *Controller) Weights() multipole.Weights {
	return c.weights
}

// SetWeight moves one term's weight, clamped to the slider range. Marks a
// redraw only when the value actually changes.
func (c *Controller) SetWeight(l multipole.Order, v float64) {
	next := c.weights.WithTerm(l, v)
	if next != c.weights {
		c.weights = next
		c.dirty = true
	}
}

// Reset restores the startup defaults.
func (c *Controller) Reset() {
	if c.weights != multipole.DefaultWeights {
		c.weights = multipole.DefaultWeights
		c.dirty = true
	}
}

// TakeDirty reports whether a redraw is pending and clears the flag.
func (c *Controller) TakeDirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}
