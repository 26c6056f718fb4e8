package viz

import (
	"testing"

	"github.com/quantaphy/multipole/internal/multipole"
)

// TestControllerStartsDirty verifies the first frame always renders.
func TestControllerStartsDirty(t *testing.T) {
	c := NewController(multipole.DefaultWeights)
	if !c.TakeDirty() {
		t.Error("Expected a pending redraw after construction")
	}
	if c.TakeDirty() {
		t.Error("Expected TakeDirty to clear the flag")
	}
}

// TestControllerStartClamped verifies out-of-range startup weights are
// pulled onto the slider range.
func TestControllerStartClamped(t *testing.T) {
	c := NewController(multipole.Weights{5, -5, 0.5, 0})
	want := multipole.Weights{multipole.WeightMax, multipole.WeightMin, 0.5, 0}
	if got := c.Weights(); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

// TestControllerSetWeight verifies updates land on the right term and only
// real changes mark a redraw.
func TestControllerSetWeight(t *testing.T) {
	c := NewController(multipole.DefaultWeights)
	c.TakeDirty()

	c.SetWeight(multipole.Dipole, 1.5)
	if got := c.Weights()[multipole.Dipole]; got != 1.5 {
		t.Errorf("Expected dipole weight 1.5, got %v", got)
	}
	if !c.TakeDirty() {
		t.Error("Expected a redraw after a weight change")
	}

	c.SetWeight(multipole.Dipole, 1.5)
	if c.TakeDirty() {
		t.Error("Expected no redraw when the value does not change")
	}
}

// TestControllerSetWeightClamps verifies values past the slider ends pin to
// the range.
func TestControllerSetWeightClamps(t *testing.T) {
	c := NewController(multipole.DefaultWeights)

	c.SetWeight(multipole.Monopole, 7.0)
	if got := c.Weights()[multipole.Monopole]; got != multipole.WeightMax {
		t.Errorf("Expected clamp to %v, got %v", multipole.WeightMax, got)
	}
	c.SetWeight(multipole.Octupole, -7.0)
	if got := c.Weights()[multipole.Octupole]; got != multipole.WeightMin {
		t.Errorf("Expected clamp to %v, got %v", multipole.WeightMin, got)
	}
}

// TestControllerSetWeightInvalidOrder verifies unknown orders are ignored.
func TestControllerSetWeightInvalidOrder(t *testing.T) {
	c := NewController(multipole.DefaultWeights)
	c.TakeDirty()

	c.SetWeight(multipole.Order(9), 1.0)
	if got := c.Weights(); got != multipole.DefaultWeights {
		t.Errorf("Expected weights unchanged, got %v", got)
	}
	if c.TakeDirty() {
		t.Error("Expected no redraw for an ignored update")
	}
}

// TestControllerReset verifies R-key semantics: back to defaults, redraw
// only if something moved.
func TestControllerReset(t *testing.T) {
	c := NewController(multipole.DefaultWeights)
	c.TakeDirty()

	c.SetWeight(multipole.Quadrupole, -1.0)
	c.TakeDirty()

	c.Reset()
	if got := c.Weights(); got != multipole.DefaultWeights {
		t.Errorf("Expected default weights after reset, got %v", got)
	}
	if !c.TakeDirty() {
		t.Error("Expected a redraw after reset")
	}

	c.Reset()
	if c.TakeDirty() {
		t.Error("Expected no redraw when already at defaults")
	}
}
