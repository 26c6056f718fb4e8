// Package render rasterizes the five-panel figure into a plain RGBA canvas.
// The window shell and the PNG snapshot both draw from the same pixels, so
// what is saved is exactly what is on screen.
package render

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/mat"

	"github.com/quantaphy/multipole/internal/multipole"
)

// Background is the figure and panel face color.
var Background = color.RGBA{0x05, 0x05, 0x05, 0xff}

// Colormap is a diverging blue–white–red lookup table, symmetric about
// zero: red for positive potential, blue for negative. Undefined (NaN)
// samples map to the panel face color.
type Colormap struct {
	lut [256]color.RGBA
}

// NewColormap builds the table by Lab-space blending between the endpoint
// hues, which keeps the ramp perceptually even.
func NewColormap() *Colormap {
	neg, _ := colorful.Hex("#053061") // deep blue, most negative
	mid, _ := colorful.Hex("#f7f7f7") // near white at zero
	pos, _ := colorful.Hex("#67001f") // deep red, most positive

	cm := &Colormap{}
	for i := range cm.lut {
		t := float64(i) / float64(len(cm.lut)-1)
		var c colorful.Color
		if t < 0.5 {
			c = neg.BlendLab(mid, t*2)
		} else {
			c = mid.BlendLab(pos, (t-0.5)*2)
		}
		r, g, b := c.Clamped().RGB255()
		cm.lut[i] = color.RGBA{r, g, b, 0xff}
	}
	return cm
}

// At maps v on the symmetric range [-vmax, vmax] to a color, clamping
// values outside the range to the endpoints.
func (cm *Colormap) At(v, vmax float64) color.RGBA {
	if math.IsNaN(v) {
		return Background
	}
	t := (v + vmax) / (2 * vmax)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return cm.lut[int(t*float64(len(cm.lut)-1)+0.5)]
}

// AutoScale picks a per-field color bound when no shared scale is supplied:
// the largest finite |v|, with degenerate fields falling back to the floor
// so an all-zero or all-undefined panel still renders.
func AutoScale(field *mat.Dense) float64 {
	top := multipole.MaxAbsFinite(field)
	if top <= multipole.FloorThreshold {
		return multipole.ScaleFloor
	}
	return top
}
