package viz

import (
	"image"

	"github.com/quantaphy/multipole/internal/multipole"
)

// Slider is one horizontal control bound to a term weight. Geometry comes
// from the figure layout; interaction state is just the drag flag.
type Slider struct {
	Order multipole.Order
	Track image.Rectangle
	drag  bool
}

// ValueAt maps a cursor x position to a weight on the slider range. Cursor
// positions past either end pin to that end.
func (s *Slider) ValueAt(x int) float64 {
	if s.Track.Dx() == 0 {
		return multipole.WeightMin
	}
	frac := float64(x-s.Track.Min.X) / float64(s.Track.Dx())
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	return multipole.WeightMin + frac*(multipole.WeightMax-multipole.WeightMin)
}

// Grab starts a drag if the cursor sits on the track. Reports whether the
// slider captured the press.
func (s *Slider) Grab(x, y int) bool {
	if !image.Pt(x, y).In(s.Track) {
		return false
	}
	s.drag = true
	return true
}

// Release ends a drag.
func (s *Slider) Release() {
	s.drag = false
}

// Dragging reports whether the slider currently owns the cursor.
func (s *Slider) Dragging() bool {
	return s.drag
}
