package render

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Segment is one contour piece in grid index space: x runs along columns,
// y along rows, both fractional.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Levels returns the equipotential levels for a symmetric color scale: an
// 11-point even spread over [-vmax, vmax] with the middle level dropped,
// since the zero equipotential disappears into the masked disc.
func Levels(vmax float64) []float64 {
	span := make([]float64, 11)
	floats.Span(span, -vmax, vmax)

	levels := make([]float64, 0, len(span)-1)
	for i, l := range span {
		if i == len(span)/2 {
			continue
		}
		levels = append(levels, l)
	}
	return levels
}

// MarchingSquares extracts the line segments tracing field = level. Any
// cell with an undefined corner is skipped, which ends contours cleanly at
// the mask edge.
func MarchingSquares(field *mat.Dense, level float64) []Segment {
	rows, cols := field.Dims()
	var segs []Segment

	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			// Corner values; (i, j) is the cell's low-y, low-x corner.
			v00 := field.At(i, j)
			v10 := field.At(i, j+1)
			v11 := field.At(i+1, j+1)
			v01 := field.At(i+1, j)
			if math.IsNaN(v00) || math.IsNaN(v10) || math.IsNaN(v11) || math.IsNaN(v01) {
				continue
			}

			idx := 0
			if v00 >= level {
				idx |= 1
			}
			if v10 >= level {
				idx |= 2
			}
			if v11 >= level {
				idx |= 4
			}
			if v01 >= level {
				idx |= 8
			}
			if idx == 0 || idx == 15 {
				continue
			}

			x, y := float64(j), float64(i)
			bottom := func() (float64, float64) { return x + cross(v00, v10, level), y }
			top := func() (float64, float64) { return x + cross(v01, v11, level), y + 1 }
			left := func() (float64, float64) { return x, y + cross(v00, v01, level) }
			right := func() (float64, float64) { return x + 1, y + cross(v10, v11, level) }

			emit := func(ax, ay, bx, by float64) {
				segs = append(segs, Segment{X1: ax, Y1: ay, X2: bx, Y2: by})
			}
			join := func(a, b func() (float64, float64)) {
				ax, ay := a()
				bx, by := b()
				emit(ax, ay, bx, by)
			}

			switch idx {
			case 1, 14:
				join(left, bottom)
			case 2, 13:
				join(bottom, right)
			case 3, 12:
				join(left, right)
			case 4, 11:
				join(top, right)
			case 6, 9:
				join(bottom, top)
			case 7, 8:
				join(left, top)
			case 5, 10:
				// Saddle cell: disambiguate with the center value.
				center := (v00 + v10 + v11 + v01) / 4
				if (idx == 5) == (center >= level) {
					join(left, top)
					join(bottom, right)
				} else {
					join(left, bottom)
					join(top, right)
				}
			}
		}
	}
	return segs
}

// cross returns the fractional position of the level crossing between two
// corner values.
func cross(a, b, level float64) float64 {
	if b == a {
		return 0.5
	}
	t := (level - a) / (b - a)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
