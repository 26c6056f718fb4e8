package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"gonum.org/v1/gonum/mat"
)

var (
	contourColor = color.NRGBA{0xff, 0xff, 0xff, 0x99} // white at 60%
	discColor    = color.NRGBA{0x15, 0x15, 0x15, 0xe6} // near-black at 90%
)

// contourWidth is the stroke width in pixels. Sub-pixel widths come out as
// faint antialiased hairlines, which is the intent.
const contourWidth = 0.6

// kappa is the cubic Bézier approximation constant for a quarter circle.
const kappa = 0.5523

// heatmap fills rect with the field rendered through the colormap. One grid
// sample becomes one flat-shaded cell; row 0 of the field is the bottom of
// the panel since the y axis points up.
func (f *Figure) heatmap(rect image.Rectangle, field *mat.Dense, vmax float64) {
	n, _ := field.Dims()
	cells := image.NewRGBA(image.Rect(0, 0, n, n))
	for i := 0; i < n; i++ {
		row := n - 1 - i
		for j := 0; j < n; j++ {
			cells.SetRGBA(j, row, f.cm.At(field.At(i, j), vmax))
		}
	}
	draw.NearestNeighbor.Scale(f.canvas, rect, cells, cells.Bounds(), draw.Src, nil)
}

// maskDisc covers the singular region at the panel center with a filled
// circle, sized by the grid's mask radius in domain units.
func (f *Figure) maskDisc(rect image.Rectangle) {
	cx := float32(rect.Min.X+rect.Max.X) / 2
	cy := float32(rect.Min.Y+rect.Max.Y) / 2
	r := float32(f.gridCfg.RMin / (2 * f.gridCfg.RMax) * float64(rect.Dx()))
	fillCircle(f.canvas, cx, cy, r, discColor)
}

// contours strokes the equipotential lines for every level into rect. All
// strokes accumulate in a single rasterizer pass so crossings and joints
// blend at a uniform alpha.
func (f *Figure) contours(rect image.Rectangle, field *mat.Dense, vmax float64) {
	n, _ := field.Dims()
	sx := float32(rect.Dx()) / float32(n-1)
	sy := float32(rect.Dy()) / float32(n-1)
	h := float32(rect.Dy())

	z := vector.NewRasterizer(rect.Dx(), rect.Dy())
	for _, level := range Levels(vmax) {
		for _, s := range MarchingSquares(field, level) {
			strokeLine(z,
				float32(s.X1)*sx, h-float32(s.Y1)*sy,
				float32(s.X2)*sx, h-float32(s.Y2)*sy,
				contourWidth)
		}
	}
	z.Draw(f.canvas, rect, image.NewUniform(contourColor), image.Point{})
}

// strokeLine adds a thin filled quad covering the segment.
func strokeLine(z *vector.Rasterizer, x1, y1, x2, y2, w float32) {
	dx, dy := x2-x1, y2-y1
	ln := float32(math.Hypot(float64(dx), float64(dy)))
	if ln == 0 {
		return
	}
	px := -dy / ln * w / 2
	py := dx / ln * w / 2
	z.MoveTo(x1+px, y1+py)
	z.LineTo(x2+px, y2+py)
	z.LineTo(x2-px, y2-py)
	z.LineTo(x1-px, y1-py)
	z.ClosePath()
}

// fillCircle rasterizes a filled circle from four cubic Béziers.
func fillCircle(dst *image.RGBA, cx, cy, r float32, col color.Color) {
	if r <= 0 {
		return
	}
	x0 := int(cx-r) - 1
	y0 := int(cy-r) - 1
	side := int(2*r) + 3

	ox := cx - float32(x0)
	oy := cy - float32(y0)
	k := r * kappa

	z := vector.NewRasterizer(side, side)
	z.MoveTo(ox+r, oy)
	z.CubeTo(ox+r, oy+k, ox+k, oy+r, ox, oy+r)
	z.CubeTo(ox-k, oy+r, ox-r, oy+k, ox-r, oy)
	z.CubeTo(ox-r, oy-k, ox-k, oy-r, ox, oy-r)
	z.CubeTo(ox+k, oy-r, ox+r, oy-k, ox+r, oy)
	z.ClosePath()
	z.Draw(dst, image.Rect(x0, y0, x0+side, y0+side), image.NewUniform(col), image.Point{})
}
