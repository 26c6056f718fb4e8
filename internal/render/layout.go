package render

import (
	"image"
	"math"
)

// DefaultWidth and DefaultHeight are the native canvas size.
const (
	DefaultWidth  = 1400
	DefaultHeight = 750
)

// Figure geometry as fractions of the canvas: a 2×3 grid whose left column
// is double-wide and spans both rows, with a 2×2 slider bank along the
// bottom and a title band on top.
const (
	gsLeft   = 0.05
	gsRight  = 0.95
	gsBottom = 0.18
	gsTop    = 0.86
	gsWSpace = 0.28 // column gap, as a fraction of the mean column width
	gsHSpace = 0.30 // row gap, as a fraction of the mean row height

	suptitleY = 0.98 // fraction from the bottom edge

	sliderW    = 0.36
	sliderH    = 0.035
	sliderRow0 = 0.09 // fractions from the bottom edge
	sliderRow1 = 0.03
	sliderCol0 = 0.08
	sliderCol1 = 0.58
)

var colRatios = [3]float64{2.2, 1, 1}

// Layout is the pixel geometry of the figure.
type Layout struct {
	W, H   int
	Main   image.Rectangle    // total-potential panel, spans both rows
	Terms  [4]image.Rectangle // monopole, dipole, quadrupole, octupole
	Tracks [4]image.Rectangle // slider tracks, same order
	Title  image.Point        // suptitle anchor: top center of the text
}

// NewLayout computes the panel and slider rectangles for a W×H canvas.
// Panels are shrunk to centered squares inside their grid cells, matching
// an equal-aspect plot of the square domain.
func NewLayout(w, h int) Layout {
	fw, fh := float64(w), float64(h)

	// Columns: the available width splits by ratio after reserving the
	// inter-column gaps, each gap being gsWSpace of the mean column width.
	availW := (gsRight - gsLeft) * fw
	ncols := float64(len(colRatios))
	axesW := availW / (1 + gsWSpace*(ncols-1)/ncols)
	gapW := gsWSpace * axesW / ncols

	ratioSum := 0.0
	for _, r := range colRatios {
		ratioSum += r
	}
	var colW [3]float64
	for i, r := range colRatios {
		colW[i] = axesW * r / ratioSum
	}

	// Rows: two equal rows with one gap.
	availH := (gsTop - gsBottom) * fh
	axesH := availH / (1 + gsHSpace/2)
	rowH := axesH / 2
	gapH := gsHSpace * axesH / 2

	colX := [3]float64{gsLeft * fw, 0, 0}
	colX[1] = colX[0] + colW[0] + gapW
	colX[2] = colX[1] + colW[1] + gapW

	rowY := [2]float64{(1 - gsTop) * fh, 0} // y measured from the top edge
	rowY[1] = rowY[0] + rowH + gapH

	cell := func(x, y, cw, ch float64) image.Rectangle {
		return image.Rect(round(x), round(y), round(x+cw), round(y+ch))
	}

	l := Layout{
		W:     w,
		H:     h,
		Main:  squareInset(cell(colX[0], rowY[0], colW[0], 2*rowH+gapH)),
		Title: image.Point{X: w / 2, Y: round((1 - suptitleY) * fh)},
	}
	l.Terms[0] = squareInset(cell(colX[1], rowY[0], colW[1], rowH))
	l.Terms[1] = squareInset(cell(colX[2], rowY[0], colW[2], rowH))
	l.Terms[2] = squareInset(cell(colX[1], rowY[1], colW[1], rowH))
	l.Terms[3] = squareInset(cell(colX[2], rowY[1], colW[2], rowH))

	track := func(cx, ry float64) image.Rectangle {
		return image.Rect(
			round(cx*fw),
			round((1-ry-sliderH)*fh),
			round((cx+sliderW)*fw),
			round((1-ry)*fh),
		)
	}
	l.Tracks[0] = track(sliderCol0, sliderRow0)
	l.Tracks[1] = track(sliderCol1, sliderRow0)
	l.Tracks[2] = track(sliderCol0, sliderRow1)
	l.Tracks[3] = track(sliderCol1, sliderRow1)

	return l
}

// squareInset centers the largest possible square inside r.
func squareInset(r image.Rectangle) image.Rectangle {
	side := r.Dx()
	if r.Dy() < side {
		side = r.Dy()
	}
	cx := (r.Min.X + r.Max.X) / 2
	cy := (r.Min.Y + r.Max.Y) / 2
	return image.Rect(cx-side/2, cy-side/2, cx-side/2+side, cy-side/2+side)
}

func round(v float64) int {
	return int(math.Round(v))
}
