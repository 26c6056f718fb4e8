package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/mat"

	"github.com/quantaphy/multipole/internal/multipole"
)

// Suptitle is the figure heading.
const Suptitle = "Interactive Multipole Superposition"

var (
	sliderFace  = color.RGBA{0x1b, 0x1b, 0x1b, 0xff}
	sliderTrack = color.RGBA{0x50, 0xa0, 0xf0, 0xff} // unfilled span, blue
	sliderFill  = color.RGBA{0xf0, 0x50, 0x50, 0xff} // filled span, red
)

// Figure owns the raster canvas and everything needed to redraw it: pixel
// layout, colormap, type faces, and the grid geometry for the masking disc.
type Figure struct {
	layout  Layout
	cm      *Colormap
	faces   *Faces
	gridCfg multipole.GridConfig
	canvas  *image.RGBA
}

// NewFigure builds a figure raster at the given pixel size.
func NewFigure(w, h int, gridCfg multipole.GridConfig) (*Figure, error) {
	faces, err := NewFaces()
	if err != nil {
		return nil, err
	}
	return &Figure{
		layout:  NewLayout(w, h),
		cm:      NewColormap(),
		faces:   faces,
		gridCfg: gridCfg,
		canvas:  image.NewRGBA(image.Rect(0, 0, w, h)),
	}, nil
}

// Layout exposes the pixel geometry; the input layer hit-tests against it.
func (f *Figure) Layout() Layout {
	return f.layout
}

// Canvas returns the backing raster. Contents are valid after Render.
func (f *Figure) Canvas() *image.RGBA {
	return f.canvas
}

// Render redraws the whole figure: background, suptitle, the total panel,
// the four term panels, and the slider bank. scale fixes the color range
// for every panel; pass 0 to let each panel pick its own bound.
func (f *Figure) Render(w multipole.Weights, terms [multipole.NumTerms]*mat.Dense, total *mat.Dense, scale float64) *image.RGBA {
	draw.Draw(f.canvas, f.canvas.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	titleAscent := f.faces.Title.Metrics().Ascent.Ceil()
	DrawCentered(f.canvas, f.faces.Title, Suptitle, f.layout.Title.X, f.layout.Title.Y+titleAscent, TitleColor)

	f.drawPanel(f.layout.Main, total, scale, "Total Potential", "")
	for l := range terms {
		sub := fmt.Sprintf("w = %.2f", w[l])
		f.drawPanel(f.layout.Terms[l], terms[l], scale, multipole.TermNames[l], sub)
	}
	for l, track := range f.layout.Tracks {
		f.slider(track, multipole.TermNames[l], w[l])
	}
	return f.canvas
}

// drawPanel draws one potential map with its title. The title sits above
// the panel; term panels carry a second line with the current weight.
func (f *Figure) drawPanel(rect image.Rectangle, field *mat.Dense, scale float64, title, sub string) {
	vmax := scale
	if vmax <= 0 {
		vmax = AutoScale(field)
	}

	f.heatmap(rect, field, vmax)
	f.maskDisc(rect)
	f.contours(rect, field, vmax)

	cx := (rect.Min.X + rect.Max.X) / 2
	lineH := f.faces.Panel.Metrics().Height.Ceil()
	if sub == "" {
		DrawCentered(f.canvas, f.faces.Panel, title, cx, rect.Min.Y-6, TextColor)
		return
	}
	DrawCentered(f.canvas, f.faces.Panel, sub, cx, rect.Min.Y-6, TextColor)
	DrawCentered(f.canvas, f.faces.Panel, title, cx, rect.Min.Y-6-lineH, TextColor)
}

// slider draws one control: the face, the track band with its filled span
// up to the current value, the label on the left, and the value readout on
// the right.
func (f *Figure) slider(track image.Rectangle, label string, val float64) {
	draw.Draw(f.canvas, track, image.NewUniform(sliderFace), image.Point{}, draw.Src)

	inset := track.Dy() / 4
	band := image.Rect(track.Min.X, track.Min.Y+inset, track.Max.X, track.Max.Y-inset)
	draw.Draw(f.canvas, band, image.NewUniform(sliderTrack), image.Point{}, draw.Src)

	frac := (val - multipole.WeightMin) / (multipole.WeightMax - multipole.WeightMin)
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	fillW := int(math.Round(frac * float64(band.Dx())))
	fill := image.Rect(band.Min.X, band.Min.Y, band.Min.X+fillW, band.Max.Y)
	draw.Draw(f.canvas, fill, image.NewUniform(sliderFill), image.Point{}, draw.Src)

	m := f.faces.Label.Metrics()
	baseline := (track.Min.Y+track.Max.Y)/2 + (m.Ascent.Ceil()-m.Descent.Ceil())/2
	DrawRight(f.canvas, f.faces.Label, label, track.Min.X-8, baseline, TextColor)
	DrawLeft(f.canvas, f.faces.Label, fmt.Sprintf("%.2f", val), track.Max.X+8, baseline, TextColor)
}
