package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Text colors from the dark figure style.
var (
	TitleColor = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
	TextColor  = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Faces bundles the type sizes used on the figure.
type Faces struct {
	Title font.Face // suptitle
	Panel font.Face // panel titles
	Label font.Face // slider labels and values
}

// NewFaces parses the bundled regular face at the figure's point sizes.
// 100 dpi keeps point sizes and pixel sizes in the same proportions as the
// source figure.
func NewFaces() (*Faces, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	mk := func(size float64) (font.Face, error) {
		return opentype.NewFace(ft, &opentype.FaceOptions{
			Size:    size,
			DPI:     100,
			Hinting: font.HintingFull,
		})
	}

	title, err := mk(16)
	if err != nil {
		return nil, fmt.Errorf("title face: %w", err)
	}
	panel, err := mk(11)
	if err != nil {
		return nil, fmt.Errorf("panel face: %w", err)
	}
	label, err := mk(10)
	if err != nil {
		return nil, fmt.Errorf("label face: %w", err)
	}

	return &Faces{Title: title, Panel: panel, Label: label}, nil
}

// DrawCentered draws s with its horizontal center at x and baseline at y.
func DrawCentered(dst *image.RGBA, face font.Face, s string, x, y int, col color.Color) {
	d := drawer(dst, face, col)
	w := d.MeasureString(s).Ceil()
	d.Dot = fixed.P(x-w/2, y)
	d.DrawString(s)
}

// DrawLeft draws s with its left edge at x and baseline at y.
func DrawLeft(dst *image.RGBA, face font.Face, s string, x, y int, col color.Color) {
	d := drawer(dst, face, col)
	d.Dot = fixed.P(x, y)
	d.DrawString(s)
}

// DrawRight draws s with its right edge at x and baseline at y.
func DrawRight(dst *image.RGBA, face font.Face, s string, x, y int, col color.Color) {
	d := drawer(dst, face, col)
	w := d.MeasureString(s).Ceil()
	d.Dot = fixed.P(x-w, y)
	d.DrawString(s)
}

func drawer(dst *image.RGBA, face font.Face, col color.Color) *font.Drawer {
	return &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face}
}
