package report

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Letter page size in points.
const (
	pageW = 612.0
	pageH = 792.0
)

// writeImagePDF places the PNG on a single borderless Letter page, scaled
// to fill it edge to edge. The figure's own aspect ratio is ignored so the
// page carries no margins.
func writeImagePDF(pngPath, outPath string) error {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptions(pngPath, opt)
	pdf.ImageOptions(pngPath, 0, 0, pageW, pageH, false, opt, 0, "")

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
