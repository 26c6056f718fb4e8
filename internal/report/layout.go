// Package report assembles the final project PDF: the rendered figure, the
// written report, and the code listing, compiled and merged in a fixed
// order.
package report

import "path/filepath"

// Layout fixes the project-relative paths the assembler reads and writes.
type Layout struct {
	ImagePNG  string // source figure raster
	ReportTex string // main write-up source
	CodeTex   string // code listing source
	BuildDir  string // all outputs land here

	ImagePDF  string
	ReportPDF string
	CodePDF   string
	FinalPDF  string
}

// DefaultLayout resolves the standard tree under a project root: the figure
// under media/, LaTeX sources under report/, and everything built under
// report/build/.
func DefaultLayout(projectDir string) Layout {
	reportDir := filepath.Join(projectDir, "report")
	buildDir := filepath.Join(reportDir, "build")
	return Layout{
		ImagePNG:  filepath.Join(projectDir, "media", "multipole_plot.png"),
		ReportTex: filepath.Join(reportDir, "report.tex"),
		CodeTex:   filepath.Join(reportDir, "code.tex"),
		BuildDir:  buildDir,
		ImagePDF:  filepath.Join(buildDir, "image.pdf"),
		ReportPDF: filepath.Join(buildDir, "report.pdf"),
		CodePDF:   filepath.Join(buildDir, "code.pdf"),
		FinalPDF:  filepath.Join(buildDir, "final_report.pdf"),
	}
}
