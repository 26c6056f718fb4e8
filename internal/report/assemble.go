package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
)

// Assembler runs the build steps in order: image conversion, the two LaTeX
// compiles, then the merge. Every step is fatal except missing merge
// inputs, which are skipped with a warning.
type Assembler struct {
	Layout   Layout
	Compiler string // LaTeX binary, usually pdflatex

	// Process seams, swappable in tests.
	run   func(ctx context.Context, compiler, buildDir, texPath string) ([]byte, error)
	merge func(inFiles []string, outFile string) error
}

// New returns an assembler over the given layout using the named compiler.
func New(layout Layout, compiler string) *Assembler {
	return &Assembler{
		Layout:   layout,
		Compiler: compiler,
		run:      runCompiler,
		merge:    mergePDFs,
	}
}

// Run executes the whole assembly.
func (a *Assembler) Run(ctx context.Context) error {
	if err := os.MkdirAll(a.Layout.BuildDir, 0755); err != nil {
		return fmt.Errorf("build dir: %w", err)
	}

	if err := a.ImageStep(); err != nil {
		return err
	}
	if err := a.CompileStep(ctx, a.Layout.ReportTex, a.Layout.ReportPDF); err != nil {
		return err
	}
	if err := a.CompileStep(ctx, a.Layout.CodeTex, a.Layout.CodePDF); err != nil {
		return err
	}
	return a.MergeStep()
}

// ImageStep converts the figure PNG to a full-page PDF. A missing figure is
// fatal before anything else runs.
func (a *Assembler) ImageStep() error {
	slog.Info("converting figure image", "png", a.Layout.ImagePNG)
	if _, err := os.Stat(a.Layout.ImagePNG); err != nil {
		return fmt.Errorf("figure image: %w", err)
	}
	if err := writeImagePDF(a.Layout.ImagePNG, a.Layout.ImagePDF); err != nil {
		return err
	}
	logCreated(a.Layout.ImagePDF)
	return nil
}

// CompileStep runs the LaTeX compiler on one source. On failure the
// captured compiler output goes to stderr so the broken line is visible.
func (a *Assembler) CompileStep(ctx context.Context, texPath, pdfPath string) error {
	slog.Info("compiling", "tex", texPath)
	if _, err := os.Stat(texPath); err != nil {
		return fmt.Errorf("latex source: %w", err)
	}

	out, err := a.run(ctx, a.Compiler, a.Layout.BuildDir, texPath)
	if err != nil {
		os.Stderr.Write(out)
		return fmt.Errorf("compile %s: %w", texPath, err)
	}
	logCreated(pdfPath)
	return nil
}

// MergeStep concatenates image, report, and code PDFs in that order. Inputs
// that never got built are skipped with a warning; an empty merge is an
// error.
func (a *Assembler) MergeStep() error {
	inputs := make([]string, 0, 3)
	for _, p := range []string{a.Layout.ImagePDF, a.Layout.ReportPDF, a.Layout.CodePDF} {
		if _, err := os.Stat(p); err != nil {
			slog.Warn("merge input missing, skipping", "path", p)
			continue
		}
		inputs = append(inputs, p)
	}
	if len(inputs) == 0 {
		return errors.New("nothing to merge")
	}

	if err := a.merge(inputs, a.Layout.FinalPDF); err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	logCreated(a.Layout.FinalPDF)
	return nil
}

// logCreated reports a produced artifact with its size.
func logCreated(path string) {
	if info, err := os.Stat(path); err == nil {
		slog.Info("created", "path", path, "size", humanize.Bytes(uint64(info.Size())))
		return
	}
	slog.Info("created", "path", path)
}
