// Command mkreport assembles the final project PDF: the rendered figure,
// the LaTeX write-up, and the code appendix, compiled and merged in order.
// It expects the figure under media/ and the .tex sources under report/,
// and needs a LaTeX toolchain on PATH.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/quantaphy/multipole/internal/report"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Configuration from environment.
	projectDir := envOrDefault("MKREPORT_PROJECT", ".")
	compiler := envOrDefault("MKREPORT_LATEX", "pdflatex")

	slog.Info("assembling report",
		"project", projectDir,
		"compiler", compiler,
	)

	asm := report.New(report.DefaultLayout(projectDir), compiler)
	if err := asm.Run(context.Background()); err != nil {
		slog.Error("assembly failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Final report ready: %s\n", asm.Layout.FinalPDF)
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
