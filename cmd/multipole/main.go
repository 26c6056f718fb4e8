// Command multipole opens the interactive multipole superposition figure:
// four weight sliders driving live per-term potential panels and their sum.
//
// Set MULTIPOLE_SNAPSHOT=out.png to render a single frame headless and
// exit instead of opening a window.
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/quantaphy/multipole/internal/multipole"
	"github.com/quantaphy/multipole/internal/render"
	"github.com/quantaphy/multipole/internal/viz"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info(render.Suptitle)
	slog.Info("field constants",
		"grid", multipole.GridPoints,
		"rmax", multipole.RMax,
		"rmin", multipole.RMin,
		"reference_coeff", fmt.Sprintf("%.4g", multipole.ReferenceCoeff),
	)

	// Configuration from environment.
	cfg := viz.DefaultConfig()
	cfg.Grid.Points = envIntOrDefault("MULTIPOLE_GRID", cfg.Grid.Points)
	cfg.SnapshotDir = envOrDefault("MULTIPOLE_SNAPDIR", cfg.SnapshotDir)
	snapshot := os.Getenv("MULTIPOLE_SNAPSHOT")

	weights := multipole.DefaultWeights
	if s := os.Getenv("MULTIPOLE_WEIGHTS"); s != "" {
		w, err := parseWeights(s)
		if err != nil {
			slog.Error("bad MULTIPOLE_WEIGHTS", "value", s, "error", err)
			os.Exit(1)
		}
		weights = w.Clamp()
	}

	// ── One-shot headless render ──────────────────────────────────────
	if snapshot != "" {
		if err := renderOnce(cfg, weights, snapshot); err != nil {
			slog.Error("snapshot render failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// ── Interactive window ────────────────────────────────────────────
	fmt.Printf("Drag the sliders to reweight each term. R resets, S saves a snapshot, Esc quits.\n")

	if err := viz.Run(cfg, weights); err != nil {
		slog.Error("viewer failed", "error", err)
		os.Exit(1)
	}

	fmt.Println("Viewer closed.")
}

// renderOnce evaluates the fields once and writes the figure to a PNG
// without opening a window.
func renderOnce(cfg viz.Config, w multipole.Weights, outPath string) error {
	grid, err := multipole.NewGrid(cfg.Grid)
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}
	fig, err := render.NewFigure(cfg.Width, cfg.Height, cfg.Grid)
	if err != nil {
		return fmt.Errorf("build figure: %w", err)
	}

	terms, total, err := multipole.Evaluate(w, grid)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}
	scale := multipole.ReferenceScale(grid, multipole.ReferenceCoeff)
	canvas := fig.Render(w, terms, total, scale)

	size, err := viz.WritePNG(outPath, canvas)
	if err != nil {
		return err
	}
	slog.Info("snapshot written", "path", outPath, "size", humanize.Bytes(uint64(size)))
	return nil
}

// parseWeights reads four comma-separated term coefficients in
// monopole, dipole, quadrupole, octupole order.
func parseWeights(s string) (multipole.Weights, error) {
	var w multipole.Weights
	parts := strings.Split(s, ",")
	if len(parts) != multipole.NumTerms {
		return w, fmt.Errorf("want %d values, got %d", multipole.NumTerms, len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return w, fmt.Errorf("weight %d: %w", i, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return w, fmt.Errorf("weight %d is not finite", i)
		}
		w[i] = v
	}
	return w, nil
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envIntOrDefault(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}
