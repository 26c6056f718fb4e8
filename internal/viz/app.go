package viz

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/quantaphy/multipole/internal/multipole"
	"github.com/quantaphy/multipole/internal/render"
)

// App drives the window: input handling, recompute on change, and blitting
// the finished canvas. It satisfies ebiten.Game.
type App struct {
	cfg     Config
	grid    *multipole.Grid
	fig     *render.Figure
	ctl     *Controller
	sliders [multipole.NumTerms]*Slider
	scale   float64
	tex     *ebiten.Image
}

// NewApp builds the grid, the figure raster, and the controls. The shared
// color scale is fixed here once and never rescaled afterwards.
func NewApp(cfg Config, start multipole.Weights) (*App, error) {
	grid, err := multipole.NewGrid(cfg.Grid)
	if err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}
	fig, err := render.NewFigure(cfg.Width, cfg.Height, cfg.Grid)
	if err != nil {
		return nil, fmt.Errorf("build figure: %w", err)
	}

	app := &App{
		cfg:   cfg,
		grid:  grid,
		fig:   fig,
		ctl:   NewController(start),
		scale: multipole.ReferenceScale(grid, multipole.ReferenceCoeff),
	}
	for l, track := range fig.Layout().Tracks {
		app.sliders[l] = &Slider{Order: multipole.Order(l), Track: track}
	}

	slog.Info("controls ready",
		"grid", cfg.Grid.Points,
		"scale", fmt.Sprintf("%.4g", app.scale),
	)
	return app, nil
}

// Update handles one event-loop step: keys, slider drags, and the redraw
// when anything changed.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.ctl.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.snapshot()
	}

	a.pollSliders()

	if a.ctl.TakeDirty() {
		if err := a.redraw(); err != nil {
			return err
		}
	}
	return nil
}

// pollSliders routes mouse state to the controls. A press grabs at most one
// slider; the grab holds until the button comes back up, even if the cursor
// wanders off the track.
func (a *App) pollSliders() {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		for _, s := range a.sliders {
			if s.Grab(x, y) {
				a.ctl.SetWeight(s.Order, s.ValueAt(x))
				break
			}
		}
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		for _, s := range a.sliders {
			if s.Dragging() {
				a.ctl.SetWeight(s.Order, s.ValueAt(x))
			}
		}
	} else {
		for _, s := range a.sliders {
			s.Release()
		}
	}
}

// redraw recomputes the fields and repaints the canvas into the texture.
func (a *App) redraw() error {
	w := a.ctl.Weights()
	terms, total, err := multipole.Evaluate(w, a.grid)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}
	canvas := a.fig.Render(w, terms, total, a.scale)

	if a.tex == nil {
		a.tex = ebiten.NewImage(a.cfg.Width, a.cfg.Height)
	}
	a.tex.WritePixels(canvas.Pix)
	return nil
}

// Draw blits the prepared frame.
func (a *App) Draw(screen *ebiten.Image) {
	if a.tex != nil {
		screen.DrawImage(a.tex, nil)
	}
}

// Layout reports the fixed canvas size regardless of window scaling.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}

// snapshot saves the current canvas. Failures are logged and the session
// continues.
func (a *App) snapshot() {
	path, size, err := SaveSnapshot(a.cfg.SnapshotDir, a.fig.Canvas())
	if err != nil {
		slog.Error("snapshot failed", "error", err)
		return
	}
	slog.Info("snapshot written", "path", path, "size", humanize.Bytes(uint64(size)))
}

// Run opens the window and blocks until the user quits.
func Run(cfg Config, start multipole.Weights) error {
	app, err := NewApp(cfg, start)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(render.Suptitle)
	return ebiten.RunGame(app)
}
