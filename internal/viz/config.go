package viz

import (
	"github.com/quantaphy/multipole/internal/multipole"
	"github.com/quantaphy/multipole/internal/render"
)

// Config holds window and startup options.
type Config struct {
	Width       int
	Height      int
	SnapshotDir string
	Grid        multipole.GridConfig
}

// DefaultConfig matches the native figure size and the full display grid,
// with snapshots landing in the working directory.
func DefaultConfig() Config {
	return Config{
		Width:       render.DefaultWidth,
		Height:      render.DefaultHeight,
		SnapshotDir: ".",
		Grid:        multipole.DefaultGridConfig(),
	}
}
