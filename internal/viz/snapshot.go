package viz

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// WritePNG encodes img to path and returns the encoded size.
func WritePNG(path string, img image.Image) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return 0, fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// SaveSnapshot writes the canvas under dir with a timestamped name and
// returns the path and encoded size.
func SaveSnapshot(dir string, img image.Image) (string, int64, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", 0, fmt.Errorf("snapshot dir: %w", err)
	}
	name := "multipole_" + time.Now().Format("20060102_150405") + ".png"
	path := filepath.Join(dir, name)

	size, err := WritePNG(path, img)
	if err != nil {
		return "", 0, err
	}
	return path, size, nil
}
