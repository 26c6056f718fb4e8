package report

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
)

// runCompiler invokes the LaTeX compiler from the source's directory so
// relative inputs resolve, with the PDF and aux files landing in buildDir.
// Returns the combined compiler output for diagnosis on failure.
func runCompiler(ctx context.Context, compiler, buildDir, texPath string) ([]byte, error) {
	absBuild, err := filepath.Abs(buildDir)
	if err != nil {
		return nil, fmt.Errorf("resolve build dir: %w", err)
	}

	cmd := exec.CommandContext(ctx, compiler,
		"-interaction=nonstopmode",
		"-output-directory", absBuild,
		filepath.Base(texPath),
	)
	cmd.Dir = filepath.Dir(texPath)
	return cmd.CombinedOutput()
}
