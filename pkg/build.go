package cargov

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// BuildRunner runs the project build after the manifest is rewritten so the
// lockfile picks up the new version.
type BuildRunner struct {
	Args []string
	Dir  string
}

// Run executes the build. An empty Args is a no-op.
func (b BuildRunner) Run(ctx context.Context) error {
	if len(b.Args) == 0 {
		return nil
	}
	cmd := exec.CommandContext(ctx, b.Args[0], b.Args[1:]...)
	cmd.Dir = b.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: error on build %q: %v, detail: %s", ErrProcess, strings.Join(b.Args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
