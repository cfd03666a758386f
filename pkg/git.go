package cargov

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Git runs git commands in Dir (the current directory when empty).
type Git struct {
	Dir string
}

func (g Git) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.Dir
	return cmd
}

// run executes git and folds stderr into the returned error.
func (g Git) run(ctx context.Context, args ...string) error {
	cmd := g.command(ctx, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: git %s failed: %v, detail: %s", ErrProcess, args[0], err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// Check verifies that git is available on the system.
func (g Git) Check(ctx context.Context) error {
	if err := g.command(ctx, "--version").Run(); err != nil {
		return fmt.Errorf("%w: git is not available on the system: %v", ErrProcess, err)
	}
	return nil
}

// CheckClean ensures only allowed files are modified in the working tree.
// git reports paths relative to the repository root, while allowed paths are
// relative to Dir.
func (g Git) CheckClean(ctx context.Context, allowed []string) error {
	top, err := g.TopLevel(ctx)
	if err != nil {
		return err
	}
	out, err := g.command(ctx, "status", "--porcelain").Output()
	if err != nil {
		return fmt.Errorf("%w: failed to check git status: %v", ErrProcess, err)
	}

	allowedSet := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		abs, err := g.abs(f)
		if err != nil {
			return fmt.Errorf("failed to resolve path %q: %w", f, err)
		}
		allowedSet[abs] = struct{}{}
	}

	var disallowed []string
	for _, line := range bytes.Split(out, []byte("\n")) {
		if len(line) < 4 {
			continue
		}
		path := string(bytes.TrimSpace(line[3:]))
		if _, ok := allowedSet[resolveSymlinks(filepath.Join(top, path))]; !ok {
			disallowed = append(disallowed, path)
		}
	}

	if len(disallowed) > 0 {
		return fmt.Errorf("working directory is dirty; uncommitted files not included in commit: %v", disallowed)
	}
	return nil
}

// TopLevel returns the absolute path of the repository root.
func (g Git) TopLevel(ctx context.Context) (string, error) {
	out, err := g.command(ctx, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", fmt.Errorf("%w: failed to find repository root: %v", ErrProcess, err)
	}
	return resolveSymlinks(strings.TrimSpace(string(out))), nil
}

// Tags lists the tags of the repository.
func (g Git) Tags(ctx context.Context) ([]string, error) {
	out, err := g.command(ctx, "tag", "--list").Output()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list tags: %v", ErrProcess, err)
	}
	var tags []string
	for _, t := range strings.Split(string(out), "\n") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags, nil
}

func (g Git) abs(path string) (string, error) {
	if g.Dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(g.Dir, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return resolveSymlinks(abs), nil
}

// resolveSymlinks resolves the directory part of an absolute path, so that
// files that do not exist yet still compare equal to git's view of them.
func resolveSymlinks(path string) string {
	path = filepath.Clean(path)
	if dir, err := filepath.EvalSymlinks(filepath.Dir(path)); err == nil {
		return filepath.Join(dir, filepath.Base(path))
	}
	return path
}

// Add stages files.
func (g Git) Add(ctx context.Context, files []string) error {
	return g.run(ctx, append([]string{"add", "--"}, files...)...)
}

// Commit records the staged changes with message.
func (g Git) Commit(ctx context.Context, message string) error {
	return g.run(ctx, "commit", "-m", message)
}

// Tag creates an annotated tag on HEAD.
func (g Git) Tag(ctx context.Context, name, message string) error {
	return g.run(ctx, "tag", "-a", name, "-m", message)
}
