package cargov

import (
	"context"
	"log/slog"
	"os"
)

// VersionMeta holds metadata about the version bump operation.
type VersionMeta struct {
	OldVersion   string   // The version before bumping.
	NewVersion   string   // The new version after bumping.
	BumpType     string   // "patch", "minor", "major" or "explicit".
	Tag          string   // The git tag and commit message, e.g. "v1.2.3".
	UpdatedFiles []string // Paths written (or that would be written) by the bump.
}

// Run bumps the manifest version named in cfg, runs the build, and commits
// and tags the result. versionArg is "patch", "minor", "major" or an explicit
// version with an optional "v" prefix.
func Run(ctx context.Context, cfg Config, versionArg string) (VersionMeta, error) {
	return run(ctx, cfg, versionArg, FileManifest{Path: cfg.Manifest}, false)
}

// DryRun computes the bump without writing the manifest, building, or
// touching the git repository.
func DryRun(ctx context.Context, cfg Config, versionArg string) (VersionMeta, error) {
	return run(ctx, cfg, versionArg, FileManifest{Path: cfg.Manifest}, true)
}

func run(ctx context.Context, cfg Config, versionArg string, store ManifestStore, dry bool) (VersionMeta, error) {
	var meta VersionMeta

	if err := cfg.Validate(); err != nil {
		return meta, err
	}
	scope, err := ParseRewriteScope(string(cfg.Rewrite))
	if err != nil {
		return meta, err
	}
	git := Git{}
	staged := stagedFiles(cfg)

	// 1. Make sure git is usable before anything is written.
	if cfg.Git && !dry {
		if err := git.Check(ctx); err != nil {
			return meta, err
		}
		if !cfg.AllowDirty {
			if err := git.CheckClean(ctx, staged); err != nil {
				return meta, err
			}
		}
	}

	// 2. Compute the new document.
	doc, err := store.Read()
	if err != nil {
		return meta, err
	}
	res, err := Bump(doc, versionArg, WithRewriteScope(scope))
	if err != nil {
		return meta, err
	}
	meta.OldVersion = res.OldVersion
	meta.NewVersion = res.NewVersion
	meta.BumpType = res.BumpType
	meta.Tag = cfg.TagPrefix + res.NewVersion
	slog.Debug("computed version bump",
		"manifest", cfg.Manifest,
		"old", meta.OldVersion,
		"new", meta.NewVersion,
		"bumpType", meta.BumpType)

	if scope == ScopeDocument {
		warnCollateral(cfg.Manifest, doc, res.OldVersion)
	}

	// Every bump file is read and rewritten in memory before anything is
	// written, so a missing file aborts the run with the manifest untouched.
	pending, err := rewriteBumpFiles(cfg.BumpFiles, scope, res.OldVersion, res.NewVersion)
	if err != nil {
		return meta, err
	}

	if cfg.Git && !dry {
		tags, err := git.Tags(ctx)
		if err != nil {
			return meta, err
		}
		if err := CheckTagHistory(meta.Tag, tags); err != nil {
			return meta, err
		}
	}

	meta.UpdatedFiles = []string{cfg.Manifest}
	for _, p := range pending {
		meta.UpdatedFiles = append(meta.UpdatedFiles, p.store.Path)
	}
	if dry {
		return meta, nil
	}

	// 3. Persist and build.
	if err := store.Write(res.Document); err != nil {
		return meta, err
	}
	slog.Info("manifest updated", "path", cfg.Manifest, "version", meta.NewVersion)
	for _, p := range pending {
		if err := p.store.Write(p.content); err != nil {
			return meta, err
		}
		slog.Info("bump file updated", "path", p.store.Path, "version", meta.NewVersion)
	}

	build := BuildRunner{Args: cfg.Build}
	if err := build.Run(ctx); err != nil {
		return meta, err
	}

	if !cfg.Git {
		return meta, nil
	}

	// 4. Stage, commit, and tag.
	if err := git.Add(ctx, existing(staged)); err != nil {
		return meta, err
	}
	if err := git.Commit(ctx, meta.Tag); err != nil {
		return meta, err
	}
	if err := git.Tag(ctx, meta.Tag, meta.Tag); err != nil {
		return meta, err
	}
	slog.Info("tagged release", "tag", meta.Tag)

	return meta, nil
}

type pendingWrite struct {
	store   FileManifest
	content string
}

// rewriteBumpFiles applies the rewrite scope to each bump file. Files that do
// not contain the old version are skipped with a warning.
func rewriteBumpFiles(paths []string, scope RewriteScope, oldVersion, newVersion string) ([]pendingWrite, error) {
	var pending []pendingWrite
	for _, path := range paths {
		store := FileManifest{Path: path}
		content, err := store.Read()
		if err != nil {
			return nil, err
		}
		updated := scope.rewrite(content, oldVersion, newVersion)
		if updated == content {
			slog.Warn("bump file does not contain the current version", "path", path, "version", oldVersion)
			continue
		}
		pending = append(pending, pendingWrite{store: store, content: updated})
	}
	return pending, nil
}

// stagedFiles is the manifest, the lockfile, the bump files and any extra
// files, without duplicates.
func stagedFiles(cfg Config) []string {
	seen := make(map[string]bool)
	var files []string
	all := append([]string{cfg.Manifest, cfg.Lockfile}, cfg.BumpFiles...)
	for _, f := range append(all, cfg.Files...) {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		files = append(files, f)
	}
	return files
}

func existing(files []string) []string {
	var out []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			out = append(out, f)
		}
	}
	return out
}

// warnCollateral logs every occurrence of the old version outside the
// version line; a document-wide rewrite changes those too.
func warnCollateral(path, doc, oldVersion string) {
	for _, o := range CollateralOccurrences(doc, oldVersion) {
		slog.Warn("version text also rewritten outside the version line",
			"manifest", path,
			"line", o.Line,
			"column", o.Column,
			"text", o.Text)
	}
}
