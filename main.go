// Package main implements a CLI tool to bump the version in a Cargo.toml,
// build, stage changes, commit, and tag using git.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	cargov "github.com/bcomnes/cargov/pkg"
	"github.com/bcomnes/cargov/internal/logging"
)

const name = "cargo-v"

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      name,
		Version:   Version,
		Usage:     "Bump the version in Cargo.toml, commit it and tag it",
		ArgsUsage: "<patch|minor|major|X.Y.Z>",
		Description: `Bumps the version in a Cargo manifest (default: ./Cargo.toml), runs "cargo build --release"
so Cargo.lock picks up the new version, commits the manifest and lockfile with the message
"v<version>", and creates the annotated tag "v<version>".

Examples:
  cargo-v patch
  cargo-v minor
  cargo-v v1.2.0
  cargo-v --no-build --file CHANGELOG.md major
  cargo-v --bump-file README.md --bump-file crates/cli/Cargo.toml patch`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML config file",
				Value:   cargov.DefaultConfigFile,
			},
			&cli.StringFlag{
				Name:    "manifest",
				Aliases: []string{"m"},
				Usage:   "Path to the manifest containing the version line (default: ./Cargo.toml)",
			},
			&cli.StringSliceFlag{
				Name:  "file",
				Usage: "Additional file to stage and commit. May be repeated.",
			},
			&cli.StringSliceFlag{
				Name:  "bump-file",
				Usage: "Additional file in which to replace the old version with the new one. May be repeated.",
			},
			&cli.StringFlag{
				Name:  "rewrite",
				Usage: `Where to replace the old version: "document" (every occurrence) or "line" (version line only)`,
			},
			&cli.BoolFlag{
				Name:  "no-build",
				Usage: "Skip the build step",
			},
			&cli.BoolFlag{
				Name:  "no-git",
				Usage: "Only rewrite the manifest; do not stage, commit or tag",
			},
			&cli.BoolFlag{
				Name:  "allow-dirty",
				Usage: "Allow uncommitted changes to files that are not part of the bump",
			},
			&cli.BoolFlag{
				Name:  "dry",
				Usage: "Perform a dry run without modifying any files or git repository",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "warn",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
		},
		Action: runAction,
	}
}

// configFromCommand loads the config file and applies flag overrides.
func configFromCommand(cmd *cli.Command) (cargov.Config, error) {
	cfg, err := cargov.LoadConfig(cmd.String("config"))
	if err != nil {
		return cfg, err
	}
	if cmd.IsSet("manifest") {
		cfg.Manifest = cmd.String("manifest")
	}
	cfg.Files = append(cfg.Files, cmd.StringSlice("file")...)
	cfg.BumpFiles = append(cfg.BumpFiles, cmd.StringSlice("bump-file")...)
	if cmd.IsSet("rewrite") {
		scope, err := cargov.ParseRewriteScope(cmd.String("rewrite"))
		if err != nil {
			return cfg, err
		}
		cfg.Rewrite = scope
	}
	if cmd.Bool("no-build") {
		cfg.Build = nil
	}
	if cmd.Bool("no-git") {
		cfg.Git = false
	}
	if cmd.Bool("allow-dirty") {
		cfg.AllowDirty = true
	}
	return cfg, nil
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	logging.SetDefaultStructuredLoggerWithLevel(name, Version, cmd.String("log-level"))

	if cmd.Args().Len() != 1 {
		return fmt.Errorf("<version-bump> positional argument is required (see %s --help)", name)
	}
	versionArg := cmd.Args().First()

	cfg, err := configFromCommand(cmd)
	if err != nil {
		return err
	}

	dry := cmd.Bool("dry")
	var meta cargov.VersionMeta
	if dry {
		meta, err = cargov.DryRun(ctx, cfg, versionArg)
	} else {
		meta, err = cargov.Run(ctx, cfg, versionArg)
	}
	if err != nil {
		return err
	}

	printSummary(cmd.Writer, meta, dry)
	return nil
}

func printSummary(w io.Writer, meta cargov.VersionMeta, dry bool) {
	if dry {
		fmt.Fprintln(w, "Dry run complete, no files were modified.")
	} else {
		fmt.Fprintln(w, "Version bump successful!")
	}
	fmt.Fprintf(w, "Old Version: %s\n", meta.OldVersion)
	fmt.Fprintf(w, "New Version: %s\n", meta.NewVersion)
	fmt.Fprintf(w, "Bump Type:   %s\n", meta.BumpType)
	fmt.Fprintf(w, "Tag:         %s\n", meta.Tag)

	if len(meta.UpdatedFiles) > 0 {
		if dry {
			fmt.Fprintln(w, "Files that would be updated:")
		} else {
			fmt.Fprintln(w, "Files updated:")
		}
		for _, f := range meta.UpdatedFiles {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
