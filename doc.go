// Package main implements the cargo-v CLI tool.
//
// The cargo-v tool automates semantic version bumping for Rust crates. It reads
// the version from a manifest (default "./Cargo.toml"), bumps it according to a
// directive ("patch", "minor", "major", or an explicit version), writes the
// manifest back, runs "cargo build --release" so Cargo.lock is refreshed,
// stages the manifest and lockfile, commits with the message "v<version>" and
// creates the annotated tag "v<version>".
//
// Command Usage:
//
//	cargo-v [flags] <version-bump>
//
// Flags:
//
//	--config, -c:   YAML config file (default ".cargo-v.yaml", optional).
//	--manifest, -m: Path to the manifest containing the version line.
//	--file:         Additional file to stage with the manifest. May be repeated.
//	--bump-file:    Additional file in which the old version text is replaced
//	                with the new one and staged. May be repeated.
//	--rewrite:      "document" replaces every occurrence of the old version text,
//	                "line" only the version line.
//	--no-build:     Skip the build step.
//	--no-git:       Only rewrite the manifest.
//	--allow-dirty:  Do not refuse to run with unrelated uncommitted changes.
//	--dry:          Compute the new version without writing anything.
//	--log-level:    debug, info, warn or error (also read from LOG_LEVEL).
//	--version:      Displays the version of the cargo-v CLI tool and exits.
//
// Examples:
//
//	# Bump the patch version (e.g. 1.2.3 → 1.2.4)
//	cargo-v patch
//
//	# Bump the minor version (e.g. 1.2.3 → 1.3.0)
//	cargo-v minor
//
//	# Bump the major version (e.g. 1.2.3 → 2.0.0)
//	cargo-v major
//
//	# Set an explicit version; it must be the next patch, minor or major step
//	cargo-v v1.3.0
//
// The config file accepts the keys manifest, lockfile, files, bump_files, build, git,
// tag_prefix, rewrite and allow_dirty.
//
// For the library API see the "pkg" package.
package main
