// Package cargov bumps the semantic version recorded in a package manifest
// such as Cargo.toml.
//
// The core is a pure pipeline over manifest text:
//   - ExtractVersion finds the first line containing "version" and returns
//     the value after its last '='.
//   - ParseVersion and Version.String convert between text and a
//     major.minor.patch triple.
//   - Version.Bump advances one component for a BumpLabel (patch, minor, major).
//   - ValidateIncrease only accepts the next version along one axis: a higher
//     patch, a higher minor with patch 0, or a higher major with minor and
//     patch 0.
//   - RewriteDocument substitutes the old version text with the new one.
//
// BumpByLabel, BumpTo and Bump compose these and return a Result; they never
// touch the filesystem.
//
// Run and DryRun wrap the pipeline with the side effects of a release: read
// and write the manifest, run the build (cargo build --release by default),
// then stage, commit with the message "v<version>" and tag "v<version>".
//
// Usage Example:
//
//	cfg, err := cargov.LoadConfig(cargov.DefaultConfigFile)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	meta, err := cargov.Run(context.Background(), cfg, "patch")
//	if err != nil {
//	    log.Fatalf("version bump failed: %v", err)
//	}
//	log.Println("tagged", meta.Tag)
package cargov
