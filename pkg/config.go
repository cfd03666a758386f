package cargov

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read by the CLI when no -config flag is given.
const DefaultConfigFile = ".cargo-v.yaml"

// Config controls Run and DryRun.
type Config struct {
	// Manifest is the path of the manifest holding the version line.
	Manifest string `yaml:"manifest"`
	// Lockfile is staged alongside the manifest when it exists.
	Lockfile string `yaml:"lockfile"`
	// Files are additional paths to stage and commit.
	Files []string `yaml:"files"`
	// BumpFiles are additional files whose occurrences of the old version
	// are rewritten with the same scope as the manifest, then staged.
	BumpFiles []string `yaml:"bump_files"`
	// Build is the argv run after the manifest is written. Empty disables it.
	Build []string `yaml:"build"`
	// Git enables staging, committing and tagging.
	Git bool `yaml:"git"`
	// TagPrefix is prepended to the version in the commit message and tag.
	TagPrefix string `yaml:"tag_prefix"`
	// Rewrite is "document" or "line".
	Rewrite RewriteScope `yaml:"rewrite"`
	// AllowDirty skips the uncommitted-files check.
	AllowDirty bool `yaml:"allow_dirty"`
}

// DefaultConfig returns the settings used for a Cargo project.
func DefaultConfig() Config {
	return Config{
		Manifest:  "./Cargo.toml",
		Lockfile:  "./Cargo.lock",
		Build:     []string{"cargo", "build", "--release"},
		Git:       true,
		TagPrefix: "v",
		Rewrite:   ScopeDocument,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig. A missing
// file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("%w: reading config %s: %w", ErrIO, path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields that cannot be defaulted.
func (c Config) Validate() error {
	if c.Manifest == "" {
		return errors.New("manifest path is empty")
	}
	if _, err := ParseRewriteScope(string(c.Rewrite)); err != nil {
		return err
	}
	return nil
}
