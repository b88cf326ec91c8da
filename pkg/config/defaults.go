package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mvngraph/mvngraph/pkg/errors"
)

// appName is the application name used for the XDG config directory.
const appName = "mvngraph"

// Defaults holds optional values loaded from a TOML defaults file. A
// defaults file can pre-fill everything except the package coordinate;
// see Flags.ApplyDefaults for the merge rules.
type Defaults struct {
	URL      string `toml:"url"`
	TestRepo string `toml:"test-repo"`
	MaxDepth int    `toml:"max-depth"`
	Tree     bool   `toml:"tree"`
	Filter   string `toml:"filter"`
}

// DefaultsPath returns the standard defaults file location using the XDG
// convention (~/.config/mvngraph/config.toml).
func DefaultsPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// LoadDefaults reads a TOML defaults file. Unknown keys are rejected so a
// typo in the file surfaces instead of being silently ignored. A missing
// file is reported with os.ErrNotExist in the chain; callers decide whether
// that is fatal.
func LoadDefaults(path string) (*Defaults, error) {
	var d Defaults
	meta, err := toml.DecodeFile(path, &d)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "defaults file %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"defaults file %s: unknown key %q", path, undecoded[0].String())
	}
	return &d, nil
}
