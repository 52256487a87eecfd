// Package config loads the optional TOML configuration file. Flags and
// environment take precedence over the file, the file over the defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the server settings the operator can tune.
type Config struct {
	Root     string `toml:"root"`      // course directory to scan
	Port     string `toml:"port"`      // TCP port to listen on
	StateDir string `toml:"state_dir"` // directory holding progress.json
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:     "8000",
		StateDir: ".",
	}
}

// Load reads a TOML config file over the defaults. A missing file at the
// default location is fine; an explicitly named file must exist.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return cfg, fmt.Errorf("load config %s: unknown key %q", path, undec[0].String())
	}
	return cfg, nil
}
