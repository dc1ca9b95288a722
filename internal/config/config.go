// Package config loads an Options snapshot from a TOML file on disk,
// resolving its path the same XDG way niri itself does. Unlike
// internal/scenario, which decodes a throwaway fixture per test run, this
// is the persistent settings path: a missing file gets a commented
// default written out, and an existing one is decoded in place over
// options.Default() so any field the file omits keeps its default value.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/Gaurav-Gosain/niri-layout/internal/options"
)

const relPath = "niri-layout/config.toml"

// Path returns the config file's location, searching existing XDG config
// directories first and falling back to the primary one if none exists.
func Path() (string, error) {
	if p, err := xdg.SearchConfigFile(relPath); err == nil {
		return p, nil
	}
	return xdg.ConfigFile(relPath)
}

// Load resolves Path and decodes it into an *options.Options built from
// options.Default(). If no config file exists yet, one is written with
// Default()'s values and returned unchanged.
func Load() (*options.Options, error) {
	p, searchErr := xdg.SearchConfigFile(relPath)
	if searchErr != nil {
		return createDefault()
	}

	// #nosec G304 - p came from an XDG config search, reading it is the point.
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	opts := options.Default()
	if err := toml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", p, err)
	}
	return opts, nil
}

func createDefault() (*options.Options, error) {
	opts := options.Default()

	p, err := xdg.ConfigFile(relPath)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0750); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("marshaling default config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# niri-layout configuration\n")
	sb.WriteString("# Fields omitted here keep their built-in defaults.\n")
	sb.WriteString("# Location: " + p + "\n\n")
	sb.Write(data)

	if err := os.WriteFile(p, []byte(sb.String()), 0600); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}
	return opts, nil
}
