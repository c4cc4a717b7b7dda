// Package config loads boadap's own tool configuration.
//
// The configuration is a small optional TOML file; a missing file is not an
// error and yields the defaults. It never contains launch configurations
// (those are per-session JSON handled by the launch package), only
// tool-level overrides for how the adapter executable is found and started.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFileName is the configuration file looked up in the working
// directory when no explicit path is given.
const DefaultFileName = ".boadap.toml"

// Settings are boadap's tool-level options.
type Settings struct {
	// AdapterPath, when set, is used as the boa executable verbatim and
	// workspace location is skipped entirely.
	AdapterPath string `toml:"adapter_path"`

	// AdapterArgs are extra arguments appended to the adapter command line
	// after the debugger flag.
	AdapterArgs []string `toml:"adapter_args"`

	// FallbackName is the executable name for ambient PATH lookup.
	FallbackName string `toml:"fallback_name"`

	// WorkspaceRoots are the workspace roots handed to the locator.
	WorkspaceRoots []string `toml:"workspace_roots"`
}

// Default returns the default settings.
func Default() *Settings {
	return &Settings{
		FallbackName: "boa",
	}
}

// Load reads settings from path. An empty path means DefaultFileName in the
// current directory. A missing file yields the defaults without error.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	settings := Default()
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if settings.FallbackName == "" {
		settings.FallbackName = "boa"
	}

	return settings, nil
}
