// Package config loads user defaults from an optional TOML file.
//
// The file lives at <config dir>/config.toml and every key is optional;
// missing keys keep their built-in defaults and command-line flags override
// whatever the file provides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/khemadeva/lighttable/pkg/layout"
)

// FileName is the config file name inside the application config directory.
const FileName = "config.toml"

// Config holds the user-tunable defaults.
type Config struct {
	// Blender is the host binary to launch. Empty means resolve via
	// $BLENDER and then PATH.
	Blender string `toml:"blender"`

	// Terminal optionally wraps the launch in a terminal emulator.
	Terminal string `toml:"terminal"`

	Layout Layout `toml:"layout"`
	Render Render `toml:"render"`
}

// Layout mirrors layout.Params; MaxWidth 0 keeps column mode.
type Layout struct {
	Margin   float64 `toml:"margin"`
	OffsetX  float64 `toml:"offset_x"`
	OffsetY  float64 `toml:"offset_y"`
	MaxWidth float64 `toml:"max_width"`
	Columns  int     `toml:"columns"`
}

// Render holds the base render resolution and the compositor background.
type Render struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Layout: Layout{
			Margin:  layout.DefaultMargin,
			OffsetX: layout.DefaultOffsetX,
			OffsetY: layout.DefaultOffsetY,
			Columns: layout.DefaultColumns,
		},
		Render: Render{
			Width:      layout.DefaultBaseResX,
			Height:     layout.DefaultBaseResY,
			Background: "#000000",
		},
	}
}

// Load reads the config file at path on top of the defaults. A missing file
// is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Params converts the layout section to planner parameters.
func (c Config) Params() layout.Params {
	return layout.Params{
		Margin:   c.Layout.Margin,
		OffsetX:  c.Layout.OffsetX,
		OffsetY:  c.Layout.OffsetY,
		MaxWidth: c.Layout.MaxWidth,
		Columns:  c.Layout.Columns,
	}
}
