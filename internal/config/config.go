// Package config loads the klondike HCL configuration file.
//
// A complete file looks like:
//
//	game {
//	  seed               = 0
//	  strict_foundations = true
//	  stats_file         = ".klondike_stats.hcl"
//	}
//
//	ui {
//	  mode         = "tui"
//	  color        = "auto"
//	  history_file = ".klondike_history"
//	}
//
//	log {
//	  level = "warn"
//	  file  = "klondike.log"
//	}
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete configuration
type Config struct {
	Game GameSettings
	UI   UISettings
	Log  LogSettings
}

// file is the on-disk shape; every block may be left out
type file struct {
	Game *GameSettings `hcl:"game,block"`
	UI   *UISettings   `hcl:"ui,block"`
	Log  *LogSettings  `hcl:"log,block"`
}

// GameSettings contains rule settings
type GameSettings struct {
	Seed              int64  `hcl:"seed,optional"`
	StrictFoundations *bool  `hcl:"strict_foundations,optional"`
	StatsFile         string `hcl:"stats_file,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	Mode        string `hcl:"mode,optional"`
	Color       string `hcl:"color,optional"`
	HistoryFile string `hcl:"history_file,optional"`
}

// LogSettings contains logging settings
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// UI modes
const (
	ModeTUI   = "tui"
	ModePlain = "plain"
)

// Colour settings
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns the default configuration
func Default() *Config {
	strict := true
	return &Config{
		Game: GameSettings{
			Seed:              0,
			StrictFoundations: &strict,
		},
		UI: UISettings{
			Mode:        ModeTUI,
			Color:       ColorAuto,
			HistoryFile: "",
		},
		Log: LogSettings{
			Level: "warn",
			File:  "klondike.log",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults; a file that exists but does not parse is an error.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes configuration from HCL source held in memory. Settings that
// are left out keep their defaults.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()
	if raw.Game != nil {
		config.Game.Seed = raw.Game.Seed
		if raw.Game.StrictFoundations != nil {
			config.Game.StrictFoundations = raw.Game.StrictFoundations
		}
		config.Game.StatsFile = raw.Game.StatsFile
	}
	if raw.UI != nil {
		if raw.UI.Mode != "" {
			config.UI.Mode = raw.UI.Mode
		}
		if raw.UI.Color != "" {
			config.UI.Color = raw.UI.Color
		}
		config.UI.HistoryFile = raw.UI.HistoryFile
	}
	if raw.Log != nil {
		if raw.Log.Level != "" {
			config.Log.Level = raw.Log.Level
		}
		if raw.Log.File != "" {
			config.Log.File = raw.Log.File
		}
	}
	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.UI.Mode {
	case ModeTUI, ModePlain:
	default:
		return fmt.Errorf("invalid ui mode: %s", c.UI.Mode)
	}

	switch c.UI.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color setting: %s", c.UI.Color)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Log.File == "" {
		return fmt.Errorf("log file is required")
	}

	return nil
}

// Strict reports whether foundations enforce suits
func (c *Config) Strict() bool {
	return c.Game.StrictFoundations == nil || *c.Game.StrictFoundations
}

// SetStrict overrides the foundation suit rule
func (c *Config) SetStrict(strict bool) {
	c.Game.StrictFoundations = &strict
}

// LogLevel returns the parsed log level, falling back to warn
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.WarnLevel
	}
	return level
}
