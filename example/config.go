package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/go-theft-auto/floatmenu"
)

// Config holds the demo settings loaded from demo.toml.
type Config struct {
	Window  WindowConfig `toml:"window"`
	Menu    MenuConfig   `toml:"menu"`
	Style   string       `toml:"style"`
	Verbose bool         `toml:"verbose"`
}

// WindowConfig controls the GLFW window.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// MenuConfig controls the spawn menu layout.
type MenuConfig struct {
	Columns    int     `toml:"columns"`
	Padding    float32 `toml:"padding"`
	Searchable bool    `toml:"searchable"`
	MaxHeight  float32 `toml:"max_height"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "floatmenu example",
		},
		Menu: MenuConfig{
			Columns:    2,
			Padding:    6,
			Searchable: true,
		},
		Style: "gta",
	}
}

// LoadConfig reads a TOML config file. A missing file is not an error; the
// defaults are returned instead.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}

	return cfg, nil
}

// styleFor maps a config style name to a Style.
func styleFor(name string) (floatmenu.Style, error) {
	switch name {
	case "", "default":
		return floatmenu.DefaultStyle(), nil
	case "gta":
		return floatmenu.GTAStyle(), nil
	case "dark":
		return floatmenu.DarkStyle(), nil
	default:
		return floatmenu.Style{}, fmt.Errorf("unknown style %q (want default, gta, or dark)", name)
	}
}
