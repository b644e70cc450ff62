package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type InputConfig struct {
	RepeatInitialMs  int    `toml:"repeat_initial_ms"`
	RepeatIntervalMs int    `toml:"repeat_interval_ms"`
	HistoryDepth     int    `toml:"history_depth"`
	MaxWidthChars    int    `toml:"max_width_chars"`
	MaxChars         int    `toml:"max_chars"`
	TabSize          int    `toml:"tab_size"`
	Ellipsis         string `toml:"ellipsis"`
}

type Config struct {
	Window WindowConfig `toml:"window"`
	Input  InputConfig  `toml:"input"`
	Sound  bool         `toml:"sound"`
}

func defaultConfig() Config {
	return Config{
		Window: WindowConfig{Title: "FieldBox", Width: 900, Height: 560},
		Input: InputConfig{
			RepeatInitialMs:  400,
			RepeatIntervalMs: 100,
			HistoryDepth:     50,
			MaxWidthChars:    24,
			MaxChars:         64,
			TabSize:          4,
			Ellipsis:         "...",
		},
		Sound: true,
	}
}

// LoadConfig reads fieldbox.toml from the working directory. A missing file
// is not an error, the defaults apply.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return cfg, fmt.Errorf("config %s: window size must be positive", path)
	}
	if cfg.Input.RepeatInitialMs <= 0 || cfg.Input.RepeatIntervalMs <= 0 {
		return cfg, fmt.Errorf("config %s: repeat timings must be positive", path)
	}
	if cfg.Input.Ellipsis == "" {
		return cfg, fmt.Errorf("config %s: ellipsis must not be empty", path)
	}
	return cfg, nil
}
