// Package config holds the editor preferences stored in config/editor.toml.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the config file, relative to the process working directory.
const DefaultPath = "config/editor.toml"

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window WindowConfig `toml:"window"`
	Editor EditorConfig `toml:"editor"`
	Assets AssetsConfig `toml:"assets"`
}

type WindowConfig struct {
	Width     int32  `toml:"width"`
	Height    int32  `toml:"height"`
	Title     string `toml:"title"`
	TargetFPS int32  `toml:"target_fps"`
}

type EditorConfig struct {
	// HistoryLimit caps the undo stack; 0 means unbounded.
	HistoryLimit    int     `toml:"history_limit"`
	DuplicateOffset float32 `toml:"duplicate_offset"`
	LogLevel        string  `toml:"log_level"`
	// StartupScript is a Lua macro run once at startup.
	StartupScript string `toml:"startup_script,omitempty"`
	// Sounds plays a short cue on add, delete, undo and redo.
	Sounds      bool    `toml:"sounds"`
	SoundVolume float32 `toml:"sound_volume"`
}

type AssetsConfig struct {
	MushroomModel string `toml:"mushroom_model"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Scene Editor",
			TargetFPS: 60,
		},
		Editor: EditorConfig{
			HistoryLimit:    100,
			DuplicateOffset: 2,
			LogLevel:        "info",
			SoundVolume:     0.3,
		},
		Assets: AssetsConfig{
			MushroomModel: "assets/models/mushroom.glb",
		},
	}
}

// Load reads the config at path. A missing file is not an error and gives
// Default(). Keys absent from the file keep their default values. An
// unreadable or invalid file returns Default() along with the error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every bad field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height))
	}
	if c.Window.TargetFPS < 0 {
		errs = append(errs, fmt.Errorf("%w: target_fps %d", ErrInvalid, c.Window.TargetFPS))
	}
	if c.Editor.HistoryLimit < 0 {
		errs = append(errs, fmt.Errorf("%w: history_limit %d", ErrInvalid, c.Editor.HistoryLimit))
	}
	if off := float64(c.Editor.DuplicateOffset); math.IsNaN(off) || math.IsInf(off, 0) {
		errs = append(errs, fmt.Errorf("%w: duplicate_offset %v", ErrInvalid, off))
	}
	if v := c.Editor.SoundVolume; !(v >= 0 && v <= 1) {
		errs = append(errs, fmt.Errorf("%w: sound_volume %v", ErrInvalid, v))
	}
	if _, err := ParseLevel(c.Editor.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseLevel maps "debug", "info", "warn" or "error" to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalid, s)
	}
	return l, nil
}
