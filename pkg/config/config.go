// Package config loads the viewer configuration from a YAML file, creating
// the file with defaults when it does not exist.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the viewer configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Data   DataConfig   `yaml:"data"`
	Camera CameraConfig `yaml:"camera"`
	Log    LogConfig    `yaml:"log"`
}

// WindowConfig holds windowing settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// DataConfig points at the viewer's input data.
type DataConfig struct {
	Features string `yaml:"features"`
}

// CameraConfig tunes the orbit camera.
type CameraConfig struct {
	RotateSpeed float32 `yaml:"rotate_speed"`
	ZoomStep    float32 `yaml:"zoom_step"`
	StartHeight float32 `yaml:"start_height"`
	MinHeight   float32 `yaml:"min_height"`
	MaxHeight   float32 `yaml:"max_height"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration the viewer ships with.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  960,
			Height: 520,
			Title:  "globeview",
			VSync:  true,
		},
		Data: DataConfig{
			Features: "assets/features.geojson",
		},
		Camera: CameraConfig{
			RotateSpeed: 0.25,
			ZoomStep:    1.1,
			StartHeight: 2.0,
			MinHeight:   0.005,
			MaxHeight:   8.0,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration at path, layering it over the defaults. A
// missing file is not an error: the defaults are written there so the user
// has something to edit.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if writeErr := cfg.write(path); writeErr != nil {
			return nil, fmt.Errorf("failed to create default config: %w", writeErr)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Data.Features == "" {
		return fmt.Errorf("data.features must be set")
	}
	if c.Camera.MinHeight < 0 || (c.Camera.MaxHeight != 0 && c.Camera.MaxHeight <= c.Camera.MinHeight) {
		return fmt.Errorf("camera height bounds out of order: min %v, max %v", c.Camera.MinHeight, c.Camera.MaxHeight)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
