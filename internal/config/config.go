package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/speedometer/internal/logging"
)

const (
	WindowWidth  = 800
	WindowHeight = 600

	// Button dimensions
	ButtonWidth  = 160
	ButtonHeight = 64
	ButtonGap    = 40
	ButtonMargin = 40

	// Height of the window strip reserved below the gauge
	ControlsHeight = 140

	DefaultToneHz = 880
	DefaultVolume = 0.2
)

// Config is the YAML configuration for the speedometer.
type Config struct {
	Gauge      GaugeConfig      `yaml:"gauge"`
	Controller ControllerConfig `yaml:"controller"`
	Window     WindowConfig     `yaml:"window"`
	Audio      AudioConfig      `yaml:"audio"`
	State      StateConfig      `yaml:"state"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GaugeConfig holds the gauge palette. Colours are "#rrggbb" or "#rrggbbaa";
// empty strings keep the built-in defaults. Fully transparent black
// ("#00000000") is indistinguishable from unset and also gets the default.
type GaugeConfig struct {
	Background  string  `yaml:"background"`
	Border      string  `yaml:"border"`
	Needle      string  `yaml:"needle"`
	Text        string  `yaml:"text"`
	BorderWidth float32 `yaml:"border_width"`
}

type ControllerConfig struct {
	LongPressMS int `yaml:"long_press_ms"`
	PollMS      int `yaml:"poll_ms"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	ToneHz  float64 `yaml:"tone_hz"`
	Volume  float64 `yaml:"volume"`
}

// StateConfig names the file the gauge state is restored from at startup and
// saved to on exit. Empty disables it.
type StateConfig struct {
	File string `yaml:"file"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a fully populated Config.
func Default() Config {
	return Config{
		Gauge: GaugeConfig{
			BorderWidth: 10,
		},
		Controller: ControllerConfig{
			LongPressMS: 500,
			PollMS:      100,
		},
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Speedometer - hold or tap GAS/STOP (Up/Down), F5 save, F9 load, Esc quit",
		},
		Audio: AudioConfig{
			Enabled: true,
			ToneHz:  DefaultToneHz,
			Volume:  DefaultVolume,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file on top of the defaults.
// Unknown fields are rejected.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, errors.New("config path is empty")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML config bytes on top of the defaults and validates the result.
func Parse(b []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and colour syntax.
func (c Config) Validate() error {
	if c.Gauge.BorderWidth < 0 {
		return fmt.Errorf("gauge.border_width must be >= 0, got %v", c.Gauge.BorderWidth)
	}
	if _, err := c.Gauge.Style(); err != nil {
		return err
	}
	if c.Controller.LongPressMS < 0 {
		return fmt.Errorf("controller.long_press_ms must be >= 0, got %d", c.Controller.LongPressMS)
	}
	if c.Controller.PollMS < 0 {
		return fmt.Errorf("controller.poll_ms must be >= 0, got %d", c.Controller.PollMS)
	}
	if c.Window.Width <= 0 || c.Window.Height <= ControlsHeight {
		return fmt.Errorf("window must be at least 1x%d, got %dx%d", ControlsHeight+1, c.Window.Width, c.Window.Height)
	}
	if c.Audio.ToneHz <= 0 {
		return fmt.Errorf("audio.tone_hz must be > 0, got %v", c.Audio.ToneHz)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume)
	}
	if c.Logging.Level != "" {
		if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("logging.level: %w", err)
		}
	}
	return nil
}
