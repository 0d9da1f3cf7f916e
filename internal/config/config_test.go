package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/speedometer/internal/gauge"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParse_EmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse([]byte(`
gauge:
  needle: "#00ff00"
  border_width: 4
controller:
  long_press_ms: 300
audio:
  enabled: false
state:
  file: /tmp/gauge.yaml
`))
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", cfg.Gauge.Needle)
	assert.Equal(t, float32(4), cfg.Gauge.BorderWidth)
	assert.Equal(t, 300, cfg.Controller.LongPressMS)
	assert.Equal(t, 100, cfg.Controller.PollMS)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, float64(DefaultToneHz), cfg.Audio.ToneHz)
	assert.Equal(t, "/tmp/gauge.yaml", cfg.State.File)
}

func TestParse_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown field":  "gauge:\n  colour: red\n",
		"bad colour":     "gauge:\n  needle: red\n",
		"bad alpha":      "gauge:\n  text: \"#000000zz\"\n",
		"negative width": "gauge:\n  border_width: -1\n",
		"tiny window":    "window:\n  height: 100\n",
		"loud":           "audio:\n  volume: 2\n",
		"log level":      "logging:\n  level: chatty\n",
		"not yaml":       "gauge: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load("")
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ff0000", color.NRGBA{R: 0xff, A: 0xff}},
		{"#0f0", color.NRGBA{G: 0xff, A: 0xff}},
		{"#11223380", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x80}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestGaugeStyle_UnsetColoursFallBack(t *testing.T) {
	s, err := GaugeConfig{Needle: "#0000ff"}.Style()
	require.NoError(t, err)

	g := gauge.New(s)
	p := g.Style().Palette
	assert.Equal(t, color.NRGBA{B: 0xff, A: 0xff}, p.Needle)
	assert.Equal(t, gauge.DefaultBackground, p.Background)
	assert.Equal(t, gauge.DefaultBorder, p.Border)
	assert.Equal(t, gauge.DefaultText, p.Text)
	assert.Equal(t, float32(gauge.DefaultBorderWidth), g.Style().BorderWidth)
}

func TestGaugeStyle_TransparentBlackReadsAsUnset(t *testing.T) {
	s, err := GaugeConfig{Border: "#00000000"}.Style()
	require.NoError(t, err)
	assert.Equal(t, gauge.DefaultBorder, gauge.New(s).Style().Palette.Border)
}

func TestValidate_AcceptsEveryLoggerLevel(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "warning", "error"} {
		cfg := Default()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), level)
	}
}

func TestControllerOptions(t *testing.T) {
	opts := Default().Controller.Options()
	assert.Equal(t, 500*time.Millisecond, opts.LongPress)
	assert.Equal(t, 100*time.Millisecond, opts.PollInterval)
}
