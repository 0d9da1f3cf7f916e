package config

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/speedometer/internal/controller"
	"github.com/iburimskiy/speedometer/internal/gauge"
)

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	hex, alpha := s, uint64(0xff)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("parse alpha of %q: %w", s, err)
		}
		hex, alpha = s[:7], a
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha)}, nil
}

// Style converts the palette into a gauge style. Empty colours stay unset so
// the gauge substitutes its defaults.
func (c GaugeConfig) Style() (gauge.Style, error) {
	s := gauge.Style{BorderWidth: c.BorderWidth}
	fields := []struct {
		name  string
		value string
		dst   *color.NRGBA
	}{
		{"gauge.background", c.Background, &s.Palette.Background},
		{"gauge.border", c.Border, &s.Palette.Border},
		{"gauge.needle", c.Needle, &s.Palette.Needle},
		{"gauge.text", c.Text, &s.Palette.Text},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		parsed, err := ParseColor(f.value)
		if err != nil {
			return gauge.Style{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = parsed
	}
	return s, nil
}

// Options converts the controller timings.
func (c ControllerConfig) Options() controller.Options {
	return controller.Options{
		LongPress:    time.Duration(c.LongPressMS) * time.Millisecond,
		PollInterval: time.Duration(c.PollMS) * time.Millisecond,
	}
}
