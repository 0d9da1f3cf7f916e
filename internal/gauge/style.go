package gauge

import (
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Fallback colours used when a palette entry is left unset.
var (
	DefaultBackground = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	DefaultBorder     = color.NRGBA{A: 0xff}
	DefaultNeedle     = color.NRGBA{R: 0xff, A: 0xff}
	DefaultText       = color.NRGBA{A: 0xff}
)

// Palette holds the four colours a gauge is drawn with.
// A zero colour means "unset" and is replaced by the matching default.
type Palette struct {
	Background color.NRGBA
	Border     color.NRGBA
	Needle     color.NRGBA
	Text       color.NRGBA
}

// Style configures a gauge. It is copied at construction and never changes after.
// A zero palette colour means unset and is replaced by its default.
type Style struct {
	Palette     Palette
	BorderWidth float32
}

// DefaultStyle returns the style used when nothing is configured.
func DefaultStyle() Style {
	return Style{
		Palette: Palette{
			Background: DefaultBackground,
			Border:     DefaultBorder,
			Needle:     DefaultNeedle,
			Text:       DefaultText,
		},
		BorderWidth: DefaultBorderWidth,
	}
}

func (s Style) withDefaults() Style {
	p := &s.Palette
	orDefault(&p.Background, DefaultBackground)
	orDefault(&p.Border, DefaultBorder)
	orDefault(&p.Needle, DefaultNeedle)
	orDefault(&p.Text, DefaultText)
	if s.BorderWidth <= 0 {
		s.BorderWidth = DefaultBorderWidth
	}
	return s
}

func orDefault(c *color.NRGBA, def color.NRGBA) {
	if *c == (color.NRGBA{}) {
		*c = def
	}
}

// pulse oscillates the needle colour between two colours, restarting every period.
type pulse struct {
	from, to   colorful.Color
	fromA, toA uint8
	period     time.Duration
	elapsed    time.Duration
}

func newPulse(from, to color.NRGBA, period time.Duration) *pulse {
	return &pulse{
		from:   toColorful(from),
		to:     toColorful(to),
		fromA:  from.A,
		toA:    to.A,
		period: period,
	}
}

func (p *pulse) advance(dt time.Duration) color.NRGBA {
	p.elapsed = (p.elapsed + dt) % p.period
	return p.color()
}

func (p *pulse) color() color.NRGBA {
	t := EaseInOut(float64(p.elapsed) / float64(p.period))
	r, g, b := p.from.BlendLinearRgb(p.to, t).Clamped().RGB255()
	a := float64(p.fromA) + (float64(p.toA)-float64(p.fromA))*t
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a + 0.5)}
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
