// Package gauge implements an animated speedometer widget.
//
// A Gauge owns the needle speed and moves it through timed transitions
// (hold to accelerate, tap to step, hold to brake, release to coast). All work
// happens on the caller's frame clock: Update advances the active transition and
// the warning pulse, Render draws the current state onto a Surface. Nothing in
// this package starts goroutines or blocks.
package gauge

import (
	"image/color"
	"math"
	"time"

	"go.uber.org/zap"
)

const (
	// MaxSpeed is the top of the dial in km/h.
	MaxSpeed = 180
	// WarningSpeed is the speed at and above which the needle pulses.
	WarningSpeed = 100

	// GasStep is the speed added by a gas tap.
	GasStep = 3
	// StopStep is the speed shed by a stop tap.
	StopStep = 6

	// FullAccelerateTime covers 0 to MaxSpeed while the gas is held.
	FullAccelerateTime = 10 * time.Second
	// FullDecelerateTime covers MaxSpeed to 0 while the brake is held.
	FullDecelerateTime = 5 * time.Second
	// FullCoastTime covers MaxSpeed to 0 with no input.
	FullCoastTime = 60 * time.Second

	// PulsePeriod is one cycle of the warning colour pulse.
	PulsePeriod = 400 * time.Millisecond

	// DefaultBorderWidth is the dial outline width when the style sets none.
	DefaultBorderWidth = 10
	// DefaultSize is the dial size before the first measure.
	DefaultSize = 800
)

// Gauge is a speedometer widget. The zero value is not usable; call New.
type Gauge struct {
	style      Style
	logger     *zap.Logger
	invalidate func()

	speed  float64
	active *motion
	pulse  *pulse
	needle color.NRGBA

	geom Geometry
}

// Option customises a Gauge.
type Option func(*Gauge)

// WithLogger sets the logger used for geometry and state events.
func WithLogger(l *zap.Logger) Option {
	return func(g *Gauge) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithInvalidate registers fn to be called whenever the gauge needs redrawing.
func WithInvalidate(fn func()) Option {
	return func(g *Gauge) { g.invalidate = fn }
}

// New returns a gauge at rest with speed 0.
func New(style Style, opts ...Option) *Gauge {
	g := &Gauge{
		style:      style.withDefaults(),
		logger:     zap.NewNop(),
		invalidate: func() {},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.needle = g.style.Palette.Needle
	g.SetSize(DefaultSize)
	return g
}

// Speed returns the current needle speed in km/h.
func (g *Gauge) Speed() float64 { return g.speed }

// Transition returns the kind of the running transition, or None.
func (g *Gauge) Transition() Transition {
	if g.active == nil {
		return None
	}
	return g.active.kind
}

// Remaining returns the time left on the running transition.
func (g *Gauge) Remaining() time.Duration {
	if g.active == nil {
		return 0
	}
	return g.active.remaining()
}

// Warning reports whether the needle warning pulse is running.
func (g *Gauge) Warning() bool { return g.pulse != nil }

// NeedleColor returns the colour the needle is drawn with right now.
func (g *Gauge) NeedleColor() color.NRGBA { return g.needle }

// Style returns the style the gauge was built with, defaults applied.
func (g *Gauge) Style() Style { return g.style }

// OnGasPress accelerates toward MaxSpeed until cancelled or complete.
func (g *Gauge) OnGasPress() {
	d := scaled(FullAccelerateTime, 1-g.speed/MaxSpeed)
	g.start(AccelerateHold, MaxSpeed, d, EaseInOut, nil)
}

// OnGasTap adds GasStep km/h, then coasts.
func (g *Gauge) OnGasTap() {
	to := math.Min(g.speed+GasStep, MaxSpeed)
	d := scaled(FullAccelerateTime/MaxSpeed, to-g.speed)
	g.start(AccelerateStep, to, d, EaseInOut, g.OnHoldReleased)
}

// OnStopPress brakes toward 0 until cancelled or complete.
func (g *Gauge) OnStopPress() {
	d := scaled(FullDecelerateTime, g.speed/MaxSpeed)
	g.start(DecelerateHold, 0, d, Linear, nil)
}

// OnStopTap removes StopStep km/h, then coasts.
func (g *Gauge) OnStopTap() {
	to := math.Max(g.speed-StopStep, 0)
	d := scaled(FullDecelerateTime/MaxSpeed, g.speed-to)
	g.start(DecelerateStep, to, d, Linear, g.OnHoldReleased)
}

// OnHoldReleased lets the needle coast down to 0.
func (g *Gauge) OnHoldReleased() {
	d := scaled(FullCoastTime, g.speed/MaxSpeed)
	g.start(CoastDown, 0, d, DecelerateOut, nil)
}

// Update advances the running transition and the warning pulse by dt.
func (g *Gauge) Update(dt time.Duration) {
	if dt <= 0 {
		return
	}
	if g.pulse != nil {
		g.needle = g.pulse.advance(dt)
		g.invalidate()
	}
	m := g.active
	if m == nil {
		return
	}
	done := m.advance(dt)
	g.tick(m.value())
	if done && g.active == m {
		g.complete(m)
	}
}

func (g *Gauge) start(kind Transition, to float64, d time.Duration, easing Easing, onComplete func()) {
	g.cancel()
	m := &motion{
		kind:       kind,
		from:       g.speed,
		to:         to,
		duration:   d,
		easing:     easing,
		onComplete: onComplete,
	}
	g.active = m
	g.tick(m.value())
	if d <= 0 {
		g.complete(m)
	}
}

func (g *Gauge) complete(m *motion) {
	g.active = nil
	if m.onComplete != nil {
		m.onComplete()
	}
}

// cancel stops the running transition and the pulse.
func (g *Gauge) cancel() {
	g.active = nil
	if g.pulse != nil {
		g.pulse = nil
		g.needle = g.style.Palette.Needle
	}
}

// tick is applied to every value a transition produces.
func (g *Gauge) tick(v float64) {
	g.apply(math.Trunc(v))
}

// apply sets the speed and starts or stops the warning pulse to match it.
func (g *Gauge) apply(v float64) {
	g.speed = v
	if v >= WarningSpeed {
		if g.pulse == nil {
			g.pulse = newPulse(g.style.Palette.Needle, g.style.Palette.Background, PulsePeriod)
			g.needle = g.pulse.color()
		}
	} else if g.pulse != nil {
		g.pulse = nil
		g.needle = g.style.Palette.Needle
	}
	g.invalidate()
}
