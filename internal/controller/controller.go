// Package controller turns raw button state into gauge gestures.
//
// Each frame the host reports whether the gas and stop buttons are down. A press
// released before the long-press timeout is a tap. A press held past it starts
// the matching hold transition, after which a watcher samples the button every
// poll interval and ends the hold on the first sample that finds it released.
package controller

import (
	"time"

	"go.uber.org/zap"
)

const (
	DefaultLongPress    = 500 * time.Millisecond
	DefaultPollInterval = 100 * time.Millisecond
)

// Gauge is the set of transitions the controller drives.
type Gauge interface {
	OnGasPress()
	OnGasTap()
	OnStopPress()
	OnStopTap()
	OnHoldReleased()
}

// Options tunes gesture timing. Zero fields use the defaults.
type Options struct {
	LongPress    time.Duration
	PollInterval time.Duration
	Logger       *zap.Logger
}

// Controller recognises taps and long presses on the gas and stop buttons.
type Controller struct {
	gas  pedal
	stop pedal
}

// New returns a controller that forwards gestures to g.
func New(g Gauge, opts Options) *Controller {
	if opts.LongPress <= 0 {
		opts.LongPress = DefaultLongPress
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	c := &Controller{}
	c.gas = pedal{
		name:      "gas",
		longPress: opts.LongPress,
		poll:      opts.PollInterval,
		tap:       g.OnGasTap,
		hold:      g.OnGasPress,
		release:   g.OnHoldReleased,
		logger:    opts.Logger,
	}
	c.stop = pedal{
		name:      "stop",
		longPress: opts.LongPress,
		poll:      opts.PollInterval,
		tap:       g.OnStopTap,
		hold:      g.OnStopPress,
		release:   g.OnHoldReleased,
		logger:    opts.Logger,
	}
	return c
}

// Update samples both buttons once. dt is the time since the previous sample.
func (c *Controller) Update(dt time.Duration, gasDown, stopDown bool) {
	c.gas.update(dt, gasDown)
	c.stop.update(dt, stopDown)
}

// Holding reports whether either button is in a long press.
func (c *Controller) Holding() bool {
	return c.gas.holding || c.stop.holding
}

type pedalState int

const (
	idle pedalState = iota
	pressed
)

// pedal tracks one button's gesture.
type pedal struct {
	name      string
	longPress time.Duration
	poll      time.Duration
	tap       func()
	hold      func()
	release   func()
	logger    *zap.Logger

	state   pedalState
	downFor time.Duration

	// hold watcher
	holding   bool
	sincePoll time.Duration
}

func (p *pedal) update(dt time.Duration, down bool) {
	if p.holding {
		p.watch(dt, down)
		return
	}

	switch p.state {
	case idle:
		if down {
			p.state = pressed
			p.downFor = 0
		}
	case pressed:
		if !down {
			p.state = idle
			p.logger.Debug("tap", zap.String("button", p.name))
			p.tap()
			return
		}
		p.downFor += dt
		if p.downFor >= p.longPress {
			p.state = idle
			p.holding = true
			p.sincePoll = 0
			p.logger.Debug("long press", zap.String("button", p.name))
			p.hold()
		}
	}
}

// watch polls the button while a hold is in progress.
func (p *pedal) watch(dt time.Duration, down bool) {
	p.sincePoll += dt
	if p.sincePoll < p.poll {
		return
	}
	p.sincePoll -= p.poll
	if down {
		return
	}
	p.holding = false
	p.logger.Debug("hold released", zap.String("button", p.name))
	p.release()
}
