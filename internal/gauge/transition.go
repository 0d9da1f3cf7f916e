package gauge

import (
	"math"
	"time"
)

// Easing maps linear progress t in [0, 1] to curve progress.
type Easing func(t float64) float64

// EaseInOut starts and ends slowly and is fastest in the middle.
func EaseInOut(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// Linear progresses at a constant rate.
func Linear(t float64) float64 { return t }

// DecelerateOut starts at full rate and slows to a stop.
func DecelerateOut(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Transition identifies which timed motion is driving the needle.
type Transition int

const (
	None Transition = iota
	AccelerateHold
	AccelerateStep
	DecelerateHold
	DecelerateStep
	CoastDown
)

func (t Transition) String() string {
	switch t {
	case AccelerateHold:
		return "accelerate"
	case AccelerateStep:
		return "accelerate step"
	case DecelerateHold:
		return "brake"
	case DecelerateStep:
		return "brake step"
	case CoastDown:
		return "coast"
	default:
		return "idle"
	}
}

// motion interpolates the speed from one value to another over a fixed duration.
// It is the single runner behind every Transition kind.
type motion struct {
	kind       Transition
	from, to   float64
	duration   time.Duration
	elapsed    time.Duration
	easing     Easing
	onComplete func()
}

func (m *motion) value() float64 {
	if m.duration <= 0 || m.elapsed >= m.duration {
		return m.to
	}
	f := float64(m.elapsed) / float64(m.duration)
	return m.from + (m.to-m.from)*m.easing(f)
}

// advance moves the motion forward by dt and reports whether it reached its end.
func (m *motion) advance(dt time.Duration) bool {
	m.elapsed += dt
	if m.elapsed >= m.duration {
		m.elapsed = m.duration
		return true
	}
	return false
}

func (m *motion) remaining() time.Duration {
	return m.duration - m.elapsed
}

// scaled returns full * fraction as a duration.
func scaled(full time.Duration, fraction float64) time.Duration {
	return time.Duration(float64(full) * fraction)
}
