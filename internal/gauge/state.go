package gauge

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoSpeed is returned when a saved state carries no speed.
	ErrNoSpeed = errors.New("saved state has no speed")
	// ErrSpeedRange is returned when a saved speed is outside the dial.
	ErrSpeedRange = errors.New("saved speed out of range")
)

type savedState struct {
	Speed *float64  `yaml:"speed"`
	Base  yaml.Node `yaml:"base,omitempty"`
}

// SaveState encodes the current speed together with the host's opaque base
// state. base may be nil.
func (g *Gauge) SaveState(base any) ([]byte, error) {
	speed := g.speed
	s := savedState{Speed: &speed}
	if base != nil {
		if err := s.Base.Encode(base); err != nil {
			return nil, fmt.Errorf("encode base state: %w", err)
		}
	}
	data, err := yaml.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("encode gauge state: %w", err)
	}
	return data, nil
}

// RestoreState applies a payload written by SaveState and decodes its base
// state into base when both are present.
//
// On any error the speed is left untouched. On success no transition is
// running afterwards; only the warning pulse is re-evaluated.
func (g *Gauge) RestoreState(data []byte, base any) error {
	var s savedState
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode gauge state: %w", err)
	}
	if s.Speed == nil {
		return ErrNoSpeed
	}
	v := *s.Speed
	if math.IsNaN(v) || v < 0 || v > MaxSpeed {
		return fmt.Errorf("%w: %v", ErrSpeedRange, v)
	}
	if !s.Base.IsZero() && base != nil {
		if err := s.Base.Decode(base); err != nil {
			return fmt.Errorf("decode base state: %w", err)
		}
	}

	g.cancel()
	// The saved speed comes back exactly; truncation only applies to
	// values produced by a running transition.
	g.apply(v)
	g.logger.Debug("gauge state restored",
		zap.Float64("speed", g.speed),
		zap.Bool("warning", g.Warning()),
	)
	return nil
}
