package game

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/speedometer/internal/config"
	"github.com/iburimskiy/speedometer/internal/gauge"
)

const chimeSampleRate = beep.SampleRate(44100)

// tone is an endless sine wave gated on and off every half period, so it beeps
// in step with the needle warning pulse.
type tone struct {
	step   float64 // phase advance per sample
	volume float64
	gate   int // samples per on or off half
	pos    int
}

func newTone(sr beep.SampleRate, hz, volume float64, period time.Duration) *tone {
	return &tone{
		step:   2 * math.Pi * hz / float64(sr),
		volume: volume,
		gate:   max(1, sr.N(period/2)),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		var v float64
		if t.pos < t.gate {
			v = t.volume * math.Sin(t.step*float64(t.pos))
		}
		samples[i][0], samples[i][1] = v, v
		t.pos++
		if t.pos == 2*t.gate {
			t.pos = 0
		}
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// chime plays the warning tone through the speaker while enabled.
type chime struct {
	tone *tone
	ctrl *beep.Ctrl
	on   bool
}

func newChime(cfg config.AudioConfig) (*chime, error) {
	bufferSize := chimeSampleRate.N(time.Second / 20)
	if err := speaker.Init(chimeSampleRate, bufferSize); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	t := newTone(chimeSampleRate, cfg.ToneHz, cfg.Volume, gauge.PulsePeriod)
	ctrl := &beep.Ctrl{Streamer: t, Paused: true}
	speaker.Play(ctrl)
	return &chime{tone: t, ctrl: ctrl}, nil
}

func (c *chime) set(on bool) {
	if c.on == on {
		return
	}
	speaker.Lock()
	if on {
		c.tone.pos = 0
	}
	c.ctrl.Paused = !on
	speaker.Unlock()
	c.on = on
}

// close drops the tone from the mixer. speaker.Clear takes the speaker lock
// itself, so it must not be called with it held.
func (c *chime) close() {
	speaker.Clear()
}
