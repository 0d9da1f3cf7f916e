package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/speedometer/internal/gauge"
)

const frame = time.Second / 60

type recorder struct {
	calls []string
}

func (r *recorder) OnGasPress()     { r.calls = append(r.calls, "gas-press") }
func (r *recorder) OnGasTap()       { r.calls = append(r.calls, "gas-tap") }
func (r *recorder) OnStopPress()    { r.calls = append(r.calls, "stop-press") }
func (r *recorder) OnStopTap()      { r.calls = append(r.calls, "stop-tap") }
func (r *recorder) OnHoldReleased() { r.calls = append(r.calls, "released") }

// hold feeds the same button state for d, frame by frame.
func hold(c *Controller, d time.Duration, gas, stop bool) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		c.Update(frame, gas, stop)
	}
}

func TestTap(t *testing.T) {
	r := &recorder{}
	c := New(r, Options{})

	hold(c, 100*time.Millisecond, true, false)
	assert.Empty(t, r.calls)
	c.Update(frame, false, false)
	assert.Equal(t, []string{"gas-tap"}, r.calls)

	hold(c, 200*time.Millisecond, false, true)
	c.Update(frame, false, false)
	assert.Equal(t, []string{"gas-tap", "stop-tap"}, r.calls)
	assert.False(t, c.Holding())
}

func TestLongPress_GasHoldThenRelease(t *testing.T) {
	r := &recorder{}
	c := New(r, Options{})

	hold(c, DefaultLongPress+3*frame, true, false)
	require.Equal(t, []string{"gas-press"}, r.calls)
	assert.True(t, c.Holding())

	hold(c, 2*time.Second, true, false)
	assert.Equal(t, []string{"gas-press"}, r.calls)

	released := time.Duration(0)
	for len(r.calls) < 2 {
		c.Update(frame, false, false)
		released += frame
		require.LessOrEqual(t, released, DefaultPollInterval+frame)
	}
	assert.Equal(t, []string{"gas-press", "released"}, r.calls)
	assert.False(t, c.Holding())
}

func TestLongPress_StopIsSymmetric(t *testing.T) {
	r := &recorder{}
	c := New(r, Options{})

	hold(c, time.Second, false, true)
	hold(c, 200*time.Millisecond, false, false)
	assert.Equal(t, []string{"stop-press", "released"}, r.calls)
}

func TestLongPress_NoTapAfterHold(t *testing.T) {
	r := &recorder{}
	c := New(r, Options{})

	hold(c, time.Second, true, false)
	hold(c, time.Second, false, false)
	hold(c, time.Second, false, false)
	assert.Equal(t, []string{"gas-press", "released"}, r.calls)
}

func TestLongPress_ShortBlipBetweenPollsKeepsHold(t *testing.T) {
	r := &recorder{}
	c := New(r, Options{LongPress: 40 * time.Millisecond, PollInterval: 100 * time.Millisecond})

	hold(c, 60*time.Millisecond, true, false)
	require.Equal(t, []string{"gas-press"}, r.calls)

	// Released for a single frame between polls, then pressed again.
	hold(c, 100*time.Millisecond-frame, true, false)
	c.Update(frame, false, false)
	hold(c, 300*time.Millisecond, true, false)
	assert.True(t, c.Holding())
}

func TestCustomTimings(t *testing.T) {
	r := &recorder{}
	c := New(r, Options{LongPress: 20 * time.Millisecond, PollInterval: 10 * time.Millisecond})

	c.Update(time.Millisecond, true, false)
	c.Update(25*time.Millisecond, true, false)
	require.Equal(t, []string{"gas-press"}, r.calls)
	c.Update(10*time.Millisecond, false, false)
	assert.Equal(t, []string{"gas-press", "released"}, r.calls)
}

func TestDrivesGauge(t *testing.T) {
	g := gauge.New(gauge.DefaultStyle())
	c := New(g, Options{})

	c.Update(frame, true, false)
	c.Update(frame, false, false)
	require.Equal(t, gauge.AccelerateStep, g.Transition())
	g.Update(time.Second)
	assert.Equal(t, gauge.CoastDown, g.Transition())

	for elapsed := time.Duration(0); elapsed < 3*time.Second; elapsed += frame {
		c.Update(frame, true, false)
		g.Update(frame)
	}
	assert.Equal(t, gauge.AccelerateHold, g.Transition())
	assert.Greater(t, g.Speed(), 3.0)

	for elapsed := time.Duration(0); elapsed < 200*time.Millisecond; elapsed += frame {
		c.Update(frame, false, false)
		g.Update(frame)
	}
	assert.Equal(t, gauge.CoastDown, g.Transition())
}
