// Package game hosts the speedometer gauge in an ebiten window.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/iburimskiy/speedometer/internal/config"
	"github.com/iburimskiy/speedometer/internal/controller"
	"github.com/iburimskiy/speedometer/internal/gauge"
)

var backgroundColor = color.RGBA{R: 245, G: 245, B: 245, A: 255}

// Game implements ebiten.Game. Update is the frame clock for the controller
// and the gauge; Draw repaints only when something changed.
type Game struct {
	cfg    config.Config
	logger *zap.Logger

	gauge  *gauge.Gauge
	ctl    *controller.Controller
	canvas *Canvas
	chime  *chime

	gas, stop        *button
	gasKey, stopKey  bool
	gaugeX           float32
	screenW, screenH int

	// input edge detection
	prevKey map[ebiten.Key]bool

	dirty   bool
	lastErr error
}

// New builds the game from cfg and restores the configured state file, if any.
func New(cfg config.Config, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	style, err := cfg.Gauge.Style()
	if err != nil {
		return nil, fmt.Errorf("gauge style: %w", err)
	}
	canvas, err := NewCanvas()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		logger:  logger,
		canvas:  canvas,
		screenW: cfg.Window.Width,
		screenH: cfg.Window.Height,
		prevKey: map[ebiten.Key]bool{},
		dirty:   true,
	}
	g.gauge = gauge.New(style,
		gauge.WithLogger(logger.Named("gauge")),
		gauge.WithInvalidate(g.invalidate),
	)
	opts := cfg.Controller.Options()
	opts.Logger = logger.Named("controller")
	g.ctl = controller.New(g.gauge, opts)
	g.layoutWidgets()

	if cfg.Audio.Enabled {
		ch, err := newChime(cfg.Audio)
		if err != nil {
			logger.Warn("warning chime disabled", zap.Error(err))
		} else {
			g.chime = ch
		}
	}

	if path := cfg.State.File; path != "" {
		if err := g.loadState(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				logger.Info("no saved state yet", zap.String("path", path))
			} else {
				logger.Warn("saved state ignored", zap.Error(err))
			}
		}
	}
	return g, nil
}

// layoutWidgets places the gauge above the control strip and the buttons in it.
func (g *Game) layoutWidgets() {
	w, _ := g.gauge.Measure(
		gauge.MeasureSpec{Mode: gauge.Exactly, Size: g.screenW},
		gauge.MeasureSpec{Mode: gauge.Exactly, Size: g.screenH - config.ControlsHeight},
	)
	g.gaugeX = (float32(w) - g.gauge.Geometry().Size) / 2

	y := g.screenH - config.ControlsHeight + config.ButtonMargin/2
	mid := g.screenW / 2
	g.stop = &button{
		label:  "STOP",
		x:      mid - config.ButtonGap/2 - config.ButtonWidth,
		y:      y,
		w:      config.ButtonWidth,
		h:      config.ButtonHeight,
		normal: color.RGBA{R: 200, G: 70, B: 60, A: 255},
	}
	g.gas = &button{
		label:  "GAS",
		x:      mid + config.ButtonGap/2,
		y:      y,
		w:      config.ButtonWidth,
		h:      config.ButtonHeight,
		normal: color.RGBA{R: 70, G: 160, B: 90, A: 255},
	}
}

func (g *Game) invalidate() { g.dirty = true }

// Gauge returns the hosted gauge.
func (g *Game) Gauge() *gauge.Gauge { return g.gauge }

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyF5) {
		g.setErr(g.saveStateDialog())
	}
	if justPressed(ebiten.KeyF9) {
		g.setErr(g.loadStateDialog())
	}

	mouseX, mouseY := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if g.gas.update(mouseX, mouseY, mouseDown, clicked) {
		g.invalidate()
	}
	if g.stop.update(mouseX, mouseY, mouseDown, clicked) {
		g.invalidate()
	}

	gasKey := ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	stopKey := ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
	if gasKey != g.gasKey || stopKey != g.stopKey {
		g.gasKey, g.stopKey = gasKey, stopKey
		g.invalidate()
	}

	dt := frameDuration(ebiten.TPS())
	g.ctl.Update(dt, g.gas.held || gasKey, g.stop.held || stopKey)
	g.gauge.Update(dt)

	if g.chime != nil {
		g.chime.set(g.gauge.Warning())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.dirty {
		return
	}
	g.dirty = false

	screen.Fill(backgroundColor)

	g.canvas.Begin(screen, g.gaugeX, 0)
	g.gauge.Render(g.canvas)

	g.stop.draw(screen, g.stopKey)
	g.gas.draw(screen, g.gasKey)

	ebitenutil.DebugPrintAt(screen, g.status(), 12, g.screenH-24)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

func (g *Game) status() string {
	status := g.gauge.Transition().String()
	if g.gauge.Transition() != gauge.None {
		status += " " + formatDuration(g.gauge.Remaining())
	}
	if g.gauge.Warning() {
		status += " | SLOW DOWN"
	}
	status += " | Hold or tap GAS/STOP (Up/Down), F5 save, F9 load"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) setErr(err error) {
	if err == nil {
		return
	}
	g.logger.Error("state dialog failed", zap.Error(err))
	g.lastErr = err
	g.invalidate()
}

// Close saves the configured state file and releases the speaker.
func (g *Game) Close() error {
	if g.chime != nil {
		g.chime.close()
	}
	if path := g.cfg.State.File; path != "" {
		return g.saveState(path)
	}
	return nil
}

func frameDuration(tps int) time.Duration {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

func windowSize() (int, int) {
	return ebiten.WindowSize()
}
