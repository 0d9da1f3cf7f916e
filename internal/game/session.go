package game

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/speedometer/internal/gauge"
)

const defaultStateName = "speedometer-state.yaml"

var stateFilters = zenity.FileFilters{{
	Name:     "Gauge state",
	Patterns: []string{"*.yaml", "*.yml"},
}}

// windowState is the host's part of a saved session, carried opaquely by the gauge.
type windowState struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func saveStateFile(path string, g *gauge.Gauge, base windowState) error {
	data, err := g.SaveState(base)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

func loadStateFile(path string, g *gauge.Gauge) (windowState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return windowState{}, fmt.Errorf("read state file: %w", err)
	}
	var base windowState
	if err := g.RestoreState(data, &base); err != nil {
		return windowState{}, fmt.Errorf("restore %s: %w", path, err)
	}
	return base, nil
}

func (g *Game) saveState(path string) error {
	w, h := windowSize()
	if err := saveStateFile(path, g.gauge, windowState{Width: w, Height: h}); err != nil {
		return err
	}
	g.logger.Info("state saved", zap.String("path", path), zap.Float64("speed", g.gauge.Speed()))
	return nil
}

func (g *Game) loadState(path string) error {
	base, err := loadStateFile(path, g.gauge)
	if err != nil {
		return err
	}
	if base.Width > 0 && base.Height > 0 {
		ebiten.SetWindowSize(base.Width, base.Height)
	}
	g.logger.Info("state restored",
		zap.String("path", path),
		zap.Float64("speed", g.gauge.Speed()),
		zap.Bool("warning", g.gauge.Warning()),
	)
	return nil
}

func (g *Game) saveStateDialog() error {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save gauge state"),
		zenity.Filename(defaultStateName),
		zenity.ConfirmOverwrite(),
		stateFilters,
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.saveState(path)
}

func (g *Game) loadStateDialog() error {
	path, err := zenity.SelectFile(
		zenity.Title("Load gauge state"),
		stateFilters,
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.loadState(path)
}
