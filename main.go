// Speedometer shows an animated speed gauge driven by two pedals.
//
// Tap GAS to add 3 km/h and STOP to shed 6 km/h; hold either to accelerate to
// the top of the dial or brake to a halt. Letting go coasts the needle down.
// The needle pulses (and optionally beeps) from 100 km/h upward.
//
// Usage:
//
//	speedometer [--config file] [--state file] [--log-level level] [--no-audio]
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iburimskiy/speedometer/internal/config"
	"github.com/iburimskiy/speedometer/internal/game"
	"github.com/iburimskiy/speedometer/internal/logging"
)

var (
	configPath string
	statePath  string
	logLevel   string
	noAudio    bool
)

var rootCmd = &cobra.Command{
	Use:   "speedometer",
	Short: "Animated speedometer gauge",
	Long: `An animated speedometer gauge driven by GAS and STOP pedals.

Click or tap the on-screen buttons, or use the Up/Down (W/S) keys. A short
press steps the speed, a long press accelerates or brakes until released, after
which the needle coasts down. F5 saves the gauge state, F9 loads it.`,
	Example: `  # Run with defaults
  speedometer

  # Custom palette and a state file kept across runs
  speedometer --config speedometer.yaml --state ~/.speedometer-state.yaml`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.Flags().StringVar(&statePath, "state", "", "State file restored at startup and saved on exit (overrides state.file)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides logging.level")
	rootCmd.Flags().BoolVar(&noAudio, "no-audio", false, "Disable the warning chime")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("state") {
		cfg.State.File = statePath
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if noAudio {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)

	g, err := game.New(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("starting",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Bool("audio", cfg.Audio.Enabled),
		zap.String("state_file", cfg.State.File),
	)

	runErr := ebiten.RunGame(g)
	if err := g.Close(); err != nil {
		logger.Error("saving state failed", zap.Error(err))
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		return runErr
	}
	return nil
}
