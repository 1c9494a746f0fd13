package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/games/breakout"
	"github.com/vovakirdan/brick-breaker/internal/platform/tui"
)

var flagLogPath string

func init() {
	rootCmd.Flags().StringVar(&flagLogPath, "log", "", "Write a session log to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Get terminal size; the first resize message corrects it anyway
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Gameplay.FrameRate,
	}

	logger, closeLog, err := openSessionLog(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := tui.Run(breakout.New(cfg), rc, logger); err != nil {
		return fmt.Errorf("breakout: run: %w", err)
	}
	return nil
}

// openSessionLog returns a file logger for path, or nil when path is empty.
// Stderr is not used because the game owns the terminal.
func openSessionLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("breakout: open log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           log.DebugLevel,
	})
	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }, nil
}
