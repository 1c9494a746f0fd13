// breakout is a brick breaker arcade game for the terminal.
//
// Usage:
//
//	breakout                 - Play in the current terminal
//	breakout serve           - Start SSH server for remote play
//	breakout config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>      - Override the configured frame rate
//	--config <path>   - Use a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Brick Breaker - clear the wall before you run out of balls",
	Long: `Brick Breaker is a terminal rendition of the classic paddle and ball game.

Move the paddle to keep the ball in play and break the bricks above.
Every frame the ball breaks bricks scores one point; missing the ball
costs a life. After the last life press R to start over.

Controls:
  Left/A/H    - Move left
  Right/D/L   - Move right
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  breakout
  breakout --fps 30
  breakout --config ./my-breakout.yaml --log ./breakout.log
  breakout serve --ssh :2222
  breakout config > my-breakout.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration and applies the global overrides.
func loadConfig() (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Gameplay.FrameRate = flagFPS
	}
	return cfg, nil
}
