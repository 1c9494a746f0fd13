package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration.
// It mirrors defaults/breakout.yaml and is the base every loaded file
// is layered on top of.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       10,
			BottomOffset: 50,
			MoveSpeed:    5,
		},
		Ball: BallConfig{
			Width:        10,
			Height:       10,
			BottomOffset: 70,
			SpeedX:       3,
			SpeedY:       -3,
		},
		Bricks: BrickConfig{
			Rows:      4,
			Columns:   10,
			Width:     80,
			Height:    30,
			Gap:       10,
			TopOffset: 50,
		},
		Gameplay: GameplayConfig{
			Lives:     3,
			FrameRate: 60,
		},
		Colors: ColorConfig{
			Background: "black",
			Paddle:     "blue",
			Ball:       "red",
			Brick:      "green",
			Text:       "white",
			GameOver:   "red",
		},
		Input: InputConfig{
			HoldTicks: 45,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
