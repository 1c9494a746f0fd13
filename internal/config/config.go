// Package config provides YAML-based configuration loading for Brick Breaker.
// Every constant of the game contract (screen size, entity sizes, speeds,
// brick grid, lives, frame rate, colors) lives here instead of in globals.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// BreakoutConfig contains all configuration for the game.
type BreakoutConfig struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Bricks   BrickConfig    `yaml:"bricks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Colors   ColorConfig    `yaml:"colors"`
	Input    InputConfig    `yaml:"input"`
}

// ScreenConfig is the size of the simulation space in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PaddleConfig defines the paddle geometry and movement.
type PaddleConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	BottomOffset int `yaml:"bottom_offset"` // Distance from screen bottom to paddle top
	MoveSpeed    int `yaml:"move_speed"`    // Magnitude of velocity while a key is held
}

// BallConfig defines the ball geometry and launch velocity.
type BallConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	BottomOffset int `yaml:"bottom_offset"` // Distance from screen bottom to ball top
	SpeedX       int `yaml:"speed_x"`
	SpeedY       int `yaml:"speed_y"`
}

// BrickConfig defines the brick grid layout.
type BrickConfig struct {
	Rows      int `yaml:"rows"`
	Columns   int `yaml:"columns"`
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	Gap       int `yaml:"gap"`
	TopOffset int `yaml:"top_offset"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives     int `yaml:"lives"`
	FrameRate int `yaml:"frame_rate"`
}

// ColorConfig names the fill color of each element.
type ColorConfig struct {
	Background string `yaml:"background"`
	Paddle     string `yaml:"paddle"`
	Ball       string `yaml:"ball"`
	Brick      string `yaml:"brick"`
	Text       string `yaml:"text"`
	GameOver   string `yaml:"game_over"`
}

// InputConfig tunes how terminal key repeats become press/release events.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// Palette is the resolved form of ColorConfig.
type Palette struct {
	Background core.Color
	Paddle     core.Color
	Ball       core.Color
	Brick      core.Color
	Text       core.Color
	GameOver   core.Color
}

// Palette resolves color names. Unknown names fall back to the default color;
// Validate rejects them before this is reached for loaded configs.
func (c ColorConfig) Palette() Palette {
	resolve := func(name string) core.Color {
		col, _ := core.ParseColor(name)
		return col
	}
	return Palette{
		Background: resolve(c.Background),
		Paddle:     resolve(c.Paddle),
		Ball:       resolve(c.Ball),
		Brick:      resolve(c.Brick),
		Text:       resolve(c.Text),
		GameOver:   resolve(c.GameOver),
	}
}

// PaddleStart returns the initial paddle rectangle: horizontally centered,
// BottomOffset above the bottom edge.
func (c BreakoutConfig) PaddleStart() core.Rect {
	return core.NewRect(
		(c.Screen.Width-c.Paddle.Width)/2,
		c.Screen.Height-c.Paddle.BottomOffset,
		c.Paddle.Width,
		c.Paddle.Height,
	)
}

// BallStart returns the initial ball rectangle near the bottom center.
func (c BreakoutConfig) BallStart() core.Rect {
	return core.NewRect(
		(c.Screen.Width-c.Ball.Width)/2,
		c.Screen.Height-c.Ball.BottomOffset,
		c.Ball.Width,
		c.Ball.Height,
	)
}

// Validate checks that the configuration describes a playable game.
func (c BreakoutConfig) Validate() error {
	positive := []struct {
		field string
		value int
	}{
		{"screen.width", c.Screen.Width},
		{"screen.height", c.Screen.Height},
		{"paddle.move_speed", c.Paddle.MoveSpeed},
		{"bricks.rows", c.Bricks.Rows},
		{"bricks.columns", c.Bricks.Columns},
		{"bricks.width", c.Bricks.Width},
		{"bricks.height", c.Bricks.Height},
		{"gameplay.lives", c.Gameplay.Lives},
		{"gameplay.frame_rate", c.Gameplay.FrameRate},
		{"input.hold_ticks", c.Input.HoldTicks},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, p.field, p.value)
		}
	}

	bodies := []struct {
		field string
		rect  core.Rect
	}{
		{"paddle", c.PaddleStart()},
		{"ball", c.BallStart()},
	}
	for _, b := range bodies {
		if !b.rect.Valid() {
			return fmt.Errorf("%w: %s size must be positive, got %dx%d", ErrInvalid, b.field, b.rect.W, b.rect.H)
		}
	}

	if c.Bricks.Gap < 0 {
		return fmt.Errorf("%w: bricks.gap must not be negative, got %d", ErrInvalid, c.Bricks.Gap)
	}

	// Ball that never moves vertically can never leave or come back.
	if c.Ball.SpeedY == 0 {
		return fmt.Errorf("%w: ball.speed_y must not be zero", ErrInvalid)
	}

	colors := []struct {
		field string
		name  string
	}{
		{"colors.background", c.Colors.Background},
		{"colors.paddle", c.Colors.Paddle},
		{"colors.ball", c.Colors.Ball},
		{"colors.brick", c.Colors.Brick},
		{"colors.text", c.Colors.Text},
		{"colors.game_over", c.Colors.GameOver},
	}
	for _, col := range colors {
		if _, ok := core.ParseColor(col.name); !ok {
			return fmt.Errorf("%w: %s: unknown color %q", ErrInvalid, col.field, col.name)
		}
	}

	return nil
}
