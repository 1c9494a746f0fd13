package breakout

import (
	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
)

// Frame is the read-only view a renderer needs to draw one frame.
type Frame struct {
	ScreenW  int // Simulation width in pixels
	ScreenH  int // Simulation height in pixels
	Paddle   core.Rect
	Ball     core.Rect
	Bricks   []Brick
	Lives    int
	Score    int
	GameOver bool
	Palette  config.Palette
}

// Frame returns the current render state.
func (g *Game) Frame() Frame {
	return Frame{
		ScreenW:  g.cfg.Screen.Width,
		ScreenH:  g.cfg.Screen.Height,
		Paddle:   g.paddle.Rect,
		Ball:     g.ball.Rect,
		Bricks:   g.bricks.Bricks(),
		Lives:    g.lives,
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Palette:  g.palette,
	}
}

// Snapshot contains the complete simulation state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick        uint64
	PaddleX     int
	PaddleSpeed int
	BallX       int
	BallY       int
	BallVX      int
	BallVY      int
	Lives       int
	Score       int
	Phase       int

	// Remaining bricks, 2 ints each: X, Y
	BrickData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, 0, g.bricks.Len()*2)
	for _, b := range g.bricks.bricks {
		brickData = append(brickData, b.Rect.X, b.Rect.Y)
	}

	return Snapshot{
		Tick:        g.tick,
		PaddleX:     g.paddle.Rect.X,
		PaddleSpeed: g.paddle.Speed,
		BallX:       g.ball.Rect.X,
		BallY:       g.ball.Rect.Y,
		BallVX:      g.ball.SpeedX,
		BallVY:      g.ball.SpeedY,
		Lives:       g.lives,
		Score:       g.score,
		Phase:       int(g.phase),
		BrickData:   brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.PaddleX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleSpeed) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)       //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
