package breakout

import (
	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
)

// Phase is the state of the game loop.
type Phase int

const (
	PhasePlaying  Phase = iota // Ball in play, Update advances the simulation
	PhaseGameOver              // No lives left, waiting for a restart event
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// StepResult reports what happened during one Update.
type StepResult struct {
	BricksRemoved int  // Bricks destroyed this frame
	LifeLost      bool // Ball left through the bottom edge
	GameOver      bool // This frame consumed the last life
}

// Game owns the paddle, ball and brick field and runs the per-frame rules.
type Game struct {
	cfg     config.BreakoutConfig
	palette config.Palette

	paddle *Paddle
	ball   *Ball
	bricks *BrickField

	phase Phase
	lives int
	score int
	tick  uint64
}

// New creates a game ready to play.
func New(cfg config.BreakoutConfig) *Game {
	g := &Game{
		cfg:     cfg,
		palette: cfg.Colors.Palette(),
	}
	g.Reset()
	return g
}

// Reset rebuilds the paddle, ball and bricks and restores lives and score.
func (g *Game) Reset() {
	g.paddle = NewPaddle(g.cfg)
	g.ball = NewBall(g.cfg, g.paddle)
	g.bricks = NewBrickField(g.cfg.Bricks, g.palette.Brick)
	g.lives = g.cfg.Gameplay.Lives
	g.score = 0
	g.tick = 0
	g.phase = PhasePlaying
}

// HandleEvent applies one platform event. It returns true when the event asks
// the platform to terminate, which is honored in every phase.
func (g *Game) HandleEvent(ev core.Event) (quit bool) {
	if ev == core.EventQuit {
		return true
	}

	if g.phase == PhaseGameOver {
		if ev == core.EventRestart {
			g.Reset()
		}
		return false
	}

	speed := g.cfg.Paddle.MoveSpeed
	switch ev {
	case core.EventLeftDown:
		g.paddle.SetVelocity(-speed)
	case core.EventRightDown:
		g.paddle.SetVelocity(speed)
	case core.EventLeftUp, core.EventRightUp:
		// Releasing either key stops the paddle, even if the other is held.
		g.paddle.SetVelocity(0)
	}
	return false
}

// Update advances the game by one frame. It does nothing after game over.
func (g *Game) Update() StepResult {
	var result StepResult
	if g.phase != PhasePlaying {
		return result
	}
	g.tick++

	g.paddle.Advance()
	g.ball.Advance()

	// Walls first, then paddle; both may reflect in the same frame.
	g.ball.ResolveWallCollisions(g.cfg.Screen.Width)
	g.ball.ResolvePaddleCollision()

	// One point per frame with hits, however many bricks broke.
	if removed := g.bricks.RemoveOnCollision(g.ball.Rect); removed > 0 {
		g.ball.BounceY()
		g.score++
		result.BricksRemoved = removed
	}

	if g.ball.ExitedBottom(g.cfg.Screen.Height) {
		g.lives--
		result.LifeLost = true
		if g.lives > 0 {
			g.ball.ResetAbove(g.paddle, g.cfg.Ball.SpeedY)
		} else {
			g.phase = PhaseGameOver
			result.GameOver = true
		}
	}

	return result
}

// Paddle returns the paddle rectangle.
func (g *Game) Paddle() core.Rect {
	return g.paddle.Rect
}

// Ball returns the ball rectangle.
func (g *Game) Ball() core.Rect {
	return g.ball.Rect
}

// Bricks returns the remaining bricks.
func (g *Game) Bricks() []Brick {
	return g.bricks.Bricks()
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// GameOver reports whether the game is waiting for a restart.
func (g *Game) GameOver() bool {
	return g.phase == PhaseGameOver
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}
