package breakout

import (
	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
)

// Paddle is the player-controlled horizontal rectangle.
type Paddle struct {
	Rect  core.Rect
	Speed int // Signed horizontal velocity in pixels per frame

	screenW int
}

// NewPaddle creates a paddle at its starting position with zero speed.
func NewPaddle(cfg config.BreakoutConfig) *Paddle {
	return &Paddle{
		Rect:    cfg.PaddleStart(),
		screenW: cfg.Screen.Width,
	}
}

// SetVelocity sets the horizontal speed.
func (p *Paddle) SetVelocity(v int) {
	p.Speed = v
}

// Advance moves the paddle by its speed and keeps it inside the screen.
func (p *Paddle) Advance() {
	p.Rect.X += p.Speed
	p.Rect.X = core.Clamp(p.Rect.X, 0, p.screenW-p.Rect.W)
}

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() int {
	return p.Rect.X + p.Rect.W/2
}

// Ball is a moving rectangle. It holds a read-only reference to the paddle
// it bounces off.
type Ball struct {
	Rect   core.Rect
	SpeedX int
	SpeedY int

	paddle *Paddle
}

// NewBall creates a ball at its starting position and launch velocity.
func NewBall(cfg config.BreakoutConfig, paddle *Paddle) *Ball {
	return &Ball{
		Rect:   cfg.BallStart(),
		SpeedX: cfg.Ball.SpeedX,
		SpeedY: cfg.Ball.SpeedY,
		paddle: paddle,
	}
}

// Advance moves the ball by its velocity.
func (b *Ball) Advance() {
	b.Rect.X += b.SpeedX
	b.Rect.Y += b.SpeedY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.SpeedX = -b.SpeedX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.SpeedY = -b.SpeedY
}

// ResolveWallCollisions reflects the ball off the left, right and top edges.
// Only velocity changes; the ball may overlap an edge for a frame.
// It takes no screen height: the bottom edge is not a wall but a life loss,
// see ExitedBottom.
func (b *Ball) ResolveWallCollisions(screenW int) (bouncedX, bouncedY bool) {
	if b.Rect.Left() <= 0 || b.Rect.Right() >= screenW {
		b.BounceX()
		bouncedX = true
	}
	if b.Rect.Top() <= 0 {
		b.BounceY()
		bouncedY = true
	}
	return bouncedX, bouncedY
}

// ResolvePaddleCollision reflects the ball vertically when it overlaps the
// paddle. Any overlap counts, including contact with the paddle's sides.
func (b *Ball) ResolvePaddleCollision() bool {
	if b.paddle == nil || !b.Rect.Intersects(b.paddle.Rect) {
		return false
	}
	b.BounceY()
	return true
}

// ExitedBottom reports whether the ball reached the bottom edge.
func (b *Ball) ExitedBottom(screenH int) bool {
	return b.Rect.Bottom() >= screenH
}

// ResetAbove places the ball centered on top of the paddle and relaunches it
// upward at the magnitude of speedY. Horizontal speed is kept.
func (b *Ball) ResetAbove(p *Paddle, speedY int) {
	b.Rect.X = p.CenterX() - b.Rect.W/2
	b.Rect.Y = p.Rect.Y - b.Rect.H
	b.SpeedY = -core.Abs(speedY)
}
