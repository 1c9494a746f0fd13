package breakout

import (
	"fmt"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
	BrickChar  = '█'
)

// Minimum terminal size that still shows every row of the default grid.
const (
	MinScreenW = 20
	MinScreenH = 10
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.Frame().Render(dst)
}

// Render draws the frame, scaling simulation pixels to screen cells.
func (f Frame) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", f.Palette.Text)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), f.Palette.Text)
		return
	}

	for _, b := range f.Bricks {
		dst.DrawRect(f.toCells(b.Rect, dst), BrickChar, b.Color)
	}
	dst.DrawRect(f.toCells(f.Paddle, dst), PaddleChar, f.Palette.Paddle)
	dst.DrawRect(f.toCells(f.Ball, dst), BallChar, f.Palette.Ball)

	f.renderHUD(dst)

	if f.GameOver {
		f.renderGameOver(dst)
	}
}

// toCells maps a pixel rectangle onto the screen grid. Anything visible keeps
// at least one cell in each direction so the ball never vanishes.
func (f Frame) toCells(r core.Rect, dst *core.Screen) core.Rect {
	x0 := scale(r.Left(), dst.Width(), f.ScreenW)
	x1 := scale(r.Right(), dst.Width(), f.ScreenW)
	y0 := scale(r.Top(), dst.Height(), f.ScreenH)
	y1 := scale(r.Bottom(), dst.Height(), f.ScreenH)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// scale converts a pixel coordinate to a cell coordinate, rounding down.
func scale(px, cells, pixels int) int {
	if pixels <= 0 {
		return 0
	}
	v := px * cells
	if v < 0 {
		// Floor for negatives so an off-screen rect stays off-screen.
		return -((-v + pixels - 1) / pixels)
	}
	return v / pixels
}

// renderHUD draws lives on the left and score on the right of the top row.
func (f Frame) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Lives: %d", f.Lives), f.Palette.Text)

	scoreText := fmt.Sprintf("Score: %d", f.Score)
	dst.DrawTextColored(dst.Width()-len(scoreText)-1, 0, scoreText, f.Palette.Text)
}

// renderGameOver draws the centered game over box with the restart prompt.
func (f Frame) renderGameOver(dst *core.Screen) {
	title := "Game Over"
	subtitle := "Press R to restart"

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, f.Palette.Text)

	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, f.Palette.GameOver)
	dst.DrawTextColored(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, f.Palette.Text)
}
