// Package breakout implements a Breakout/Brick-Breaker game: a paddle, a ball,
// a grid of bricks, lives and score, and a restart after game over.
package breakout

import (
	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
)

// Brick is a destructible static rectangle.
type Brick struct {
	Rect  core.Rect
	Color core.Color
}

// BrickField is the set of bricks still in play.
type BrickField struct {
	bricks []Brick
}

// NewBrickField creates a field populated from the layout.
func NewBrickField(layout config.BrickConfig, color core.Color) *BrickField {
	f := &BrickField{}
	f.Generate(layout, color)
	return f
}

// Generate replaces the field with a rows x columns grid. Brick (row, col)
// sits at x = col*(width+gap), y = row*(height+gap)+top_offset. The grid is
// not fitted to the screen, so trailing columns may lie partly off-screen.
func (f *BrickField) Generate(layout config.BrickConfig, color core.Color) {
	f.bricks = make([]Brick, 0, layout.Rows*layout.Columns)
	for row := 0; row < layout.Rows; row++ {
		for col := 0; col < layout.Columns; col++ {
			f.bricks = append(f.bricks, Brick{
				Rect: core.NewRect(
					col*(layout.Width+layout.Gap),
					row*(layout.Height+layout.Gap)+layout.TopOffset,
					layout.Width,
					layout.Height,
				),
				Color: color,
			})
		}
	}
}

// RemoveOnCollision removes every brick overlapping r in a single pass and
// returns how many were removed.
func (f *BrickField) RemoveOnCollision(r core.Rect) int {
	kept := f.bricks[:0]
	removed := 0
	for _, b := range f.bricks {
		if b.Rect.Intersects(r) {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	f.bricks = kept
	return removed
}

// Len returns the number of bricks left.
func (f *BrickField) Len() int {
	return len(f.bricks)
}

// Bricks returns a copy of the remaining bricks.
func (f *BrickField) Bricks() []Brick {
	out := make([]Brick, len(f.bricks))
	copy(out, f.bricks)
	return out
}
