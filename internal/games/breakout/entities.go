// Package breakout implements a brick breaker: a paddle, one ball and a grid
// of single-hit bricks.
package breakout

import (
	"github.com/vovakirdan/arcade-trio/internal/config"
	"github.com/vovakirdan/arcade-trio/internal/core"
	"github.com/vovakirdan/arcade-trio/internal/engine"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
	BrickChar  = '█'
)

// rowColors alternate down the brick grid.
var rowColors = []core.Color{core.ColorGreen, core.ColorLime}

// Paddle is the player-controlled rectangle.
type Paddle struct {
	engine.Body
	Speed float64
}

// Ball is the circle bouncing around the play area.
type Ball struct {
	engine.Body
}

// Brick is a destructible target. Dead bricks stay in the grid so the scan
// order never changes.
type Brick struct {
	engine.Life
	Box      core.Box
	Row, Col int
	Color    core.Color
}

// Bounds returns the brick's rectangle.
func (b *Brick) Bounds() core.Box {
	return b.Box
}

// newPaddle centres the paddle above the floor.
func newPaddle(cfg config.BreakoutConfig) Paddle {
	p := cfg.Paddle
	pos := core.V((cfg.Surface.Width-p.Width)/2, cfg.Surface.Height-p.OffsetBottom)
	return Paddle{
		Body:  engine.NewBody(pos, core.Vec{}, engine.RectShape(p.Width, p.Height)),
		Speed: p.Speed,
	}
}

// buildBricks lays the grid out row-major, centred horizontally.
func buildBricks(cfg config.BreakoutConfig) []*Brick {
	b := cfg.Bricks
	gridW := float64(b.Cols)*(b.Width+b.Padding) - b.Padding
	left := (cfg.Surface.Width - gridW) / 2

	bricks := make([]*Brick, 0, b.Rows*b.Cols)
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			x := left + float64(col)*(b.Width+b.Padding)
			y := b.OffsetTop + float64(row)*(b.Height+b.Padding)
			bricks = append(bricks, &Brick{
				Box:   core.NewBox(x, y, b.Width, b.Height),
				Row:   row,
				Col:   col,
				Color: rowColors[row%len(rowColors)],
			})
		}
	}
	return bricks
}

// countAlive returns the number of bricks still standing.
func countAlive(bricks []*Brick) int {
	n := 0
	for _, b := range bricks {
		if b.Alive() {
			n++
		}
	}
	return n
}
