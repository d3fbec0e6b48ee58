package breakout

import "github.com/vovakirdan/arcade-trio/internal/engine"

// Checksum hashes the simulation state for determinism checks and replay
// verification.
func (g *Game) Checksum() uint64 {
	var c engine.Checksum
	c.Int(g.frame).
		Int(g.session.Score()).
		Int(g.session.Resource()).
		Int(int(g.session.Phase())).
		Body(&g.paddle.Body).
		Body(&g.ball.Body)
	for _, b := range g.bricks {
		c.Bool(b.Alive())
	}
	return c.Sum()
}
