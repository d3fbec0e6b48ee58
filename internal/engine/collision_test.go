package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/arcade-trio/internal/core"
)

func TestOverlapIsSymmetric(t *testing.T) {
	boxes := []core.Box{
		core.NewBox(0, 0, 10, 10),
		core.NewBox(5, 5, 10, 10),
		core.NewBox(10, 0, 10, 10), // touches the first, does not overlap
		core.NewBox(-3, 4, 2, 2),
		core.NewBox(2, 2, 1, 1),
	}
	for _, a := range boxes {
		for _, b := range boxes {
			assert.Equal(t, Overlap(a, b), Overlap(b, a), "%v vs %v", a, b)
		}
	}
	assert.False(t, Overlap(boxes[0], boxes[2]))
	assert.True(t, Overlap(boxes[0], boxes[4]))
}

func TestImpactSide(t *testing.T) {
	brick := core.NewBox(40, 90, 60, 15)
	tests := []struct {
		name string
		prev core.Vec
		want Side
	}{
		{"from above", core.V(50, 88), SideTop},
		{"from below", core.V(50, 110), SideBottom},
		{"from the left", core.V(35, 95), SideLeft},
		{"from the right", core.V(105, 95), SideRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(core.V(50, 100), core.V(3, -3), CircleShape(6))
			b.Prev = tt.prev
			assert.Equal(t, tt.want, ImpactSide(&b, brick))
		})
	}
}

func TestBounce(t *testing.T) {
	b := NewBody(core.Vec{}, core.V(3, -3), CircleShape(6))
	Bounce(&b, SideTop)
	assert.Equal(t, core.V(3, 3), b.Vel)
	Bounce(&b, SideRight)
	assert.Equal(t, core.V(-3, 3), b.Vel)
	Bounce(&b, SideNone)
	assert.Equal(t, core.V(-3, 3), b.Vel)
}

func TestFirstHitStopsAtFirst(t *testing.T) {
	calls := 0
	idx := FirstHit(5, func(i int) bool {
		calls++
		return i >= 2
	})
	assert.Equal(t, 2, idx)
	assert.Equal(t, 3, calls)

	assert.Equal(t, -1, FirstHit(3, func(int) bool { return false }))
}

func TestPenetration(t *testing.T) {
	dx, dy := Penetration(core.NewBox(10, 10, 80, 100), core.NewBox(70, 10, 200, 20))
	assert.Equal(t, 20.0, dx)
	assert.Equal(t, 20.0, dy)
}

func TestResolveSolidPlatformerScenario(t *testing.T) {
	player := NewBody(core.V(10, 10), core.V(4, 2), RectShape(80, 100))
	obstacle := core.NewBox(70, 10, 200, 20)

	side := ResolveSolid(&player, obstacle)

	assert.Equal(t, SideLeft, side)
	assert.Equal(t, -10.0, player.Pos.X)
	assert.Equal(t, 0.0, player.Vel.X)
	assert.Equal(t, 2.0, player.Vel.Y, "the other axis is untouched")

	// Boundary rule applied afterwards.
	Clamp(&player, arena, EdgesAll, true)
	assert.Equal(t, 0.0, player.Pos.X)
}

func TestResolveSolidLandsOnTop(t *testing.T) {
	player := NewBody(core.V(100, 95), core.V(0, 6), RectShape(20, 30))
	platform := core.NewBox(50, 120, 200, 16)

	side := ResolveSolid(&player, platform)

	assert.Equal(t, SideTop, side)
	assert.Equal(t, 90.0, player.Pos.Y)
	assert.Equal(t, 0.0, player.Vel.Y)
	assert.False(t, Overlap(player.Bounds(), platform))
}

func TestResolveSolidNoOverlap(t *testing.T) {
	player := NewBody(core.V(0, 0), core.V(1, 1), RectShape(10, 10))
	assert.Equal(t, SideNone, ResolveSolid(&player, core.NewBox(10, 0, 10, 10)))
	assert.Equal(t, core.V(1, 1), player.Vel)
}
