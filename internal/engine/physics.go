package engine

import "github.com/vovakirdan/arcade-trio/internal/core"

// Edges is a set of boundary edges.
type Edges uint8

const (
	EdgeLeft Edges = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom

	EdgesNone  Edges = 0
	EdgesSides       = EdgeLeft | EdgeRight
	EdgesWalls       = EdgeLeft | EdgeRight | EdgeTop
	EdgesAll         = EdgeLeft | EdgeRight | EdgeTop | EdgeBottom
)

// Has reports whether e contains every edge in o.
func (e Edges) Has(o Edges) bool {
	return e&o == o && o != 0
}

// Integrate advances a body by one fixed step: velocity += force, then
// position += velocity. Increments are per frame, not scaled by elapsed time.
func Integrate(b *Body, force core.Vec) {
	b.Prev = b.Pos
	b.Vel = b.Vel.Add(force)
	b.Pos = b.Pos.Add(b.Vel)
}

// Reflect negates the velocity component of a body whose bounds cross one of
// the given edges of area while moving towards it. Speed is unchanged and the
// sign flips exactly once per crossing. The x axis is evaluated before y and
// both may reflect in the same step (corner hit). Returns the edges that
// reflected.
func Reflect(b *Body, area core.Box, edges Edges) Edges {
	var hit Edges
	bounds := b.Bounds()

	if edges.Has(EdgeLeft) && bounds.X < area.X && b.Vel.X < 0 {
		b.Vel.X = -b.Vel.X
		hit |= EdgeLeft
	}
	if edges.Has(EdgeRight) && bounds.Right() > area.Right() && b.Vel.X > 0 {
		b.Vel.X = -b.Vel.X
		hit |= EdgeRight
	}
	if edges.Has(EdgeTop) && bounds.Y < area.Y && b.Vel.Y < 0 {
		b.Vel.Y = -b.Vel.Y
		hit |= EdgeTop
	}
	if edges.Has(EdgeBottom) && bounds.Bottom() > area.Bottom() && b.Vel.Y > 0 {
		b.Vel.Y = -b.Vel.Y
		hit |= EdgeBottom
	}
	return hit
}

// Clamp keeps the body's bounds inside the given edges of area, so the
// bounding box's top-left corner lies within [min, max-extent] on each
// clamped axis. When zeroVel is set the velocity component pushing outwards
// is zeroed. Returns the edges that clamped, x before y.
func Clamp(b *Body, area core.Box, edges Edges, zeroVel bool) Edges {
	var hit Edges
	bounds := b.Bounds()
	corner := core.V(bounds.X, bounds.Y)

	if edges.Has(EdgeLeft) && corner.X < area.X {
		corner.X = area.X
		hit |= EdgeLeft
		if zeroVel && b.Vel.X < 0 {
			b.Vel.X = 0
		}
	}
	if edges.Has(EdgeRight) && corner.X+bounds.W > area.Right() {
		corner.X = area.Right() - bounds.W
		hit |= EdgeRight
		if zeroVel && b.Vel.X > 0 {
			b.Vel.X = 0
		}
	}
	if edges.Has(EdgeTop) && corner.Y < area.Y {
		corner.Y = area.Y
		hit |= EdgeTop
		if zeroVel && b.Vel.Y < 0 {
			b.Vel.Y = 0
		}
	}
	if edges.Has(EdgeBottom) && corner.Y+bounds.H > area.Bottom() {
		corner.Y = area.Bottom() - bounds.H
		hit |= EdgeBottom
		if zeroVel && b.Vel.Y > 0 {
			b.Vel.Y = 0
		}
	}

	if hit != EdgesNone {
		b.MoveBoundsTo(corner)
	}
	return hit
}

// Beyond reports whether the body's bounds lie entirely past the edge.
// Used for terminal boundaries, such as a ball falling below the screen.
func Beyond(b *Body, area core.Box, edge Edges) bool {
	bounds := b.Bounds()
	switch edge {
	case EdgeLeft:
		return bounds.Right() < area.X
	case EdgeRight:
		return bounds.X > area.Right()
	case EdgeTop:
		return bounds.Bottom() < area.Y
	case EdgeBottom:
		return bounds.Y > area.Bottom()
	}
	return false
}

// Touches reports whether the body's bounds reach or pass the edge.
func Touches(b *Body, area core.Box, edge Edges) bool {
	bounds := b.Bounds()
	switch edge {
	case EdgeLeft:
		return bounds.X <= area.X
	case EdgeRight:
		return bounds.Right() >= area.Right()
	case EdgeTop:
		return bounds.Y <= area.Y
	case EdgeBottom:
		return bounds.Bottom() >= area.Bottom()
	}
	return false
}

// Offscreen is the removal predicate for projectiles and scrolling
// obstacles: the bounds lie entirely outside area grown by margin.
func Offscreen(b *Body, area core.Box, margin float64) bool {
	grown := core.NewBox(area.X-margin, area.Y-margin, area.W+2*margin, area.H+2*margin)
	return !b.Bounds().Overlaps(grown)
}
