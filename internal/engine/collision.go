package engine

import (
	"math"

	"github.com/vovakirdan/arcade-trio/internal/core"
)

// Side names the side of a box that was struck.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

// String returns a human-readable side name.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Vertical reports whether the side is the top or bottom.
func (s Side) Vertical() bool {
	return s == SideTop || s == SideBottom
}

// Overlap is the rectangle–rectangle test. It is commutative.
func Overlap(a, b core.Box) bool {
	return a.Overlaps(b)
}

// CircleBoxOverlap tests a body against a box using the body's AABB. For a
// circle this is the box of side 2r around its centre, an approximation of
// the true circle–rectangle distance test.
func CircleBoxOverlap(b *Body, box core.Box) bool {
	return b.Bounds().Overlaps(box)
}

// ImpactSide works out which side of box a moving body struck by looking at
// its previous-frame position: above the top or below the bottom is a
// vertical hit, anything else is horizontal.
func ImpactSide(b *Body, box core.Box) Side {
	prev := b.Prev
	switch {
	case prev.Y < box.Y:
		return SideTop
	case prev.Y > box.Bottom():
		return SideBottom
	case prev.X < box.Center().X:
		return SideLeft
	default:
		return SideRight
	}
}

// Bounce inverts the velocity component normal to the struck side.
func Bounce(b *Body, side Side) {
	switch side {
	case SideTop, SideBottom:
		b.Vel.Y = -b.Vel.Y
	case SideLeft, SideRight:
		b.Vel.X = -b.Vel.X
	}
}

// FirstHit scans indices 0..n-1 in order and returns the first one for which
// hit reports true, or -1. The scan halts at the first hit, so at most one
// target is resolved per step.
func FirstHit(n int, hit func(i int) bool) int {
	for i := 0; i < n; i++ {
		if hit(i) {
			return i
		}
	}
	return -1
}

// Penetration returns the overlap depth of two boxes on each axis.
// Values are zero or negative when the boxes are apart on that axis.
func Penetration(a, b core.Box) (dx, dy float64) {
	dx = math.Min(a.Right(), b.Right()) - math.Max(a.X, b.X)
	dy = math.Min(a.Bottom(), b.Bottom()) - math.Max(a.Y, b.Y)
	return dx, dy
}

// ResolveSolid pushes a body out of a solid obstacle along the axis with the
// smaller overlap (ties resolve on x), placing it flush against the obstacle
// and zeroing that velocity component. Returns the side of the obstacle the
// body was pushed to; SideTop means it rests on top.
func ResolveSolid(b *Body, obstacle core.Box) Side {
	bounds := b.Bounds()
	if !bounds.Overlaps(obstacle) {
		return SideNone
	}

	dx, dy := Penetration(bounds, obstacle)
	bc, oc := bounds.Center(), obstacle.Center()
	corner := core.V(bounds.X, bounds.Y)

	var side Side
	if dx <= dy {
		if bc.X < oc.X {
			corner.X = obstacle.X - bounds.W
			side = SideLeft
		} else {
			corner.X = obstacle.Right()
			side = SideRight
		}
		b.Vel.X = 0
	} else {
		if bc.Y < oc.Y {
			corner.Y = obstacle.Y - bounds.H
			side = SideTop
		} else {
			corner.Y = obstacle.Bottom()
			side = SideBottom
		}
		b.Vel.Y = 0
	}

	b.MoveBoundsTo(corner)
	return side
}
