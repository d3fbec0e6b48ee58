// Package engine holds the architecture shared by every game: the entity
// model, the physics integrator, the collision resolver, the session state
// machine, frame-counted timers and the loop driver.
//
// Like core, it knows nothing about Bubble Tea. Games own their entity
// collections; the engine only supplies the rules they are advanced by.
package engine

import "github.com/vovakirdan/arcade-trio/internal/core"

// ShapeKind selects the collision shape of a body.
type ShapeKind int

const (
	ShapeRect   ShapeKind = iota // Position is the top-left corner
	ShapeCircle                  // Position is the centre
)

// Shape describes the extent of a body.
type Shape struct {
	Kind ShapeKind
	W, H float64 // ShapeRect
	R    float64 // ShapeCircle
}

// RectShape returns an axis-aligned rectangle shape.
func RectShape(w, h float64) Shape {
	return Shape{Kind: ShapeRect, W: w, H: h}
}

// CircleShape returns a circle shape.
func CircleShape(r float64) Shape {
	return Shape{Kind: ShapeCircle, R: r}
}

// Size returns the full width and height of the shape's bounding box.
func (s Shape) Size() core.Vec {
	if s.Kind == ShapeCircle {
		return core.V(2*s.R, 2*s.R)
	}
	return core.V(s.W, s.H)
}

// origin is the offset from the bounding box's top-left corner to Pos.
func (s Shape) origin() core.Vec {
	if s.Kind == ShapeCircle {
		return core.V(s.R, s.R)
	}
	return core.Vec{}
}

// Body is the physical part of an entity: position, velocity and shape.
// Prev is the position before the last Integrate call.
type Body struct {
	Pos   core.Vec
	Vel   core.Vec
	Prev  core.Vec
	Shape Shape
}

// NewBody creates a body at rest history-wise: Prev equals Pos.
func NewBody(pos, vel core.Vec, shape Shape) Body {
	return Body{Pos: pos, Vel: vel, Prev: pos, Shape: shape}
}

// Bounds returns the body's AABB. A circle is treated as a box of side 2r.
func (b *Body) Bounds() core.Box {
	o := b.Shape.origin()
	size := b.Shape.Size()
	return core.NewBox(b.Pos.X-o.X, b.Pos.Y-o.Y, size.X, size.Y)
}

// MoveBoundsTo moves the body so its bounding box's top-left corner is at p.
func (b *Body) MoveBoundsTo(p core.Vec) {
	b.Pos = p.Add(b.Shape.origin())
}

// Liveness is the lifecycle flag of an entity.
type Liveness uint8

const (
	Alive Liveness = iota
	Dead
	Collected
)

// Life is embedded in entities that can be removed from their collection.
type Life struct {
	State Liveness
}

// Alive reports whether the entity still takes part in collision and rendering.
func (l *Life) Alive() bool {
	return l.State == Alive
}

// Kill marks the entity dead.
func (l *Life) Kill() {
	l.State = Dead
}

// Collect marks a collectable as picked up.
func (l *Life) Collect() {
	l.State = Collected
}

// Updatable entities advance themselves once per simulation step.
type Updatable interface {
	Update()
}

// Collidable entities expose a bounding box while alive.
type Collidable interface {
	Bounds() core.Box
	Alive() bool
}

// Drawable entities paint themselves onto the screen. Drawing must not
// mutate simulation state.
type Drawable interface {
	Draw(dst *core.Screen, vp core.Viewport)
}

// Prune removes entries that are no longer alive, in place, preserving order.
func Prune[T interface{ Alive() bool }](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if it.Alive() {
			kept = append(kept, it)
		}
	}
	// Drop references held by the tail so pruned entities can be collected.
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}

// Killable entities can be removed by damage or collision.
type Killable interface {
	Kill()
}
