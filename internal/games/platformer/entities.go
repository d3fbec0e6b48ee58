// Package platformer implements a side-view shooter: a jumping player,
// solid platforms, enemies that walk in from the edges and three guns.
package platformer

import (
	"github.com/vovakirdan/arcade-trio/internal/core"
	"github.com/vovakirdan/arcade-trio/internal/engine"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	EnemyChar    = '▓'
	BulletChar   = '•'
	PlatformChar = '▬'
	HealthChar   = '+'
	AmmoChar     = '≡'
)

// Player is the controllable character.
type Player struct {
	engine.Body
	Facing       float64 // -1 left, 1 right
	Grounded     bool
	Invulnerable int // frames of damage immunity left
}

// Center returns the middle of the player's box.
func (p *Player) Center() core.Vec {
	return p.Bounds().Center()
}

// Draw paints the player, blinking while invulnerable.
func (p *Player) Draw(dst *core.Screen, vp core.Viewport) {
	if p.Invulnerable/4%2 == 0 {
		dst.FillRect(vp.Rect(p.Bounds()), PlayerChar, core.ColorCyan)
	}
}

// Enemy walks towards the player and hurts on contact.
type Enemy struct {
	engine.Life
	engine.Body
	Health   int
	Speed    float64
	Grounded bool
	Flash    int // frames of hit feedback left
}

// Damage applies a hit and reports whether it was lethal.
func (e *Enemy) Damage(n int) bool {
	e.Health -= n
	e.Flash = 4
	if e.Health <= 0 {
		e.Kill()
		return true
	}
	return false
}

// Draw paints the enemy, white for a few frames after a hit.
func (e *Enemy) Draw(dst *core.Screen, vp core.Viewport) {
	color := core.ColorRed
	if e.Flash > 0 {
		color = core.ColorBrightWhite
	}
	dst.FillRect(vp.Rect(e.Bounds()), EnemyChar, color)
}

// Bullet is a projectile with a limited lifetime.
type Bullet struct {
	engine.Life
	engine.Body
	Damage int
	TTL    int
}

// Update moves the bullet and expires it.
func (b *Bullet) Update() {
	engine.Integrate(&b.Body, core.Vec{})
	b.TTL--
	if b.TTL <= 0 {
		b.Kill()
	}
}

// Draw paints the bullet as a single cell.
func (b *Bullet) Draw(dst *core.Screen, vp core.Viewport) {
	r := vp.Rect(b.Bounds())
	dst.SetColored(r.X, r.Y, BulletChar, core.ColorYellow)
}

// Explosion is a short-lived visual effect left by a dead enemy.
type Explosion struct {
	engine.Life
	Pos      core.Vec
	TTL, Max int
}

// Update counts the effect down.
func (e *Explosion) Update() {
	e.TTL--
	if e.TTL <= 0 {
		e.Kill()
	}
}

// Glyph returns the frame to draw for the remaining lifetime.
func (e *Explosion) Glyph() rune {
	switch {
	case e.TTL*3 > e.Max*2:
		return '*'
	case e.TTL*3 > e.Max:
		return '+'
	default:
		return '·'
	}
}

// Draw paints the current frame at the blast centre.
func (e *Explosion) Draw(dst *core.Screen, vp core.Viewport) {
	dst.SetColored(vp.CellX(e.Pos.X), vp.CellY(e.Pos.Y), e.Glyph(), core.ColorOrange)
}

// CollectableKind distinguishes pickups.
type CollectableKind int

const (
	CollectHealth CollectableKind = iota
	CollectAmmo
)

// Collectable is a pickup dropped by an enemy. It is marked Collected when
// the player touches it and Dead when it times out.
type Collectable struct {
	engine.Life
	engine.Body
	Kind   CollectableKind
	Amount int
	TTL    int
}

// Glyph returns the rune for the pickup kind.
func (c *Collectable) Glyph() rune {
	if c.Kind == CollectAmmo {
		return AmmoChar
	}
	return HealthChar
}

// Draw paints the pickup.
func (c *Collectable) Draw(dst *core.Screen, vp core.Viewport) {
	color := core.ColorBrightGreen
	if c.Kind == CollectAmmo {
		color = core.ColorBrightYellow
	}
	dst.FillRect(vp.Rect(c.Bounds()), c.Glyph(), color)
}

// Platform is a solid obstacle.
type Platform struct {
	Box core.Box
}

// Bounds returns the platform rectangle.
func (p Platform) Bounds() core.Box {
	return p.Box
}

// Draw fills the platform rectangle.
func (p Platform) Draw(dst *core.Screen, vp core.Viewport) {
	dst.FillRect(vp.Rect(p.Box), PlatformChar, core.ColorGray)
}

var (
	_ engine.Updatable  = (*Bullet)(nil)
	_ engine.Updatable  = (*Explosion)(nil)
	_ engine.Collidable = (*Enemy)(nil)
	_ engine.Collidable = (*Collectable)(nil)
	_ engine.Killable   = (*Bullet)(nil)
	_ engine.Drawable   = (*Player)(nil)
	_ engine.Drawable   = Platform{}
)
