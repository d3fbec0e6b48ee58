package engine

import "math"

// Checksum accumulates an order-sensitive hash of simulation state. Two runs
// fed the same seed and input must produce the same sum.
type Checksum struct {
	h uint64
}

// Int mixes an integer into the sum.
func (c *Checksum) Int(v int) *Checksum {
	c.h = c.h*31 + uint64(v) //#nosec G115 -- hash computation
	return c
}

// Float mixes the exact bit pattern of a float into the sum.
func (c *Checksum) Float(v float64) *Checksum {
	c.h = c.h*31 + math.Float64bits(v)
	return c
}

// Bool mixes a flag into the sum.
func (c *Checksum) Bool(v bool) *Checksum {
	if v {
		return c.Int(1)
	}
	return c.Int(0)
}

// Body mixes position and velocity.
func (c *Checksum) Body(b *Body) *Checksum {
	return c.Float(b.Pos.X).Float(b.Pos.Y).Float(b.Vel.X).Float(b.Vel.Y)
}

// Sum returns the accumulated hash.
func (c *Checksum) Sum() uint64 {
	return c.h
}
