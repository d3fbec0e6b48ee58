package flappy

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/arcade-trio/internal/config"
	"github.com/vovakirdan/arcade-trio/internal/core"
	"github.com/vovakirdan/arcade-trio/internal/engine"
)

// Noise parameters for gap placement: smooth, low-detail drift.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// Pipe is a full-height column with a passable gap. The body spans the
// whole column; collision uses the two halves.
type Pipe struct {
	engine.Life
	engine.Body
	GapTop    float64
	GapHeight float64
	Passed    bool // Whether the bird has passed this pipe (for scoring)
}

// TopBox returns the collision box of the upper half.
func (p *Pipe) TopBox() core.Box {
	return core.NewBox(p.Pos.X, 0, p.Shape.W, p.GapTop)
}

// BottomBox returns the collision box of the lower half.
func (p *Pipe) BottomBox() core.Box {
	y := p.GapTop + p.GapHeight
	return core.NewBox(p.Pos.X, y, p.Shape.W, p.Shape.H-y)
}

// PipeManager handles spawning, movement, and removal of pipes.
type PipeManager struct {
	pipes      []*Pipe
	rng        *rand.Rand
	noise      *perlin.Perlin
	noiseX     float64
	area       core.Box
	cfg        *config.FlappyConfig
	difficulty *config.Ramp
}

// NewPipeManager creates a pipe manager seeded for both gap size and gap
// placement.
func NewPipeManager(seed int64, cfg *config.FlappyConfig, diff *config.Ramp) *PipeManager {
	return &PipeManager{
		pipes:      make([]*Pipe, 0, 8),
		rng:        rand.New(rand.NewSource(seed)),
		noise:      perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
		area:       core.NewBox(0, 0, cfg.Surface.Width, cfg.Surface.Height),
		cfg:        cfg,
		difficulty: diff,
	}
}

// Clear removes all pipes. The random streams carry on.
func (pm *PipeManager) Clear() {
	pm.pipes = pm.pipes[:0]
}

// Spawn adds a pipe at the right edge. The gap height is random within the
// configured range (narrowed by difficulty); the gap position follows 1D
// noise so consecutive gaps drift rather than jump.
func (pm *PipeManager) Spawn(score, frame int) *Pipe {
	obs := pm.cfg.Obstacles
	h := pm.cfg.Surface.Height

	gap := obs.MinGap + pm.rng.Float64()*(obs.MaxGap-obs.MinGap)
	gap = pm.difficulty.Gap(gap, obs.MinGap*0.75, score, frame)

	n := core.ClampF(pm.noise.Noise1D(pm.noiseX), -1, 1)
	pm.noiseX += obs.NoiseStep

	lo := obs.Margin
	hi := max(h-obs.Margin-gap, lo)
	top := lo + (n+1)/2*(hi-lo)

	speed := pm.difficulty.Speed(pm.cfg.Physics.ScrollSpeed, score, frame)
	p := &Pipe{
		Body:      engine.NewBody(core.V(pm.cfg.Surface.Width, 0), core.V(-speed, 0), engine.RectShape(obs.PipeWidth, h)),
		GapTop:    top,
		GapHeight: gap,
	}
	pm.pipes = append(pm.pipes, p)
	return p
}

// Update moves pipes left, removes those fully offscreen and returns how
// many the bird passed this frame.
func (pm *PipeManager) Update(bird core.Box) int {
	passed := 0
	for _, p := range pm.pipes {
		engine.Integrate(&p.Body, core.Vec{})

		if !p.Passed && p.Bounds().Right() < bird.X {
			p.Passed = true
			passed++
		}
		if engine.Offscreen(&p.Body, pm.area, pm.cfg.Obstacles.Margin) {
			p.Kill()
		}
	}
	pm.pipes = engine.Prune(pm.pipes)
	return passed
}

// Hit reports whether the bird overlaps either half of any pipe.
func (pm *PipeManager) Hit(bird core.Box) bool {
	return engine.FirstHit(len(pm.pipes), func(i int) bool {
		p := pm.pipes[i]
		return engine.Overlap(bird, p.TopBox()) || engine.Overlap(bird, p.BottomBox())
	}) >= 0
}

// Pipes returns the live pipes, oldest first.
func (pm *PipeManager) Pipes() []*Pipe {
	return pm.pipes
}
