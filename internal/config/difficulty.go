package config

import "math"

// Progression sources accepted in ProgressionConfig.Type.
const (
	ProgressionScore = "score"
	ProgressionTime  = "time"
	ProgressionNone  = "none"
)

// Ramp turns a run's progress into a difficulty level and scales game
// parameters by it. Level 0 is the configured start, level 1 applies the
// full Scaling amounts.
type Ramp struct {
	start   float64
	maxAt   float64
	source  func(score, frame int) int // nil means a flat ramp
	scaling ScalingConfig
}

// NewRamp builds a ramp from a difficulty section. A disabled section or an
// unknown progression type gives a flat ramp held at the initial level.
func NewRamp(cfg DifficultyConfig) *Ramp {
	r := &Ramp{
		start:   math.Max(0, math.Min(1, cfg.InitialLevel)),
		maxAt:   math.Max(1, float64(cfg.Progression.MaxAt)),
		scaling: cfg.Scaling,
	}
	if !cfg.Enabled {
		return r
	}
	switch cfg.Progression.Type {
	case ProgressionScore:
		r.source = func(score, _ int) int { return score }
	case ProgressionTime:
		r.source = func(_, frame int) int { return frame }
	}
	return r
}

// Flat reports whether the level never changes during a run.
func (r *Ramp) Flat() bool {
	return r.source == nil
}

// Level returns the difficulty in [start, 1] for the given score and frame.
func (r *Ramp) Level(score, frame int) float64 {
	if r.Flat() {
		return r.start
	}
	progress := math.Min(float64(r.source(score, frame))/r.maxAt, 1)
	if progress <= 0 {
		return r.start
	}
	return r.start + progress*(1-r.start)
}

// Speed scales base up to base * (1 + SpeedMultiplier).
func (r *Ramp) Speed(base float64, score, frame int) float64 {
	return base * (1 + r.Level(score, frame)*r.scaling.SpeedMultiplier)
}

// Gap narrows an opening by up to GapReduction, never below floor.
func (r *Ramp) Gap(base, floor float64, score, frame int) float64 {
	return math.Max(base-r.Level(score, frame)*r.scaling.GapReduction, floor)
}

// Interval shortens a frame count by up to IntervalReduction, never below
// floor.
func (r *Ramp) Interval(base, floor, score, frame int) int {
	cut := int(r.Level(score, frame) * float64(r.scaling.IntervalReduction))
	return max(base-cut, floor)
}
