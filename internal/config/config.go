// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// Surface is the logical play area in simulation units.
type Surface struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutConfig contains all configuration for the brick-breaker.
type BreakoutConfig struct {
	Surface    Surface          `yaml:"surface"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Ball       BreakoutBall     `yaml:"ball"`
	Bricks     BreakoutBricks   `yaml:"bricks"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	OffsetBottom float64 `yaml:"offset_bottom"` // distance from the paddle top to the floor
	Speed        float64 `yaml:"speed"`
}

// BreakoutBall defines the ball and its serve.
type BreakoutBall struct {
	Radius       float64 `yaml:"radius"`
	Speed        float64 `yaml:"speed"`         // per-axis speed at serve
	OffsetBottom float64 `yaml:"offset_bottom"` // serve height above the floor
}

// BreakoutBricks defines the brick grid.
type BreakoutBricks struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Padding   float64 `yaml:"padding"`
	OffsetTop float64 `yaml:"offset_top"`
	Points    int     `yaml:"points"`
}

// BreakoutGameplay defines rules.
type BreakoutGameplay struct {
	Lives int `yaml:"lives"`
}

// FlappyConfig contains all configuration for the side-scroller.
type FlappyConfig struct {
	Surface    Surface          `yaml:"surface"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Player     FlappyPlayer     `yaml:"player"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines physics parameters for the bird.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	FlapImpulse  float64 `yaml:"flap_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	ScrollSpeed  float64 `yaml:"scroll_speed"`
}

// FlappyPlayer defines the bird's rectangle.
type FlappyPlayer struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyObstacles defines pipe generation.
type FlappyObstacles struct {
	PipeWidth  float64 `yaml:"pipe_width"`
	SpawnEvery int     `yaml:"spawn_every"` // frames between pipes
	MinGap     float64 `yaml:"min_gap"`
	MaxGap     float64 `yaml:"max_gap"`
	Margin     float64 `yaml:"margin"`     // minimum pipe stub at top and bottom
	NoiseStep  float64 `yaml:"noise_step"` // noise input advance per pipe
}

// PlatformerConfig contains all configuration for the platformer shooter.
type PlatformerConfig struct {
	Surface    Surface            `yaml:"surface"`
	Player     PlatformerPlayer   `yaml:"player"`
	Platforms  []Platform         `yaml:"platforms"`
	Enemies    PlatformerEnemies  `yaml:"enemies"`
	Weapons    []WeaponConfig     `yaml:"weapons"`
	Drops      PlatformerDrops    `yaml:"drops"`
	Gameplay   PlatformerGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// PlatformerPlayer defines the player character.
type PlatformerPlayer struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	Speed              float64 `yaml:"speed"`
	JumpImpulse        float64 `yaml:"jump_impulse"`
	Gravity            float64 `yaml:"gravity"`
	MaxFallSpeed       float64 `yaml:"max_fall_speed"`
	Health             int     `yaml:"health"`
	InvulnerableFrames int     `yaml:"invulnerable_frames"`
}

// Platform is a solid obstacle.
type Platform struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// PlatformerEnemies defines enemy spawning and stats.
type PlatformerEnemies struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	Health     int     `yaml:"health"`
	Damage     int     `yaml:"damage"`
	Points     int     `yaml:"points"`
	SpawnEvery int     `yaml:"spawn_every"`
	MaxAlive   int     `yaml:"max_alive"`
}

// WeaponConfig defines one weapon.
type WeaponConfig struct {
	Name        string  `yaml:"name"`
	Damage      int     `yaml:"damage"`
	Magazine    int     `yaml:"magazine"`
	Cooldown    int     `yaml:"cooldown"` // frames between shots
	Reload      int     `yaml:"reload"`   // frames to refill the magazine
	BulletSpeed float64 `yaml:"bullet_speed"`
	Pellets     int     `yaml:"pellets"`
	Spread      float64 `yaml:"spread"` // radians between pellets
	Lifetime    int     `yaml:"lifetime"`
}

// PlatformerDrops defines collectables left by enemies.
type PlatformerDrops struct {
	Chance       float64 `yaml:"chance"`
	Size         float64 `yaml:"size"`
	HealthAmount int     `yaml:"health_amount"`
	Lifetime     int     `yaml:"lifetime"`
}

// PlatformerGameplay defines rules.
type PlatformerGameplay struct {
	KillTarget      int `yaml:"kill_target"` // 0 means endless
	ExplosionFrames int `yaml:"explosion_frames"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // added to speed factor
	GapReduction      float64 `yaml:"gap_reduction"`      // surface units
	IntervalReduction int     `yaml:"interval_reduction"` // frames
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

func (d *DifficultyConfig) applyPreset(preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}
