package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultBreakoutConfig returns the default brick-breaker configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Surface: Surface{Width: 800, Height: 500},
		Paddle: BreakoutPaddle{
			Width:        100,
			Height:       10,
			OffsetBottom: 30,
			Speed:        5,
		},
		Ball: BreakoutBall{
			Radius:       6,
			Speed:        3,
			OffsetBottom: 40,
		},
		Bricks: BreakoutBricks{
			Rows:      5,
			Cols:      12,
			Width:     60,
			Height:    15,
			Padding:   5,
			OffsetTop: 30,
			Points:    10,
		},
		Gameplay: BreakoutGameplay{
			Lives: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionScore,
				MaxAt: 600,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5, // applied when the ball is served
			},
		},
	}
}

// DefaultFlappyConfig returns the default side-scroller configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Surface: Surface{Width: 800, Height: 500},
		Physics: FlappyPhysics{
			Gravity:      0.35,
			FlapImpulse:  -6.5,
			MaxFallSpeed: 9,
			ScrollSpeed:  3,
		},
		Player: FlappyPlayer{
			X:      160,
			Width:  34,
			Height: 24,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:  70,
			SpawnEvery: 95,
			MinGap:     130,
			MaxGap:     170,
			Margin:     40,
			NoiseStep:  0.37,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionScore,
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.6,
				GapReduction:      30,
				IntervalReduction: 25,
			},
		},
	}
}

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Surface: Surface{Width: 800, Height: 500},
		Player: PlatformerPlayer{
			Width:              24,
			Height:             36,
			Speed:              4,
			JumpImpulse:        -10,
			Gravity:            0.5,
			MaxFallSpeed:       12,
			Health:             100,
			InvulnerableFrames: 45,
		},
		Platforms: []Platform{
			{X: 120, Y: 380, W: 180, H: 16},
			{X: 500, Y: 380, W: 180, H: 16},
			{X: 310, Y: 280, W: 180, H: 16},
			{X: 60, Y: 180, W: 140, H: 16},
			{X: 600, Y: 180, W: 140, H: 16},
		},
		Enemies: PlatformerEnemies{
			Width:      24,
			Height:     30,
			Speed:      1.4,
			Health:     30,
			Damage:     10,
			Points:     25,
			SpawnEvery: 120,
			MaxAlive:   8,
		},
		Weapons: []WeaponConfig{
			{Name: "pistol", Damage: 10, Magazine: 12, Cooldown: 14, Reload: 60, BulletSpeed: 10, Pellets: 1, Lifetime: 90},
			{Name: "rifle", Damage: 6, Magazine: 30, Cooldown: 5, Reload: 90, BulletSpeed: 13, Pellets: 1, Lifetime: 80},
			{Name: "shotgun", Damage: 8, Magazine: 6, Cooldown: 35, Reload: 100, BulletSpeed: 9, Pellets: 5, Spread: 0.12, Lifetime: 40},
		},
		Drops: PlatformerDrops{
			Chance:       0.25,
			Size:         14,
			HealthAmount: 20,
			Lifetime:     600,
		},
		Gameplay: PlatformerGameplay{
			KillTarget:      0,
			ExplosionFrames: 18,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionTime,
				MaxAt: 10800, // 3 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.8,
				IntervalReduction: 60,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout":
		return defaultBreakoutYAML
	case "flappy":
		return defaultFlappyYAML
	case "platformer":
		return defaultPlatformerYAML
	default:
		return nil
	}
}
