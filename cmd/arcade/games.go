package main

import (
	"github.com/vovakirdan/arcade-trio/internal/games/breakout"
	"github.com/vovakirdan/arcade-trio/internal/games/flappy"
	"github.com/vovakirdan/arcade-trio/internal/games/platformer"
)

// configureGame sets the config file and difficulty preset a game loads on
// its next Reset. Empty values restore the defaults.
func configureGame(gameID, configPath, preset string) {
	switch gameID {
	case breakout.ID:
		breakout.SetConfigPath(configPath)
		breakout.SetDifficultyPreset(preset)
	case flappy.ID:
		flappy.SetConfigPath(configPath)
		flappy.SetDifficultyPreset(preset)
	case platformer.ID:
		platformer.SetConfigPath(configPath)
		platformer.SetDifficultyPreset(preset)
	}
}
