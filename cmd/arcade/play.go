package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-trio/internal/audio"
	"github.com/vovakirdan/arcade-trio/internal/core"
	"github.com/vovakirdan/arcade-trio/internal/engine"
	"github.com/vovakirdan/arcade-trio/internal/platform/tui"
	"github.com/vovakirdan/arcade-trio/internal/registry"
	"github.com/vovakirdan/arcade-trio/internal/replay"
	"github.com/vovakirdan/arcade-trio/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRecord     string
	flagMute       bool
	flagVolume     float64
	flagHold       int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  ←/→ or A/D    - Move (breakout, platformer)
  Space/Up/W    - Jump, flap, launch
  J or click    - Shoot (platformer, aims at the mouse)
  E/Tab         - Next weapon
  R             - Reload while playing, restart after the game ends
  P             - Pause
  F             - Toggle fullscreen
  Esc/B         - Pause, then leave
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play flappy
  arcade play breakout --difficulty hard
  arcade play platformer --record run.replay --seed 42
  arcade play flappy --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record the input to a replay file")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.4, "Sound volume from 0 to 1")
	playCmd.Flags().IntVar(&flagHold, "hold", tui.DefaultHoldFrames, "Frames a key stays held after its last repeat")
}

// terminalConfig checks that stdout is a terminal and builds the runtime
// config from its size.
func terminalConfig() (core.RuntimeConfig, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return core.RuntimeConfig{}, engine.ErrNoSurface
	}

	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(fd); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg, nil
}

// openStore opens the score database. Games still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// openSound starts the speaker. A missing audio device disables sound.
func openSound() (engine.SoundPlayer, func()) {
	if flagMute {
		return nil, func() {}
	}
	player := audio.NewPlayer(flagVolume)
	if err := player.Init(); err != nil {
		logger.Info("sound disabled", "err", err)
		return nil, func() {}
	}
	return player, player.Close
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	cfg, err := terminalConfig()
	if err != nil {
		return err
	}

	configureGame(gameID, flagConfig, flagDifficulty)

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	sound, closeSound := openSound()
	defer closeSound()

	final, err := tui.Run(gameID, cfg, tui.Options{
		Store:      store,
		Sound:      sound,
		Logger:     logger.With("game", gameID),
		HoldFrames: flagHold,
		Record:     flagRecord != "",
		Difficulty: flagDifficulty,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	if rec := final.Recording(); rec != nil {
		if err := replay.SaveFile(flagRecord, rec); err != nil {
			return err
		}
		logger.Info("replay saved", "path", flagRecord, "frames", len(rec.Frames), "score", rec.Score)
		fmt.Printf("Replay saved to %s (%d frames, score %d)\n", flagRecord, len(rec.Frames), rec.Score)
	}
	return nil
}
