package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-trio/internal/registry"
	"github.com/vovakirdan/arcade-trio/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Verify a recorded run",
	Long: `Play a recording made with 'arcade play --record' without a screen
and check that it reproduces the recorded final state exactly.

The same game config must be in effect as when the run was recorded; pass
--config if it was recorded with one. The difficulty preset is read from
the recording.

Examples:
  arcade replay run.replay
  arcade replay run.replay --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagConfig, "config", "", "Path to the custom game config used when recording")
}

func runReplay(_ *cobra.Command, args []string) error {
	rec, err := replay.LoadFile(args[0])
	if err != nil {
		return err
	}
	if !registry.Exists(rec.GameID) {
		return fmt.Errorf("recording is for unknown game %q", rec.GameID)
	}

	configureGame(rec.GameID, flagConfig, rec.Difficulty)

	logger.Info("replaying", "game", rec.GameID, "seed", rec.Seed, "frames", len(rec.Frames))
	out, err := replay.Play(rec)
	if err != nil && !errors.Is(err, replay.ErrMismatch) {
		return err
	}

	fmt.Printf("Game:     %s\n", rec.GameID)
	fmt.Printf("Frames:   %d (%d simulated)\n", out.Frames, out.Steps)
	fmt.Printf("Score:    %d (recorded %d)\n", out.State.Score, rec.Score)
	fmt.Printf("Result:   %s\n", out.State.Result)
	fmt.Printf("Checksum: %016x\n", out.Checksum)

	if err != nil {
		return err
	}
	fmt.Println("Replay verified.")
	return nil
}
