// Package replay records the per-frame input of a run and plays it back
// headlessly. Because every game is deterministic for a given seed and
// input sequence, a replay must reproduce the recorded checksum exactly.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/arcade-trio/internal/core"
	"github.com/vovakirdan/arcade-trio/internal/engine"
	"github.com/vovakirdan/arcade-trio/internal/registry"
)

// FormatVersion is bumped whenever the encoding changes incompatibly.
const FormatVersion = 1

var (
	// ErrMismatch is returned when a replay ends in a different state than
	// was recorded.
	ErrMismatch = errors.New("replay: checksum mismatch")
	// ErrVersion is returned for recordings from another format version.
	ErrVersion = errors.New("replay: unsupported format version")
)

// Checksummer is implemented by games that can hash their simulation state.
type Checksummer interface {
	Checksum() uint64
}

// Recording is one run's seed and input, plus the outcome to verify.
type Recording struct {
	Version    int                  `msgpack:"v"`
	GameID     string               `msgpack:"game"`
	Seed       int64                `msgpack:"seed"`
	Difficulty string               `msgpack:"difficulty,omitempty"`
	TickRate   int                  `msgpack:"tps"`
	Frames     []core.InputSnapshot `msgpack:"frames"`
	Score      int                  `msgpack:"score"`
	Checksum   uint64               `msgpack:"sum"`
}

// Recorder captures input snapshots as a run is played.
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording for the given game and runtime.
func NewRecorder(gameID string, runtime core.RuntimeConfig, difficulty string) *Recorder {
	return &Recorder{rec: Recording{
		Version:    FormatVersion,
		GameID:     gameID,
		Seed:       runtime.Seed,
		Difficulty: difficulty,
		TickRate:   runtime.TickRate,
	}}
}

// Capture stores the input for the next frame. Call it right before
// Loop.Frame so the snapshot includes the edge-detection baseline.
func (r *Recorder) Capture(in *core.InputState) {
	r.rec.Frames = append(r.rec.Frames, in.Snapshot())
}

// Len returns the number of captured frames.
func (r *Recorder) Len() int {
	return len(r.rec.Frames)
}

// Finish stamps the final score and checksum and returns the recording.
func (r *Recorder) Finish(game registry.Game) *Recording {
	rec := r.rec
	rec.Score = game.State().Score
	if c, ok := game.(Checksummer); ok {
		rec.Checksum = c.Checksum()
	}
	return &rec
}

// Encode writes a recording as msgpack.
func Encode(w io.Writer, rec *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	return nil
}

// Decode reads a msgpack recording.
func Decode(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if rec.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, rec.Version)
	}
	return &rec, nil
}

// SaveFile writes a recording to path.
func SaveFile(path string, rec *Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	if err := Encode(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile reads a recording from path.
func LoadFile(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Outcome is the result of a headless replay.
type Outcome struct {
	State    core.GameState
	Checksum uint64
	Frames   int
	Steps    uint64
}

// Play runs a recording headlessly with no host services. The game must
// be registered, and its configuration and difficulty preset must match
// the recording machine's; callers apply rec.Difficulty before playing.
// Returns ErrMismatch (alongside the outcome) if the final checksum
// differs from the recorded one.
func Play(rec *Recording) (Outcome, error) {
	game, err := registry.Create(rec.GameID, engine.NopCapabilities())
	if err != nil {
		return Outcome{}, err
	}

	runtime := core.DefaultConfig()
	runtime.Seed = rec.Seed
	if rec.TickRate > 0 {
		runtime.TickRate = rec.TickRate
	}
	game.Reset(runtime)

	loop := engine.NewLoop(game, core.NewInputState())
	for _, snap := range rec.Frames {
		loop.Input().Apply(snap)
		loop.Frame(nil)
	}

	out := Outcome{State: game.State(), Frames: len(rec.Frames), Steps: loop.Steps()}
	c, ok := game.(Checksummer)
	if !ok {
		return out, nil
	}
	out.Checksum = c.Checksum()
	if out.Checksum != rec.Checksum {
		return out, fmt.Errorf("%w: recorded %x, replayed %x", ErrMismatch, rec.Checksum, out.Checksum)
	}
	return out, nil
}
