package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle    Phase = iota // Before the first start
	PhaseRunning              // Simulation advances
	PhaseEnded                // Simulation frozen, score final
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Result distinguishes how a session ended.
type Result int

const (
	ResultNone Result = iota
	ResultWin         // All destructible targets cleared
	ResultLoss        // Depletable resource exhausted
)

// String returns a human-readable result name.
func (r Result) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultLoss:
		return "loss"
	default:
		return "none"
	}
}

// GameState is the externally visible state of a game session.
type GameState struct {
	Score     int
	HighScore int
	Lives     int // Lives or health, depending on the game
	Phase     Phase
	Result    Result
	Paused    bool
}

// GameOver reports whether the session has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseEnded
}

// StepResult is returned by a frame and reports whether the simulation advanced.
type StepResult struct {
	State    GameState
	Advanced bool
}
