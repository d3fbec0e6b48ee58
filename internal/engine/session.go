package engine

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/arcade-trio/internal/core"
)

// Session is the per-game state machine: phase, score, high score and the
// depletable resource (lives or health).
//
// Idle -> Running on Start; Running -> Ended on End or when the resource
// runs out; Ended -> Running only on an explicit Start. Nothing resumes a
// session implicitly.
type Session struct {
	gameID string
	store  HighScoreStore
	logger *log.Logger

	phase    core.Phase
	result   core.Result
	paused   bool
	score    int
	high     int
	resource int
	runID    string
}

// NewSession creates an idle session and loads the stored high score once.
// A failing or absent store reads as a high score of zero.
func NewSession(gameID string, caps Capabilities) *Session {
	s := &Session{
		gameID: gameID,
		store:  caps.HighScores,
		logger: caps.Logger().With("game", gameID),
	}
	if s.store != nil {
		high, err := s.store.HighScore(gameID)
		if err != nil {
			s.logger.Warn("high score unavailable", "err", err)
		} else if high > 0 {
			s.high = high
		}
	}
	return s
}

// Start begins a fresh run: score reset, resource set, phase Running.
// A run that starts with no resource left ends at once as a loss.
func (s *Session) Start(resource int) {
	s.phase = core.PhaseRunning
	s.result = core.ResultNone
	s.paused = false
	s.score = 0
	s.resource = max(resource, 0)
	s.runID = uuid.New().String()
	s.logger.Debug("run started", "run", s.runID, "resource", s.resource)
	if s.resource == 0 {
		s.End(core.ResultLoss)
	}
}

// End stops the run with the given result and persists a new high score.
// Returns false if the session was not running.
func (s *Session) End(result core.Result) bool {
	if s.phase != core.PhaseRunning {
		return false
	}
	s.phase = core.PhaseEnded
	s.result = result
	s.paused = false

	if s.score > s.high {
		s.high = s.score
		if s.store != nil {
			if err := s.store.SetHighScore(s.gameID, s.score); err != nil {
				s.logger.Warn("failed to save high score", "score", s.score, "err", err)
			}
		}
	}
	s.logger.Info("run ended", "run", s.runID, "result", result, "score", s.score, "high", s.high)
	return true
}

// AddScore increases the score while running. Non-positive amounts are
// ignored so the score never decreases within a run.
func (s *Session) AddScore(n int) int {
	if n > 0 && s.phase == core.PhaseRunning {
		s.score += n
	}
	return s.score
}

// Deplete removes n from the resource, clamping at zero. Reaching zero ends
// the run with ResultLoss. Returns the remaining resource.
func (s *Session) Deplete(n int) int {
	if n <= 0 || s.phase != core.PhaseRunning {
		return s.resource
	}
	s.resource = max(s.resource-n, 0)
	if s.resource == 0 {
		s.End(core.ResultLoss)
	}
	return s.resource
}

// Restore adds n to the resource, capped at limit.
func (s *Session) Restore(n, limit int) int {
	if n > 0 && s.phase == core.PhaseRunning {
		s.resource = min(s.resource+n, limit)
	}
	return s.resource
}

// TogglePause flips the paused flag. Only a running session can pause.
func (s *Session) TogglePause() {
	if s.phase == core.PhaseRunning {
		s.paused = !s.paused
	}
}

// Running reports whether the simulation should advance this frame.
func (s *Session) Running() bool {
	return s.phase == core.PhaseRunning && !s.paused
}

// Phase returns the lifecycle phase.
func (s *Session) Phase() core.Phase { return s.phase }

// Result returns how the last run ended.
func (s *Session) Result() core.Result { return s.result }

// Paused reports whether a running session is paused.
func (s *Session) Paused() bool { return s.paused }

// Score returns the current run's score.
func (s *Session) Score() int { return s.score }

// HighScore returns the best persisted score, never lower than any value
// previously observed.
func (s *Session) HighScore() int { return s.high }

// Resource returns the remaining lives or health.
func (s *Session) Resource() int { return s.resource }

// RunID identifies the current run in logs and score history.
func (s *Session) RunID() string { return s.runID }

// GameID returns the owning game's identifier.
func (s *Session) GameID() string { return s.gameID }

// State returns the HUD view of the session. The displayed high score
// tracks the running score once it is exceeded.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:     s.score,
		HighScore: max(s.high, s.score),
		Lives:     s.resource,
		Phase:     s.phase,
		Result:    s.result,
		Paused:    s.paused,
	}
}
