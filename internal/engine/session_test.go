package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-trio/internal/core"
)

type memStore struct {
	scores  map[string]int
	writes  int
	failGet bool
	failSet bool
}

func newMemStore() *memStore {
	return &memStore{scores: make(map[string]int)}
}

func (m *memStore) HighScore(id string) (int, error) {
	if m.failGet {
		return 0, errors.New("unavailable")
	}
	return m.scores[id], nil
}

func (m *memStore) SetHighScore(id string, score int) error {
	m.writes++
	if m.failSet {
		return errors.New("read-only")
	}
	if score > m.scores[id] {
		m.scores[id] = score
	}
	return nil
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession("breakout", NopCapabilities())
	assert.Equal(t, core.PhaseIdle, s.Phase())
	assert.False(t, s.Running())

	s.Start(3)
	assert.True(t, s.Running())
	assert.Equal(t, 3, s.Resource())
	assert.NotEmpty(t, s.RunID())

	assert.True(t, s.End(core.ResultWin))
	assert.Equal(t, core.PhaseEnded, s.Phase())
	assert.Equal(t, core.ResultWin, s.Result())
	assert.False(t, s.End(core.ResultLoss), "ending twice is a no-op")

	first := s.RunID()
	s.Start(3)
	assert.Equal(t, core.PhaseRunning, s.Phase())
	assert.Equal(t, core.ResultNone, s.Result())
	assert.NotEqual(t, first, s.RunID())
}

func TestSessionStartWithoutResourceEnds(t *testing.T) {
	for _, res := range []int{0, -2} {
		s := NewSession("breakout", NopCapabilities())
		s.Start(res)

		assert.Equal(t, core.PhaseEnded, s.Phase(), "start(%d)", res)
		assert.Equal(t, core.ResultLoss, s.Result(), "start(%d)", res)
		assert.Zero(t, s.Resource())
		assert.NotEmpty(t, s.RunID(), "the run still gets an id for history")
	}
}

func TestSessionScoreNeverDecreases(t *testing.T) {
	s := NewSession("flappy", NopCapabilities())
	s.Start(1)

	prev := 0
	for _, n := range []int{10, -5, 0, 3, -100, 7} {
		got := s.AddScore(n)
		require.GreaterOrEqual(t, got, prev)
		prev = got
	}
	assert.Equal(t, 20, s.Score())

	s.End(core.ResultLoss)
	s.AddScore(50)
	assert.Equal(t, 20, s.Score(), "score is frozen once ended")
}

func TestSessionDepleteEndsAtZero(t *testing.T) {
	s := NewSession("breakout", NopCapabilities())
	s.Start(3)

	assert.Equal(t, 2, s.Deplete(1))
	assert.True(t, s.Running())
	assert.Equal(t, 0, s.Deplete(5), "resource clamps at zero")
	assert.Equal(t, core.PhaseEnded, s.Phase())
	assert.Equal(t, core.ResultLoss, s.Result())
}

func TestSessionRestoreCaps(t *testing.T) {
	s := NewSession("platformer", NopCapabilities())
	s.Start(100)
	s.Deplete(30)
	assert.Equal(t, 90, s.Restore(20, 90))
	assert.Equal(t, 100, s.Restore(50, 100))
}

func TestSessionPause(t *testing.T) {
	s := NewSession("flappy", NopCapabilities())
	s.TogglePause()
	assert.False(t, s.Paused(), "idle sessions cannot pause")

	s.Start(1)
	s.TogglePause()
	assert.True(t, s.Paused())
	assert.False(t, s.Running())
	assert.True(t, s.State().Paused)

	s.TogglePause()
	assert.True(t, s.Running())
}

func TestSessionHighScorePersistence(t *testing.T) {
	store := newMemStore()
	store.scores["breakout"] = 40

	s := NewSession("breakout", Capabilities{HighScores: store})
	assert.Equal(t, 40, s.HighScore())

	s.Start(3)
	s.AddScore(30)
	assert.Equal(t, 40, s.State().HighScore)
	s.End(core.ResultLoss)
	assert.Equal(t, 0, store.writes, "lower scores are not written")

	s.Start(3)
	s.AddScore(60)
	assert.Equal(t, 60, s.State().HighScore, "HUD tracks the running score")
	s.End(core.ResultLoss)
	assert.Equal(t, 1, store.writes)
	assert.Equal(t, 60, store.scores["breakout"])
	assert.Equal(t, 60, s.HighScore())

	// Idempotent: equal or lower never lowers or rewrites.
	s.Start(3)
	s.AddScore(60)
	s.End(core.ResultLoss)
	assert.Equal(t, 1, store.writes)
	assert.Equal(t, 60, s.HighScore())
}

func TestSessionStoreFailuresDegrade(t *testing.T) {
	store := newMemStore()
	store.failGet = true
	store.failSet = true

	s := NewSession("flappy", Capabilities{HighScores: store})
	assert.Equal(t, 0, s.HighScore())

	s.Start(1)
	s.AddScore(5)
	assert.True(t, s.End(core.ResultLoss))
	assert.Equal(t, 5, s.HighScore(), "in-memory high score still advances")
}
