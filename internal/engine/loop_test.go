package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/arcade-trio/internal/core"
)

// counterSim ends itself after a fixed number of steps.
type counterSim struct {
	session  *Session
	steps    int
	renders  int
	restarts int
	limit    int
}

func newCounterSim(limit int) *counterSim {
	c := &counterSim{session: NewSession("counter", NopCapabilities()), limit: limit}
	c.session.Start(1)
	return c
}

func (c *counterSim) Step(in *core.InputState) {
	c.steps++
	if in.Held(core.ActionShoot) {
		c.session.AddScore(1)
	}
	if c.steps >= c.limit {
		c.session.End(core.ResultLoss)
	}
}

func (c *counterSim) Render(dst *core.Screen) { c.renders++ }

func (c *counterSim) Restart() {
	c.restarts++
	c.steps = 0
	c.session.Start(1)
}

func (c *counterSim) Session() *Session { return c.session }

func TestLoopStepsOnlyWhileRunning(t *testing.T) {
	sim := newCounterSim(3)
	in := core.NewInputState()
	loop := NewLoop(sim, in)
	screen := core.NewScreen(10, 5)

	var results []core.StepResult
	for i := 0; i < 6; i++ {
		results = append(results, loop.Frame(screen))
	}

	assert.Equal(t, 3, sim.steps, "no steps after the session ends")
	assert.Equal(t, 6, sim.renders, "rendering continues after the end")
	assert.True(t, results[2].Advanced)
	assert.False(t, results[3].Advanced)
	assert.True(t, results[5].State.GameOver())
	assert.Equal(t, uint64(6), loop.Frames())
	assert.Equal(t, uint64(3), loop.Steps())
}

func TestLoopPauseFreezesSimulation(t *testing.T) {
	sim := newCounterSim(100)
	in := core.NewInputState()
	loop := NewLoop(sim, in)

	loop.Frame(nil)
	in.Press(core.ActionPause)
	res := loop.Frame(nil)
	assert.False(t, res.Advanced)
	assert.True(t, res.State.Paused)

	// Holding pause does not toggle it again.
	loop.Frame(nil)
	assert.True(t, sim.session.Paused())
	assert.Equal(t, 1, sim.steps)

	in.Release(core.ActionPause)
	loop.Frame(nil)
	in.Press(core.ActionPause)
	res = loop.Frame(nil)
	assert.True(t, res.Advanced)
	assert.Equal(t, 2, sim.steps)
}

func TestLoopRestartOnlyAfterEnd(t *testing.T) {
	sim := newCounterSim(2)
	in := core.NewInputState()
	loop := NewLoop(sim, in)

	in.Press(core.ActionRestart)
	loop.Frame(nil)
	assert.Equal(t, 0, sim.restarts, "restart is ignored while running")
	in.Release(core.ActionRestart)

	loop.Frame(nil)
	assert.Equal(t, core.PhaseEnded, sim.session.Phase())
	loop.Frame(nil)
	assert.Equal(t, core.PhaseEnded, sim.session.Phase(), "ended sessions never resume on their own")

	in.Press(core.ActionRestart)
	res := loop.Frame(nil)
	assert.Equal(t, 1, sim.restarts)
	assert.True(t, res.Advanced)
	assert.Equal(t, core.PhaseRunning, res.State.Phase)
}

func TestLoopLatchesInput(t *testing.T) {
	sim := newCounterSim(100)
	in := core.NewInputState()
	loop := NewLoop(sim, in)

	in.Press(core.ActionShoot)
	assert.True(t, in.JustPressed(core.ActionShoot))
	loop.Frame(nil)
	assert.False(t, in.JustPressed(core.ActionShoot))
	loop.Frame(nil)
	assert.Equal(t, 2, sim.session.Score(), "held input is seen every frame")
}
