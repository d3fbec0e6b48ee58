package engine

import "github.com/vovakirdan/arcade-trio/internal/core"

// Simulation is what the loop drives. Games implement it.
type Simulation interface {
	// Step advances the simulation by one fixed frame using the current input.
	Step(in *core.InputState)
	// Render draws the current state. It must not mutate simulation state.
	Render(dst *core.Screen)
	// Restart re-initializes entities and starts a new run.
	Restart()
	// Session returns the game's session state machine.
	Session() *Session
}

// Loop runs one simulation frame at a time. The host decides when a frame
// happens (a Bubble Tea tick, a replay iterator, a test); Loop decides what
// a frame does.
type Loop struct {
	sim    Simulation
	input  *core.InputState
	frames uint64
	steps  uint64
}

// NewLoop creates a loop for sim reading from input.
func NewLoop(sim Simulation, input *core.InputState) *Loop {
	return &Loop{sim: sim, input: input}
}

// Frame handles session controls, steps the simulation if the session is
// running, always renders, then latches input for edge detection.
func (l *Loop) Frame(dst *core.Screen) core.StepResult {
	session := l.sim.Session()

	if l.input.JustPressed(core.ActionPause) {
		session.TogglePause()
	}
	if l.input.JustPressed(core.ActionRestart) && session.Phase() == core.PhaseEnded {
		l.sim.Restart()
		session = l.sim.Session()
	}

	advanced := false
	if session.Running() {
		l.sim.Step(l.input)
		l.steps++
		advanced = true
	}

	if dst != nil {
		l.sim.Render(dst)
	}
	l.input.Latch()
	l.frames++

	return core.StepResult{State: session.State(), Advanced: advanced}
}

// Input returns the input state the loop reads from.
func (l *Loop) Input() *core.InputState {
	return l.input
}

// Frames returns the number of frames run, including paused ones.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Steps returns the number of frames in which the simulation advanced.
func (l *Loop) Steps() uint64 {
	return l.steps
}
