// Package flappy implements a side-scrolling obstacle avoider.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/arcade-trio/internal/config"
	"github.com/vovakirdan/arcade-trio/internal/core"
	"github.com/vovakirdan/arcade-trio/internal/engine"
	"github.com/vovakirdan/arcade-trio/internal/registry"
)

// ID is the registry and score-table identifier.
const ID = "flappy"

// Visual characters for rendering
const (
	BirdChar      = '●'
	BeakChar      = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Empty or unknown names
// clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = ""
	if p, ok := config.ParsePreset(preset); ok && preset != "" {
		difficultyPreset = p
	}
}

// Bird is the player: a rectangle at a fixed x.
type Bird struct {
	engine.Body
}

// Game implements the side-scroller.
type Game struct {
	caps    engine.Capabilities
	session *engine.Session

	runtime    core.RuntimeConfig
	cfg        config.FlappyConfig
	difficulty *config.Ramp
	area       core.Box

	bird  Bird
	pipes *PipeManager
	sched *engine.Scheduler
	frame int
}

// New creates a side-scroller wired to the given host capabilities.
func New(caps engine.Capabilities) *Game {
	g := &Game{
		caps:    caps,
		session: engine.NewSession(ID, caps),
		sched:   engine.NewScheduler(),
	}
	g.configure(config.DefaultFlappyConfig(), 0)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Flappy" }

// Session returns the session state machine.
func (g *Game) Session() *engine.Session { return g.session }

// Reset loads configuration, seeds the pipe generator and starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadFlappy(configPath)
	if err != nil {
		g.caps.Logger().Warn("using default flappy config", "err", err)
		cfg = config.DefaultFlappyConfig()
	}
	if difficultyPreset != "" {
		config.ApplyFlappyPreset(&cfg, difficultyPreset)
	}

	g.configure(cfg, runtime.Seed)
	g.Restart()
}

func (g *Game) configure(cfg config.FlappyConfig, seed int64) {
	g.cfg = cfg
	g.difficulty = config.NewRamp(cfg.Difficulty)
	g.area = core.NewBox(0, 0, cfg.Surface.Width, cfg.Surface.Height)
	g.pipes = NewPipeManager(seed, &g.cfg, g.difficulty)
}

// Restart clears the pipes, recentres the bird and starts a new run.
func (g *Game) Restart() {
	g.sched.CancelAll()
	g.pipes.Clear()
	g.frame = 0

	p := g.cfg.Player
	pos := core.V(p.X, (g.cfg.Surface.Height-p.Height)/2)
	g.bird = Bird{engine.NewBody(pos, core.Vec{}, engine.RectShape(p.Width, p.Height))}

	g.session.Start(1)
	g.sched.After(g.cfg.Obstacles.SpawnEvery, g.spawnPipe)
}

// spawnPipe adds a pipe and schedules the next one. The interval shrinks
// with difficulty.
func (g *Game) spawnPipe() {
	g.pipes.Spawn(g.session.Score(), g.frame)
	next := g.difficulty.Interval(g.cfg.Obstacles.SpawnEvery, g.cfg.Obstacles.SpawnEvery/2, g.session.Score(), g.frame)
	g.sched.After(next, g.spawnPipe)
}

// Step advances the game by one frame.
func (g *Game) Step(in *core.InputState) {
	g.frame++
	g.sched.Advance()

	if in.JustPressed(core.ActionJump) || in.JustPressed(core.ActionShoot) {
		g.bird.Vel.Y = g.cfg.Physics.FlapImpulse
		g.caps.PlaySound(engine.ClipFlap)
	}

	g.bird.Vel.Y = math.Min(g.bird.Vel.Y+g.cfg.Physics.Gravity, g.cfg.Physics.MaxFallSpeed)
	engine.Integrate(&g.bird.Body, core.Vec{})
	engine.Clamp(&g.bird.Body, g.area, engine.EdgeTop, true)

	if passed := g.pipes.Update(g.bird.Bounds()); passed > 0 {
		g.session.AddScore(passed)
		g.caps.PlaySound(engine.ClipScore)
	}

	if g.pipes.Hit(g.bird.Bounds()) {
		g.caps.PlaySound(engine.ClipHit)
		g.crash()
		return
	}

	g.checkFloor()
}

// onFloor reports whether the bird has reached the floor while not rising.
func (g *Game) onFloor() bool {
	return engine.Touches(&g.bird.Body, g.area, engine.EdgeBottom) && g.bird.Vel.Y >= 0
}

// checkFloor ends the run when the bird lands on the floor.
func (g *Game) checkFloor() {
	if g.onFloor() {
		g.caps.PlaySound(engine.ClipGameOver)
		g.crash()
	}
}

// crash spends the bird's only life, which ends the run.
func (g *Game) crash() {
	g.session.Deplete(g.session.Resource())
}

// Viewport maps the play surface onto a screen of cols x rows cells.
func (g *Game) Viewport(cols, rows int) core.Viewport {
	return core.NewViewport(g.cfg.Surface.Width, g.cfg.Surface.Height, cols, rows, engine.HUDRows)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	st := g.State()
	vp := g.Viewport(dst.Width(), dst.Height())

	engine.DrawHUD(dst, st, fmt.Sprintf("Pipes: %d", st.Score), "")

	for _, p := range g.pipes.Pipes() {
		g.drawPipe(dst, vp, p)
	}

	body := vp.Rect(g.bird.Bounds())
	dst.FillRect(body, BirdChar, core.ColorBrightYellow)
	dst.SetColored(body.Right()-1, body.Y, BeakChar, core.ColorOrange)

	engine.DrawOverlay(dst, st, "")
}

// drawPipe renders both halves of a pipe with caps facing the gap.
func (g *Game) drawPipe(dst *core.Screen, vp core.Viewport, p *Pipe) {
	if top := p.TopBox(); top.H > 0 {
		r := vp.Rect(top)
		dst.FillRect(r, PipeChar, core.ColorGreen)
		dst.DrawHLine(r.X, r.Bottom()-1, r.W, PipeCapTop)
	}
	if bottom := p.BottomBox(); bottom.H > 0 {
		r := vp.Rect(bottom)
		dst.FillRect(r, PipeChar, core.ColorGreen)
		dst.DrawHLine(r.X, r.Y, r.W, PipeCapBottom)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.State()
}

// Checksum hashes the simulation state for determinism checks and replay
// verification.
func (g *Game) Checksum() uint64 {
	var c engine.Checksum
	c.Int(g.frame).Int(g.session.Score()).Int(int(g.session.Phase())).Body(&g.bird.Body)
	for _, p := range g.pipes.Pipes() {
		c.Body(&p.Body).Float(p.GapTop).Float(p.GapHeight).Bool(p.Passed)
	}
	return c.Sum()
}

// Register the game with the registry
func init() {
	registry.Register(ID, func(caps engine.Capabilities) registry.Game {
		return New(caps)
	})
}
