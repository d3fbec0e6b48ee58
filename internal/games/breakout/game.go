package breakout

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/arcade-trio/internal/config"
	"github.com/vovakirdan/arcade-trio/internal/core"
	"github.com/vovakirdan/arcade-trio/internal/engine"
	"github.com/vovakirdan/arcade-trio/internal/registry"
)

// ID is the registry and score-table identifier.
const ID = "breakout"

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

// Game implements the brick breaker.
type Game struct {
	caps    engine.Capabilities
	session *engine.Session

	runtime    core.RuntimeConfig
	cfg        config.BreakoutConfig
	difficulty *config.Ramp
	rng        *rand.Rand
	area       core.Box

	paddle Paddle
	ball   Ball
	bricks []*Brick // row-major, the collision scan order
	frame  int
}

// New creates a brick breaker wired to the given host capabilities.
func New(caps engine.Capabilities) *Game {
	g := &Game{
		caps:    caps,
		session: engine.NewSession(ID, caps),
	}
	g.configure(config.DefaultBreakoutConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Brick Breaker" }

// Session returns the session state machine.
func (g *Game) Session() *engine.Session { return g.session }

// Reset loads configuration, seeds the RNG and starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		g.caps.Logger().Warn("using default breakout config", "err", err)
		cfg = config.DefaultBreakoutConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}

	g.configure(cfg)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.Restart()
}

// configure applies a config without touching the run state.
func (g *Game) configure(cfg config.BreakoutConfig) {
	g.cfg = cfg
	g.difficulty = config.NewRamp(cfg.Difficulty)
	g.area = core.NewBox(0, 0, cfg.Surface.Width, cfg.Surface.Height)
}

// Restart rebuilds the grid and serves a new ball. The RNG stream carries
// on, so a restart is as reproducible as the first run.
func (g *Game) Restart() {
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(g.runtime.Seed))
	}
	g.frame = 0
	g.paddle = newPaddle(g.cfg)
	g.bricks = buildBricks(g.cfg)
	g.session.Start(g.cfg.Gameplay.Lives)
	g.serve()
}

// serve places the ball above the paddle, moving up in a random direction.
func (g *Game) serve() {
	speed := g.difficulty.Speed(g.cfg.Ball.Speed, g.session.Score(), g.frame)
	vx := speed
	if g.rng.Intn(2) == 0 {
		vx = -vx
	}
	pos := core.V(g.cfg.Surface.Width/2, g.cfg.Surface.Height-g.cfg.Ball.OffsetBottom)
	g.ball = Ball{engine.NewBody(pos, core.V(vx, -speed), engine.CircleShape(g.cfg.Ball.Radius))}
}

// Step advances the game by one frame.
func (g *Game) Step(in *core.InputState) {
	g.frame++

	g.movePaddle(in)

	engine.Integrate(&g.ball.Body, core.Vec{})
	engine.Reflect(&g.ball.Body, g.area, engine.EdgesWalls)

	g.collidePaddle()
	g.collideBricks()

	if engine.Beyond(&g.ball.Body, g.area, engine.EdgeBottom) {
		g.loseBall()
		return
	}

	if countAlive(g.bricks) == 0 {
		g.session.End(core.ResultWin)
		g.caps.PlaySound(engine.ClipWin)
	}
}

// movePaddle applies held direction keys and keeps the paddle on screen.
func (g *Game) movePaddle(in *core.InputState) {
	if in.Held(core.ActionLeft) {
		g.paddle.Pos.X -= g.paddle.Speed
	}
	if in.Held(core.ActionRight) {
		g.paddle.Pos.X += g.paddle.Speed
	}
	engine.Clamp(&g.paddle.Body, g.area, engine.EdgesSides, false)
}

// collidePaddle sends a descending ball back up when its bottom edge lands
// within one frame's travel of the paddle top.
func (g *Game) collidePaddle() {
	b := &g.ball.Body
	if b.Vel.Y <= 0 {
		return
	}
	bottom := b.Pos.Y + g.cfg.Ball.Radius
	top := g.paddle.Pos.Y
	if bottom < top || bottom > top+math.Abs(b.Vel.Y) {
		return
	}
	if b.Pos.X > g.paddle.Pos.X && b.Pos.X < g.paddle.Pos.X+g.paddle.Shape.W {
		b.Vel.Y = -math.Abs(b.Vel.Y)
	}
}

// collideBricks resolves at most one brick per frame, first in scan order.
func (g *Game) collideBricks() {
	idx := engine.FirstHit(len(g.bricks), func(i int) bool {
		brick := g.bricks[i]
		return brick.Alive() && engine.CircleBoxOverlap(&g.ball.Body, brick.Box)
	})
	if idx < 0 {
		return
	}

	brick := g.bricks[idx]
	side := engine.ImpactSide(&g.ball.Body, brick.Box)
	engine.Bounce(&g.ball.Body, side)
	brick.Kill()
	g.session.AddScore(g.cfg.Bricks.Points)
	g.caps.PlaySound(engine.ClipHit)
}

// loseBall costs a life, then re-serves or ends the run.
func (g *Game) loseBall() {
	g.session.Deplete(1)
	if !g.session.Running() {
		g.caps.PlaySound(engine.ClipGameOver)
		return
	}
	g.caps.PlaySound(engine.ClipLose)
	g.paddle = newPaddle(g.cfg)
	g.serve()
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

	engine.DrawHUD(dst, st, fmt.Sprintf("Lives: %d", st.Lives),
		fmt.Sprintf("Bricks: %d/%d", countAlive(g.bricks), len(g.bricks)))

	for _, brick := range g.bricks {
		if brick.Alive() {
			dst.FillRect(vp.Rect(brick.Box), BrickChar, brick.Color)
		}
	}

	dst.FillRect(vp.Rect(g.paddle.Bounds()), PaddleChar, core.ColorBrightCyan)

	if st.Phase == core.PhaseRunning {
		dst.SetColored(vp.CellX(g.ball.Pos.X), vp.CellY(g.ball.Pos.Y), BallChar, core.ColorBrightWhite)
	}

	engine.DrawOverlay(dst, st, "YOU WIN!")
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.State()
}

// Register the game with the registry
func init() {
	registry.Register(ID, func(caps engine.Capabilities) registry.Game {
		return New(caps)
	})
}
