package platformer

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
const ID = "platformer"

const bulletSize = 4

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

// Game implements the platformer shooter.
type Game struct {
	caps    engine.Capabilities
	session *engine.Session

	runtime    core.RuntimeConfig
	cfg        config.PlatformerConfig
	difficulty *config.Ramp
	rng        *rand.Rand
	area       core.Box
	sched      *engine.Scheduler

	player       Player
	arsenal      *Arsenal
	platforms    []Platform
	enemies      []*Enemy
	bullets      []*Bullet
	explosions   []*Explosion
	collectables []*Collectable
	kills        int
	frame        int
}

// New creates a platformer shooter wired to the given host capabilities.
func New(caps engine.Capabilities) *Game {
	g := &Game{
		caps:    caps,
		session: engine.NewSession(ID, caps),
		sched:   engine.NewScheduler(),
	}
	g.configure(config.DefaultPlatformerConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Platform Shooter" }

// Session returns the session state machine.
func (g *Game) Session() *engine.Session { return g.session }

// Reset loads configuration, seeds the RNG and starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		g.caps.Logger().Warn("using default platformer config", "err", err)
		cfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}

	g.configure(cfg)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.Restart()
}

// configure applies a config without touching the run state.
func (g *Game) configure(cfg config.PlatformerConfig) {
	g.cfg = cfg
	g.difficulty = config.NewRamp(cfg.Difficulty)
	g.area = core.NewBox(0, 0, cfg.Surface.Width, cfg.Surface.Height)
	g.arsenal = NewArsenal(cfg.Weapons)

	g.platforms = g.platforms[:0]
	for _, p := range cfg.Platforms {
		g.platforms = append(g.platforms, Platform{Box: core.NewBox(p.X, p.Y, p.W, p.H)})
	}
}

// Restart cancels pending timers, clears every entity and starts a new run.
// Reloads in flight are cancelled, so a stale completion can never refill a
// weapon of the new run.
func (g *Game) Restart() {
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(g.runtime.Seed))
	}
	g.sched.CancelAll()
	g.arsenal.Reset()

	g.frame = 0
	g.kills = 0
	g.enemies = g.enemies[:0]
	g.bullets = g.bullets[:0]
	g.explosions = g.explosions[:0]
	g.collectables = g.collectables[:0]

	pc := g.cfg.Player
	pos := core.V((g.cfg.Surface.Width-pc.Width)/2, g.cfg.Surface.Height-pc.Height)
	g.player = Player{
		Body:     engine.NewBody(pos, core.Vec{}, engine.RectShape(pc.Width, pc.Height)),
		Facing:   1,
		Grounded: true,
	}

	g.session.Start(pc.Health)
	g.sched.After(g.cfg.Enemies.SpawnEvery, g.spawnEnemy)
}

// spawnEnemy adds an enemy at a random edge, unless the cap is reached, and
// schedules the next attempt. The interval shrinks with difficulty.
func (g *Game) spawnEnemy() {
	ec := g.cfg.Enemies
	if len(g.enemies) < ec.MaxAlive {
		x := 0.0
		if g.rng.Intn(2) == 1 {
			x = g.cfg.Surface.Width - ec.Width
		}
		pos := core.V(x, g.cfg.Surface.Height-ec.Height)
		g.enemies = append(g.enemies, &Enemy{
			Body:   engine.NewBody(pos, core.Vec{}, engine.RectShape(ec.Width, ec.Height)),
			Health: ec.Health,
			Speed:  g.difficulty.Speed(ec.Speed, g.session.Score(), g.frame),
		})
	}

	next := g.difficulty.Interval(ec.SpawnEvery, ec.SpawnEvery/3, g.session.Score(), g.frame)
	g.sched.After(next, g.spawnEnemy)
}

// Step advances the game by one frame.
func (g *Game) Step(in *core.InputState) {
	g.frame++
	g.sched.Advance()
	g.arsenal.Tick()
	if g.player.Invulnerable > 0 {
		g.player.Invulnerable--
	}

	g.movePlayer(in)
	g.handleWeapons(in)
	g.updateEnemies()
	g.updateBullets()
	g.checkContact()
	g.updateCollectables()
	for _, e := range g.explosions {
		e.Update()
	}

	g.enemies = engine.Prune(g.enemies)
	g.bullets = engine.Prune(g.bullets)
	g.explosions = engine.Prune(g.explosions)
	g.collectables = engine.Prune(g.collectables)
}

// movePlayer applies input, gravity, platforms and the arena walls.
func (g *Game) movePlayer(in *core.InputState) {
	pc := g.cfg.Player
	p := &g.player

	p.Vel.X = 0
	if in.Held(core.ActionLeft) {
		p.Vel.X -= pc.Speed
		p.Facing = -1
	}
	if in.Held(core.ActionRight) {
		p.Vel.X += pc.Speed
		p.Facing = 1
	}
	if in.JustPressed(core.ActionJump) && p.Grounded {
		p.Vel.Y = pc.JumpImpulse
	}

	p.Vel.Y = math.Min(p.Vel.Y+pc.Gravity, pc.MaxFallSpeed)
	engine.Integrate(&p.Body, core.Vec{})
	p.Grounded = g.settle(&p.Body)
}

// settle pushes a body out of every platform, then keeps it inside the
// arena. Reports whether the body ended up standing on something.
func (g *Game) settle(b *engine.Body) bool {
	grounded := false
	for _, pl := range g.platforms {
		if engine.ResolveSolid(b, pl.Box) == engine.SideTop {
			grounded = true
		}
	}
	if engine.Clamp(b, g.area, engine.EdgesAll, true).Has(engine.EdgeBottom) {
		grounded = true
	}
	return grounded
}

// handleWeapons processes weapon switching, reloading and firing.
func (g *Game) handleWeapons(in *core.InputState) {
	if in.JustPressed(core.ActionWeaponNext) {
		g.arsenal.Next()
	}
	w := g.arsenal.Current()
	if w == nil {
		return
	}
	if in.JustPressed(core.ActionReload) {
		g.reload(w)
	}

	if w.Ammo == 0 {
		if in.JustPressed(core.ActionShoot) {
			g.caps.PlaySound(engine.ClipEmpty)
		}
		g.reload(w)
		return
	}

	if !in.Held(core.ActionShoot) || !w.Fire() {
		return
	}
	g.fire(w, g.aim(in))
	g.caps.PlaySound(engine.ClipShoot)
	if w.Ammo == 0 {
		g.reload(w)
	}
}

func (g *Game) reload(w *Weapon) {
	w.StartReload(g.sched, func() {
		g.caps.PlaySound(engine.ClipReload)
	})
}

// aim returns the unit firing direction: towards the pointer when one is
// known, otherwise the way the player faces.
func (g *Game) aim(in *core.InputState) core.Vec {
	if p, ok := in.Pointer(); ok {
		if d := p.Sub(g.player.Center()); d.Len() > 0 {
			return d.Norm()
		}
	}
	return core.V(g.player.Facing, 0)
}

// fire spawns the weapon's pellets from the player's centre, fanned out
// evenly around dir.
func (g *Game) fire(w *Weapon, dir core.Vec) {
	spec := w.Spec
	pellets := max(spec.Pellets, 1)
	base := math.Atan2(dir.Y, dir.X)
	origin := g.player.Center().Sub(core.V(bulletSize/2, bulletSize/2))

	for i := range pellets {
		v := dir
		if pellets > 1 {
			a := base + (float64(i)-float64(pellets-1)/2)*spec.Spread
			v = core.V(math.Cos(a), math.Sin(a))
		}
		g.bullets = append(g.bullets, &Bullet{
			Body:   engine.NewBody(origin, v.Scale(spec.BulletSpeed), engine.RectShape(bulletSize, bulletSize)),
			Damage: spec.Damage,
			TTL:    spec.Lifetime,
		})
	}
}

// updateEnemies walks every enemy towards the player under gravity.
func (g *Game) updateEnemies() {
	pc := g.cfg.Player
	target := g.player.Center().X

	for _, e := range g.enemies {
		if !e.Alive() {
			continue
		}
		if e.Flash > 0 {
			e.Flash--
		}

		dx := target - e.Bounds().Center().X
		switch {
		case dx > 1:
			e.Vel.X = e.Speed
		case dx < -1:
			e.Vel.X = -e.Speed
		default:
			e.Vel.X = 0
		}

		e.Vel.Y = math.Min(e.Vel.Y+pc.Gravity, pc.MaxFallSpeed)
		engine.Integrate(&e.Body, core.Vec{})
		e.Grounded = g.settle(&e.Body)
	}
}

// updateBullets moves bullets and resolves at most one enemy hit each.
func (g *Game) updateBullets() {
	for _, b := range g.bullets {
		b.Update()
		if !b.Alive() {
			continue
		}
		bounds := b.Bounds()
		if engine.Offscreen(&b.Body, g.area, 0) || g.hitsPlatform(bounds) {
			b.Kill()
			continue
		}

		i := engine.FirstHit(len(g.enemies), func(i int) bool {
			e := g.enemies[i]
			return e.Alive() && engine.Overlap(bounds, e.Bounds())
		})
		if i < 0 {
			continue
		}
		b.Kill()
		g.caps.PlaySound(engine.ClipHit)
		if e := g.enemies[i]; e.Damage(b.Damage) {
			g.killEnemy(e)
		}
	}
}

func (g *Game) hitsPlatform(box core.Box) bool {
	return engine.FirstHit(len(g.platforms), func(i int) bool {
		return engine.Overlap(box, g.platforms[i].Box)
	}) >= 0
}

// killEnemy scores a kill, leaves an explosion and maybe a drop.
func (g *Game) killEnemy(e *Enemy) {
	g.kills++
	g.session.AddScore(g.cfg.Enemies.Points)

	frames := g.cfg.Gameplay.ExplosionFrames
	center := e.Bounds().Center()
	g.explosions = append(g.explosions, &Explosion{Pos: center, TTL: frames, Max: frames})
	g.maybeDrop(center)

	if target := g.cfg.Gameplay.KillTarget; target > 0 && g.kills >= target {
		if g.session.End(core.ResultWin) {
			g.caps.PlaySound(engine.ClipWin)
		}
	}
}

// maybeDrop rolls for a collectable at the given point.
func (g *Game) maybeDrop(at core.Vec) {
	dc := g.cfg.Drops
	if g.rng.Float64() >= dc.Chance {
		return
	}
	kind := CollectHealth
	if g.rng.Intn(2) == 1 {
		kind = CollectAmmo
	}
	pos := at.Sub(core.V(dc.Size/2, dc.Size/2))
	g.collectables = append(g.collectables, &Collectable{
		Body:   engine.NewBody(pos, core.Vec{}, engine.RectShape(dc.Size, dc.Size)),
		Kind:   kind,
		Amount: dc.HealthAmount,
		TTL:    dc.Lifetime,
	})
}

// checkContact damages the player when touching an enemy, then grants
// invulnerability frames.
func (g *Game) checkContact() {
	if g.player.Invulnerable > 0 || !g.session.Running() {
		return
	}
	pb := g.player.Bounds()
	i := engine.FirstHit(len(g.enemies), func(i int) bool {
		e := g.enemies[i]
		return e.Alive() && engine.Overlap(pb, e.Bounds())
	})
	if i < 0 {
		return
	}

	g.player.Invulnerable = g.cfg.Player.InvulnerableFrames
	if g.session.Deplete(g.cfg.Enemies.Damage) == 0 {
		g.caps.PlaySound(engine.ClipGameOver)
		return
	}
	g.caps.PlaySound(engine.ClipHurt)
}

// updateCollectables drops pickups onto platforms, expires them and applies
// the ones the player touches.
func (g *Game) updateCollectables() {
	pc := g.cfg.Player
	pb := g.player.Bounds()

	for _, c := range g.collectables {
		if !c.Alive() {
			continue
		}
		c.Vel.Y = math.Min(c.Vel.Y+pc.Gravity, pc.MaxFallSpeed)
		engine.Integrate(&c.Body, core.Vec{})
		g.settle(&c.Body)

		if engine.Overlap(pb, c.Bounds()) {
			c.Collect()
			g.pickUp(c)
			continue
		}
		c.TTL--
		if c.TTL <= 0 {
			c.Kill()
		}
	}
}

func (g *Game) pickUp(c *Collectable) {
	switch c.Kind {
	case CollectHealth:
		g.session.Restore(c.Amount, g.cfg.Player.Health)
	case CollectAmmo:
		g.arsenal.RefillAll()
	}
	g.caps.PlaySound(engine.ClipPickup)
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

	extra := fmt.Sprintf("Kills: %d", g.kills)
	if w := g.arsenal.Current(); w != nil {
		extra = fmt.Sprintf("%s  %s", w.Label(), extra)
	}
	engine.DrawHUD(dst, st, fmt.Sprintf("Health: %d", st.Lives), extra)

	for _, p := range g.platforms {
		p.Draw(dst, vp)
	}
	drawAll(dst, vp, g.collectables)
	drawAll(dst, vp, g.enemies)
	drawAll(dst, vp, g.bullets)
	drawAll(dst, vp, g.explosions)
	g.player.Draw(dst, vp)

	engine.DrawOverlay(dst, st, "MISSION COMPLETE")
}

func drawAll[T engine.Drawable](dst *core.Screen, vp core.Viewport, items []T) {
	for _, it := range items {
		it.Draw(dst, vp)
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
	c.Int(g.frame).Int(g.session.Score()).Int(g.session.Resource()).Int(int(g.session.Phase())).Int(g.kills)
	c.Body(&g.player.Body).Bool(g.player.Grounded).Int(g.player.Invulnerable)
	for _, w := range g.arsenal.weapons {
		c.Int(w.Ammo).Int(w.cooldown).Bool(w.Reloading())
	}
	for _, e := range g.enemies {
		c.Body(&e.Body).Int(e.Health)
	}
	for _, b := range g.bullets {
		c.Body(&b.Body).Int(b.TTL)
	}
	for _, p := range g.collectables {
		c.Body(&p.Body).Int(int(p.Kind)).Int(p.TTL)
	}
	return c.Sum()
}

// Register the game with the registry
func init() {
	registry.Register(ID, func(caps engine.Capabilities) registry.Game {
		return New(caps)
	})
}
