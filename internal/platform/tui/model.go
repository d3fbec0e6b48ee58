package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-trio/internal/core"
	"github.com/vovakirdan/arcade-trio/internal/engine"
	"github.com/vovakirdan/arcade-trio/internal/registry"
	"github.com/vovakirdan/arcade-trio/internal/replay"
	"github.com/vovakirdan/arcade-trio/internal/storage"
)

// DefaultHoldFrames is how long a key counts as held after its last press.
// Terminals report no key releases, so a held key is inferred from the
// auto-repeat stream; the window must outlast the repeat interval.
const DefaultHoldFrames = 8

// Options configures a game session in the terminal.
type Options struct {
	Store      *storage.Store
	Sound      engine.SoundPlayer
	Logger     *log.Logger
	HoldFrames int    // 0 means DefaultHoldFrames
	Record     bool   // capture input for a replay
	Difficulty string // stored in recordings
	Embedded   bool   // Back returns to the caller instead of quitting
	AltScreen  bool   // the program starts in the alternate screen
}

// surfaceMapper is implemented by games that can map screen cells back to
// their play surface, which enables mouse aiming.
type surfaceMapper interface {
	Viewport(cols, rows int) core.Viewport
}

// altScreen tracks fullscreen requests from the game. The model turns a
// pending toggle into the matching Bubble Tea command.
type altScreen struct {
	on      bool
	pending bool
}

func (a *altScreen) ToggleFullscreen() {
	a.on = !a.on
	a.pending = true
}

// cmd returns the command for a pending toggle, if any.
func (a *altScreen) cmd() tea.Cmd {
	if !a.pending {
		return nil
	}
	a.pending = false
	if a.on {
		return tea.EnterAltScreen
	}
	return tea.ExitAltScreen
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game     registry.Game
	loop     *engine.Loop
	screen   *core.Screen
	store    *storage.Store
	caps     engine.Capabilities
	display  *altScreen
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	hold     int
	holdLeft map[core.Action]int
	recorder *replay.Recorder
	embedded bool
	chain    uint64

	gameState  core.GameState
	mouseDown  bool
	savedRun   string // RunID of the last run written to the store
	quitting   bool
	backToMenu bool
}

// NewModel creates the game by ID, wires it to the host services and
// starts its first run.
func NewModel(gameID string, cfg core.RuntimeConfig, opts Options) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	display := &altScreen{on: opts.AltScreen}
	caps := engine.Capabilities{Display: display, Log: opts.Logger, Sound: opts.Sound}
	if opts.Store != nil {
		caps.HighScores = opts.Store
	}

	game, err := registry.Create(gameID, caps)
	if err != nil {
		return Model{}, err
	}
	game.Reset(cfg)

	hold := opts.HoldFrames
	if hold <= 0 {
		hold = DefaultHoldFrames
	}

	m := Model{
		game:      game,
		loop:      engine.NewLoop(game, core.NewInputState()),
		screen:    core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		store:     opts.Store,
		caps:      caps,
		display:   display,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		config:    cfg,
		hold:      hold,
		holdLeft:  make(map[core.Action]int),
		embedded:  opts.Embedded,
		chain:     newChain(),
		gameState: game.State(),
	}
	m.help.Width = cfg.ScreenW
	if opts.Record {
		m.recorder = replay.NewRecorder(gameID, cfg, opts.Difficulty)
	}
	return m, nil
}

// playRows leaves the bottom line for key help.
func playRows(height int) int {
	return max(height-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.chain)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Chain != m.chain {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Fullscreen):
		m.caps.ToggleFullscreen()
		return m, m.display.cmd()
	case key.Matches(msg, m.keys.Back):
		// Back only leaves a paused or finished game
		if m.gameState.Paused || m.gameState.GameOver() {
			// A session host drops the Quit and shows its menu instead
			if m.embedded {
				m.backToMenu = true
			} else {
				m.quitting = true
			}
			return m, tea.Quit
		}
		m.press(core.ActionPause)
		return m, nil
	}

	for _, a := range m.keys.Actions(msg) {
		m.press(a)
	}
	return m, nil
}

// press holds an action. Movement and firing last for the hold window so
// auto-repeat reads as a continuous hold; every other action is released
// after one frame so rapid taps each produce a fresh edge.
func (m Model) press(a core.Action) {
	m.loop.Input().Press(a)
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionShoot:
		m.holdLeft[a] = m.hold
	default:
		m.holdLeft[a] = 1
	}
}

// handleMouse moves the aim pointer and maps the left button to Shoot.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	in := m.loop.Input()
	if sm, ok := m.game.(surfaceMapper); ok {
		vp := sm.Viewport(m.screen.Width(), m.screen.Height())
		if p, inside := vp.SurfacePoint(msg.X, msg.Y); inside {
			in.MovePointer(p)
		} else {
			in.ClearPointer()
		}
	}

	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		m.mouseDown = true
		in.Press(core.ActionShoot)
	case tea.MouseActionRelease:
		m.mouseDown = false
		if _, keyHeld := m.holdLeft[core.ActionShoot]; !keyHeld {
			in.Release(core.ActionShoot)
		}
	}
	return m, nil
}

// handleResize processes window resize events. Games draw through a
// viewport, so the run continues unchanged at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one loop frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}
	if m.recorder != nil {
		m.recorder.Capture(m.loop.Input())
	}

	result := m.loop.Frame(nil)
	m.gameState = result.State
	m.expireHolds()

	if m.gameState.GameOver() {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate, m.chain)
}

// expireHolds releases actions whose hold window ran out.
func (m Model) expireHolds() {
	in := m.loop.Input()
	for a, left := range m.holdLeft {
		if left > 1 {
			m.holdLeft[a] = left - 1
			continue
		}
		delete(m.holdLeft, a)
		if a == core.ActionShoot && m.mouseDown {
			continue
		}
		in.Release(a)
	}
}

// saveRun writes a finished run to the score history once per run.
func (m *Model) saveRun() {
	session := m.game.Session()
	if m.store == nil || session.RunID() == m.savedRun {
		return
	}
	m.savedRun = session.RunID()

	run := storage.Run{
		RunID:  session.RunID(),
		GameID: m.game.ID(),
		Score:  session.Score(),
		Result: session.Result().String(),
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.caps.Logger().Warn("could not save run", "game", run.GameID, "err", err)
		return
	}
	m.caps.Logger().Info("run saved", "game", run.GameID, "score", run.Score, "result", run.Result)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.caps.Logger().Warn("could not create screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.caps.Logger().Warn("could not save screenshot", "err", err)
		return
	}
	m.caps.Logger().Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Game returns the running game.
func (m Model) Game() registry.Game {
	return m.game
}

// IsQuitting reports whether the player asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked to leave for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Recording returns the captured replay, or nil when recording is off.
func (m Model) Recording() *replay.Recording {
	if m.recorder == nil {
		return nil
	}
	return m.recorder.Finish(m.game)
}

// Run starts the Bubble Tea program for one game and returns the final
// model so the caller can collect the recording.
func Run(gameID string, cfg core.RuntimeConfig, opts Options) (Model, error) {
	opts.AltScreen = true
	model, err := NewModel(gameID, cfg, opts)
	if err != nil {
		return Model{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, nil
}
