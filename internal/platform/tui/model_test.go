package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-trio/internal/core"
	"github.com/vovakirdan/arcade-trio/internal/replay"
	"github.com/vovakirdan/arcade-trio/internal/storage"

	_ "github.com/vovakirdan/arcade-trio/internal/games/flappy"
	_ "github.com/vovakirdan/arcade-trio/internal/games/platformer"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEscape}
)

func newTestModel(t *testing.T, gameID string, opts Options) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	m, err := NewModel(gameID, cfg, opts)
	if err != nil {
		t.Fatalf("NewModel(%q) error: %v", gameID, err)
	}
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for range n {
		m, _ = send(t, m, TickMsg{Chain: m.chain, At: time.Now()})
	}
	return m
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.Action
	}{
		{"space jumps", keySpace, []core.Action{core.ActionJump}},
		{"w jumps", runeKey('w'), []core.Action{core.ActionJump}},
		{"right arrow", keyRight, []core.Action{core.ActionRight}},
		{"a moves left", runeKey('a'), []core.Action{core.ActionLeft}},
		{"j shoots", runeKey('j'), []core.Action{core.ActionShoot}},
		{"e cycles weapon", runeKey('e'), []core.Action{core.ActionWeaponNext}},
		{"r reloads or restarts", runeKey('r'), []core.Action{core.ActionReload, core.ActionRestart}},
		{"p pauses", runeKey('p'), []core.Action{core.ActionPause}},
		{"unbound", runeKey('z'), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := km.Actions(tt.msg)
			if len(got) != len(tt.want) {
				t.Fatalf("Actions(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Actions(%q)[%d] = %v, expected %v", tt.msg.String(), i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMenuKeys(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScores},
		{keyEsc, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tt.msg.String(), got, tt.want)
		}
	}
}

func TestMovementHoldsForWindow(t *testing.T) {
	m := newTestModel(t, "platformer", Options{HoldFrames: 3})
	in := m.loop.Input()

	m, _ = send(t, m, keyRight)
	m = tick(t, m, 2)
	if !in.Held(core.ActionRight) {
		t.Fatal("right should still be held inside the hold window")
	}

	// Auto-repeat refreshes the window
	m, _ = send(t, m, keyRight)
	m = tick(t, m, 2)
	if !in.Held(core.ActionRight) {
		t.Fatal("repeat should extend the hold")
	}

	tick(t, m, 1)
	if in.Held(core.ActionRight) {
		t.Error("right should be released once the window runs out")
	}
}

func TestTapActionsReleaseAfterOneFrame(t *testing.T) {
	m := newTestModel(t, "flappy", Options{HoldFrames: 10})
	in := m.loop.Input()

	m, _ = send(t, m, keySpace)
	if !in.JustPressed(core.ActionJump) {
		t.Fatal("space should press jump before the next frame")
	}
	m = tick(t, m, 1)
	if in.Held(core.ActionJump) {
		t.Fatal("jump should be released after one frame")
	}

	// A second quick tap is a fresh edge
	send(t, m, keySpace)
	if !in.JustPressed(core.ActionJump) {
		t.Error("second tap should produce a new edge")
	}
}

func TestBackPausesThenQuits(t *testing.T) {
	m := newTestModel(t, "flappy", Options{})

	m, cmd := send(t, m, keyEsc)
	if cmd != nil || m.quitting {
		t.Fatal("back while running should only pause")
	}
	m = tick(t, m, 1)
	if !m.gameState.Paused {
		t.Fatal("game should be paused after back")
	}

	m, cmd = send(t, m, keyEsc)
	if !m.IsQuitting() || cmd == nil {
		t.Error("back while paused should quit a standalone game")
	}
}

func TestBackReturnsToMenuWhenEmbedded(t *testing.T) {
	m := newTestModel(t, "flappy", Options{Embedded: true})
	m, _ = send(t, m, runeKey('p'))
	m = tick(t, m, 1)

	m, _ = send(t, m, keyEsc)
	if !m.BackToMenu() || m.IsQuitting() {
		t.Error("embedded game should go back to the menu, not quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after leaving")
	}
}

func TestFullscreenToggle(t *testing.T) {
	m := newTestModel(t, "flappy", Options{AltScreen: true})

	m, cmd := send(t, m, runeKey('f'))
	if cmd == nil || m.display.on {
		t.Fatal("first toggle should leave the alternate screen")
	}
	m, cmd = send(t, m, runeKey('f'))
	if cmd == nil || !m.display.on {
		t.Fatal("second toggle should re-enter the alternate screen")
	}
	if m.display.cmd() != nil {
		t.Error("no command should be pending after a toggle was issued")
	}
}

func TestMouseAimsAndShoots(t *testing.T) {
	m := newTestModel(t, "platformer", Options{})
	in := m.loop.Input()

	m, _ = send(t, m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionMotion})
	p, ok := in.Pointer()
	if !ok {
		t.Fatal("pointer should be set inside the play area")
	}
	if p.X <= 0 || p.Y <= 0 {
		t.Errorf("pointer = %v, expected a point on the surface", p)
	}

	m, _ = send(t, m, tea.MouseMsg{X: 10, Y: 0, Action: tea.MouseActionMotion})
	if _, ok := in.Pointer(); ok {
		t.Error("pointer over the HUD should be cleared")
	}

	m, _ = send(t, m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m, 20)
	if !in.Held(core.ActionShoot) {
		t.Fatal("shoot should stay held while the button is down")
	}

	send(t, m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if in.Held(core.ActionShoot) {
		t.Error("shoot should be released with the button")
	}
}

func TestFinishedRunIsSavedOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, "flappy", Options{Store: store})

	// Without flapping the bird falls and the run ends
	for i := 0; i < 5000 && !m.gameState.GameOver(); i++ {
		m = tick(t, m, 1)
	}
	if !m.gameState.GameOver() {
		t.Fatal("run never ended")
	}
	m = tick(t, m, 30)

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() error: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(scores))
	}
	if scores[0].Result != core.ResultLoss.String() {
		t.Errorf("result = %q, expected %q", scores[0].Result, core.ResultLoss.String())
	}

	// Restarting starts a new run that is saved separately
	m, _ = send(t, m, runeKey('r'))
	m = tick(t, m, 1)
	if m.gameState.GameOver() {
		t.Fatal("r should restart a finished game")
	}
	for i := 0; i < 5000 && !m.gameState.GameOver(); i++ {
		m = tick(t, m, 1)
	}
	tick(t, m, 1)

	scores, _ = store.TopScores("flappy", 10)
	if len(scores) != 2 {
		t.Errorf("saved %d runs after restart, expected 2", len(scores))
	}
}

func TestRecordingReplays(t *testing.T) {
	m := newTestModel(t, "platformer", Options{Record: true, HoldFrames: 4})

	for i := range 300 {
		switch {
		case i%40 == 0:
			m, _ = send(t, m, keyRight)
		case i%25 == 0:
			m, _ = send(t, m, keySpace)
		case i%7 == 0:
			m, _ = send(t, m, runeKey('j'))
		}
		m = tick(t, m, 1)
	}

	rec := m.Recording()
	if rec == nil {
		t.Fatal("recording should be available")
	}
	if len(rec.Frames) != 300 {
		t.Fatalf("recorded %d frames, expected 300", len(rec.Frames))
	}

	out, err := replay.Play(rec)
	if err != nil {
		t.Fatalf("replay error: %v", err)
	}
	if out.State.Score != rec.Score {
		t.Errorf("replayed score %d, recorded %d", out.State.Score, rec.Score)
	}
}

func TestStaleTicksAreIgnored(t *testing.T) {
	m := newTestModel(t, "flappy", Options{})
	m, cmd := send(t, m, TickMsg{Chain: m.chain + 1000, At: time.Now()})
	if cmd != nil {
		t.Error("a tick from another chain should not schedule frames")
	}
	if m.loop.Frames() != 0 {
		t.Errorf("ran %d frames from a foreign tick", m.loop.Frames())
	}
}

func TestViewIncludesHelp(t *testing.T) {
	m := newTestModel(t, "flappy", Options{})
	m = tick(t, m, 1)
	if m.View() == "" {
		t.Fatal("view should not be empty while playing")
	}
	if m.screen.Height() != m.config.ScreenH-1 {
		t.Errorf("play screen has %d rows, expected one row left for help", m.screen.Height())
	}
}
