package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-trio/internal/core"
)

// KeyMap holds the in-game key bindings. It doubles as the help.KeyMap
// shown under the play field.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Shoot      key.Binding
	WeaponNext key.Binding
	Reload     key.Binding
	Pause      key.Binding
	Back       key.Binding
	Fullscreen key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Shoot: key.NewBinding(
			key.WithKeys("j", "x"),
			key.WithHelp("j/click", "shoot"),
		),
		WeaponNext: key.NewBinding(
			key.WithKeys("e", "tab"),
			key.WithHelp("e", "weapon"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "reload/restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc", "back"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Shoot, k.Pause, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Shoot, k.WeaponNext, k.Reload},
		{k.Pause, k.Back, k.Fullscreen},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// Actions translates a key message into the game actions it presses.
// The reload key also presses Restart: the loop only restarts a finished
// session and reloading only matters while playing, so one key serves both.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	switch {
	case key.Matches(msg, k.Left):
		return []core.Action{core.ActionLeft}
	case key.Matches(msg, k.Right):
		return []core.Action{core.ActionRight}
	case key.Matches(msg, k.Jump):
		return []core.Action{core.ActionJump}
	case key.Matches(msg, k.Shoot):
		return []core.Action{core.ActionShoot}
	case key.Matches(msg, k.WeaponNext):
		return []core.Action{core.ActionWeaponNext}
	case key.Matches(msg, k.Reload):
		return []core.Action{core.ActionReload, core.ActionRestart}
	case key.Matches(msg, k.Pause):
		return []core.Action{core.ActionPause}
	}
	return nil
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScores
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab", "h":
		return MenuActionScores
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
