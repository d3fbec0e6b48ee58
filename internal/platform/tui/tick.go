// Package tui provides the Bubble Tea integration for the arcade platform.
// It drives game loops from ticks, maps keys and mouse to actions, and hosts
// the menu, scoreboard and SSH sessions.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model owning Chain to run one frame. A game left for the
// menu can still have a tick in flight; the chain id keeps it from driving
// the next game's loop.
type TickMsg struct {
	Chain uint64
	At    time.Time
}

var chains atomic.Uint64

// newChain returns a fresh tick chain id.
func newChain() uint64 {
	return chains.Add(1)
}

// tickCmd returns a command that sends one tick for chain after a frame
// interval at tickRate.
func tickCmd(tickRate int, chain uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Chain: chain, At: t}
	})
}
