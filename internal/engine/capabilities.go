package engine

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// ErrNoSurface is returned by hosts that cannot obtain a drawing surface.
// It is the only fatal engine error; everything else degrades silently.
var ErrNoSurface = errors.New("engine: render surface unavailable")

// Clip identifies a sound effect.
type Clip string

// Sound clips used by the games.
const (
	ClipHit      Clip = "hit"
	ClipLose     Clip = "lose"
	ClipGameOver Clip = "gameover"
	ClipWin      Clip = "win"
	ClipFlap     Clip = "flap"
	ClipScore    Clip = "score"
	ClipShoot    Clip = "shoot"
	ClipEmpty    Clip = "empty"
	ClipReload   Clip = "reload"
	ClipPickup   Clip = "pickup"
	ClipHurt     Clip = "hurt"
)

// HighScoreStore persists the best score per game.
// A missing value reads as zero.
type HighScoreStore interface {
	HighScore(gameID string) (int, error)
	SetHighScore(gameID string, score int) error
}

// SoundPlayer plays named clips. Playback is fire-and-forget.
type SoundPlayer interface {
	Play(clip Clip) error
}

// Fullscreen toggles the host's fullscreen mode.
type Fullscreen interface {
	ToggleFullscreen()
}

// Capabilities is the bundle of host services injected into a game. Any
// member may be nil, in which case the related feature is a no-op.
type Capabilities struct {
	HighScores HighScoreStore
	Sound      SoundPlayer
	Display    Fullscreen
	Log        *log.Logger
}

// NopCapabilities returns capabilities with every service disabled.
// Used by tests and headless replays.
func NopCapabilities() Capabilities {
	return Capabilities{Log: discardLogger()}
}

// Logger returns the injected logger or one that discards everything.
func (c Capabilities) Logger() *log.Logger {
	if c.Log == nil {
		return discardLogger()
	}
	return c.Log
}

// PlaySound plays a clip if a player is available. Failures never reach
// the simulation.
func (c Capabilities) PlaySound(clip Clip) {
	if c.Sound == nil {
		return
	}
	if err := c.Sound.Play(clip); err != nil {
		c.Logger().Debug("sound playback failed", "clip", clip, "err", err)
	}
}

// ToggleFullscreen flips fullscreen mode if the host supports it.
func (c Capabilities) ToggleFullscreen() {
	if c.Display != nil {
		c.Display.ToggleFullscreen()
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
