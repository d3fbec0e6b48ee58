// Package registry lets games announce themselves from init() so the
// platform can list and start them by ID without importing each one.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/arcade-trio/internal/core"
	"github.com/vovakirdan/arcade-trio/internal/engine"
)

// Game is the contract between a game and the platform. Games hold pure
// logic: the platform maps keys to actions, drives frames through an
// engine.Loop and draws the screen.
type Game interface {
	engine.Simulation

	// ID is the stable key used by the CLI, replays and score storage.
	ID() string
	Title() string

	// Reset starts a new run. cfg.Seed feeds every random source the game
	// uses, so equal seeds and inputs replay identically.
	Reset(cfg core.RuntimeConfig)

	// State returns the HUD view of the session.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game wired to the given host capabilities.
type Factory func(caps engine.Capabilities) Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory. It panics on a duplicate ID, which can only
// be a programming error since registration happens in init().
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	// Title comes from a throwaway instance with no host services
	title := f(engine.NopCapabilities()).Title()
	entries[id] = entry{info: GameInfo{ID: id, Title: title}, factory: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[id]
	return e.info, ok
}

// Exists reports whether id names a registered game.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// Create instantiates a game by its ID.
func Create(id string, caps engine.Capabilities) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(caps), nil
}
