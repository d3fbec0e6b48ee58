package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-trio/internal/engine"
	"github.com/vovakirdan/arcade-trio/internal/registry"

	_ "github.com/vovakirdan/arcade-trio/internal/games/breakout"
	_ "github.com/vovakirdan/arcade-trio/internal/games/flappy"
	_ "github.com/vovakirdan/arcade-trio/internal/games/platformer"
)

func TestListIsSortedByID(t *testing.T) {
	games := registry.List()
	require.Len(t, games, 3)

	ids := []string{games[0].ID, games[1].ID, games[2].ID}
	assert.Equal(t, []string{"breakout", "flappy", "platformer"}, ids)
	for _, g := range games {
		assert.NotEmpty(t, g.Title, "game %q has no title", g.ID)
	}
}

func TestLookupAndCreate(t *testing.T) {
	info, ok := registry.Lookup("flappy")
	require.True(t, ok)
	assert.True(t, registry.Exists("flappy"))

	g, err := registry.Create("flappy", engine.NopCapabilities())
	require.NoError(t, err)
	assert.Equal(t, info.ID, g.ID())
	assert.Equal(t, info.Title, g.Title())
}

func TestUnknownGame(t *testing.T) {
	_, ok := registry.Lookup("tetris")
	assert.False(t, ok)
	assert.False(t, registry.Exists("tetris"))

	_, err := registry.Create("tetris", engine.NopCapabilities())
	assert.ErrorContains(t, err, "unknown game")
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	assert.Panics(t, func() {
		registry.Register("flappy", func(engine.Capabilities) registry.Game { return nil })
	})
}
