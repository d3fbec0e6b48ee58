package engine

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

type failingPlayer struct{ calls int }

func (p *failingPlayer) Play(Clip) error {
	p.calls++
	return errors.New("no audio device")
}

type toggleCounter struct{ n int }

func (t *toggleCounter) ToggleFullscreen() { t.n++ }

func TestMissingCapabilitiesAreNoOps(t *testing.T) {
	for name, caps := range map[string]Capabilities{"zero": {}, "nop": NopCapabilities()} {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				caps.PlaySound(ClipHit)
				caps.ToggleFullscreen()
				caps.Logger().Info("discarded")
			})
			assert.NotNil(t, caps.Logger())
		})
	}
}

func TestSoundFailureIsSwallowed(t *testing.T) {
	var buf bytes.Buffer
	player := &failingPlayer{}
	caps := Capabilities{Sound: player, Log: log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})}

	caps.PlaySound(ClipShoot)

	assert.Equal(t, 1, player.calls)
	assert.Contains(t, buf.String(), "sound playback failed")
}

func TestFullscreenIsForwarded(t *testing.T) {
	display := &toggleCounter{}
	caps := Capabilities{Display: display}

	caps.ToggleFullscreen()
	caps.ToggleFullscreen()

	assert.Equal(t, 2, display.n)
}
