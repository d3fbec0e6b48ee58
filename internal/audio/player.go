package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/arcade-trio/internal/engine"
)

var (
	// ErrNotInitialized is returned by Play before Init succeeded.
	ErrNotInitialized = errors.New("audio: speaker not initialized")
	// ErrUnknownClip is returned for clips without a recipe.
	ErrUnknownClip = errors.New("audio: unknown clip")
)

// Player plays clips through the system speaker. All clips share one
// mixer so overlapping effects are summed.
type Player struct {
	mu          sync.Mutex
	synth       *Synth
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player at the given master volume (0..1).
func NewPlayer(volume float64) *Player {
	return &Player{
		synth: NewSynth(volume),
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker. It fails on hosts without an audio device;
// callers treat that as "no sound" rather than an error.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a clip. It never blocks on playback.
func (p *Player) Play(clip engine.Clip) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return ErrNotInitialized
	}
	st := p.synth.Clip(clip)
	if st == nil {
		return fmt.Errorf("%w: %s", ErrUnknownClip, clip)
	}

	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
	return nil
}

// Close silences everything and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

var _ engine.SoundPlayer = (*Player)(nil)
