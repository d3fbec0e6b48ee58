// Package audio synthesizes and plays the games' sound effects. Clips are
// generated on the fly, so there are no asset files to load.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/arcade-trio/internal/engine"
)

// SampleRate is the output rate used for every clip.
const SampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// note is one tone of a clip. Frequency slides linearly from From to To.
type note struct {
	From, To float64
	Length   time.Duration
	Wave     Wave
}

// tone streams a single note with a linear fade-out.
type tone struct {
	note
	rate  beep.SampleRate
	total int
	pos   int
	phase float64
	noise uint32
}

func newTone(n note, rate beep.SampleRate) *tone {
	return &tone{note: n, rate: rate, total: rate.N(n.Length), noise: 0x9e3779b9}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.From + (t.To-t.From)*progress

		v := t.sample() * (1 - progress)
		samples[i][0], samples[i][1] = v, v

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func (t *tone) sample() float64 {
	switch t.Wave {
	case WaveSquare:
		if t.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (t.phase - 0.5)
	case WaveNoise:
		// xorshift keeps clips reproducible
		t.noise ^= t.noise << 13
		t.noise ^= t.noise >> 17
		t.noise ^= t.noise << 5
		return float64(t.noise)/float64(math.MaxUint32)*2 - 1
	default:
		return math.Sin(2 * math.Pi * t.phase)
	}
}

var recipes = map[engine.Clip][]note{
	engine.ClipHit:      {{From: 660, To: 660, Length: 40 * time.Millisecond, Wave: WaveSquare}},
	engine.ClipLose:     {{From: 440, To: 220, Length: 250 * time.Millisecond, Wave: WaveSaw}},
	engine.ClipGameOver: {{From: 392, To: 392, Length: 180 * time.Millisecond, Wave: WaveSquare}, {From: 262, To: 131, Length: 400 * time.Millisecond, Wave: WaveSquare}},
	engine.ClipWin:      {{From: 523, To: 523, Length: 120 * time.Millisecond}, {From: 659, To: 659, Length: 120 * time.Millisecond}, {From: 784, To: 784, Length: 300 * time.Millisecond}},
	engine.ClipFlap:     {{From: 300, To: 600, Length: 60 * time.Millisecond}},
	engine.ClipScore:    {{From: 880, To: 1320, Length: 80 * time.Millisecond}},
	engine.ClipShoot:    {{From: 0, To: 0, Length: 60 * time.Millisecond, Wave: WaveNoise}},
	engine.ClipEmpty:    {{From: 1200, To: 1200, Length: 15 * time.Millisecond, Wave: WaveSquare}},
	engine.ClipReload:   {{From: 200, To: 200, Length: 30 * time.Millisecond, Wave: WaveSquare}, {From: 300, To: 300, Length: 30 * time.Millisecond, Wave: WaveSquare}},
	engine.ClipPickup:   {{From: 660, To: 990, Length: 100 * time.Millisecond}},
	engine.ClipHurt:     {{From: 180, To: 90, Length: 150 * time.Millisecond, Wave: WaveSaw}},
}

// Synth renders clips into streamers.
type Synth struct {
	rate   beep.SampleRate
	volume float64 // 0..1
}

// NewSynth creates a synth at the given master volume (0..1).
func NewSynth(volume float64) *Synth {
	return &Synth{rate: SampleRate, volume: volume}
}

// Has reports whether the clip has a recipe.
func (s *Synth) Has(clip engine.Clip) bool {
	_, ok := recipes[clip]
	return ok
}

// Clip returns a fresh streamer for the clip, or nil if it is unknown.
func (s *Synth) Clip(clip engine.Clip) beep.Streamer {
	notes, ok := recipes[clip]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newTone(n, s.rate))
	}
	return withVolume(beep.Seq(parts...), s.volume)
}

// withVolume scales a stream linearly. math.Log2(0) is -Inf, so zero
// volume is handled as silence.
func withVolume(st beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(vol)}
}
