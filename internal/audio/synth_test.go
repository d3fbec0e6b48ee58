package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/arcade-trio/internal/engine"
)

func drain(t *testing.T, st beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := st.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
}

func TestToneLength(t *testing.T) {
	n := note{From: 440, To: 440, Length: 100 * time.Millisecond}
	got := drain(t, newTone(n, SampleRate))
	if want := SampleRate.N(100 * time.Millisecond); got != want {
		t.Errorf("streamed %d samples, expected %d", got, want)
	}
}

func TestToneWaves(t *testing.T) {
	for _, w := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		tn := newTone(note{From: 220, To: 440, Length: 20 * time.Millisecond, Wave: w}, SampleRate)
		if drain(t, tn) == 0 {
			t.Errorf("wave %d produced no samples", w)
		}
	}
}

func TestEveryClipHasARecipe(t *testing.T) {
	s := NewSynth(0.5)
	clips := []engine.Clip{
		engine.ClipHit, engine.ClipLose, engine.ClipGameOver, engine.ClipWin,
		engine.ClipFlap, engine.ClipScore, engine.ClipShoot, engine.ClipEmpty,
		engine.ClipReload, engine.ClipPickup, engine.ClipHurt,
	}
	for _, c := range clips {
		if !s.Has(c) {
			t.Errorf("clip %q has no recipe", c)
			continue
		}
		if drain(t, s.Clip(c)) == 0 {
			t.Errorf("clip %q is silent", c)
		}
	}
}

func TestSequencedClipLength(t *testing.T) {
	s := NewSynth(1)
	var want int
	for _, n := range recipes[engine.ClipWin] {
		want += SampleRate.N(n.Length)
	}
	if got := drain(t, s.Clip(engine.ClipWin)); got != want {
		t.Errorf("win clip has %d samples, expected %d", got, want)
	}
}

func TestUnknownClip(t *testing.T) {
	if NewSynth(1).Clip("nope") != nil {
		t.Error("unknown clip should produce no streamer")
	}
}

func TestMutedSynthIsSilent(t *testing.T) {
	st := NewSynth(0).Clip(engine.ClipHit)
	buf := make([][2]float64, 64)
	st.Stream(buf)
	for i, s := range buf {
		if s[0] != 0 {
			t.Fatalf("sample %d = %f, expected silence", i, s[0])
		}
	}
}

func TestPlayBeforeInit(t *testing.T) {
	p := NewPlayer(1)
	if err := p.Play(engine.ClipHit); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Play() before Init = %v, expected ErrNotInitialized", err)
	}
	p.Close() // no-op
}
