package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/event"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v > peak {
					peak = v
				}
				if -v > peak {
					peak = -v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return total, peak
}

func TestOscillatorLength(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, testRate)
	n, peak := drain(t, osc, 10000)
	if n != testRate.N(10*time.Millisecond) {
		t.Errorf("samples = %d, want %d", n, testRate.N(10*time.Millisecond))
	}
	if peak > 1.0 || peak == 0 {
		t.Errorf("peak = %f", peak)
	}
}

func TestSquareWaveValues(t *testing.T) {
	osc := NewOscillator(220, 5*time.Millisecond, WaveSquare, testRate)
	buf := make([][2]float64, 100)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1.0 && v != -1.0 {
			t.Fatalf("sample %d = %f", i, v)
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	d := 20 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, testRate) // phase stays 0: constant 1.0
	env := NewEnvelope(osc, d, 5*time.Millisecond, 5*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d, want %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0", buf[0][0])
	}
	mid := len(buf) / 2
	if buf[mid][0] != 1.0 {
		t.Errorf("sustain sample = %f, want 1", buf[mid][0])
	}
	if last := buf[n-1][0]; last <= 0 || last >= 0.01 {
		t.Errorf("last sample = %f, want a small positive tail", last)
	}
}

func TestSoundsTerminate(t *testing.T) {
	for _, s := range []Sound{SoundFire, SoundHit, SoundPlayerHit, SoundGameOver} {
		t.Run(s.String(), func(t *testing.T) {
			st := s.Streamer(testRate)
			if st == nil {
				t.Fatal("nil streamer")
			}
			n, peak := drain(t, st, testRate.N(2*time.Second))
			want := testRate.N(s.Duration())
			if n < want-3 || n > want+3 {
				t.Errorf("samples = %d, want about %d", n, want)
			}
			if peak == 0 || peak > 1.0 {
				t.Errorf("peak = %f", peak)
			}
		})
	}
	if Sound(99).Streamer(testRate) != nil {
		t.Error("unknown sound produced a streamer")
	}
}

// offlinePlayer accepts cues without opening an audio device
func offlinePlayer() *Player {
	cfg := config.Default().Audio
	p := NewPlayer(cfg)
	p.enabled = true
	return p
}

func TestPlayerIgnoresCuesWhenStopped(t *testing.T) {
	p := NewPlayer(config.Default().Audio)
	p.Play(SoundFire)
	if p.Active() != 0 || p.Played(SoundFire) != 0 {
		t.Error("stopped player queued a cue")
	}
	p.Stop()
}

func TestPlayerMixesAndDrains(t *testing.T) {
	p := offlinePlayer()
	p.Play(SoundFire)
	p.Play(SoundHit)
	if got := p.Active(); got != 2 {
		t.Fatalf("active = %d, want 2", got)
	}

	buf := make([][2]float64, testRate.N(200*time.Millisecond))
	n, ok := p.output.Stream(buf)
	if n != len(buf) || !ok {
		t.Errorf("mixer stream = %d, %v", n, ok)
	}
	if got := p.Active(); got != 0 {
		t.Errorf("active after drain = %d, want 0", got)
	}
}

func TestPlayerHandlesEvents(t *testing.T) {
	p := offlinePlayer()

	p.HandleEvent(event.GameEvent{Type: event.EventProjectileFired, Payload: &event.ProjectileFiredPayload{Role: component.RolePlayerProjectile}})
	p.HandleEvent(event.GameEvent{Type: event.EventProjectileFired, Payload: &event.ProjectileFiredPayload{Role: component.RoleEnemyProjectile}})
	p.HandleEvent(event.GameEvent{Type: event.EventCollision, Payload: &event.CollisionPayload{Outcome: event.OutcomeEnemyDestroyed}})
	p.HandleEvent(event.GameEvent{Type: event.EventCollision, Payload: &event.CollisionPayload{Outcome: event.OutcomeWallAbsorbed}})
	p.HandleEvent(event.GameEvent{Type: event.EventCollision, Payload: &event.CollisionPayload{Outcome: event.OutcomePlayerHit}})
	p.HandleEvent(event.GameEvent{Type: event.EventSessionOver, Payload: &event.SessionOverPayload{}})

	want := map[Sound]int{SoundFire: 1, SoundHit: 1, SoundPlayerHit: 1, SoundGameOver: 1}
	for s, n := range want {
		if got := p.Played(s); got != n {
			t.Errorf("%v played %d times, want %d", s, got, n)
		}
	}
}
