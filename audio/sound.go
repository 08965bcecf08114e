package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/invaders/parameter"
)

// Sound identifies a gameplay cue
type Sound int

const (
	SoundFire Sound = iota
	SoundHit
	SoundPlayerHit
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundFire:
		return "fire"
	case SoundHit:
		return "hit"
	case SoundPlayerHit:
		return "player_hit"
	case SoundGameOver:
		return "game_over"
	}
	return "unknown"
}

// Duration returns the playing time of the cue
func (s Sound) Duration() time.Duration {
	switch s {
	case SoundFire:
		return parameter.FireDuration
	case SoundHit:
		return parameter.HitDuration
	case SoundPlayerHit:
		return parameter.PlayerHitDuration
	case SoundGameOver:
		return parameter.GameOverDuration
	}
	return 0
}

// Streamer synthesizes the cue at rate; nil for an unknown sound
func (s Sound) Streamer(rate beep.SampleRate) beep.Streamer {
	const click = 2 * time.Millisecond

	switch s {
	case SoundFire:
		d := parameter.FireDuration
		osc := NewOscillator(parameter.FireToneHz, d, WaveSquare, rate)
		return gain(NewEnvelope(osc, d, click, d/2, rate), 0.3)

	case SoundHit:
		d := parameter.HitDuration
		body := NewEnvelope(NewOscillator(parameter.HitToneHz, d, WaveSaw, rate), d, click, d*2/3, rate)
		over := NewEnvelope(NewOscillator(parameter.HitToneHz*3, d, WaveSine, rate), d, click, d/3, rate)
		return beep.Mix(gain(body, 0.35), gain(over, 0.15))

	case SoundPlayerHit:
		d := parameter.PlayerHitDuration
		osc := NewOscillator(parameter.PlayerHitToneHz, d, WaveSquare, rate)
		return gain(NewEnvelope(osc, d, click, d/2, rate), 0.4)

	case SoundGameOver:
		// Three falling steps
		step := parameter.GameOverDuration / 3
		notes := make([]beep.Streamer, 0, 3)
		for i, mul := range []float64{4, 2, 1} {
			rel := step / 4
			if i == 2 {
				rel = step
			}
			osc := NewOscillator(parameter.GameOverToneHz*mul, step, WaveSaw, rate)
			notes = append(notes, NewEnvelope(osc, step, click, rel, rate))
		}
		return gain(beep.Seq(notes...), 0.4)
	}
	return nil
}
