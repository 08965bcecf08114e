// Package audio synthesizes short cues for gameplay events through beep
package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/event"
	"github.com/lixenwraith/invaders/parameter"
)

// Player mixes gameplay cues into a single output stream
// It is an event.Handler: register it on a session and it reacts to fire, hit and game over
type Player struct {
	mu sync.Mutex

	rate   beep.SampleRate
	mixer  *beep.Mixer
	output *effects.Volume

	enabled bool // cues are accepted
	speaker bool // output is owned by the speaker goroutine
	played  map[Sound]int
}

// NewPlayer builds the mixer chain; nothing is audible until Start
func NewPlayer(cfg config.AudioConfig) *Player {
	mixer := &beep.Mixer{}
	return &Player{
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: mixer,
		output: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   cfg.Volume,
			Silent:   math.IsInf(cfg.Volume, -1),
		},
		played: make(map[Sound]int),
	}
}

// Start opens the audio device and begins streaming the mixer
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.output)
	p.enabled = true
	p.speaker = true
	return nil
}

// Stop silences every cue and closes the audio device
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	p.withOutput(func() { p.mixer.Clear() })
	if p.speaker {
		speaker.Close()
	}
	p.enabled = false
	p.speaker = false
}

// Play queues a cue on the mixer; ignored while stopped
func (p *Player) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	st := s.Streamer(p.rate)
	if st == nil {
		return
	}
	p.withOutput(func() { p.mixer.Add(st) })
	p.played[s]++
}

// Active returns the number of cues still sounding
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	p.withOutput(func() { n = p.mixer.Len() })
	return n
}

// Played returns how many times s has been queued
func (p *Player) Played(s Sound) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[s]
}

// withOutput serializes mixer access against the speaker goroutine
func (p *Player) withOutput(fn func()) {
	if p.speaker {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

func (p *Player) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventProjectileFired,
		event.EventCollision,
		event.EventSessionOver,
	}
}

func (p *Player) HandleEvent(ev event.GameEvent) {
	switch pl := ev.Payload.(type) {
	case *event.ProjectileFiredPayload:
		if pl.Role.Faction() == component.FactionPlayer {
			p.Play(SoundFire)
		}
	case *event.CollisionPayload:
		switch pl.Outcome {
		case event.OutcomeEnemyDestroyed:
			p.Play(SoundHit)
		case event.OutcomePlayerHit:
			p.Play(SoundPlayerHit)
		}
	case *event.SessionOverPayload:
		p.Play(SoundGameOver)
	}
}
