package parameter

import "time"

// Audio
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer size in time
	AudioBufferDuration = 100 * time.Millisecond

	// AudioVolume is in beep's effects.Volume base-2 scale, 0 means unity
	AudioVolume = -1.0

	FireToneHz   = 880.0
	FireDuration = 40 * time.Millisecond

	HitToneHz   = 220.0
	HitDuration = 90 * time.Millisecond

	PlayerHitToneHz   = 110.0
	PlayerHitDuration = 250 * time.Millisecond

	GameOverToneHz   = 55.0
	GameOverDuration = 800 * time.Millisecond
)
