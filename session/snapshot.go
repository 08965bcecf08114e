package session

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/core"
)

// EntityView is a read-only copy of one entity for presentation
type EntityView struct {
	Entity core.Entity    `json:"entity"`
	Role   component.Role `json:"role"`
	X      float64        `json:"x"`
	Y      float64        `json:"y"`
	Width  float64        `json:"w"`
	Height float64        `json:"h"`
}

// Snapshot is a consistent copy of the session taken between ticks
type Snapshot struct {
	Session  string       `json:"session"`
	Tick     uint64       `json:"tick"`
	Score    int64        `json:"score"`
	Lives    int64        `json:"lives"`
	Phase    string       `json:"phase"`
	Entities []EntityView `json:"entities"`
}

// Snapshot copies every positioned entity under the world lock, in handle order
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{Session: s.id.String()}
	s.world.RunSafe(func() {
		c := s.world.Components
		snap.Tick = s.res.State.Ticks()
		snap.Score = s.res.State.Score()
		snap.Lives = s.res.State.Lives()
		snap.Phase = s.res.State.Phase().String()

		list := s.world.Query().With(c.Position).With(c.Size).With(c.Role).Execute()
		snap.Entities = make([]EntityView, 0, len(list))
		for _, e := range list {
			pos := c.Position.MustGetComponent(e)
			size := c.Size.MustGetComponent(e)
			snap.Entities = append(snap.Entities, EntityView{
				Entity: e,
				Role:   c.Role.MustGetComponent(e).Role,
				X:      pos.X,
				Y:      pos.Y,
				Width:  size.Width,
				Height: size.Height,
			})
		}
	})
	return snap
}

// Digest hashes the simulated state: every entity's handle, role, position and
// velocity in handle order, then score, lives and tick
// Two sessions fed the same config and input script produce the same digest
func (s *Session) Digest() uint64 {
	h := xxhash.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	putFloat := func(f float64) { put(math.Float64bits(f)) }

	s.world.RunSafe(func() {
		c := s.world.Components
		for _, e := range s.world.Query().With(c.Position).With(c.Role).Execute() {
			pos := c.Position.MustGetComponent(e)
			vel := c.Velocity.MustGetComponent(e)
			put(uint64(e))
			put(uint64(c.Role.MustGetComponent(e).Role))
			putFloat(pos.X)
			putFloat(pos.Y)
			putFloat(vel.X)
			putFloat(vel.Y)
			if lives, ok := c.Lives.GetComponent(e); ok {
				put(uint64(lives.Remaining))
			}
		}
		put(uint64(s.res.State.Score()))
		put(uint64(s.res.State.Lives()))
		put(s.res.State.Ticks())
	})
	return h.Sum64()
}
