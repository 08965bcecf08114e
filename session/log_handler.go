package session

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/invaders/event"
)

// logHandler writes gameplay events to the session logger
type logHandler struct {
	s *Session
}

func newLogHandler(s *Session) *logHandler {
	return &logHandler{s: s}
}

func (h *logHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCollision,
		event.EventFormationReversed,
		event.EventSessionOver,
	}
}

func (h *logHandler) HandleEvent(ev event.GameEvent) {
	log := h.s.logger
	switch p := ev.Payload.(type) {
	case *event.CollisionPayload:
		log.Debug("collision",
			zap.Uint64("tick", ev.Tick),
			zap.Stringer("outcome", p.Outcome),
			zap.Stringer("target", p.Target),
			zap.Stringer("role", p.TargetRole),
			zap.Int64("score", p.Score),
			zap.Int64("lives", p.Lives),
		)
	case *event.FormationReversedPayload:
		log.Debug("formation reversed",
			zap.Uint64("tick", ev.Tick),
			zap.Int("direction", p.Direction),
			zap.Stringer("trigger", p.Trigger),
		)
	case *event.SessionOverPayload:
		log.Info("game over",
			zap.String("session", h.s.id.String()),
			zap.Int64("score", p.Score),
			zap.Uint64("tick", p.Tick),
		)
	}
}
