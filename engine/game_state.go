package engine

import "sync/atomic"

// GamePhase is the session state machine: Running until the player is destroyed
type GamePhase int32

const (
	PhaseRunning GamePhase = iota
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState is the scoreboard: lock-free so presentation goroutines read without the world lock
// Mutated only by the collision resolver and session setup
type GameState struct {
	score atomic.Int64
	lives atomic.Int64
	phase atomic.Int32
	ticks atomic.Uint64
}

// NewGameState creates a running scoreboard with the starting lives
func NewGameState(lives int) *GameState {
	gs := &GameState{}
	gs.lives.Store(int64(lives))
	return gs
}

// Score returns the current score
func (gs *GameState) Score() int64 {
	return gs.score.Load()
}

// AddScore increments the score; negative amounts are ignored to keep score monotonic
func (gs *GameState) AddScore(n int64) int64 {
	if n <= 0 {
		return gs.score.Load()
	}
	return gs.score.Add(n)
}

// Lives returns remaining lives as observed by the player
func (gs *GameState) Lives() int64 {
	return gs.lives.Load()
}

// LoseLife decrements lives unless only one remains
// Returns false when the hit is lethal; the caller destroys the player instead of reaching 0
func (gs *GameState) LoseLife() bool {
	for {
		cur := gs.lives.Load()
		if cur <= 1 {
			return false
		}
		if gs.lives.CompareAndSwap(cur, cur-1) {
			return true
		}
	}
}

// Phase returns the current session phase
func (gs *GameState) Phase() GamePhase {
	return GamePhase(gs.phase.Load())
}

// EndGame moves Running to GameOver; returns false if already over
func (gs *GameState) EndGame() bool {
	return gs.phase.CompareAndSwap(int32(PhaseRunning), int32(PhaseGameOver))
}

// IsGameOver reports the terminal phase
func (gs *GameState) IsGameOver() bool {
	return gs.Phase() == PhaseGameOver
}

// Ticks returns the number of simulated ticks
func (gs *GameState) Ticks() uint64 {
	return gs.ticks.Load()
}

// IncrementTicks advances the tick counter and returns the new value
func (gs *GameState) IncrementTicks() uint64 {
	return gs.ticks.Add(1)
}

// TickCounter exposes the atomic counter for World.SetEventMetadata
func (gs *GameState) TickCounter() *atomic.Uint64 {
	return &gs.ticks
}
