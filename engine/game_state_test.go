package engine

import (
	"sync"
	"testing"
)

func TestGameStateLives(t *testing.T) {
	gs := NewGameState(3)
	if gs.Lives() != 3 || gs.Score() != 0 || gs.Phase() != PhaseRunning {
		t.Fatalf("unexpected initial state: lives=%d score=%d phase=%v", gs.Lives(), gs.Score(), gs.Phase())
	}

	if !gs.LoseLife() || !gs.LoseLife() {
		t.Fatal("non-lethal hits should decrement")
	}
	if gs.Lives() != 1 {
		t.Fatalf("Lives() = %d, want 1", gs.Lives())
	}
	if gs.LoseLife() {
		t.Error("lethal hit must not decrement")
	}
	if gs.Lives() != 1 {
		t.Errorf("lives observed %d, must never reach 0", gs.Lives())
	}
}

func TestGameStatePhaseIsTerminal(t *testing.T) {
	gs := NewGameState(1)
	if !gs.EndGame() {
		t.Fatal("first EndGame should transition")
	}
	if gs.EndGame() {
		t.Error("second EndGame should report already over")
	}
	if !gs.IsGameOver() || gs.Phase().String() != "game_over" {
		t.Errorf("phase = %v", gs.Phase())
	}
}

func TestGameStateScoreMonotonic(t *testing.T) {
	gs := NewGameState(3)
	gs.AddScore(-5)
	if gs.Score() != 0 {
		t.Errorf("negative AddScore changed score to %d", gs.Score())
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				gs.AddScore(1)
			}
		}()
	}
	wg.Wait()
	if gs.Score() != 800 {
		t.Errorf("Score() = %d, want 800", gs.Score())
	}
}

func TestResourceStore(t *testing.T) {
	rs := NewResourceStore()
	AddResource(rs, &FormationResource{Direction: 1})

	f, ok := GetResource[*FormationResource](rs)
	if !ok || f.Direction != 1 {
		t.Fatalf("GetResource = %v, %v", f, ok)
	}
	if _, ok := GetResource[*PlayerResource](rs); ok {
		t.Error("missing resource reported present")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustGetResource should panic on missing resource")
		}
	}()
	MustGetResource[*PlayerResource](rs)
}
