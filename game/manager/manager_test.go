package manager

import (
	"os"
	"path/filepath"
	"testing"

	"snake-autopilot/game/types"
)

func TestCheckCollision(t *testing.T) {
	cm := NewCollisionManager(types.NewGrid(5))
	body := []types.Point{{X: 2, Y: 2}, {X: 2, Y: 3}}

	tests := []struct {
		name string
		pos  types.Point
		want CollisionType
	}{
		{"free", types.Point{X: 1, Y: 1}, NoCollision},
		{"left wall", types.Point{X: -1, Y: 2}, WallCollision},
		{"bottom wall", types.Point{X: 2, Y: 5}, WallCollision},
		{"body", types.Point{X: 2, Y: 3}, SelfCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cm.CheckCollision(tt.pos, body); got != tt.want {
				t.Errorf("CheckCollision(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestGenerateFoodAvoidsBody(t *testing.T) {
	grid := types.NewGrid(4)
	fm := NewFoodManager(grid, NewCollisionManager(grid), 7)

	var body []types.Point
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x == 3 && y == 3 {
				continue
			}
			body = append(body, types.Point{X: x, Y: y})
		}
	}

	for i := 0; i < 20; i++ {
		food, ok := fm.GenerateFood(body)
		if !ok {
			t.Fatal("GenerateFood reported a full board with one free cell")
		}
		if food != (types.Point{X: 3, Y: 3}) {
			t.Fatalf("food = %v, want the only free cell (3,3)", food)
		}
	}

	body = append(body, types.Point{X: 3, Y: 3})
	if _, ok := fm.GenerateFood(body); ok {
		t.Error("GenerateFood succeeded on a full board")
	}
}

func TestGenerateFoodIsSeeded(t *testing.T) {
	grid := types.NewGrid(10)
	body := []types.Point{{X: 5, Y: 5}}
	a := NewFoodManager(grid, NewCollisionManager(grid), 42)
	b := NewFoodManager(grid, NewCollisionManager(grid), 42)
	for i := 0; i < 10; i++ {
		fa, _ := a.GenerateFood(body)
		fb, _ := b.GenerateFood(body)
		if fa != fb {
			t.Fatalf("draw %d differs: %v vs %v", i, fa, fb)
		}
	}
}

func TestRecordScore(t *testing.T) {
	dir := t.TempDir()
	sm, err := NewStateManager(dir)
	if err != nil {
		t.Fatalf("NewStateManager: %v", err)
	}

	steps := []struct {
		score int
		want  bool
	}{
		{30, true},
		{30, false},
		{20, false},
		{40, true},
	}
	for _, s := range steps {
		got, err := sm.RecordScore(s.score, "session")
		if err != nil {
			t.Fatalf("RecordScore(%d): %v", s.score, err)
		}
		if got != s.want {
			t.Errorf("RecordScore(%d) new record = %v, want %v", s.score, got, s.want)
		}
	}
	if sm.GetHighScore() != 40 {
		t.Errorf("high score = %d, want 40", sm.GetHighScore())
	}

	if _, err := os.Stat(filepath.Join(dir, highScoreFile)); err != nil {
		t.Fatalf("high score file not written: %v", err)
	}
	reloaded, err := NewStateManager(dir)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.GetHighScore() != 40 {
		t.Errorf("reloaded high score = %d, want 40", reloaded.GetHighScore())
	}
	if h := reloaded.GetScoreHistory(); len(h) != 4 {
		t.Errorf("reloaded history has %d entries, want 4", len(h))
	}
}

func TestStateManagerInMemory(t *testing.T) {
	sm, err := NewStateManager("")
	if err != nil {
		t.Fatalf("NewStateManager: %v", err)
	}
	for i := 0; i < maxScoreHistory+5; i++ {
		if _, err := sm.RecordScore(i, ""); err != nil {
			t.Fatalf("RecordScore: %v", err)
		}
	}
	h := sm.GetScoreHistory()
	if len(h) != maxScoreHistory {
		t.Fatalf("history length = %d, want %d", len(h), maxScoreHistory)
	}
	if h[0] != 5 {
		t.Errorf("oldest kept score = %d, want 5", h[0])
	}
}
