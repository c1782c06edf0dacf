package ai

import (
	"testing"

	"snake-autopilot/game/types"
)

// wallOracle treats walls and the body as lethal, like the collision manager.
type wallOracle struct {
	grid types.Grid
}

func (o wallOracle) Grid() types.Grid { return o.grid }

func (o wallOracle) IsLethal(pos types.Point, body []types.Point) bool {
	return !o.grid.InBounds(pos) || contains(body, pos)
}

func newPilot(n int, s Strategy) *Autopilot {
	return NewAutopilot(wallOracle{grid: types.NewGrid(n)}, s, DefaultTuning())
}

func TestDecideFollowsPath(t *testing.T) {
	for _, s := range []Strategy{AStar, BFS} {
		pilot := newPilot(10, s)
		body := []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}}
		d := pilot.Decide(body, types.Right, types.Point{X: 8, Y: 5})
		if d.Direction != types.Right || d.Layer != LayerPath {
			t.Errorf("%v: got %v via %v, want right via path", s, d.Direction, d.Layer)
		}
		if d.PathLen != 3 {
			t.Errorf("%v: PathLen = %d, want 3", s, d.PathLen)
		}
	}
}

func TestDecideRejectsDeadEndFood(t *testing.T) {
	pilot := newPilot(5, AStar)
	body := []types.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	d := pilot.Decide(body, types.Up, types.Point{X: 0, Y: 0})

	if d.Layer == LayerPath {
		t.Fatalf("took the food path into a dead end")
	}
	if d.Direction != types.Right {
		t.Errorf("direction = %v, want right", d.Direction)
	}
	if d.Layer != LayerProbe {
		t.Errorf("layer = %v, want probe", d.Layer)
	}
}

func TestDecideNeverReverses(t *testing.T) {
	pilot := newPilot(6, BFS)
	// A single segment could legally turn around, but the shortest route
	// to the food behind it is still refused.
	body := []types.Point{{X: 3, Y: 3}}
	d := pilot.Decide(body, types.Left, types.Point{X: 4, Y: 3})
	if d.Direction == types.Right {
		t.Fatal("decision reversed the heading")
	}
	if d.Direction != types.Down || d.Layer != LayerProbe {
		t.Errorf("got %v via %v, want down via probe", d.Direction, d.Layer)
	}
}

func TestDecideMaxSpace(t *testing.T) {
	// Unreachable thresholds force the fallback to compare open space.
	pilot := NewAutopilot(wallOracle{grid: types.NewGrid(4)}, AStar, Tuning{PathSafety: 100, ProbeSafety: 100})
	body := []types.Point{{X: 1, Y: 3}, {X: 1, Y: 2}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	d := pilot.Decide(body, types.Down, types.Point{X: 3, Y: 3})

	if d.Layer != LayerMaxSpace {
		t.Fatalf("layer = %v, want max_space", d.Layer)
	}
	if d.Direction != types.Right || d.Space != 8 {
		t.Errorf("got %v with space %d, want right with space 8", d.Direction, d.Space)
	}
}

func TestDecideTrapped(t *testing.T) {
	pilot := newPilot(2, AStar)
	body := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	d := pilot.Decide(body, types.Left, types.Point{X: 1, Y: 1})
	if d.Layer != LayerTrapped || d.Direction != types.Left {
		t.Errorf("got %v via %v, want left via trapped", d.Direction, d.Layer)
	}
}

func TestDecideDoesNotMutateInputs(t *testing.T) {
	pilot := newPilot(8, AStar)
	body := []types.Point{{X: 4, Y: 4}, {X: 4, Y: 5}, {X: 4, Y: 6}}
	snapshot := append([]types.Point(nil), body...)
	pilot.Decide(body, types.Up, types.Point{X: 4, Y: 3})
	for i := range body {
		if body[i] != snapshot[i] {
			t.Fatalf("body changed: %v, want %v", body, snapshot)
		}
	}
}
