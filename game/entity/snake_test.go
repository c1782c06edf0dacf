package entity

import (
	"testing"

	"snake-autopilot/game/types"
)

func TestMove(t *testing.T) {
	s := NewSnake(types.Point{X: 2, Y: 2})
	s.Move(types.Point{X: 3, Y: 2}, true)
	if s.Len() != 2 {
		t.Fatalf("length after growing move = %d, want 2", s.Len())
	}
	if s.GetHead() != (types.Point{X: 3, Y: 2}) || s.Body[1] != (types.Point{X: 2, Y: 2}) {
		t.Errorf("body = %v, want [(3,2) (2,2)]", s.Body)
	}

	s.Move(types.Point{X: 4, Y: 2}, false)
	want := []types.Point{{X: 4, Y: 2}, {X: 3, Y: 2}}
	if s.Len() != len(want) {
		t.Fatalf("length after plain move = %d, want %d", s.Len(), len(want))
	}
	for i := range want {
		if s.Body[i] != want[i] {
			t.Errorf("Body[%d] = %v, want %v", i, s.Body[i], want[i])
		}
	}
}

func TestCanTurn(t *testing.T) {
	single := NewSnake(types.Point{X: 1, Y: 1})
	single.Direction = types.Right
	if !single.CanTurn(types.Left) {
		t.Error("a one-cell snake should be allowed to reverse")
	}

	long := &Snake{
		Body:      []types.Point{{X: 2, Y: 1}, {X: 1, Y: 1}},
		Direction: types.Right,
	}
	if long.SetDirection(types.Left) {
		t.Error("reversal accepted for a two-cell snake")
	}
	if long.Direction != types.Right {
		t.Errorf("heading changed to %v after rejected reversal", long.Direction)
	}
	if !long.SetDirection(types.Up) || long.Direction != types.Up {
		t.Error("perpendicular turn rejected")
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	s := &Snake{Body: []types.Point{{X: 1, Y: 1}, {X: 0, Y: 1}}, Direction: types.Right}
	c := s.Clone()
	c.Move(types.Point{X: 2, Y: 1}, false)
	if s.GetHead() != (types.Point{X: 1, Y: 1}) {
		t.Errorf("original head moved to %v", s.GetHead())
	}
	if !s.Contains(types.Point{X: 0, Y: 1}) || c.Contains(types.Point{X: 0, Y: 1}) {
		t.Error("clone shares its body with the original")
	}
}

func TestReadsOnReturnedValue(t *testing.T) {
	snakeAt := func() Snake {
		return Snake{Body: []types.Point{{X: 3, Y: 1}, {X: 2, Y: 1}}, Direction: types.Right}
	}
	if snakeAt().GetHead() != (types.Point{X: 3, Y: 1}) {
		t.Errorf("head = %v, want (3,1)", snakeAt().GetHead())
	}
	if snakeAt().Len() != 2 || !snakeAt().Contains(types.Point{X: 2, Y: 1}) {
		t.Error("Len or Contains disagree with the body")
	}
}
