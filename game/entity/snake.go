package entity

import (
	"snake-autopilot/game/types"
)

// Snake holds the occupied cells head first and the current heading.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: types.None,
	}
}

func (s Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether p is occupied by any segment.
func (s Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so simulations never alias the live body.
func (s *Snake) Clone() *Snake {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return &Snake{Body: body, Direction: s.Direction}
}

// Move prepends newHead and drops the tail unless the snake grows.
func (s *Snake) Move(newHead types.Point, grow bool) {
	if grow {
		s.Body = append(s.Body, types.Point{})
	}
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
}

// CanTurn reports whether dir is an acceptable next heading. A snake
// with no segment behind the head may reverse.
func (s *Snake) CanTurn(dir types.Direction) bool {
	if len(s.Body) <= 1 {
		return true
	}
	return !dir.Reverses(s.Direction)
}

// SetDirection applies dir unless it would fold the snake onto its neck.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !s.CanTurn(dir) {
		return false
	}
	s.Direction = dir
	return true
}
