package manager

import (
	"snake-autopilot/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	// BoardFull ends a game whose snake left no free cell for food.
	BoardFull
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case BoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// CollisionManager answers whether a cell would kill the snake.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

func (cm *CollisionManager) Grid() types.Grid {
	return cm.grid
}

// IsLethal reports whether pos is off the grid or occupied by body.
func (cm *CollisionManager) IsLethal(pos types.Point, body []types.Point) bool {
	return cm.CheckCollision(pos, body) != NoCollision
}

// CheckCollision classifies a move of the head onto pos.
func (cm *CollisionManager) CheckCollision(pos types.Point, body []types.Point) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	if isBodyCollision(pos, body) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.InBounds(pos)
}

func isBodyCollision(pos types.Point, body []types.Point) bool {
	for _, part := range body {
		if pos == part {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a position is free for food.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, body []types.Point) bool {
	return !cm.IsLethal(pos, body)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
