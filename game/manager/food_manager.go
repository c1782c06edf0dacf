package manager

import (
	"snake-autopilot/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager places the single food cell.
type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// GenerateFood rejection-samples a uniformly random free cell. It
// returns false when the body covers the whole grid.
func (fm *FoodManager) GenerateFood(body []types.Point) (types.Point, bool) {
	if fm.freeCells(body) == 0 {
		return types.Point{}, false
	}
	for {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, body) {
			return food, true
		}
	}
}

func (fm *FoodManager) freeCells(body []types.Point) int {
	occupied := make(map[types.Point]struct{}, len(body))
	for _, p := range body {
		if fm.grid.InBounds(p) {
			occupied[p] = struct{}{}
		}
	}
	return fm.grid.Area() - len(occupied)
}
