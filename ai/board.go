package ai

import (
	"snake-autopilot/game/types"
)

// Oracle decides whether a cell would kill the snake. The collision
// manager is the production implementation.
type Oracle interface {
	Grid() types.Grid
	IsLethal(pos types.Point, body []types.Point) bool
}

// board is a flat occupancy snapshot of one body, so the searches do not
// rescan the body for every neighbour. lethal agrees with Oracle.IsLethal.
type board struct {
	grid    types.Grid
	blocked []bool
}

func newBoard(grid types.Grid, body []types.Point) *board {
	b := &board{
		grid:    grid,
		blocked: make([]bool, grid.Area()),
	}
	for _, p := range body {
		if grid.InBounds(p) {
			b.blocked[grid.Index(p)] = true
		}
	}
	return b
}

func (b *board) lethal(p types.Point) bool {
	return !b.grid.InBounds(p) || b.blocked[b.grid.Index(p)]
}

// point inverts grid.Index.
func (b *board) point(idx int) types.Point {
	return types.Point{X: idx % b.grid.Width, Y: idx / b.grid.Width}
}
