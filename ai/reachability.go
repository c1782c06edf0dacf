package ai

import (
	"snake-autopilot/game/types"
)

// ReachableCount flood-fills the four-connected free cells around start
// under body and returns how many were visited, start included. Callers
// must not pass a lethal start.
func ReachableCount(grid types.Grid, start types.Point, body []types.Point) int {
	return newBoard(grid, body).reachable(start)
}

func (b *board) reachable(start types.Point) int {
	if !b.grid.InBounds(start) {
		return 0
	}
	visited := make([]bool, b.grid.Area())
	visited[b.grid.Index(start)] = true
	queue := []types.Point{start}
	count := 1

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		for _, dir := range types.Directions {
			next := pos.Add(dir)
			if b.lethal(next) {
				continue
			}
			idx := b.grid.Index(next)
			if visited[idx] {
				continue
			}
			visited[idx] = true
			count++
			queue = append(queue, next)
		}
	}
	return count
}
