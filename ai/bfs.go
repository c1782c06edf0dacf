package ai

import (
	"snake-autopilot/game/types"
)

// bfs expands level by level in Up, Right, Down, Left order, so the
// first path to reach target has the fewest hops.
func (b *board) bfs(start, target types.Point) (Path, bool) {
	if start == target {
		return Path{}, true
	}
	if !b.grid.InBounds(start) || b.lethal(target) {
		return nil, false
	}

	parent := make([]int, b.grid.Area())
	visited := make([]bool, b.grid.Area())
	visited[b.grid.Index(start)] = true
	queue := []types.Point{start}

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		if pos == target {
			return b.tracePath(parent, start, target), true
		}
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
			parent[idx] = b.grid.Index(pos)
			queue = append(queue, next)
		}
	}
	return nil, false
}
