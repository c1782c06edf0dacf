package ai

import (
	"fmt"

	"snake-autopilot/game/types"
)

// Path is the sequence of steps from a start cell to a target cell.
// It is empty only when start equals target.
type Path []types.Direction

// Strategy selects the shortest-path finder used by the autopilot.
type Strategy int

const (
	AStar Strategy = iota
	BFS
)

func (s Strategy) String() string {
	switch s {
	case AStar:
		return "astar"
	case BFS:
		return "bfs"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a config name onto a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "astar", "":
		return AStar, nil
	case "bfs":
		return BFS, nil
	default:
		return AStar, fmt.Errorf("unknown pathfinding strategy %q", name)
	}
}

// FindPath routes from start to target avoiding every cell of body and
// the walls. The start cell itself is never tested, since it is normally
// the head. ok is false when target is unreachable.
func FindPath(s Strategy, grid types.Grid, start, target types.Point, body []types.Point) (Path, bool) {
	b := newBoard(grid, body)
	switch s {
	case BFS:
		return b.bfs(start, target)
	default:
		return b.astar(start, target)
	}
}

// tracePath walks parent links from target back to start.
func (b *board) tracePath(parent []int, start, target types.Point) Path {
	path := Path{}
	startIdx := b.grid.Index(start)
	for idx := b.grid.Index(target); idx != startIdx; idx = parent[idx] {
		cur := b.point(idx)
		prev := b.point(parent[idx])
		path = append(path, types.Direction{X: cur.X - prev.X, Y: cur.Y - prev.Y})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
