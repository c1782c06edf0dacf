package ai

import (
	"snake-autopilot/game/types"
)

// --- Open set for A* ---

type openEntry struct {
	idx int // Flat grid index
	g   int // Hops from start when pushed
	h   int // Manhattan distance to target
	seq int // Insertion order, last tie-break
}

func (e openEntry) f() int { return e.g + e.h }

// before orders by f, then h, then insertion.
func (e openEntry) before(o openEntry) bool {
	if e.f() != o.f() {
		return e.f() < o.f()
	}
	if e.h != o.h {
		return e.h < o.h
	}
	return e.seq < o.seq
}

type openSet []openEntry

func (h *openSet) push(e openEntry) {
	*h = append(*h, e)
	// Sift up
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !(*h)[i].before((*h)[parent]) {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *openSet) pop() openEntry {
	old := *h
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	// Sift down
	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && (*h)[right].before((*h)[left]) {
			smallest = right
		}
		if !(*h)[smallest].before((*h)[i]) {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return e
}

const unvisited = -1

// astar is best-first search with the Manhattan heuristic. The heuristic
// is consistent on a unit-cost four-connected grid, so a closed cell is
// never reopened and the first time target is popped its path is optimal.
// Relaxed frontier cells are pushed again; stale entries are skipped.
func (b *board) astar(start, target types.Point) (Path, bool) {
	if start == target {
		return Path{}, true
	}
	if !b.grid.InBounds(start) || b.lethal(target) {
		return nil, false
	}

	area := b.grid.Area()
	gScore := make([]int, area)
	parent := make([]int, area)
	closed := make([]bool, area)
	for i := range gScore {
		gScore[i] = unvisited
	}

	startIdx := b.grid.Index(start)
	targetIdx := b.grid.Index(target)
	gScore[startIdx] = 0

	open := make(openSet, 0, area/4+1)
	seq := 0
	open.push(openEntry{idx: startIdx, g: 0, h: types.Manhattan(start, target), seq: seq})

	for len(open) > 0 {
		cur := open.pop()
		if closed[cur.idx] || cur.g != gScore[cur.idx] {
			continue
		}
		if cur.idx == targetIdx {
			return b.tracePath(parent, start, target), true
		}
		closed[cur.idx] = true

		pos := b.point(cur.idx)
		for _, dir := range types.Directions {
			next := pos.Add(dir)
			if b.lethal(next) {
				continue
			}
			idx := b.grid.Index(next)
			if closed[idx] {
				continue
			}
			g := cur.g + 1
			if gScore[idx] != unvisited && g >= gScore[idx] {
				continue
			}
			gScore[idx] = g
			parent[idx] = cur.idx
			seq++
			open.push(openEntry{idx: idx, g: g, h: types.Manhattan(next, target), seq: seq})
		}
	}
	return nil, false
}
