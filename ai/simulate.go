package ai

import (
	"snake-autopilot/game/types"
)

// Simulation is the body a snake would have after following a path.
type Simulation struct {
	Body []types.Point
	Ate  bool
	// Crashed is set when a step hit a wall or the body; Body is then the
	// state just before the crash.
	Crashed bool
}

// SimulatePath replays path on a private copy of body. The step onto
// food keeps the tail, every other step drops it. Food is eaten at most
// once.
func SimulatePath(grid types.Grid, path Path, body []types.Point, food types.Point) Simulation {
	sim := make([]types.Point, len(body), len(body)+1)
	copy(sim, body)
	ate := false

	for _, dir := range path {
		head := sim[0].Add(dir)
		if !grid.InBounds(head) || contains(sim, head) {
			return Simulation{Body: sim, Ate: ate, Crashed: true}
		}
		grow := !ate && head == food
		if grow {
			ate = true
			sim = append(sim, types.Point{})
		}
		copy(sim[1:], sim[:len(sim)-1])
		sim[0] = head
	}
	return Simulation{Body: sim, Ate: ate}
}

// SurvivesAfter reports whether, after following path, the head still
// has at least multiplier times the body length of open space around it.
// The flood runs against the simulated body minus its head. This is a
// trap heuristic and does not prove the snake can survive.
func SurvivesAfter(grid types.Grid, path Path, body []types.Point, food types.Point, multiplier float64) bool {
	if len(path) == 0 {
		return false
	}
	sim := SimulatePath(grid, path, body, food)
	if sim.Crashed {
		return false
	}
	space := ReachableCount(grid, sim.Body[0], sim.Body[1:])
	return float64(space) >= multiplier*float64(len(sim.Body))
}

func contains(body []types.Point, p types.Point) bool {
	for _, part := range body {
		if part == p {
			return true
		}
	}
	return false
}
