package ai

import (
	"snake-autopilot/game/types"
)

// Layer names which fallback produced a decision.
type Layer int

const (
	LayerPath     Layer = iota // first step of a validated shortest path to food
	LayerProbe                 // clockwise probe with enough open space
	LayerMaxSpace              // move with the largest reachable area
	LayerAnySafe               // any non-lethal move
	LayerTrapped               // no safe move, heading kept
)

func (l Layer) String() string {
	switch l {
	case LayerPath:
		return "path"
	case LayerProbe:
		return "probe"
	case LayerMaxSpace:
		return "max_space"
	case LayerAnySafe:
		return "any_safe"
	case LayerTrapped:
		return "trapped"
	default:
		return "unknown"
	}
}

// Tuning holds the reachable-space thresholds, as multiples of body
// length.
type Tuning struct {
	PathSafety  float64
	ProbeSafety float64
}

func DefaultTuning() Tuning {
	return Tuning{PathSafety: 1.2, ProbeSafety: 1.5}
}

type Decision struct {
	Direction types.Direction
	Layer     Layer
	PathLen   int // 0 unless a food path was found
	Space     int // reachable count behind the chosen move, when measured
}

// Autopilot picks one heading per tick. It reads the body and food and
// never mutates them.
type Autopilot struct {
	oracle   Oracle
	strategy Strategy
	tuning   Tuning
}

func NewAutopilot(oracle Oracle, strategy Strategy, tuning Tuning) *Autopilot {
	return &Autopilot{
		oracle:   oracle,
		strategy: strategy,
		tuning:   tuning,
	}
}

func (a *Autopilot) Strategy() Strategy {
	return a.strategy
}

// DecideDirection is Decide without the diagnostics.
func (a *Autopilot) DecideDirection(body []types.Point, heading types.Direction, food types.Point) types.Direction {
	return a.Decide(body, heading, food).Direction
}

// Decide runs, in order: validated shortest path to food, clockwise
// probe, largest reachable area, any safe move, and finally the current
// heading when every move is lethal. The reversal of heading is never
// a candidate.
func (a *Autopilot) Decide(body []types.Point, heading types.Direction, food types.Point) Decision {
	grid := a.oracle.Grid()
	head := body[0]
	length := float64(len(body))

	path, ok := FindPath(a.strategy, grid, head, food, body)
	pathLen := len(path)
	if ok && pathLen > 0 && !path[0].Reverses(heading) {
		if SurvivesAfter(grid, path, body, food, a.tuning.PathSafety) {
			return Decision{Direction: path[0], Layer: LayerPath, PathLen: pathLen}
		}
	}

	occupied := newBoard(grid, body)

	for _, dir := range types.Clockwise {
		next, safe := a.candidate(head, dir, heading, body)
		if !safe {
			continue
		}
		if space := occupied.reachable(next); float64(space) >= a.tuning.ProbeSafety*length {
			return Decision{Direction: dir, Layer: LayerProbe, PathLen: pathLen, Space: space}
		}
	}

	best, bestSpace := types.None, -1
	for _, dir := range types.Directions {
		next, safe := a.candidate(head, dir, heading, body)
		if !safe {
			continue
		}
		if space := occupied.reachable(next); space > bestSpace {
			best, bestSpace = dir, space
		}
	}
	if bestSpace >= 0 {
		return Decision{Direction: best, Layer: LayerMaxSpace, PathLen: pathLen, Space: bestSpace}
	}

	for _, dir := range types.Directions {
		if _, safe := a.candidate(head, dir, heading, body); safe {
			return Decision{Direction: dir, Layer: LayerAnySafe, PathLen: pathLen}
		}
	}

	return Decision{Direction: heading, Layer: LayerTrapped, PathLen: pathLen}
}

// candidate returns the cell dir leads to and whether moving there is
// allowed and survivable this tick.
func (a *Autopilot) candidate(head types.Point, dir, heading types.Direction, body []types.Point) (types.Point, bool) {
	if dir.Reverses(heading) {
		return types.Point{}, false
	}
	next := head.Add(dir)
	return next, !a.oracle.IsLethal(next, body)
}
