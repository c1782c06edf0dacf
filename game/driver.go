package game

import (
	"snake-autopilot/ai"
	"snake-autopilot/config"
	"snake-autopilot/game/entity"
	"snake-autopilot/game/manager"
	"snake-autopilot/game/types"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Phase is the lifecycle of one game.
type Phase int

const (
	Idle Phase = iota
	Running
	Paused
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Status is what a tick reports outward: exactly one per Advance.
type Status int

const (
	Continue Status = iota
	Terminate
)

// State is everything one game owns. Driver methods take a State and
// return a new one; the input is never modified.
type State struct {
	Snake   entity.Snake
	Food    types.Point
	Score   int
	Phase   Phase
	Auto    bool
	Pending types.Direction // manual heading queued for the next tick
	Steps   int
}

func (s State) Clone() State {
	s.Snake = *s.Snake.Clone()
	return s
}

type Outcome struct {
	Status    Status
	Moved     bool
	Ate       bool
	Cause     manager.CollisionType
	Score     int
	NewRecord bool         // set by Game once the score is persisted
	Decision  *ai.Decision // non-nil when the autopilot chose the heading
}

// Driver advances a State by one tick.
type Driver struct {
	grid         types.Grid
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	pilot        *ai.Autopilot
	foodScore    int
	logger       log.Logger
}

func NewDriver(cfg config.Config, logger log.Logger) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	strategy, err := ai.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	grid := types.NewGrid(cfg.GridSize)
	collisionMgr := manager.NewCollisionManager(grid)
	tuning := ai.Tuning{PathSafety: cfg.PathSafety, ProbeSafety: cfg.ProbeSafety}

	return &Driver{
		grid:         grid,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, cfg.ResolveSeed()),
		pilot:        ai.NewAutopilot(collisionMgr, strategy, tuning),
		foodScore:    cfg.FoodScore,
		logger:       logger,
	}, nil
}

func (d *Driver) Grid() types.Grid {
	return d.grid
}

// NewState returns an idle game: one segment at the grid centre, no
// heading, fresh food.
func (d *Driver) NewState(auto bool) State {
	snake := entity.NewSnake(d.grid.Center())
	food, _ := d.foodMgr.GenerateFood(snake.Body)
	return State{
		Snake:   *snake,
		Food:    food,
		Phase:   Idle,
		Auto:    auto,
		Pending: types.None,
	}
}

// Advance runs one tick. Idle and paused games do not move; a finished
// game keeps reporting Terminate.
func (d *Driver) Advance(s State) (State, Outcome) {
	switch s.Phase {
	case GameOver:
		return s, Outcome{Status: Terminate, Score: s.Score}
	case Idle, Paused:
		return s, Outcome{Status: Continue, Score: s.Score}
	}

	next := s.Clone()
	var out Outcome

	if next.Auto {
		decision := d.pilot.Decide(next.Snake.Body, next.Snake.Direction, next.Food)
		out.Decision = &decision
		next.Snake.Direction = decision.Direction
		next.Pending = decision.Direction
		_ = level.Debug(d.logger).Log("msg", "autopilot", "layer", decision.Layer, "dir", decision.Direction,
			"path_len", decision.PathLen, "space", decision.Space)
	} else if !next.Pending.IsNone() {
		next.Snake.SetDirection(next.Pending)
	}

	dir := next.Snake.Direction
	if dir.IsNone() {
		out.Score = next.Score
		return next, out
	}

	newHead := next.Snake.GetHead().Add(dir)
	if cause := d.collisionMgr.CheckCollision(newHead, next.Snake.Body); cause != manager.NoCollision {
		next.Phase = GameOver
		out.Status = Terminate
		out.Cause = cause
		out.Score = next.Score
		return next, out
	}

	ate := d.collisionMgr.IsFoodCollision(newHead, next.Food)
	next.Snake.Move(newHead, ate)
	next.Steps++
	out.Moved = true

	if ate {
		out.Ate = true
		next.Score += d.foodScore
		food, ok := d.foodMgr.GenerateFood(next.Snake.Body)
		if !ok {
			next.Phase = GameOver
			out.Status = Terminate
			out.Cause = manager.BoardFull
		} else {
			next.Food = food
		}
	}

	out.Score = next.Score
	return next, out
}

// Start begins, resumes or restarts a game. A restart keeps auto mode.
func (d *Driver) Start(s State) State {
	switch s.Phase {
	case Paused:
		s.Phase = Running
		return s
	case GameOver:
		fresh := d.NewState(s.Auto)
		fresh.Phase = Running
		fresh.Pending = types.Right
		return fresh
	case Idle:
		s = s.Clone()
		s.Phase = Running
		if s.Snake.Direction.IsNone() {
			s.Pending = types.Right
		}
		return s
	}
	return s
}

func (d *Driver) Pause(s State) State {
	if s.Phase == Running {
		s.Phase = Paused
	}
	return s
}

func (d *Driver) TogglePause(s State) State {
	if s.Phase == Running {
		return d.Pause(s)
	}
	return d.Start(s)
}

// Steer queues a manual heading. It is ignored unless the game is
// running in manual mode, and a reversal of the current heading is
// dropped.
func (d *Driver) Steer(s State, dir types.Direction) State {
	if s.Phase != Running || s.Auto || !isStep(dir) {
		return s
	}
	if !s.Snake.CanTurn(dir) {
		return s
	}
	s.Pending = dir
	return s
}

// ToggleAuto flips autonomous mode; it takes effect on the next tick.
func (d *Driver) ToggleAuto(s State) State {
	s.Auto = !s.Auto
	if !s.Auto {
		s.Pending = s.Snake.Direction
	}
	return s
}

// Reset rebuilds an idle game, keeping auto mode.
func (d *Driver) Reset(s State) State {
	return d.NewState(s.Auto)
}

func isStep(dir types.Direction) bool {
	for _, d := range types.Directions {
		if dir == d {
			return true
		}
	}
	return false
}
