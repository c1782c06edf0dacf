package game

import (
	"time"

	"snake-autopilot/game/types"
	"snake-autopilot/stats"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
)

// ScoreRecorder persists final scores. It must only raise the stored
// high score when the new score is strictly greater.
type ScoreRecorder interface {
	RecordScore(score int, session string) (bool, error)
	GetHighScore() int
}

// GameRecorder collects finished games.
type GameRecorder interface {
	AddGame(rec stats.GameRecord)
}

// Game is the host-facing session: it owns the current State, applies
// host controls through the Driver, and reports finished games.
// It is not safe for concurrent use; hosts serialize ticks and input.
type Game struct {
	UUID      string
	StartTime time.Time
	HighScore int
	NewRecord bool

	driver   *Driver
	state    State
	scores   ScoreRecorder
	recorder GameRecorder
	logger   log.Logger
}

// NewGame creates an idle session. scores and recorder may be nil.
func NewGame(driver *Driver, auto bool, scores ScoreRecorder, recorder GameRecorder, logger log.Logger) *Game {
	g := &Game{
		driver:   driver,
		scores:   scores,
		recorder: recorder,
		logger:   logger,
	}
	if scores != nil {
		g.HighScore = scores.GetHighScore()
	}
	g.begin(driver.NewState(auto))
	return g
}

func (g *Game) begin(s State) {
	g.state = s
	g.UUID = uuid.New().String()
	g.StartTime = time.Now()
	g.NewRecord = false
}

// State returns a copy of the current game state.
func (g *Game) State() State {
	return g.state.Clone()
}

func (g *Game) Phase() Phase {
	return g.state.Phase
}

func (g *Game) Grid() types.Grid {
	return g.driver.Grid()
}

// Advance runs one tick and, on the tick that ends the game, records
// the final score.
func (g *Game) Advance() Outcome {
	wasRunning := g.state.Phase == Running
	next, out := g.driver.Advance(g.state)
	g.state = next

	if out.Ate {
		_ = level.Info(g.logger).Log("msg", "food eaten", "session", g.UUID, "score", out.Score, "length", next.Snake.Len())
	}
	if wasRunning && out.Status == Terminate {
		g.finish(&out)
	}
	out.NewRecord = g.NewRecord
	return out
}

func (g *Game) finish(out *Outcome) {
	end := time.Now()
	_ = level.Info(g.logger).Log("msg", "game over", "session", g.UUID, "score", out.Score,
		"cause", out.Cause, "steps", g.state.Steps, "auto", g.state.Auto)

	if g.scores != nil {
		newRecord, err := g.scores.RecordScore(out.Score, g.UUID)
		if err != nil {
			_ = level.Error(g.logger).Log("msg", "failed to record score", "err", err)
		}
		g.NewRecord = newRecord
		g.HighScore = g.scores.GetHighScore()
	} else if out.Score > g.HighScore {
		g.HighScore = out.Score
		g.NewRecord = true
	}

	if g.recorder != nil {
		g.recorder.AddGame(stats.GameRecord{
			Session:   g.UUID,
			StartTime: g.StartTime,
			EndTime:   end,
			Score:     out.Score,
			Steps:     g.state.Steps,
			Cause:     out.Cause.String(),
		})
	}
}

// Start begins, resumes or restarts the game.
func (g *Game) Start() {
	restart := g.state.Phase == GameOver
	g.state = g.driver.Start(g.state)
	if restart {
		g.begin(g.state)
	}
	_ = level.Info(g.logger).Log("msg", "game started", "session", g.UUID, "phase", g.state.Phase, "auto", g.state.Auto)
}

func (g *Game) TogglePause() {
	restart := g.state.Phase == GameOver
	g.state = g.driver.TogglePause(g.state)
	if restart {
		g.begin(g.state)
	}
}

// Steer queues a manual heading; see Driver.Steer.
func (g *Game) Steer(dir types.Direction) {
	g.state = g.driver.Steer(g.state, dir)
}

func (g *Game) ToggleAuto() {
	g.state = g.driver.ToggleAuto(g.state)
	_ = level.Info(g.logger).Log("msg", "auto mode", "enabled", g.state.Auto)
}

// Reset abandons the current game without recording it.
func (g *Game) Reset() {
	g.begin(g.driver.Reset(g.state))
}
