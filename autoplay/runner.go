package autoplay

import (
	"context"
	"fmt"

	"snake-autopilot/game"
	"snake-autopilot/game/manager"

	"github.com/go-kit/log"
)

// stallFactor bounds a game to stallFactor * grid area ticks. The
// autopilot can circle forever on a board where food is unreachable.
const stallFactor = 50

// Result summarizes one autonomous game.
type Result struct {
	Session string
	Score   int
	Steps   int
	Length  int
	Cause   manager.CollisionType
	Stalled bool
}

// Runner plays autonomous games to completion without a host.
type Runner struct {
	driver   *game.Driver
	scores   game.ScoreRecorder
	recorder game.GameRecorder
	logger   log.Logger
	maxSteps int
}

func NewRunner(driver *game.Driver, scores game.ScoreRecorder, recorder game.GameRecorder, logger log.Logger) *Runner {
	return &Runner{
		driver:   driver,
		scores:   scores,
		recorder: recorder,
		logger:   logger,
		maxSteps: stallFactor * driver.Grid().Area(),
	}
}

// Play runs one game until it ends, stalls, or ctx is cancelled.
func (r *Runner) Play(ctx context.Context) (Result, error) {
	g := game.NewGame(r.driver, true, r.scores, r.recorder, r.logger)
	g.Start()

	for steps := 0; ; steps++ {
		if steps%256 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, fmt.Errorf("game %s interrupted: %w", g.UUID, err)
			}
		}
		if steps >= r.maxSteps {
			st := g.State()
			return Result{Session: g.UUID, Score: st.Score, Steps: st.Steps, Length: st.Snake.Len(), Stalled: true}, nil
		}

		out := g.Advance()
		if out.Status == game.Terminate {
			st := g.State()
			return Result{Session: g.UUID, Score: out.Score, Steps: st.Steps, Length: st.Snake.Len(), Cause: out.Cause}, nil
		}
	}
}
