package autoplay

import (
	"context"
	"sync"

	"snake-autopilot/config"
	"snake-autopilot/game"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Pool plays many autonomous games concurrently. Each worker owns its
// own Driver, so every game stays single-threaded.
type Pool struct {
	cfg      config.Config
	scores   game.ScoreRecorder
	recorder game.GameRecorder
	logger   log.Logger
}

// NewPool needs recorders that are safe for concurrent use; the stats
// and state managers are.
func NewPool(cfg config.Config, scores game.ScoreRecorder, recorder game.GameRecorder, logger log.Logger) *Pool {
	return &Pool{
		cfg:      cfg,
		scores:   scores,
		recorder: recorder,
		logger:   logger,
	}
}

// Run plays cfg.Games games on cfg.Workers goroutines and returns the
// results in completion order. It stops early when ctx is cancelled.
func (p *Pool) Run(ctx context.Context) ([]Result, error) {
	workers := max(p.cfg.Workers, 1)
	base := p.cfg.ResolveSeed()

	runners := make([]*Runner, workers)
	for i := range runners {
		cfg := p.cfg
		cfg.Seed = base + uint64(i)
		driver, err := game.NewDriver(cfg, p.logger)
		if err != nil {
			return nil, err
		}
		runners[i] = NewRunner(driver, p.scores, p.recorder, p.logger)
	}

	jobs := make(chan int)
	var (
		mu       sync.Mutex
		results  = make([]Result, 0, p.cfg.Games)
		firstErr error
		wg       sync.WaitGroup
	)

	for _, runner := range runners {
		wg.Add(1)
		go func(r *Runner) {
			defer wg.Done()
			for range jobs {
				res, err := r.Play(ctx)
				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
				} else {
					results = append(results, res)
				}
				mu.Unlock()
			}
		}(runner)
	}

feed:
	for i := 0; i < p.cfg.Games; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	_ = level.Info(p.logger).Log("msg", "pool finished", "games", len(results), "workers", workers)
	if firstErr != nil {
		return results, firstErr
	}
	return results, ctx.Err()
}
