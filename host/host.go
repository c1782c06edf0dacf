package host

import (
	"errors"
	"fmt"
	"io"

	"snake-autopilot/audio"
	"snake-autopilot/config"
	"snake-autopilot/game"
	"snake-autopilot/game/manager"
	"snake-autopilot/logging"
	"snake-autopilot/stats"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Session bundles what an interactive host needs around one Game.
type Session struct {
	Config config.Config
	Game   *game.Game
	Scores *manager.StateManager
	Stats  *stats.GameStats
	Sound  *audio.SoundManager
	Logger log.Logger

	logCloser io.Closer
}

// Open wires logging, persistence, the driver and the game from cfg.
func Open(cfg config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	scores, err := manager.NewStateManager(cfg.DataDir)
	if err != nil {
		closer.Close()
		return nil, err
	}
	history, err := stats.NewGameStats(cfg.DataDir)
	if err != nil {
		closer.Close()
		return nil, err
	}
	driver, err := game.NewDriver(cfg, logger)
	if err != nil {
		closer.Close()
		return nil, err
	}

	s := &Session{
		Config:    cfg,
		Game:      game.NewGame(driver, cfg.AutoMode, scores, history, logger),
		Scores:    scores,
		Stats:     history,
		Sound:     audio.NewSoundManager(),
		Logger:    logger,
		logCloser: closer,
	}

	if cfg.Sound {
		if err := s.Sound.Initialize(); err != nil {
			_ = level.Warn(logger).Log("msg", "sound disabled", "err", err)
		}
	}

	_ = level.Info(logger).Log("msg", "session opened", "grid", cfg.GridSize, "strategy", cfg.Strategy,
		"auto", cfg.AutoMode, "high_score", scores.GetHighScore())
	return s, nil
}

// Advance ticks the game if it is running and plays the matching tone.
func (s *Session) Advance() game.Outcome {
	if s.Game.Phase() != game.Running {
		return game.Outcome{Status: game.Continue}
	}
	out := s.Game.Advance()
	s.Sound.OnOutcome(out)
	return out
}

// Close flushes stats and releases audio and the log file.
func (s *Session) Close() error {
	s.Sound.Cleanup()
	var errs []error
	if err := s.Stats.SaveToFile(); err != nil {
		errs = append(errs, fmt.Errorf("failed to save stats: %w", err))
	}
	if err := s.logCloser.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
