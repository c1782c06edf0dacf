package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Pathfinder names accepted by the -strategy flag.
const (
	StrategyAStar = "astar"
	StrategyBFS   = "bfs"
)

// SpeedPresets are the tick intervals hosts cycle through, slowest first.
var SpeedPresets = []time.Duration{
	200 * time.Millisecond,
	150 * time.Millisecond,
	100 * time.Millisecond,
	50 * time.Millisecond,
}

type Config struct {
	GridSize     int           `json:"gridSize"`
	TickInterval time.Duration `json:"tickInterval"`
	AutoMode     bool          `json:"autoMode"`
	Strategy     string        `json:"strategy"`

	// Reachable-space multipliers of body length. Heuristics, not proofs.
	PathSafety  float64 `json:"pathSafety"`
	ProbeSafety float64 `json:"probeSafety"`

	FoodScore int    `json:"foodScore"`
	Seed      uint64 `json:"seed"`

	DataDir  string `json:"dataDir"`
	LogLevel string `json:"logLevel"`
	LogFile  string `json:"logFile"`
	Sound    bool   `json:"sound"`

	Games   int `json:"games"`
	Workers int `json:"workers"`
}

func Default() Config {
	return Config{
		GridSize:     20,
		TickInterval: 150 * time.Millisecond,
		AutoMode:     false,
		Strategy:     StrategyAStar,
		PathSafety:   1.2,
		ProbeSafety:  1.5,
		FoodScore:    10,
		Seed:         0,
		DataDir:      "data",
		LogLevel:     "info",
		Games:        100,
		Workers:      4,
	}
}

// BindFlags registers every field on fs, using the current values as defaults.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.GridSize, "grid", c.GridSize, "Grid side length in cells")
	fs.DurationVar(&c.TickInterval, "speed", c.TickInterval, "Tick interval (lower = faster)")
	fs.BoolVar(&c.AutoMode, "auto", c.AutoMode, "Start in autonomous mode")
	fs.StringVar(&c.Strategy, "strategy", c.Strategy, "Pathfinder: astar or bfs")
	fs.Float64Var(&c.PathSafety, "path-safety", c.PathSafety, "Reachable space required after following a food path, as a multiple of body length")
	fs.Float64Var(&c.ProbeSafety, "probe-safety", c.ProbeSafety, "Reachable space required by the clockwise probe, as a multiple of body length")
	fs.IntVar(&c.FoodScore, "food-score", c.FoodScore, "Points per food")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Food RNG seed (0 = time based)")
	fs.StringVar(&c.DataDir, "data", c.DataDir, "Directory for high score and stats files (empty = memory only)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Log file path (empty = stderr)")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "Play tones on food and game over")
	fs.IntVar(&c.Games, "games", c.Games, "Benchmark: number of games")
	fs.IntVar(&c.Workers, "workers", c.Workers, "Benchmark: concurrent games")
}

// LoadFile overlays the JSON object in path onto c. Absent keys keep
// their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.GridSize < 2:
		return fmt.Errorf("%w: grid size %d, need at least 2", ErrInvalid, c.GridSize)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval must be positive", ErrInvalid)
	case c.Strategy != StrategyAStar && c.Strategy != StrategyBFS:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalid, c.Strategy)
	case c.PathSafety <= 0 || c.ProbeSafety <= 0:
		return fmt.Errorf("%w: safety multipliers must be positive", ErrInvalid)
	case c.FoodScore < 0:
		return fmt.Errorf("%w: negative food score", ErrInvalid)
	case c.Games < 0 || c.Workers < 0:
		return fmt.Errorf("%w: negative benchmark sizes", ErrInvalid)
	}
	return nil
}

// ResolveSeed returns Seed, or a clock-derived seed when Seed is zero.
func (c Config) ResolveSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// StepSpeed moves cur one preset faster or slower, clamping at the ends.
// An interval that is not a preset snaps to the nearest one first.
func StepSpeed(cur time.Duration, faster bool) time.Duration {
	idx := 0
	for i, preset := range SpeedPresets {
		if absDuration(preset-cur) < absDuration(SpeedPresets[idx]-cur) {
			idx = i
		}
	}
	if faster {
		idx++
	} else {
		idx--
	}
	idx = max(0, min(idx, len(SpeedPresets)-1))
	return SpeedPresets[idx]
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
