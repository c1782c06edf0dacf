package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"

	"snake-autopilot/autoplay"
	"snake-autopilot/config"
	"snake-autopilot/game/manager"
	"snake-autopilot/logging"
	"snake-autopilot/stats"

	"github.com/go-kit/log/level"
)

func main() {
	cfg := config.Default()
	cfg.AutoMode = true
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	scores, err := manager.NewStateManager(cfg.DataDir)
	if err != nil {
		return err
	}
	history, err := stats.NewGameStats(cfg.DataDir)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pool := autoplay.NewPool(cfg, scores, history, logger)
	results, runErr := pool.Run(ctx)
	if err := history.SaveToFile(); err != nil {
		_ = level.Error(logger).Log("msg", "failed to save stats", "err", err)
	}

	printSummary(cfg, results, history, scores.GetHighScore())
	return runErr
}

func printSummary(cfg config.Config, results []autoplay.Result, history *stats.GameStats, highScore int) {
	causes := map[string]int{}
	stalled := 0
	lengths := make([]int, 0, len(results))
	for _, res := range results {
		if res.Stalled {
			stalled++
		} else {
			causes[res.Cause.String()]++
		}
		lengths = append(lengths, res.Length)
	}
	sort.Ints(lengths)

	fmt.Printf("grid %dx%d, strategy %s, %d games on %d workers\n",
		cfg.GridSize, cfg.GridSize, cfg.Strategy, len(results), max(cfg.Workers, 1))
	fmt.Printf("avg score %.1f, median %.1f, max %d, all-time high %d\n",
		history.GetAverageScore(), history.GetMedianScore(), history.GetMaxScore(), highScore)
	fmt.Printf("avg steps %.0f, avg duration %.3fs\n", history.GetAverageSteps(), history.GetAverageDuration())
	if len(lengths) > 0 {
		fmt.Printf("final length min %d, median %d, max %d\n",
			lengths[0], lengths[len(lengths)/2], lengths[len(lengths)-1])
	}
	keys := make([]string, 0, len(causes))
	for cause := range causes {
		keys = append(keys, cause)
	}
	sort.Strings(keys)
	for _, cause := range keys {
		fmt.Printf("  %-10s %d\n", cause, causes[cause])
	}
	if stalled > 0 {
		fmt.Printf("  %-10s %d\n", "stalled", stalled)
	}
}
