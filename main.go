package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"snake-autopilot/config"
	"snake-autopilot/game/types"
	"snake-autopilot/host"
	"snake-autopilot/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// steerKeys maps arrows and WASD onto headings.
var steerKeys = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyW:     types.Up,
	rl.KeyRight: types.Right,
	rl.KeyD:     types.Right,
	rl.KeyDown:  types.Down,
	rl.KeyS:     types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyA:     types.Left,
}

func main() {
	cfg := config.Default()
	configPath := flag.String("config", "", "Optional JSON config file, applied before flags")
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		// Flags given on the command line win over the file
		flag.Parse()
	}

	session, err := host.Open(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() {
		if err := session.Close(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}()

	rl.InitWindow(1280, 800, "Snake Autopilot")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	g := session.Game
	interval := cfg.TickInterval
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		for key, dir := range steerKeys {
			if rl.IsKeyPressed(key) {
				g.Steer(dir)
			}
		}
		switch {
		case rl.IsKeyPressed(rl.KeySpace):
			g.TogglePause()
		case rl.IsKeyPressed(rl.KeyM):
			g.ToggleAuto()
		case rl.IsKeyPressed(rl.KeyR):
			g.Reset()
		case rl.IsKeyPressed(rl.KeyEqual), rl.IsKeyPressed(rl.KeyKpAdd):
			interval = config.StepSpeed(interval, true)
		case rl.IsKeyPressed(rl.KeyMinus), rl.IsKeyPressed(rl.KeyKpSubtract):
			interval = config.StepSpeed(interval, false)
		}

		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		// Update game state at fixed interval
		if time.Since(lastUpdate) >= interval {
			session.Advance()
			lastUpdate = time.Now()
		}

		renderer.Draw(g, session.Stats, interval.String())
	}
}
