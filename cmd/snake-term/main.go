package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"snake-autopilot/config"
	"snake-autopilot/host"
	"snake-autopilot/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := config.Default()
	cfg.LogLevel = "none" // logs would tear the screen unless sent to -log-file
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	if cfg.LogFile != "" && cfg.LogLevel == "none" {
		cfg.LogLevel = "info"
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config) (err error) {
	session, err := host.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, session.Close())
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	if !tui.Fits(screen, session.Game.Grid()) {
		return fmt.Errorf("terminal too small for a %dx%d grid", cfg.GridSize, cfg.GridSize)
	}

	renderer := tui.NewRenderer(screen)
	g := session.Game
	interval := cfg.TickInterval

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, eventChan, done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	renderer.Draw(g, interval.String())

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action, dir := tui.Decode(ev)
				switch action {
				case tui.ActionQuit:
					return nil
				case tui.ActionSteer:
					g.Steer(dir)
				case tui.ActionTogglePause:
					g.TogglePause()
				case tui.ActionToggleAuto:
					g.ToggleAuto()
				case tui.ActionReset:
					g.Reset()
				case tui.ActionFaster, tui.ActionSlower:
					interval = config.StepSpeed(interval, action == tui.ActionFaster)
					ticker.Reset(interval)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
			renderer.Draw(g, interval.String())

		case <-ticker.C:
			session.Advance()
			renderer.Draw(g, interval.String())
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or
// done is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
