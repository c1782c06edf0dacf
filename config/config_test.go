package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"bfs", func(c *Config) { c.Strategy = StrategyBFS }, false},
		{"tiny grid", func(c *Config) { c.GridSize = 1 }, true},
		{"zero interval", func(c *Config) { c.TickInterval = 0 }, true},
		{"unknown strategy", func(c *Config) { c.Strategy = "greedy" }, true},
		{"zero safety", func(c *Config) { c.PathSafety = 0 }, true},
		{"negative workers", func(c *Config) { c.Workers = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v does not wrap ErrInvalid", err)
			}
		})
	}
}

func TestStepSpeed(t *testing.T) {
	tests := []struct {
		cur    time.Duration
		faster bool
		want   time.Duration
	}{
		{150 * time.Millisecond, true, 100 * time.Millisecond},
		{150 * time.Millisecond, false, 200 * time.Millisecond},
		{50 * time.Millisecond, true, 50 * time.Millisecond},
		{200 * time.Millisecond, false, 200 * time.Millisecond},
		{90 * time.Millisecond, true, 50 * time.Millisecond},
		{time.Second, true, 150 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := StepSpeed(tt.cur, tt.faster); got != tt.want {
			t.Errorf("StepSpeed(%v, %v) = %v, want %v", tt.cur, tt.faster, got, tt.want)
		}
	}
}

func TestFlagsAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"gridSize": 12, "strategy": "bfs"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.GridSize != 12 || cfg.Strategy != StrategyBFS || cfg.FoodScore != 10 {
		t.Errorf("after LoadFile: %+v", cfg)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.BindFlags(fs)
	if err := fs.Parse([]string{"-grid", "30", "-auto", "-speed", "50ms"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.GridSize != 30 || !cfg.AutoMode || cfg.TickInterval != 50*time.Millisecond || cfg.Strategy != StrategyBFS {
		t.Errorf("after flags: %+v", cfg)
	}

	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadFile of a missing file succeeded")
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := Default()
	cfg.Seed = 7
	if cfg.ResolveSeed() != 7 {
		t.Errorf("ResolveSeed() = %d, want 7", cfg.ResolveSeed())
	}
	cfg.Seed = 0
	if cfg.ResolveSeed() == 0 {
		t.Error("zero seed was not replaced")
	}
}
