package stats

import (
	"testing"
	"time"
)

func addGames(s *GameStats, n int) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		start := base.Add(time.Duration(i) * time.Minute)
		s.AddGame(GameRecord{
			Session:   "s",
			StartTime: start,
			EndTime:   start.Add(10 * time.Second),
			Score:     i * 10,
			Steps:     i,
			Cause:     "wall",
		})
	}
}

func TestAddGameGroups(t *testing.T) {
	s, err := NewGameStats("")
	if err != nil {
		t.Fatalf("NewGameStats: %v", err)
	}

	addGames(s, GroupSize-1)
	if n := len(s.GetStats()); n != GroupSize-1 {
		t.Fatalf("records before grouping = %d, want %d", n, GroupSize-1)
	}

	addGames(s, 1)
	records := s.GetStats()
	if len(records) != 1 {
		t.Fatalf("records after %d games = %d, want 1", GroupSize, len(records))
	}
	if records[0].CompressionIndex != 1 || records[0].GamesCount != GroupSize {
		t.Errorf("summary %+v, want level 1 covering %d games", records[0], GroupSize)
	}
	if s.GetGamesPlayed() != GroupSize {
		t.Errorf("games played = %d, want %d", s.GetGamesPlayed(), GroupSize)
	}
}

func TestAggregates(t *testing.T) {
	s, err := NewGameStats("")
	if err != nil {
		t.Fatalf("NewGameStats: %v", err)
	}
	if s.GetAverageScore() != 0 || s.GetMedianScore() != 0 {
		t.Error("empty stats should report zero")
	}

	addGames(s, 4) // scores 0, 10, 20, 30
	if got := s.GetAverageScore(); got != 15 {
		t.Errorf("average score = %v, want 15", got)
	}
	if got := s.GetMedianScore(); got != 15 {
		t.Errorf("median score = %v, want 15", got)
	}
	if got := s.GetMaxScore(); got != 30 {
		t.Errorf("max score = %d, want 30", got)
	}
	if got := s.GetAverageSteps(); got != 1.5 {
		t.Errorf("average steps = %v, want 1.5", got)
	}
	if got := s.GetAverageDuration(); got != 10 {
		t.Errorf("average duration = %v, want 10", got)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	s, err := NewGameStats(dir)
	if err != nil {
		t.Fatalf("NewGameStats: %v", err)
	}
	addGames(s, 3)
	if err := s.SaveToFile(); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	loaded, err := NewGameStats(dir)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.GetGamesPlayed() != 3 || loaded.GetMaxScore() != 20 {
		t.Errorf("reloaded %d games with max %d, want 3 and 20", loaded.GetGamesPlayed(), loaded.GetMaxScore())
	}
}
