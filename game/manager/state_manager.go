package manager

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	highScoreFile   = "highscore.json"
	maxScoreHistory = 200
)

type GameStats struct {
	HighScore     int    `json:"highScore"`
	RecordSession string `json:"recordSession,omitempty"`
	ScoreHistory  []int  `json:"scoreHistory"`
}

// StateManager persists the high score across sessions. With an empty
// dataDir it keeps everything in memory.
type StateManager struct {
	mu            sync.Mutex
	path          string
	highScore     int
	recordSession string
	scoreHistory  []int
}

func NewStateManager(dataDir string) (*StateManager, error) {
	sm := &StateManager{
		scoreHistory: make([]int, 0),
	}
	if dataDir == "" {
		return sm, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	sm.path = filepath.Join(dataDir, highScoreFile)

	if err := sm.LoadStats(); err != nil {
		return nil, err
	}
	return sm, nil
}

func (sm *StateManager) LoadStats() error {
	if sm.path == "" {
		return nil
	}
	data, err := os.ReadFile(sm.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read high score file: %w", err)
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return fmt.Errorf("failed to parse high score file: %w", err)
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.highScore = stats.HighScore
	sm.recordSession = stats.RecordSession
	if stats.ScoreHistory != nil {
		sm.scoreHistory = stats.ScoreHistory
	}
	return nil
}

func (sm *StateManager) saveLocked() error {
	if sm.path == "" {
		return nil
	}
	stats := GameStats{
		HighScore:     sm.highScore,
		RecordSession: sm.recordSession,
		ScoreHistory:  sm.scoreHistory,
	}

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal high score: %w", err)
	}

	tmp := sm.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write high score file: %w", err)
	}
	if err := os.Rename(tmp, sm.path); err != nil {
		return fmt.Errorf("failed to replace high score file: %w", err)
	}
	return nil
}

// RecordScore appends a finished game's score to the history and raises
// the high score only when score strictly exceeds it.
func (sm *StateManager) RecordScore(score int, session string) (bool, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if len(sm.scoreHistory) >= maxScoreHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, score)

	newRecord := score > sm.highScore
	if newRecord {
		sm.highScore = score
		sm.recordSession = session
	}
	return newRecord, sm.saveLocked()
}

func (sm *StateManager) GetHighScore() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	out := make([]int, len(sm.scoreHistory))
	copy(out, sm.scoreHistory)
	return out
}
