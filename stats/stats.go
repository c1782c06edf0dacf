package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

const (
	StatsFile = "stats.json"
	GroupSize = 100 // Games folded into one record per compression level
)

// GameStats keeps every finished game, folding old records into grouped
// summaries so the file stays bounded.
type GameStats struct {
	Games []GameRecord
	path  string
	mutex sync.RWMutex
}

// GameRecord is one finished game (GamesCount 1) or a summary of many.
type GameRecord struct {
	Session          string    `json:"session,omitempty"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Score            int       `json:"score"`
	Steps            int       `json:"steps"`
	Cause            string    `json:"cause,omitempty"`
	CompressionIndex int       `json:"compressionIndex"` // 0 for single games
	GamesCount       int       `json:"gamesCount"`
	AverageScore     float64   `json:"averageScore"`
	MedianScore      float64   `json:"medianScore"`
	MaxScore         int       `json:"maxScore"`
	MinScore         int       `json:"minScore"`
	AverageSteps     float64   `json:"averageSteps"`
	AverageDuration  float64   `json:"averageDuration"`
	MaxDuration      float64   `json:"maxDuration"`
	MinDuration      float64   `json:"minDuration"`
}

// NewGameStats loads dataDir/stats.json if present. An empty dataDir
// keeps stats in memory only.
func NewGameStats(dataDir string) (*GameStats, error) {
	stats := &GameStats{
		Games: make([]GameRecord, 0),
	}
	if dataDir != "" {
		stats.path = filepath.Join(dataDir, StatsFile)
		if err := stats.loadFromFile(); err != nil {
			return nil, err
		}
	}
	return stats, nil
}

// AddGame records a single finished game.
func (s *GameStats) AddGame(rec GameRecord) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	duration := rec.EndTime.Sub(rec.StartTime).Seconds()
	rec.CompressionIndex = 0
	rec.GamesCount = 1
	rec.AverageScore = float64(rec.Score)
	rec.MedianScore = float64(rec.Score)
	rec.MaxScore = rec.Score
	rec.MinScore = rec.Score
	rec.AverageSteps = float64(rec.Steps)
	rec.AverageDuration = duration
	rec.MaxDuration = duration
	rec.MinDuration = duration
	s.Games = append(s.Games, rec)

	s.groupGames()
}

// groupGames folds every full block of GroupSize records at one
// compression level into a single record at the next level.
func (s *GameStats) groupGames() {
	sort.SliceStable(s.Games, func(i, j int) bool {
		if s.Games[i].CompressionIndex != s.Games[j].CompressionIndex {
			return s.Games[i].CompressionIndex < s.Games[j].CompressionIndex
		}
		return s.Games[i].StartTime.Before(s.Games[j].StartTime)
	})

	for compressionLevel := 0; ; compressionLevel++ {
		records := make([]GameRecord, 0)
		for _, game := range s.Games {
			if game.CompressionIndex == compressionLevel {
				records = append(records, game)
			}
		}

		if len(records) < GroupSize {
			break
		}

		var newRecords []GameRecord
		for i := 0; i < len(records); i += GroupSize {
			end := i + GroupSize
			if end > len(records) {
				newRecords = append(newRecords, records[i:]...)
				break
			}
			newRecords = append(newRecords, summarize(records[i:end], compressionLevel+1))
		}

		remainingGames := make([]GameRecord, 0, len(s.Games))
		for _, game := range s.Games {
			if game.CompressionIndex != compressionLevel {
				remainingGames = append(remainingGames, game)
			}
		}
		s.Games = append(remainingGames, newRecords...)
	}
}

func summarize(group []GameRecord, level int) GameRecord {
	var totalScore, totalSteps, totalDuration float64
	allScores := make([]float64, 0)
	out := GameRecord{
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
		MaxDuration:      group[0].MaxDuration,
		MinDuration:      group[0].MinDuration,
	}

	for _, g := range group {
		out.MaxScore = max(out.MaxScore, g.MaxScore)
		out.MinScore = min(out.MinScore, g.MinScore)
		out.MaxDuration = max(out.MaxDuration, g.MaxDuration)
		out.MinDuration = min(out.MinDuration, g.MinDuration)
		if g.StartTime.Before(out.StartTime) {
			out.StartTime = g.StartTime
		}
		if g.EndTime.After(out.EndTime) {
			out.EndTime = g.EndTime
		}
		totalScore += g.AverageScore * float64(g.GamesCount)
		totalSteps += g.AverageSteps * float64(g.GamesCount)
		totalDuration += g.AverageDuration * float64(g.GamesCount)
		out.GamesCount += g.GamesCount
		for i := 0; i < g.GamesCount; i++ {
			allScores = append(allScores, g.MedianScore)
		}
	}

	out.AverageScore = totalScore / float64(out.GamesCount)
	out.AverageSteps = totalSteps / float64(out.GamesCount)
	out.AverageDuration = totalDuration / float64(out.GamesCount)
	out.MedianScore = median(allScores)
	out.Score = out.MaxScore
	return out
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	if len(values)%2 == 0 {
		return (values[len(values)/2-1] + values[len(values)/2]) / 2
	}
	return values[len(values)/2]
}

// GetStats returns a copy of the current records.
func (s *GameStats) GetStats() []GameRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]GameRecord, len(s.Games))
	copy(out, s.Games)
	return out
}

func (s *GameStats) GetAverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var totalScore float64
	var totalGames int
	for _, game := range s.Games {
		totalScore += game.AverageScore * float64(game.GamesCount)
		totalGames += game.GamesCount
	}
	if totalGames == 0 {
		return 0
	}
	return totalScore / float64(totalGames)
}

// GetMedianScore weights each record's median by its game count.
func (s *GameStats) GetMedianScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	allScores := make([]float64, 0)
	for _, game := range s.Games {
		for i := 0; i < game.GamesCount; i++ {
			allScores = append(allScores, game.MedianScore)
		}
	}
	return median(allScores)
}

func (s *GameStats) GetMaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	maxScore := 0
	for _, game := range s.Games {
		maxScore = max(maxScore, game.MaxScore)
	}
	return maxScore
}

func (s *GameStats) GetGamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	total := 0
	for _, game := range s.Games {
		total += game.GamesCount
	}
	return total
}

func (s *GameStats) GetAverageSteps() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var totalSteps float64
	var totalGames int
	for _, game := range s.Games {
		totalSteps += game.AverageSteps * float64(game.GamesCount)
		totalGames += game.GamesCount
	}
	if totalGames == 0 {
		return 0
	}
	return totalSteps / float64(totalGames)
}

// GetAverageDuration returns the mean game length in seconds.
func (s *GameStats) GetAverageDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var totalDuration float64
	var totalGames int
	for _, game := range s.Games {
		totalDuration += game.AverageDuration * float64(game.GamesCount)
		totalGames += game.GamesCount
	}
	if totalGames == 0 {
		return 0
	}
	return totalDuration / float64(totalGames)
}

// SaveToFile writes the records as JSON. It is a no-op for in-memory stats.
func (s *GameStats) SaveToFile() error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	jsonData, err := json.Marshal(s.Games)
	if err != nil {
		return fmt.Errorf("failed to marshal stats data: %w", err)
	}

	if err := os.WriteFile(s.path, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	return nil
}

func (s *GameStats) loadFromFile() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read stats file: %w", err)
	}

	if err := json.Unmarshal(data, &s.Games); err != nil {
		return fmt.Errorf("failed to parse stats file: %w", err)
	}
	return nil
}
