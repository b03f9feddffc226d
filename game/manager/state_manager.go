package manager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"snakefx/game/types"
)

const (
	StatsFile  = "stats.json"
	MaxHistory = 200 // Finished games kept in the stats file
)

// GameRecord describes one finished game
type GameRecord struct {
	Session   string              `json:"session"`
	StartTime time.Time           `json:"startTime"`
	EndTime   time.Time           `json:"endTime"`
	Score     int                 `json:"score"`
	Length    int                 `json:"length"`
	Cause     types.CollisionType `json:"cause"`
}

// GameStats is the persisted form of the stats file
type GameStats struct {
	HighScore int          `json:"highScore"`
	Games     []GameRecord `json:"games"`
}

// Summary is a read-only view of the current session and totals
type Summary struct {
	Session     string  `json:"session"`
	Score       int     `json:"score"`
	SessionHigh int     `json:"sessionHigh"`
	AllTimeHigh int     `json:"allTimeHigh"`
	GamesPlayed int     `json:"gamesPlayed"`
	AvgScore    float64 `json:"averageScore"`
}

type StateManager struct {
	mu          sync.RWMutex
	dataDir     string
	session     string
	score       int
	sessionHigh int
	highScore   int
	gameStart   time.Time
	history     []GameRecord
	played      int
}

// NewStateManager keeps stats under dataDir. An empty dataDir disables persistence.
func NewStateManager(dataDir string) *StateManager {
	return &StateManager{
		dataDir:   dataDir,
		session:   uuid.New().String(),
		gameStart: time.Now(),
		history:   make([]GameRecord, 0),
	}
}

func (sm *StateManager) statsPath() string {
	return filepath.Join(sm.dataDir, StatsFile)
}

// Load reads a previous stats file. A missing file is not an error.
func (sm *StateManager) Load() error {
	if sm.dataDir == "" {
		return nil
	}
	data, err := os.ReadFile(sm.statsPath())
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "read stats")
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return errors.Wrapf(err, "decode %s", sm.statsPath())
	}

	if n := len(stats.Games); n > MaxHistory {
		stats.Games = stats.Games[n-MaxHistory:]
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.highScore = stats.HighScore
	sm.history = stats.Games
	return nil
}

// Save writes the stats file, creating the data directory if needed.
func (sm *StateManager) Save() error {
	if sm.dataDir == "" {
		return nil
	}
	sm.mu.RLock()
	stats := GameStats{
		HighScore: sm.highScore,
		Games:     append([]GameRecord(nil), sm.history...),
	}
	sm.mu.RUnlock()

	if err := os.MkdirAll(sm.dataDir, 0755); err != nil {
		return errors.Wrap(err, "create data directory")
	}
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode stats")
	}
	return errors.Wrap(os.WriteFile(sm.statsPath(), data, 0644), "write stats")
}

// AddScore counts one eaten food and returns the new score
func (sm *StateManager) AddScore() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.score++
	if sm.score > sm.sessionHigh {
		sm.sessionHigh = sm.score
	}
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
	return sm.score
}

func (sm *StateManager) Score() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.score
}

// RecordGame closes the current game and starts timing the next one.
func (sm *StateManager) RecordGame(length int, cause types.CollisionType) GameRecord {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := time.Now()
	record := GameRecord{
		Session:   sm.session,
		StartTime: sm.gameStart,
		EndTime:   now,
		Score:     sm.score,
		Length:    length,
		Cause:     cause,
	}
	if len(sm.history) >= MaxHistory {
		sm.history = sm.history[1:]
	}
	sm.history = append(sm.history, record)
	sm.played++
	sm.gameStart = now
	return record
}

// ResetScore zeroes the running score
func (sm *StateManager) ResetScore() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.score = 0
}

func (sm *StateManager) GetHighScore() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	scores := make([]int, len(sm.history))
	for i, g := range sm.history {
		scores[i] = g.Score
	}
	return scores
}

func (sm *StateManager) Summary() Summary {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	var sum, n int
	for _, g := range sm.history {
		if g.Session == sm.session {
			sum += g.Score
			n++
		}
	}
	avg := 0.0
	if n > 0 {
		avg = float64(sum) / float64(n)
	}
	return Summary{
		Session:     sm.session,
		Score:       sm.score,
		SessionHigh: sm.sessionHigh,
		AllTimeHigh: sm.highScore,
		GamesPlayed: sm.played,
		AvgScore:    avg,
	}
}
