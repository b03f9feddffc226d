package manager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snakefx/game/entity"
	"snakefx/game/types"
)

func TestNextPositionWraps(t *testing.T) {
	grid := types.NewSquareGrid(5)
	cm := NewCollisionManager(grid, types.Wrap)

	s := entity.NewSnake(types.Point{X: 4, Y: 2}, types.Right)
	assert.Equal(t, types.Point{X: 0, Y: 2}, cm.NextPosition(s))

	s = entity.NewSnake(types.Point{X: 2, Y: 0}, types.Up)
	assert.Equal(t, types.Point{X: 2, Y: 4}, cm.NextPosition(s))
}

func TestNextPositionWallsIsUnbounded(t *testing.T) {
	grid := types.NewSquareGrid(5)
	cm := NewCollisionManager(grid, types.Walls)

	s := entity.NewSnake(types.Point{X: 4, Y: 2}, types.Right)
	next := cm.NextPosition(s)
	assert.Equal(t, types.Point{X: 5, Y: 2}, next)
	assert.True(t, cm.IsWallCollision(next))

	for _, p := range []types.Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 5}} {
		assert.True(t, cm.IsWallCollision(p), "%v", p)
	}
	assert.False(t, cm.IsWallCollision(types.Point{X: 4, Y: 4}))
}

func TestIsDangerIgnoresMovingTail(t *testing.T) {
	cm := NewCollisionManager(types.NewSquareGrid(10), types.Walls)
	s := &entity.Snake{
		Body:      []types.Point{{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 2}},
		Direction: types.Up,
	}

	assert.False(t, cm.IsDanger(types.Point{X: 3, Y: 2}, s))
	assert.True(t, cm.IsDanger(types.Point{X: 2, Y: 3}, s))
	assert.True(t, cm.IsDanger(types.Point{X: -1, Y: 3}, s))
}

func TestCheckAfterMove(t *testing.T) {
	cm := NewCollisionManager(types.NewSquareGrid(10), types.Walls)
	s := &entity.Snake{
		Body:      []types.Point{{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 2}},
		Direction: types.Up,
	}

	assert.Equal(t, types.NoCollision, cm.Check(types.Point{X: 5, Y: 5}, s))
	assert.Equal(t, types.SelfCollision, cm.Check(types.Point{X: 3, Y: 2}, s))
	assert.Equal(t, types.WallCollision, cm.Check(types.Point{X: 10, Y: 2}, s))

	// the head itself is not a collision
	assert.False(t, cm.IsSelfCollision(s.GetHead(), s))
	assert.Equal(t, types.NoCollision, cm.Check(s.GetHead(), s))
}

func TestFoodNeverOnSnake(t *testing.T) {
	grid := types.NewSquareGrid(4)
	fm := NewFoodManager(grid, 42)
	s := &entity.Snake{Direction: types.Right}
	for i := 0; i < grid.Cells()-1; i++ {
		s.Body = append(s.Body, grid.At(i))
	}

	for i := 0; i < 50; i++ {
		food, ok := fm.Spawn(s)
		require.True(t, ok)
		assert.False(t, s.Occupies(food))
		assert.Equal(t, grid.At(grid.Cells()-1), food)
	}
	assert.Equal(t, 1, fm.FreeCells())
}

func TestFoodBoardFull(t *testing.T) {
	grid := types.NewSquareGrid(2)
	fm := NewFoodManager(grid, 1)
	s := &entity.Snake{Body: []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}}

	_, ok := fm.Spawn(s)
	assert.False(t, ok)
}

func TestFoodCoversFreeCells(t *testing.T) {
	grid := types.NewSquareGrid(3)
	fm := NewFoodManager(grid, 7)
	s := entity.NewSnake(types.Point{X: 1, Y: 1}, types.Right)

	seen := map[types.Point]bool{}
	for i := 0; i < 500; i++ {
		food, ok := fm.Spawn(s)
		require.True(t, ok)
		seen[food] = true
	}
	assert.Len(t, seen, 8)
	assert.False(t, seen[types.Point{X: 1, Y: 1}])
}

func TestStateManagerScores(t *testing.T) {
	sm := NewStateManager("")
	assert.Equal(t, 1, sm.AddScore())
	assert.Equal(t, 2, sm.AddScore())

	record := sm.RecordGame(3, types.SelfCollision)
	assert.Equal(t, 2, record.Score)
	assert.Equal(t, types.SelfCollision, record.Cause)
	assert.NotEmpty(t, record.Session)

	sm.ResetScore()
	assert.Equal(t, 0, sm.Score())
	sm.AddScore()

	summary := sm.Summary()
	assert.Equal(t, 1, summary.Score)
	assert.Equal(t, 2, summary.SessionHigh)
	assert.Equal(t, 2, summary.AllTimeHigh)
	assert.Equal(t, 1, summary.GamesPlayed)
	assert.InDelta(t, 2.0, summary.AvgScore, 1e-9)
}

func TestStateManagerPersistence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	sm := NewStateManager(dir)
	require.NoError(t, sm.Load())
	for i := 0; i < 4; i++ {
		sm.AddScore()
	}
	sm.RecordGame(5, types.WallCollision)
	require.NoError(t, sm.Save())

	loaded := NewStateManager(dir)
	require.NoError(t, loaded.Load())
	assert.Equal(t, 4, loaded.GetHighScore())
	assert.Equal(t, []int{4}, loaded.GetScoreHistory())
	assert.Equal(t, 0, loaded.Summary().GamesPlayed)
}

func TestStateManagerCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, StatsFile), []byte("{not json"), 0644))

	err := NewStateManager(dir).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestStateManagerHistoryLimit(t *testing.T) {
	sm := NewStateManager("")
	for i := 0; i < MaxHistory+3; i++ {
		sm.RecordGame(1, types.WallCollision)
		sm.AddScore()
	}

	history := sm.GetScoreHistory()
	require.Len(t, history, MaxHistory)
	assert.Equal(t, 3, history[0], "oldest games are dropped first")
	assert.Equal(t, MaxHistory+2, history[MaxHistory-1])
	assert.Equal(t, MaxHistory+3, sm.Summary().GamesPlayed)
}

func TestStateManagerLoadTrimsHistory(t *testing.T) {
	dir := t.TempDir()
	stats := GameStats{HighScore: 9}
	for i := 0; i < MaxHistory+5; i++ {
		stats.Games = append(stats.Games, GameRecord{Score: i, Cause: types.SelfCollision})
	}
	data, err := json.Marshal(stats)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, StatsFile), data, 0644))

	sm := NewStateManager(dir)
	require.NoError(t, sm.Load())

	history := sm.GetScoreHistory()
	require.Len(t, history, MaxHistory)
	assert.Equal(t, 5, history[0])
	assert.Equal(t, MaxHistory+4, history[MaxHistory-1])

	sm.RecordGame(1, types.WallCollision)
	assert.Len(t, sm.GetScoreHistory(), MaxHistory)
}
