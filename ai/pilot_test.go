package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"snakefx/game"
	"snakefx/game/entity"
	"snakefx/game/types"
)

func noQueue(types.Direction) bool { return true }

func TestDecideMovesTowardsFood(t *testing.T) {
	p := NewPilot(types.NewSquareGrid(10), types.Walls, noQueue)
	s := entity.NewSnake(types.Point{X: 5, Y: 5}, types.Right)

	assert.Equal(t, types.Right, p.Decide(s, types.Point{X: 8, Y: 5}))
	assert.Equal(t, types.Up, p.Decide(s, types.Point{X: 5, Y: 1}))
	assert.Equal(t, types.Down, p.Decide(s, types.Point{X: 5, Y: 9}))
}

func TestDecideNeverReverses(t *testing.T) {
	p := NewPilot(types.NewSquareGrid(10), types.Walls, noQueue)
	s := entity.NewSnake(types.Point{X: 5, Y: 5}, types.Right)

	dir := p.Decide(s, types.Point{X: 1, Y: 5})
	assert.NotEqual(t, types.Left, dir)
}

func TestDecideAvoidsWall(t *testing.T) {
	p := NewPilot(types.NewSquareGrid(10), types.Walls, noQueue)
	s := entity.NewSnake(types.Point{X: 9, Y: 0}, types.Right)

	assert.Equal(t, types.Down, p.Decide(s, types.Point{X: 0, Y: 0}))
}

func TestDecideUsesWrapDistance(t *testing.T) {
	p := NewPilot(types.NewSquareGrid(10), types.Wrap, noQueue)
	s := entity.NewSnake(types.Point{X: 1, Y: 5}, types.Up)

	assert.Equal(t, types.Left, p.Decide(s, types.Point{X: 9, Y: 5}))
}

func TestSenseDangers(t *testing.T) {
	p := NewPilot(types.NewSquareGrid(10), types.Walls, noQueue)
	s := &entity.Snake{
		Body:      []types.Point{{X: 0, Y: 5}, {X: 1, Y: 5}, {X: 2, Y: 5}},
		Direction: types.Left,
	}

	sensors := p.Sense(s, types.Point{X: 0, Y: 0})

	assert.Equal(t, [4]bool{false, true, false, true}, sensors.Dangers)
	assert.Equal(t, [2]int{0, -1}, sensors.FoodDir)
	assert.Equal(t, 5, sensors.FoodDist)
}

func TestPilotKeepsSnakeAlive(t *testing.T) {
	g := game.NewGame(types.NewSquareGrid(12), types.Walls, 3, nil)
	p := NewPilot(g.Grid, g.Variant, g.QueueDirection)

	p.OnTick(game.TickResult{}, g.Snapshot())
	for i := 0; i < 40; i++ {
		res := g.Step()
		if !assert.False(t, res.GameOver(), "tick %d", i) {
			return
		}
		p.OnTick(res, g.Snapshot())
	}
	assert.Greater(t, g.Score(), 0)
}
