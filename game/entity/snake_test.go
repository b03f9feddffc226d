package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"snakefx/game/types"
)

func TestSetDirectionRejectsOnlyReverse(t *testing.T) {
	for _, current := range types.Directions {
		for _, next := range types.Directions {
			s := NewSnake(types.Point{X: 5, Y: 5}, current)
			accepted := s.SetDirection(next)
			if next == current.Opposite() {
				assert.False(t, accepted, "%s -> %s", current, next)
				assert.Equal(t, current, s.Direction)
			} else {
				assert.True(t, accepted, "%s -> %s", current, next)
				assert.Equal(t, next, s.Direction)
			}
		}
	}

	s := NewSnake(types.Point{}, types.Right)
	assert.False(t, s.SetDirection(types.None))
	assert.Equal(t, types.Right, s.Direction)
}

func TestMoveShiftsTailToHead(t *testing.T) {
	s := &Snake{
		Body: []types.Point{
			{X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0},
		},
		Direction: types.Right,
	}

	vacated := s.Move(s.NextHead())

	assert.Equal(t, types.Point{X: 1, Y: 0}, vacated)
	assert.Equal(t, []types.Point{{X: 4, Y: 0}, {X: 3, Y: 0}, {X: 2, Y: 0}}, s.Body)
}

func TestGrowAndHitsBody(t *testing.T) {
	s := NewSnake(types.Point{X: 1, Y: 1}, types.Down)
	vacated := s.Move(s.NextHead())
	s.Grow(vacated)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, types.Point{X: 1, Y: 2}, s.GetHead())
	assert.Equal(t, types.Point{X: 1, Y: 1}, s.GetTail())
	assert.True(t, s.HitsBody(types.Point{X: 1, Y: 1}))
	assert.False(t, s.HitsBody(types.Point{X: 1, Y: 2}))
	assert.True(t, s.Occupies(types.Point{X: 1, Y: 2}))
}

func TestSegmentsIsACopy(t *testing.T) {
	s := NewSnake(types.Point{X: 1, Y: 1}, types.Down)
	body := s.Segments()
	body[0] = types.Point{X: 9, Y: 9}
	assert.Equal(t, types.Point{X: 1, Y: 1}, s.GetHead())
}
