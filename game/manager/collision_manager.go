package manager

import (
	"snakefx/game/entity"
	"snakefx/game/types"
)

type CollisionManager struct {
	grid    types.Grid
	variant types.Variant
}

func NewCollisionManager(grid types.Grid, variant types.Variant) *CollisionManager {
	return &CollisionManager{
		grid:    grid,
		variant: variant,
	}
}

// NextPosition returns where the head lands after one step. In wrap mode the
// result is always on the grid, in walls mode it may lie outside.
func (cm *CollisionManager) NextPosition(snake *entity.Snake) types.Point {
	next := snake.NextHead()
	if cm.variant == types.Wrap {
		return cm.grid.Wrap(next)
	}
	return next
}

// IsWallCollision checks if a position is outside the grid
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsSelfCollision reports whether the head at pos overlaps another segment.
// Call it after the snake moved.
func (cm *CollisionManager) IsSelfCollision(pos types.Point, snake *entity.Snake) bool {
	return snake.HitsBody(pos)
}

// Check classifies the head at pos against the moved snake
func (cm *CollisionManager) Check(pos types.Point, snake *entity.Snake) types.CollisionType {
	if cm.IsWallCollision(pos) {
		return types.WallCollision
	}
	if cm.IsSelfCollision(pos, snake) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// IsDanger reports whether moving the head onto pos would end the game,
// given the body as it is now. The tail cell counts as free since it moves away.
func (cm *CollisionManager) IsDanger(pos types.Point, snake *entity.Snake) bool {
	if cm.variant == types.Wrap {
		pos = cm.grid.Wrap(pos)
	} else if cm.IsWallCollision(pos) {
		return true
	}
	body := snake.Body
	for i := 0; i < len(body)-1; i++ {
		if body[i] == pos {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
