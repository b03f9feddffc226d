package ai

import (
	"snakefx/game"
	"snakefx/game/entity"
	"snakefx/game/manager"
	"snakefx/game/types"
)

// Sensors is what the pilot sees around the head
type Sensors struct {
	FoodDir  [2]int  // sign of food - head on each axis
	FoodDist int     // Manhattan distance, wrap-aware in wrap mode
	Dangers  [4]bool // indexed like types.Directions
}

// Pilot steers the snake greedily towards the food while avoiding cells
// that would end the game on the next tick.
type Pilot struct {
	queue        func(types.Direction) bool
	collisionMgr *manager.CollisionManager
	grid         types.Grid
	variant      types.Variant
}

// NewPilot sends its decisions through queue, usually Game.QueueDirection.
func NewPilot(grid types.Grid, variant types.Variant, queue func(types.Direction) bool) *Pilot {
	return &Pilot{
		queue:        queue,
		collisionMgr: manager.NewCollisionManager(grid, variant),
		grid:         grid,
		variant:      variant,
	}
}

// OnTick implements game.Listener
func (p *Pilot) OnTick(_ game.TickResult, snap game.Snapshot) {
	if snap.Over {
		return
	}
	snake := &entity.Snake{Body: snap.Snake, Direction: snap.Direction}
	if dir := p.Decide(snake, snap.Food); dir != snap.Direction {
		p.queue(dir)
	}
}

// Sense reads the surroundings of the head
func (p *Pilot) Sense(snake *entity.Snake, food types.Point) Sensors {
	head := snake.GetHead()
	var s Sensors
	s.FoodDir = [2]int{sign(food.X - head.X), sign(food.Y - head.Y)}
	s.FoodDist = p.distance(head, food)
	for i, dir := range types.Directions {
		s.Dangers[i] = p.collisionMgr.IsDanger(head.Add(dir.ToPoint()), snake)
	}
	return s
}

// Decide picks the next heading. Reversing is never chosen.
func (p *Pilot) Decide(snake *entity.Snake, food types.Point) types.Direction {
	sensors := p.Sense(snake, food)
	head := snake.GetHead()

	best := types.None
	bestDist := 0
	fallback := types.None
	for i, dir := range types.Directions {
		if dir == snake.Direction.Opposite() || sensors.Dangers[i] {
			continue
		}
		if fallback == types.None || dir == snake.Direction {
			fallback = dir
		}
		d := p.distance(head.Add(dir.ToPoint()), food)
		if best == types.None || d < bestDist || (d == bestDist && dir == snake.Direction) {
			best, bestDist = dir, d
		}
	}

	if best != types.None && bestDist < sensors.FoodDist {
		return best
	}
	if fallback != types.None {
		return fallback
	}
	// Boxed in: keep going and take the hit.
	return snake.Direction
}

func (p *Pilot) distance(a, b types.Point) int {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	if p.variant == types.Wrap {
		if dx > p.grid.Width/2 {
			dx = p.grid.Width - dx
		}
		if dy > p.grid.Height/2 {
			dy = p.grid.Height - dy
		}
	}
	return dx + dy
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
