package game

import (
	"sync"

	"snakefx/game/entity"
	"snakefx/game/manager"
	"snakefx/game/types"
)

// MaxQueuedInputs bounds the direction requests kept between two ticks
const MaxQueuedInputs = 8

// TickResult describes what one Step did
type TickResult struct {
	Tick      int                 `json:"tick"`
	Ate       bool                `json:"ate"`
	Collision types.CollisionType `json:"collision"`
	Reset     bool                `json:"reset"`  // wrap mode restarted in place
	Halted    bool                `json:"halted"` // walls mode stopped for good
	Score     int                 `json:"score"`  // score after the tick, or the final score on game over
	Record    *manager.GameRecord `json:"record,omitempty"`
}

// GameOver reports whether the tick ended a game
func (r TickResult) GameOver() bool {
	return r.Collision != types.NoCollision
}

// Snapshot is a copy of the game state safe to hand to other goroutines
type Snapshot struct {
	Grid      types.Grid          `json:"grid"`
	Variant   types.Variant       `json:"variant"`
	Snake     []types.Point       `json:"snake"`
	Direction types.Direction     `json:"direction"`
	Food      types.Point         `json:"food"`
	Score     int                 `json:"score"`
	HighScore int                 `json:"highScore"`
	Tick      int                 `json:"tick"`
	Over      bool                `json:"over"`
	Cause     types.CollisionType `json:"cause"`
}

type Game struct {
	Grid    types.Grid
	Variant types.Variant

	mu           sync.RWMutex
	snake        *entity.Snake
	food         types.Point
	tick         int
	over         bool
	cause        types.CollisionType
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	inputMu sync.Mutex
	inputs  []types.Direction
}

func NewGame(grid types.Grid, variant types.Variant, seed uint64, stateMgr *manager.StateManager) *Game {
	if stateMgr == nil {
		stateMgr = manager.NewStateManager("")
	}
	g := &Game{
		Grid:         grid,
		Variant:      variant,
		collisionMgr: manager.NewCollisionManager(grid, variant),
		foodMgr:      manager.NewFoodManager(grid, seed),
		stateMgr:     stateMgr,
		inputs:       make([]types.Direction, 0, MaxQueuedInputs),
	}
	g.reset()
	return g
}

// reset puts a one-segment snake on the start cell heading right and spawns food.
func (g *Game) reset() {
	g.snake = entity.NewSnake(g.Grid.Center(), types.Right)
	g.food, _ = g.foodMgr.Spawn(g.snake)
	g.stateMgr.ResetScore()
	g.over = false
	g.cause = types.NoCollision
}

// Reset restarts the game in place and drops pending input.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inputMu.Lock()
	g.inputs = g.inputs[:0]
	g.inputMu.Unlock()
	g.reset()
}

// QueueDirection stores a direction request for the next tick. It returns
// false when the queue is full.
func (g *Game) QueueDirection(dir types.Direction) bool {
	if dir == types.None {
		return false
	}
	g.inputMu.Lock()
	defer g.inputMu.Unlock()
	if len(g.inputs) >= MaxQueuedInputs {
		return false
	}
	g.inputs = append(g.inputs, dir)
	return true
}

func (g *Game) drainInputs() []types.Direction {
	g.inputMu.Lock()
	defer g.inputMu.Unlock()
	pending := append([]types.Direction(nil), g.inputs...)
	g.inputs = g.inputs[:0]
	return pending
}

// Step runs one tick: apply queued input, move, eat, collide.
func (g *Game) Step() TickResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.over {
		return TickResult{Tick: g.tick, Collision: g.cause, Halted: true, Score: g.stateMgr.Score()}
	}

	g.tick++
	res := TickResult{Tick: g.tick}

	for _, dir := range g.drainInputs() {
		g.snake.SetDirection(dir)
	}

	newHead := g.collisionMgr.NextPosition(g.snake)
	if g.collisionMgr.IsWallCollision(newHead) {
		return g.gameOver(res, types.WallCollision)
	}

	vacated := g.snake.Move(newHead)

	if g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.stateMgr.AddScore()
		g.snake.Grow(vacated)
		res.Ate = true

		food, ok := g.foodMgr.Spawn(g.snake)
		if !ok {
			return g.gameOver(res, types.BoardFull)
		}
		g.food = food
	}

	if cause := g.collisionMgr.Check(newHead, g.snake); cause != types.NoCollision {
		return g.gameOver(res, cause)
	}

	res.Score = g.stateMgr.Score()
	return res
}

func (g *Game) gameOver(res TickResult, cause types.CollisionType) TickResult {
	res.Collision = cause
	res.Score = g.stateMgr.Score()
	record := g.stateMgr.RecordGame(g.snake.Len(), cause)
	res.Record = &record

	if g.Variant == types.Wrap {
		g.reset()
		res.Reset = true
		return res
	}

	g.over = true
	g.cause = cause
	res.Halted = true
	return res
}

// Over reports whether a walls game has ended
func (g *Game) Over() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.over
}

func (g *Game) Score() int {
	return g.stateMgr.Score()
}

func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateMgr
}

func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return Snapshot{
		Grid:      g.Grid,
		Variant:   g.Variant,
		Snake:     g.snake.Segments(),
		Direction: g.snake.Direction,
		Food:      g.food,
		Score:     g.stateMgr.Score(),
		HighScore: g.stateMgr.GetHighScore(),
		Tick:      g.tick,
		Over:      g.over,
		Cause:     g.cause,
	}
}
