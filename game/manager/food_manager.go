package manager

import (
	"snakefx/game/entity"
	"snakefx/game/types"

	"github.com/kamstrup/intmap"
	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid     types.Grid
	rng      *rand.Rand
	occupied *intmap.Map[int, struct{}]
	free     []types.Point
}

// NewFoodManager seeds its generator with seed.
func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid:     grid,
		rng:      rand.New(rand.NewSource(seed)),
		occupied: intmap.New[int, struct{}](grid.Cells()),
		free:     make([]types.Point, 0, grid.Cells()),
	}
}

// Spawn picks a cell uniformly among those the snake does not cover.
// It returns false when the snake fills the whole grid.
func (fm *FoodManager) Spawn(snake *entity.Snake) (types.Point, bool) {
	fm.occupied.Clear()
	for _, part := range snake.Body {
		if fm.grid.Contains(part) {
			fm.occupied.Put(fm.grid.Index(part), struct{}{})
		}
	}

	fm.free = fm.free[:0]
	for i := 0; i < fm.grid.Cells(); i++ {
		if _, taken := fm.occupied.Get(i); !taken {
			fm.free = append(fm.free, fm.grid.At(i))
		}
	}

	if len(fm.free) == 0 {
		return types.Point{}, false
	}
	return fm.free[fm.rng.Intn(len(fm.free))], true
}

// FreeCells returns how many cells were free at the last Spawn
func (fm *FoodManager) FreeCells() int {
	return len(fm.free)
}
