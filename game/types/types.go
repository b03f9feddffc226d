package types

import (
	"fmt"
	"strings"
	"time"
)

// Game constants
const (
	DefaultGridSize     = 25                     // Cells per side
	DefaultCellSize     = 25                     // Pixels per cell in the window
	DefaultTickInterval = 150 * time.Millisecond // Time between two moves
	MinTickInterval     = 100 * time.Millisecond
	MaxTickInterval     = 150 * time.Millisecond
)

// Point is a grid cell
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p moved by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewSquareGrid returns a size x size grid
func NewSquareGrid(size int) Grid {
	return Grid{Width: size, Height: size}
}

// Contains reports whether p lies inside [0, Width) x [0, Height)
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap brings p back on the grid, re-entering from the opposite edge.
func (g Grid) Wrap(p Point) Point {
	return Point{X: floorMod(p.X, g.Width), Y: floorMod(p.Y, g.Height)}
}

// Index returns the row-major index of p
func (g Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// At is the inverse of Index
func (g Grid) At(index int) Point {
	return Point{X: index % g.Width, Y: index / g.Width}
}

// Cells returns the number of cells on the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the start cell
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Direction is a cardinal heading
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// Directions lists the four valid headings
var Directions = [4]Direction{Up, Right, Down, Left}

// ToPoint converts a Direction into a unit move
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDirection accepts the names returned by String, case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "right", "r":
		return Right, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	}
	return None, fmt.Errorf("unknown direction %q", s)
}

// Variant selects the edge and game-over rules
type Variant int

const (
	// Wrap re-enters from the opposite edge and resets in place on collision
	Wrap Variant = iota
	// Walls kills the snake at the edge and halts the game
	Walls
)

func (v Variant) String() string {
	if v == Walls {
		return "walls"
	}
	return "wrap"
}

func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// ParseVariant parses the -mode flag value
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap", "1":
		return Wrap, nil
	case "walls", "wall", "2":
		return Walls, nil
	}
	return Wrap, fmt.Errorf("unknown mode %q (want wrap or walls)", s)
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	BoardFull // no free cell left for food
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case BoardFull:
		return "board full"
	default:
		return "none"
	}
}

func (c CollisionType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *CollisionType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*c = NoCollision
	case "wall":
		*c = WallCollision
	case "self":
		*c = SelfCollision
	case "board full":
		*c = BoardFull
	default:
		return fmt.Errorf("unknown collision %q", text)
	}
	return nil
}
