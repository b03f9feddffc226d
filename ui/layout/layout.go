// Package layout computes where the window widgets go. It has no raylib
// dependency so the geometry can be tested headless.
package layout

import (
	"snakefx/game/types"
)

const (
	LabelHeight    = 30  // Score label strip above the board
	ControlsHeight = 100 // Button pad below the board
	ButtonSize     = 36
	ButtonGap      = 6
	ModalWidth     = 300
	ModalHeight    = 150
)

// Rect is an axis-aligned rectangle in window pixels
type Rect struct {
	X, Y, W, H int32
}

// Contains reports whether the pixel (x, y) is inside r
func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Button is one of the on-screen direction buttons
type Button struct {
	Label string
	Dir   types.Direction
	Rect  Rect
}

// Layout places the board, the score label, the WASD pad and the game-over dialog.
type Layout struct {
	CellSize int32
	Grid     types.Grid
	Width    int32
	Height   int32
	Board    Rect
	Label    Rect
	Buttons  [4]Button
	Modal    Rect
	ModalOK  Rect
}

// New lays out a window for grid with square cells of cellSize pixels. The
// window is never narrower than the button pad or the dialog, and the board
// is centered in it.
func New(grid types.Grid, cellSize int32) Layout {
	boardW := int32(grid.Width) * cellSize
	boardH := int32(grid.Height) * cellSize
	padW := int32(3*ButtonSize + 2*ButtonGap)

	width := max(boardW, padW, ModalWidth)
	height := LabelHeight + boardH + ControlsHeight

	l := Layout{
		CellSize: cellSize,
		Grid:     grid,
		Width:    width,
		Height:   height,
		Label:    Rect{X: 0, Y: 0, W: width, H: LabelHeight},
		Board:    Rect{X: (width - boardW) / 2, Y: LabelHeight, W: boardW, H: boardH},
	}

	// U on the top row, L D R below it, centered under the board.
	padTop := LabelHeight + boardH + (ControlsHeight-2*ButtonSize-ButtonGap)/2
	padLeft := (width - padW) / 2
	col := func(i int32) int32 { return padLeft + i*(ButtonSize+ButtonGap) }
	row := func(i int32) int32 { return padTop + i*(ButtonSize+ButtonGap) }

	l.Buttons = [4]Button{
		{Label: "U", Dir: types.Up, Rect: Rect{X: col(1), Y: row(0), W: ButtonSize, H: ButtonSize}},
		{Label: "L", Dir: types.Left, Rect: Rect{X: col(0), Y: row(1), W: ButtonSize, H: ButtonSize}},
		{Label: "D", Dir: types.Down, Rect: Rect{X: col(1), Y: row(1), W: ButtonSize, H: ButtonSize}},
		{Label: "R", Dir: types.Right, Rect: Rect{X: col(2), Y: row(1), W: ButtonSize, H: ButtonSize}},
	}

	// Centered over the board, pushed back inside the window on small boards.
	mw, mh := int32(ModalWidth), min(int32(ModalHeight), height)
	my := LabelHeight + (boardH-mh)/2
	my = min(max(my, 0), height-mh)
	l.Modal = Rect{X: (width - mw) / 2, Y: my, W: mw, H: mh}
	l.ModalOK = Rect{X: l.Modal.X + (mw-80)/2, Y: l.Modal.Y + mh - 50, W: 80, H: 34}
	return l
}

// WindowSize returns the window dimensions the layout needs
func (l Layout) WindowSize() (int32, int32) {
	return l.Width, l.Height
}

// Cell returns the pixel rectangle of grid cell p
func (l Layout) Cell(p types.Point) Rect {
	return Rect{
		X: l.Board.X + int32(p.X)*l.CellSize,
		Y: l.Board.Y + int32(p.Y)*l.CellSize,
		W: l.CellSize,
		H: l.CellSize,
	}
}

// ButtonAt returns the direction of the button under (x, y), or None.
func (l Layout) ButtonAt(x, y int32) types.Direction {
	for _, b := range l.Buttons {
		if b.Rect.Contains(x, y) {
			return b.Dir
		}
	}
	return types.None
}
