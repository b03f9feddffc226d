package ui

import (
	"context"
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snakefx/game"
	"snakefx/game/types"
	"snakefx/ui/layout"
)

var keyDirections = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyW:     types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyS:     types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyA:     types.Left,
	rl.KeyRight: types.Right,
	rl.KeyD:     types.Right,
}

type Renderer struct {
	title  string
	layout layout.Layout
}

func NewRenderer(title string, grid types.Grid, cellSize int32) *Renderer {
	return &Renderer{
		title:  title,
		layout: layout.New(grid, cellSize),
	}
}

// Run opens the window and drives loop from the frame clock until the window
// closes, ctx is cancelled or, in walls mode, the game-over dialog is acknowledged.
func (r *Renderer) Run(ctx context.Context, g *game.Game, loop *game.Loop) {
	w, h := r.layout.WindowSize()
	rl.InitWindow(w, h, r.title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	for ctx.Err() == nil && !rl.WindowShouldClose() {
		snap := g.Snapshot()
		if snap.Over {
			if r.acknowledged() {
				return
			}
		} else {
			for _, dir := range r.pollDirections() {
				g.QueueDirection(dir)
			}
			if _, stepped := loop.Advance(time.Now()); stepped {
				snap = g.Snapshot()
			}
		}
		r.Draw(snap)
	}
}

// pollDirections collects this frame's key presses and button clicks in order.
func (r *Renderer) pollDirections() []types.Direction {
	var dirs []types.Direction
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if dir, ok := keyDirections[key]; ok {
			dirs = append(dirs, dir)
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		if dir := r.layout.ButtonAt(int32(pos.X), int32(pos.Y)); dir != types.None {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func (r *Renderer) acknowledged() bool {
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
		return true
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		return r.layout.ModalOK.Contains(int32(pos.X), int32(pos.Y))
	}
	return false
}

func (r *Renderer) Draw(snap game.Snapshot) {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.RayWhite)

	l := r.layout
	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), l.Label.X+8, l.Label.Y+6, 20, rl.Black)
	if snap.HighScore > 0 {
		best := fmt.Sprintf("Best: %d", snap.HighScore)
		rl.DrawText(best, l.Label.X+l.Label.W-rl.MeasureText(best, 20)-8, l.Label.Y+6, 20, rl.Gray)
	}

	fillRect(l.Cell(snap.Food), rl.Red)
	for _, p := range snap.Snake {
		fillRect(l.Cell(p), rl.Black)
	}

	rl.DrawRectangleLinesEx(toRaylib(l.Board), 2, rl.Green)

	for _, b := range l.Buttons {
		r.drawButton(b.Rect, b.Label)
	}

	if snap.Over {
		r.drawGameOver(snap)
	}
}

func (r *Renderer) drawButton(rect layout.Rect, label string) {
	fill := rl.LightGray
	pos := rl.GetMousePosition()
	if rect.Contains(int32(pos.X), int32(pos.Y)) {
		fill = rl.Gray
	}
	fillRect(rect, fill)
	rl.DrawRectangleLinesEx(toRaylib(rect), 1, rl.DarkGray)
	tw := rl.MeasureText(label, 20)
	rl.DrawText(label, rect.X+(rect.W-tw)/2, rect.Y+(rect.H-20)/2, 20, rl.Black)
}

func (r *Renderer) drawGameOver(snap game.Snapshot) {
	l := r.layout
	fillRect(l.Board, rl.Fade(rl.Black, 0.4))
	fillRect(l.Modal, rl.RayWhite)
	rl.DrawRectangleLinesEx(toRaylib(l.Modal), 2, rl.DarkGray)

	title := "Game Over"
	rl.DrawText(title, l.Modal.X+(l.Modal.W-rl.MeasureText(title, 24))/2, l.Modal.Y+16, 24, rl.Maroon)
	msg := fmt.Sprintf("Your score: %d", snap.Score)
	rl.DrawText(msg, l.Modal.X+(l.Modal.W-rl.MeasureText(msg, 20))/2, l.Modal.Y+52, 20, rl.Black)

	r.drawButton(l.ModalOK, "OK")
}

func fillRect(rect layout.Rect, color rl.Color) {
	rl.DrawRectangle(rect.X, rect.Y, rect.W, rect.H, color)
}

func toRaylib(rect layout.Rect) rl.Rectangle {
	return rl.Rectangle{X: float32(rect.X), Y: float32(rect.Y), Width: float32(rect.W), Height: float32(rect.H)}
}
