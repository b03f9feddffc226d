package term

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"snakefx/game"
	"snakefx/game/types"
)

const cellWidth = 2 // Terminal columns per grid cell, roughly square

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleSnake  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleText   = tcell.StyleDefault
	styleModal  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Screen renders the game in a terminal and turns key presses into directions.
type Screen struct {
	mu     sync.Mutex // serialises Draw between the loop and resize handling
	screen tcell.Screen
	events chan tcell.Event
}

// NewScreen wraps an initialised tcell screen
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{
		screen: s,
		events: make(chan tcell.Event, 16),
	}
}

// Open creates and initialises the terminal screen
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create terminal screen")
	}
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "init terminal screen")
	}
	s.HideCursor()
	return NewScreen(s), nil
}

func (s *Screen) Close() {
	s.screen.Fini()
}

// KeyDirection maps arrows and WASD to a direction
func KeyDirection(ev *tcell.EventKey) types.Direction {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.Up
	case tcell.KeyDown:
		return types.Down
	case tcell.KeyLeft:
		return types.Left
	case tcell.KeyRight:
		return types.Right
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return types.Up
		case 's', 'S':
			return types.Down
		case 'a', 'A':
			return types.Left
		case 'd', 'D':
			return types.Right
		}
	}
	return types.None
}

// isQuit reports whether ev asks to leave the game
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func isAck(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ')
}

func (s *Screen) pollEvents(ctx context.Context) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Run plays until the user quits or, in walls mode, acknowledges game over.
func (s *Screen) Run(ctx context.Context, g *game.Game, loop *game.Loop) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go s.pollEvents(ctx)

	loop.AddListener(game.ListenerFunc(func(_ game.TickResult, snap game.Snapshot) {
		s.Draw(snap)
	}))
	s.Draw(g.Snapshot())

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	for {
		select {
		case err := <-done:
			if errors.Is(err, game.ErrGameOver) {
				return s.waitAck(ctx, g.Snapshot())
			}
			return err
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					cancel()
					<-done
					return nil
				}
				if dir := KeyDirection(ev); dir != types.None {
					g.QueueDirection(dir)
				}
			case *tcell.EventResize:
				s.screen.Sync()
				s.Draw(g.Snapshot())
			}
		}
	}
}

func (s *Screen) waitAck(ctx context.Context, snap game.Snapshot) error {
	s.Draw(snap)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-s.events:
			if key, ok := ev.(*tcell.EventKey); ok && (isAck(key) || isQuit(key)) {
				return nil
			}
		}
	}
}

// Draw paints the label, the bordered board, the snake and the food.
func (s *Screen) Draw(snap game.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Clear()

	w, h := s.screen.Size()
	needW, needH := snap.Grid.Width*cellWidth+2, snap.Grid.Height+3
	if w < needW || h < needH {
		s.text(0, 0, fmt.Sprintf("Terminal too small: need %dx%d", needW, needH), styleText)
		s.screen.Show()
		return
	}

	s.text(0, 0, fmt.Sprintf("Score: %d", snap.Score), styleText)
	if snap.HighScore > 0 {
		best := fmt.Sprintf("Best: %d", snap.HighScore)
		s.text(needW-len(best), 0, best, styleText)
	}

	s.box(0, 1, needW, snap.Grid.Height+2, styleBorder)

	s.cell(snap.Food, '●', styleFood)
	for _, p := range snap.Snake {
		s.cell(p, '█', styleSnake)
	}

	if snap.Over {
		s.modal(needW, snap)
	}
	s.screen.Show()
}

func (s *Screen) cell(p types.Point, r rune, style tcell.Style) {
	x := 1 + p.X*cellWidth
	y := 2 + p.Y
	for i := 0; i < cellWidth; i++ {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (s *Screen) modal(boardW int, snap game.Snapshot) {
	lines := []string{
		"Game Over",
		fmt.Sprintf("Your score: %d", snap.Score),
		"[Enter] OK",
	}
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	width += 4
	height := len(lines) + 2
	x := (boardW - width) / 2
	y := 2 + (snap.Grid.Height-height)/2

	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			s.screen.SetContent(x+dx, y+dy, ' ', nil, styleText)
		}
	}
	s.box(x, y, width, height, styleModal)
	for i, line := range lines {
		s.text(x+(width-len(line))/2, y+1+i, line, styleModal)
	}
}

func (s *Screen) text(x, y int, str string, style tcell.Style) {
	for i, r := range []rune(str) {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (s *Screen) box(x, y, w, h int, style tcell.Style) {
	for i := x + 1; i < x+w-1; i++ {
		s.screen.SetContent(i, y, tcell.RuneHLine, nil, style)
		s.screen.SetContent(i, y+h-1, tcell.RuneHLine, nil, style)
	}
	for j := y + 1; j < y+h-1; j++ {
		s.screen.SetContent(x, j, tcell.RuneVLine, nil, style)
		s.screen.SetContent(x+w-1, j, tcell.RuneVLine, nil, style)
	}
	s.screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	s.screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	s.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	s.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)
}
