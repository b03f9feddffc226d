package game

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrGameOver is returned by Loop.Run once a walls game halted
var ErrGameOver = errors.New("game over")

// Listener receives every tick result together with the state after it
type Listener interface {
	OnTick(res TickResult, snap Snapshot)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(res TickResult, snap Snapshot)

func (f ListenerFunc) OnTick(res TickResult, snap Snapshot) { f(res, snap) }

// Loop drives a Game at a fixed interval.
type Loop struct {
	game       *Game
	interval   time.Duration
	listeners  []Listener
	lastUpdate time.Time
}

func NewLoop(g *Game, interval time.Duration) *Loop {
	return &Loop{
		game:     g,
		interval: interval,
	}
}

func (l *Loop) AddListener(ls Listener) {
	l.listeners = append(l.listeners, ls)
}

func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Run ticks until ctx is done or the game halts.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if res := l.step(); res.Halted {
				return ErrGameOver
			}
		}
	}
}

// Advance steps the game if at least one interval passed since the last step.
// Frontends that own their frame loop call it once per frame.
func (l *Loop) Advance(now time.Time) (TickResult, bool) {
	if l.lastUpdate.IsZero() {
		l.lastUpdate = now
		return TickResult{}, false
	}
	if now.Sub(l.lastUpdate) < l.interval {
		return TickResult{}, false
	}
	l.lastUpdate = now
	return l.step(), true
}

func (l *Loop) step() TickResult {
	res := l.game.Step()
	snap := l.game.Snapshot()
	for _, ls := range l.listeners {
		ls.OnTick(res, snap)
	}
	return res
}
