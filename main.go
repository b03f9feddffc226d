package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pkg/errors"

	"snakefx/ai"
	"snakefx/audio"
	"snakefx/config"
	"snakefx/game"
	"snakefx/game/manager"
	"snakefx/server"
	"snakefx/term"
	"snakefx/ui"
)

func main() {
	os.Exit(realMain(os.Args[0], os.Args[1:]))
}

// realMain returns the process exit code so deferred cleanup runs on every path.
func realMain(name string, args []string) int {
	cfg, err := config.Parse(name, args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.Printf("snake: %v", err)
		return 2
	}

	if cfg.UI == config.UITerminal {
		// The terminal owns stdout/stderr while the game runs.
		closeLog, err := logToFile(cfg.DataDir)
		if err != nil {
			log.Printf("snake: %v", err)
			return 1
		}
		defer closeLog()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Printf("snake: %v", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg config.Config) error {
	stateMgr := manager.NewStateManager(cfg.DataDir)
	if err := stateMgr.Load(); err != nil {
		log.Printf("Warning: could not load stats: %v", err)
	}
	defer func() {
		if err := stateMgr.Save(); err != nil {
			log.Printf("Warning: could not save stats: %v", err)
		}
	}()

	g := game.NewGame(cfg.Grid(), cfg.Variant, cfg.Seed, stateMgr)
	loop := game.NewLoop(g, cfg.Interval)

	loop.AddListener(game.ListenerFunc(func(res game.TickResult, _ game.Snapshot) {
		if !res.GameOver() {
			return
		}
		log.Printf("Game over (%s) after %d ticks, score %d", res.Collision, res.Tick, res.Score)
		if err := stateMgr.Save(); err != nil {
			log.Printf("Warning: could not save stats: %v", err)
		}
	}))

	if cfg.Autopilot {
		loop.AddListener(ai.NewPilot(g.Grid, g.Variant, g.QueueDirection))
	}

	if cfg.Sound && cfg.UI != config.UIHeadless {
		sounds := audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sounds.Cleanup()
			loop.AddListener(sounds)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.HTTPAddr != "" {
		srv := server.New(g)
		go func() {
			if err := srv.ListenAndServe(ctx, cfg.HTTPAddr); err != nil {
				log.Printf("Spectator API stopped: %v", err)
			}
		}()
	}

	log.Printf("Starting %s game on %dx%d grid, tick %v", cfg.Variant, cfg.GridSize, cfg.GridSize, cfg.Interval)

	switch cfg.UI {
	case config.UITerminal:
		screen, err := term.Open()
		if err != nil {
			return err
		}
		defer screen.Close()
		return screen.Run(ctx, g, loop)

	case config.UIHeadless:
		err := loop.Run(ctx)
		if errors.Is(err, game.ErrGameOver) {
			log.Printf("Final score: %d", g.Score())
			return nil
		}
		return err

	default:
		ui.NewRenderer("SnakeFX", cfg.Grid(), int32(cfg.CellSize)).Run(ctx, g, loop)
		return nil
	}
}

func logToFile(dataDir string) (func(), error) {
	if dataDir == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, errors.Wrap(err, "create data directory")
	}
	f, err := os.OpenFile(filepath.Join(dataDir, "snake.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
