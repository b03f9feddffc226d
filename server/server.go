package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"snakefx/game"
	"snakefx/game/types"
)

// Server exposes the running game over HTTP for spectators and remote input.
type Server struct {
	game   *game.Game
	engine *gin.Engine
}

// New builds the routes. Debug mode is switched to release so gin does not
// print its route banner over a terminal frontend.
func New(g *game.Game) *Server {
	if gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	s := &Server{
		game:   g,
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery())
	s.engine.GET("/state", s.handleState)
	s.engine.GET("/stats", s.handleStats)
	s.engine.POST("/direction/:dir", s.handleDirection)
	return s
}

// Handler returns the routes as a plain http.Handler
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.engine,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("Spectator API listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrapf(err, "listen on %s", addr)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "shutdown spectator API")
		}
		return nil
	}
}

func (s *Server) handleState(c *gin.Context) {
	c.JSON(http.StatusOK, s.game.Snapshot())
}

func (s *Server) handleStats(c *gin.Context) {
	sm := s.game.GetStateManager()
	c.JSON(http.StatusOK, gin.H{
		"summary": sm.Summary(),
		"history": sm.GetScoreHistory(),
	})
}

func (s *Server) handleDirection(c *gin.Context) {
	dir, err := types.ParseDirection(c.Param("dir"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if s.game.Over() {
		c.JSON(http.StatusConflict, gin.H{"error": "game over"})
		return
	}
	if !s.game.QueueDirection(dir) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "input queue full"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"queued": dir})
}
