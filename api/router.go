// Package api exposes a running timeline tree over HTTP.
package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/phanxgames/tempo"
)

// Controller runs fn against the root timeline, serialized with whatever
// else owns the tree. stream.Driver implements it.
type Controller interface {
	Do(ctx context.Context, fn func(*tempo.Timeline)) error
}

// Server is the HTTP control surface for one timeline tree.
type Server struct {
	ctrl      Controller
	startTime time.Time
}

// NewServer creates a server controlling the tree behind ctrl.
func NewServer(ctrl Controller) *Server {
	return &Server{
		ctrl:      ctrl,
		startTime: time.Now(),
	}
}

// SetupRoutes registers the API routes on r.
func (s *Server) SetupRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")
	{
		timeline := v1.Group("/timeline")
		{
			timeline.GET("/status", s.handleStatus)
			timeline.POST("/play", s.handlePlay)
			timeline.POST("/pause", s.handlePause)
			timeline.POST("/stop", s.handleStop)
			timeline.POST("/seek", s.handleSeek)
			timeline.PUT("/timescale", s.handleSetTimeScale)
		}

		v1.GET("/eases", s.handleGetEases)
		v1.GET("/health", s.handleHealthCheck)
	}
}
