package api

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/phanxgames/tempo"
)

func (s *Server) status(tl *tempo.Timeline) TimelineStatus {
	st := TimelineStatus{
		Name:          tl.Name,
		State:         tl.State().String(),
		Time:          tl.CurrentTime(),
		Frame:         tl.CurrentFrame(),
		Loop:          tl.CurrentLoop(),
		Duration:      tl.Duration(),
		Framerate:     tl.Framerate(),
		TimeScale:     tl.TimeScale(),
		Looping:       tl.IsLooping(),
		RepeatCount:   tl.RepeatCount(),
		Complete:      tl.IsComplete(),
		Children:      tl.TotalChildCount(),
		Objects:       tl.TotalObjectCount(),
		UptimeSeconds: time.Since(s.startTime).Seconds(),
	}
	if p, ok := tl.TotalProgress(); ok {
		st.Progress = &p
	}
	return st
}

// control runs fn on the tree and responds with the resulting status.
func (s *Server) control(c *gin.Context, fn func(*tempo.Timeline)) {
	var st TimelineStatus
	err := s.ctrl.Do(c.Request.Context(), func(tl *tempo.Timeline) {
		if fn != nil {
			fn(tl)
		}
		st = s.status(tl)
	})
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, ApiResponse{
			Status: "error",
			Error:  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data:   st,
	})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ApiResponse{
		Status: "error",
		Error:  err.Error(),
	})
}

// handleStatus reports the root timeline's state.
func (s *Server) handleStatus(c *gin.Context) {
	s.control(c, nil)
}

func (s *Server) handlePlay(c *gin.Context) {
	s.control(c, (*tempo.Timeline).Play)
}

func (s *Server) handlePause(c *gin.Context) {
	s.control(c, (*tempo.Timeline).Pause)
}

func (s *Server) handleStop(c *gin.Context) {
	s.control(c, (*tempo.Timeline).Stop)
}

// handleSeek seeks to {"time": seconds} or {"frame": n}.
func (s *Server) handleSeek(c *gin.Context) {
	var req SeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	switch {
	case req.Frame != nil:
		frame := *req.Frame
		s.control(c, func(tl *tempo.Timeline) { tl.SeekFrame(frame) })
	case req.Time != nil && !math.IsNaN(*req.Time) && !math.IsInf(*req.Time, 0):
		t := *req.Time
		s.control(c, func(tl *tempo.Timeline) { tl.Seek(t) })
	default:
		badRequest(c, errors.New("time or frame is required"))
	}
}

// handleSetTimeScale sets the root time scale from {"scale": x}.
func (s *Server) handleSetTimeScale(c *gin.Context) {
	var req TimeScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	scale := *req.Scale
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		badRequest(c, errors.New("scale must be finite"))
		return
	}
	s.control(c, func(tl *tempo.Timeline) { tl.SetTimeScale(scale) })
}

// handleGetEases lists the named ease presets.
func (s *Server) handleGetEases(c *gin.Context) {
	names := tempo.EaseNames()
	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data: EasesResponse{
			Eases: names,
			Total: len(names),
		},
	})
}

// handleHealthCheck reports whether the tree is reachable.
func (s *Server) handleHealthCheck(c *gin.Context) {
	err := s.ctrl.Do(c.Request.Context(), func(*tempo.Timeline) {})
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, ApiResponse{
			Status: "error",
			Error:  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data:   gin.H{"status": "healthy"},
	})
}
