package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/pathfinder"
)

// PathRequest is the body of POST /api/v1/path.
// Start and End are pointers so that a missing field is told apart from cell 0.
type PathRequest struct {
	Rows      int    `json:"rows" binding:"required,min=1"`
	Cols      int    `json:"cols" binding:"required,min=1"`
	Occupancy []bool `json:"occupancy" binding:"required"`
	Start     *int   `json:"start" binding:"required"`
	End       *int   `json:"end" binding:"required"`
}

// PathResponse is the successful reply of POST /api/v1/path.
type PathResponse struct {
	Path          []int   `json:"path"`
	Found         bool    `json:"found"`
	Distance      int     `json:"distance"`
	Expanded      int     `json:"expanded"`
	ExecutionTime float64 `json:"executionTimeMs"`
}

func (s *Server) handlePath(c *gin.Context) {
	var req PathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.metrics.requests.WithLabelValues(resultInvalid).Inc()
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Rows > s.cfg.MaxCells || req.Cols > s.cfg.MaxCells || req.Rows*req.Cols > s.cfg.MaxCells {
		s.metrics.requests.WithLabelValues(resultTooLarge).Inc()
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "grid exceeds the cell limit"})
		return
	}

	ctx, span := s.tracer.Start(c.Request.Context(), "pathfinder.Compute",
		trace.WithAttributes(
			attribute.Int("grid.rows", req.Rows),
			attribute.Int("grid.cols", req.Cols),
			attribute.Int("path.start", *req.Start),
			attribute.Int("path.end", *req.End),
		))
	defer span.End()

	start := time.Now()
	res, err := pathfinder.Compute(req.Rows, req.Cols, req.Occupancy, *req.Start, *req.End,
		pathfinder.WithLogger(s.log),
		pathfinder.WithTieBreak(s.cfg.TieBreak),
		pathfinder.WithStrategy(s.cfg.Strategy),
	)
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if isInputError(err) {
			s.metrics.requests.WithLabelValues(resultInvalid).Inc()
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.metrics.requests.WithLabelValues(resultError).Inc()
		s.log.ErrorContext(ctx, "compute path failed", slog.Any("err", err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	span.SetAttributes(
		attribute.Bool("path.found", res.Found()),
		attribute.Int("path.distance", res.Distance),
		attribute.Int("path.expanded", res.Expanded),
	)
	result := resultUnreachable
	if res.Found() {
		result = resultFound
	}
	s.metrics.requests.WithLabelValues(result).Inc()
	s.metrics.duration.Observe(elapsed.Seconds())
	s.metrics.expanded.Observe(float64(res.Expanded))

	c.JSON(http.StatusOK, PathResponse{
		Path:          res.Path,
		Found:         res.Found(),
		Distance:      res.Distance,
		Expanded:      res.Expanded,
		ExecutionTime: float64(elapsed.Microseconds()) / 1000,
	})
}

// isInputError reports whether err is the caller's fault.
func isInputError(err error) bool {
	return errors.Is(err, gridgraph.ErrEmptyGrid) ||
		errors.Is(err, gridgraph.ErrShapeMismatch) ||
		errors.Is(err, gridgraph.ErrIndexOutOfRange)
}
