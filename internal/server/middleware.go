package server

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

// requestLogger writes one structured record per request.
func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.LogAttrs(c.Request.Context(), level, "request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

// compressWriter sends the body through an encoder while headers and
// status still go to the wrapped gin writer.
type compressWriter struct {
	gin.ResponseWriter
	enc io.Writer
}

func (w *compressWriter) Write(b []byte) (int, error) {
	return w.enc.Write(b)
}

func (w *compressWriter) WriteString(s string) (int, error) {
	return w.enc.Write([]byte(s))
}

// compress encodes responses as br or gzip per Accept-Encoding, or passes
// them through unchanged.
func compress() gin.HandlerFunc {
	return func(c *gin.Context) {
		enc := brotli.HTTPCompressor(c.Writer, c.Request)
		defer enc.Close()
		c.Writer = &compressWriter{ResponseWriter: c.Writer, enc: enc}
		c.Next()
	}
}
