package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"tidsreg-be/internal/logging"
)

// RequestLogger logs one line per completed request. 4xx responses log at
// warn and 5xx at error.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		ctx := c.Request.Context()
		logging.FromContext(ctx).Log(ctx, level, "request completed",
			slog.String(logging.FieldMethod, c.Request.Method),
			slog.String(logging.FieldPath, c.Request.URL.Path),
			slog.Int(logging.FieldStatus, status),
			slog.Int64(logging.FieldDuration, time.Since(start).Milliseconds()),
			slog.String(logging.FieldClientIP, c.ClientIP()))
	}
}
