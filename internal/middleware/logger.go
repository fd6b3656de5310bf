package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ZapLogger returns a middleware that logs HTTP requests using zap logger.
// Page and API requests are logged at info level, static and probe paths at
// debug level, and requests that recorded errors at error level.
func ZapLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		dur := time.Since(start)

		path := c.Request.URL.Path
		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", dur.String(),
			"clientIP", c.ClientIP(),
		}

		switch {
		case len(c.Errors) > 0:
			log.Sugar().Errorw("HTTP", append(fields, "errors", c.Errors.String())...)
		case isQuietPath(path):
			log.Sugar().Debugw("HTTP", fields...)
		default:
			log.Sugar().Infow("HTTP", fields...)
		}
	}
}

func isQuietPath(path string) bool {
	return path == "/health" || strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/media/")
}
