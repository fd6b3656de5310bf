package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"
)

// OtelTracing returns a middleware for OpenTelemetry instrumentation.
// Health probes and swagger assets are not traced.
func OtelTracing(serviceName string) gin.HandlerFunc {
	otelMiddleware := otelgin.Middleware(serviceName)

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/health" || strings.HasPrefix(path, "/swagger/") {
			c.Next()
			return
		}
		otelMiddleware(c)
	}
}

// TraceID returns a middleware that adds trace ID to response headers.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			c.Header("X-Trace-Id", span.SpanContext().TraceID().String())
		}
		c.Next()
	}
}
