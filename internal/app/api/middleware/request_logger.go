package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLoggerMiddleware attaches a request-scoped logger enriched with the
// trace ID to gin.Context and the request context, so services reach it via
// logctx without threading a logger through every call.
func RequestLoggerMiddleware(base *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLogger := base
		if traceID := c.GetString("traceID"); traceID != "" {
			reqLogger = base.With("trace_id", traceID)
		}
		c.Set("logger", reqLogger)

		ctx := context.WithValue(c.Request.Context(), "logger", reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
