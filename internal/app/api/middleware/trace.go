package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/espacionido/nido-backend/pkg/tool"
)

// TraceMiddleware assigns every request a trace ID. An inbound X-Request-ID
// is honored so traces line up with the reverse proxy's logs; otherwise a
// fresh UUID is generated. The ID lives in both gin.Context (key "traceID")
// and the request's context.Context, and is echoed back in the response.
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Request-ID")
		if traceID == "" {
			traceID = tool.GenerateUUIDV7()
		}

		c.Set("traceID", traceID)
		ctx := context.WithValue(c.Request.Context(), "traceID", traceID)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set("X-Request-ID", traceID)

		c.Next()
	}
}
