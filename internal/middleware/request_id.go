package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const apiVersion = "1.0.0"

// RequestID honors an inbound X-Request-ID or assigns a fresh one, and
// stamps the standard response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("X-Request-ID", requestID)
		c.Header("X-Request-ID", requestID)
		c.Header("X-API-Version", apiVersion)

		c.Next()
	}
}
