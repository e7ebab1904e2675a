package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"teamsched/pkg/response"
)

const apiKeyHeader = "X-API-Key"

// Auth checks the API key header. When no key is configured the check is
// disabled, which is the expected setup for local single-user deployments.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.Next()
			return
		}

		got := c.GetHeader(apiKeyHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.apiKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "Auth: rejected request from %s", c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
