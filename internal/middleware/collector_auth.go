package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/chargewatch/pricetrack/internal/utils"
	"github.com/gin-gonic/gin"
)

// CollectorAuthMiddleware guards the write endpoints used by the data
// collector. Requests must carry "Authorization: Bearer <key>" where the key
// matches the configured bcrypt hash. With no hash configured the middleware
// lets requests through and warns, which keeps local development friction-free.
func CollectorAuthMiddleware(apiKeyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		if apiKeyHash == "" {
			logger.Warn("No collector API key configured, write endpoints are unprotected")
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		key, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || key == "" {
			logger.Warn("Missing collector API key")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or malformed Authorization header"})
			return
		}

		if !utils.CheckAPIKeyHash(key, apiKeyHash) {
			logger.Warn("Rejected collector API key", slog.String("remote_ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}
