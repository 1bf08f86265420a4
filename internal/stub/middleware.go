package stub

import (
	"net/http"
	"time"

	"github.com/concave-dev/s3mctl/internal/logging"
	"github.com/gin-gonic/gin"
)

// loggingMiddleware provides request logging
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		logging.Info("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
		return ""
	})
}

// authMiddleware compares the raw Authorization header with the configured
// token. The production service takes the token verbatim, without a scheme.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader("Authorization")

		switch {
		case got == "":
			abortWithError(c, http.StatusUnauthorized, "missing Authorization header")
			return
		case s.config.Token != "" && got != s.config.Token:
			abortWithError(c, http.StatusForbidden, "invalid token")
			return
		}

		c.Next()
	}
}

// abortWithError stops the chain with a JSON error body.
func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
