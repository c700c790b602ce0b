package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guanzhi08/aces-unit-test/internal/service"
	"github.com/guanzhi08/aces-unit-test/internal/util"
)

// AdminToken extracts the admin session token and rejects the request unless
// storage knows it. The token travels as the `token` query parameter, with a
// Bearer header accepted as a fallback. Validity is checked per call, never
// cached.
func AdminToken(admin *service.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" {
				token = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		valid, err := admin.VerifyToken(token)
		if err != nil {
			util.LogInternalError(c, err)
			c.Abort()
			return
		}
		if !valid {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("admin_token", token)
		c.Next()
	}
}
