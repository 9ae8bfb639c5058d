package middleware

import (
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// TokenCookieName is the cookie the session gate reads the bearer credential from.
const TokenCookieName = "token"

// AuthMiddleware is the perimeter gate for protected routes. A missing,
// revoked, malformed or expired credential is rejected before any handler
// logic runs; on success the resolved user id lands in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(TokenCookieName)
		if err != nil || tokenString == "" {
			utils.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		if services.IsTokenBlacklisted(c.Request.Context(), tokenString) {
			utils.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		userID, err := services.VerifyToken(tokenString)
		if err != nil {
			utils.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
