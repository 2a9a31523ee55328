package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dbicalho1/TempleCals/pkg/jwt"
	"github.com/dbicalho1/TempleCals/pkg/redis"
	"github.com/dbicalho1/TempleCals/pkg/response"
)

// JWTAuth extracts and verifies the bearer token from the Authorization
// header and injects the caller's identity into the context. When Redis is
// available, revoked tokens (logout blacklist) are rejected; without Redis
// the blacklist check degrades open.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "token is invalid or has expired")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, "token has been revoked")
				c.Abort()
				return
			}
			// Redis errors degrade open; the token still carries a valid
			// signature and expiry.
		}

		c.Set("user_id", claims.UserID)
		c.Set("token_jti", claims.ID)
		c.Set("token_exp", claims.ExpiresAt.Time)

		c.Next()
	}
}
