package middleware

import (
	"net/http"
	"strings"
	"time"

	"travelhub/models"
	"travelhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const (
	ActorKey = "actor"
	tokenKey = "token"
)

// JWTAuthMiddleware resolves the bearer token into a models.Actor. cache may
// be nil, in which case revoked tokens are not checked.
func JWTAuthMiddleware(cache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		actor, err := utils.ActorFromToken(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}
		if utils.IsTokenRevoked(c.Request.Context(), cache, tokenString) {
			utils.JSONError(c, http.StatusUnauthorized, "Token has been revoked")
			c.Abort()
			return
		}

		c.Set(ActorKey, actor)
		c.Set(tokenKey, tokenString)
		c.Next()
	}
}

// RequireRole rejects authenticated callers lacking one of roles.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		utils.JSONError(c, http.StatusForbidden, "Insufficient permissions")
		c.Abort()
	}
}

// CurrentActor returns the identity set by JWTAuthMiddleware.
func CurrentActor(c *gin.Context) (models.Actor, bool) {
	v, ok := c.Get(ActorKey)
	if !ok {
		return models.Actor{}, false
	}
	actor, ok := v.(models.Actor)
	return actor, ok
}

// CurrentToken returns the raw bearer token and its remaining lifetime.
func CurrentToken(c *gin.Context) (string, time.Duration) {
	token := c.GetString(tokenKey)
	if token == "" {
		return "", 0
	}
	return token, utils.TokenRemaining(token)
}
