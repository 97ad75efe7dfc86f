package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// Context keys set by the authentication middleware.
const (
	CtxUserID    = "user_id"
	CtxUserRole  = "user_role"
	CtxSessionID = "session_id"
)

// AuthMiddleware validates the bearer token and its backing session, then
// exposes the authenticated identity to downstream handlers. Handlers never
// read the credential themselves; the actor is always taken from here.
func AuthMiddleware(tokenSvc domain.TokenService, sessionRepo domain.SessionRepository) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := tokenSvc.ValidateAccessToken(tokenParts[1])
		if err != nil {
			switch err {
			case domain.ErrTokenExpired:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			c.Abort()
			return
		}

		// The token is only as valid as its session.
		if claims.SessionID != "" {
			session, err := sessionRepo.FindByID(c.Request.Context(), claims.SessionID)
			if err != nil || session == nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Session invalid or expired"})
				c.Abort()
				return
			}
			if session.UserID != claims.UserID {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Session user mismatch"})
				c.Abort()
				return
			}
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserRole, claims.Role)
		if claims.SessionID != "" {
			c.Set(CtxSessionID, claims.SessionID)
		}
		c.Next()
	})
}

// UserID returns the authenticated user's ID from the request context.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// UserRole returns the authenticated user's role from the request context.
func UserRole(c *gin.Context) (string, bool) {
	v, ok := c.Get(CtxUserRole)
	if !ok {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}
