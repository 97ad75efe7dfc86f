package middleware

import (
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

// CasbinMiddleware defines the interface for Casbin authorization middleware
type CasbinMiddleware interface {
	Enforce() gin.HandlerFunc
}

// CasbinMW authorizes requests by the role carried in the validated token.
type CasbinMW struct {
	enforcer *casbin.Enforcer
}

// NewCasbinMW creates new casbin middleware wrapper
func NewCasbinMW(enforcer *casbin.Enforcer) *CasbinMW {
	return &CasbinMW{enforcer: enforcer}
}

// Enforce returns the casbin authorization middleware
func (mw *CasbinMW) Enforce() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		role, ok := UserRole(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Role not found in token"})
			c.Abort()
			return
		}

		// Match against the route pattern so /tasks/:id policies apply.
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		allowed, err := mw.enforcer.Enforce("role_"+role, path, c.Request.Method)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
			c.Abort()
			return
		}
		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}
		c.Next()
	})
}
