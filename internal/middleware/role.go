package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turfbook/internal/domain"
	"turfbook/internal/pkg/response"
)

// RequireRole ensures that the authenticated user has the specified role
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != requiredRole {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// FieldOwnerOnly gates the owner endpoints.
func FieldOwnerOnly() gin.HandlerFunc {
	return RequireRole(string(domain.RoleFieldOwner))
}
