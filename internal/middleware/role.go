package middleware

import (
	"net/http"

	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated user has the specified role
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED")
			return
		}

		if role.(string) != requiredRole {
			response.AbortError(c, http.StatusForbidden, "FORBIDDEN")
			return
		}

		c.Next()
	}
}

// OwnerOnly gates hotel-management endpoints.
func OwnerOnly() gin.HandlerFunc {
	return RequireRole("owner")
}

// CustomerOnly gates booking and review endpoints.
func CustomerOnly() gin.HandlerFunc {
	return RequireRole("customer")
}
