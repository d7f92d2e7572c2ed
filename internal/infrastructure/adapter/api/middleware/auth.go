package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "github.com/fundedpeak/portal-api/internal/domain/error"
	"github.com/fundedpeak/portal-api/internal/infrastructure/adapter/api/dto"
	"github.com/fundedpeak/portal-api/internal/infrastructure/auth"
)

// Context keys set by the auth middleware
const (
	ContextUserID  = "auth_user_id"
	ContextIsAdmin = "auth_is_admin"
)

// RequireAuth validates the bearer token and stores the caller's identity
// in the request context
func RequireAuth(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Authorization header required",
			})
			return
		}

		claims, err := tokens.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// RequireAdmin rejects callers without the admin flag. Must run after
// RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Admin access required",
			})
			return
		}
		c.Next()
	}
}

// AuthUserID returns the authenticated user id from the request context
func AuthUserID(c *gin.Context) uint64 {
	id, _ := c.Get(ContextUserID)
	userID, _ := id.(uint64)
	return userID
}
