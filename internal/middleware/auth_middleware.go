package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/findup-dz/findup-api/internal/app/models"
	"github.com/findup-dz/findup-api/internal/app/models/dto"
	"github.com/findup-dz/findup-api/internal/pkg/auth"
	"github.com/findup-dz/findup-api/internal/pkg/logger"
)

const callerContextKey = "caller"

// Caller is the authenticated identity attached to the request context by
// JWTAuth. Role comes from the token, so a role change only takes effect on
// the next login.
type Caller struct {
	UserID int64
	Email  string
	Role   models.Role
}

// IsAdmin reports whether the caller holds the admin role
func (c *Caller) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

// CallerFromContext retrieves the authenticated caller set by JWTAuth.
func CallerFromContext(c *gin.Context) (*Caller, bool) {
	value, exists := c.Get(callerContextKey)
	if !exists {
		return nil, false
	}
	caller, ok := value.(*Caller)
	return caller, ok
}

// JWTAuth validates the bearer token and attaches the caller identity to the
// request context. Requests without a valid session are rejected with 401.
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		claims, err := jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			message := "Invalid or expired token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
			return
		}

		c.Set(callerContextKey, &Caller{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   models.Role(claims.Role),
		})
		c.Next()
	}
}

// RoleRequired rejects callers that do not hold the given role. It must run
// after JWTAuth.
func RoleRequired(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}
		if caller.Role != role {
			logger.Warn().
				Int64("userId", caller.UserID).
				Str("role", string(caller.Role)).
				Str("required", string(role)).
				Str("path", c.Request.URL.Path).
				Msg("Role check failed")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Insufficient permissions"))
			return
		}
		c.Next()
	}
}
