// Package middleware holds the gin middleware for the API: request
// authentication and the supplier role guard.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/infrastructure/auth"
	"github.com/procure/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Context keys set by RequireAuth.
const (
	ClaimsKey   = "auth_claims"
	UserIDKey   = "auth_user_id"
	UserTypeKey = "auth_user_type"

	authHeader   = "Authorization"
	bearerPrefix = "Bearer "
)

// RequireAuth validates the bearer token, rejects revoked tokens and
// stores the claims on the context. Failures respond with the
// UNAUTHORIZED envelope and a 403, mirroring the rest of the error
// model.
func RequireAuth(jwtService *auth.JWTService, blacklist auth.TokenBlacklist, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeader)
		if !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c)
			return
		}

		claims, err := jwtService.Validate(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			abortUnauthorized(c)
			return
		}

		if blacklist != nil && claims.ID != "" {
			revoked, err := blacklist.Contains(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Warn("token blacklist check failed", zap.Error(err))
			} else if revoked {
				abortUnauthorized(c)
				return
			}
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, claims.UserID)
		c.Set(UserTypeKey, claims.UserType)
		c.Next()
	}
}

// RequireShop guards supplier-only endpoints. It assumes RequireAuth
// ran first.
func RequireShop() gin.HandlerFunc {
	return func(c *gin.Context) {
		userType, ok := c.Get(UserTypeKey)
		if !ok || userType.(identity.UserType) != identity.UserTypeShop {
			c.AbortWithStatusJSON(
				dto.HTTPStatus(shared.ErrForbidden),
				dto.Fail(shared.ErrForbidden.Message),
			)
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id from the context.
func UserID(c *gin.Context) uint {
	if v, ok := c.Get(UserIDKey); ok {
		return v.(uint)
	}
	return 0
}

// Claims returns the validated token claims from the context.
func Claims(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(ClaimsKey); ok {
		return v.(*auth.Claims)
	}
	return nil
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(
		dto.HTTPStatus(shared.ErrUnauthorized),
		dto.Fail(shared.ErrUnauthorized.Message),
	)
}
