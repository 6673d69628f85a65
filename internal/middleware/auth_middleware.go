package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bayms/backend/internal/app/models/dto"
	"github.com/bayms/backend/internal/pkg/auth"
)

// identityKey is the gin context key the caller identity is stored under
const identityKey = "identity"

// AuthMiddleware authenticates requests via bearer tokens
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the Authorization header and stores the caller
// identity in the request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid or expired token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(identityKey, auth.Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
		})

		c.Next()
	}
}

// GetIdentity returns the authenticated caller identity from the
// request context. The zero identity is returned for anonymous
// requests.
func GetIdentity(c *gin.Context) auth.Identity {
	value, exists := c.Get(identityKey)
	if !exists {
		return auth.Identity{}
	}
	identity, ok := value.(auth.Identity)
	if !ok {
		return auth.Identity{}
	}
	return identity
}
