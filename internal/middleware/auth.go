package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "budgetnatin/internal/errors"
	"budgetnatin/internal/response"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID   = "userID"
	ContextEmail    = "email"
	ContextUsername = "username"
)

// TokenValidator validates bearer tokens.
type TokenValidator interface {
	Validate(tokenString string) (*Claims, error)
}

// AuthMiddleware verifies the bearer token and attaches the caller's identity
// to the context. A missing token is a 401; anything that does not validate,
// including a non-Bearer credential, is a 400.
func AuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer"))
		if tokenString == "" {
			response.Abort(c, apperrors.ErrAccessDenied.StatusCode, apperrors.ErrAccessDenied.Message)
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			response.Abort(c, apperrors.ErrInvalidToken.StatusCode, apperrors.ErrInvalidToken.Message)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}
