package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nowshad-islam-dev/skipq-api/internal/auth"
	"github.com/nowshad-islam-dev/skipq-api/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextEmail    = "userEmail"
	ContextUsername = "username"
)

// AuthMiddleware requires a bearer token issued by tokens and stores its
// claims on the context.
func AuthMiddleware(tokens auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Unauthorized(c, "invalid_authorization_header", "Authorization header must be a bearer token")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			code := "invalid_token"
			if errors.Is(err, auth.ErrExpiredToken) {
				code = "token_expired"
			}
			httperr.Unauthorized(c, code, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextUsername, claims.Username)

		c.Next()
	}
}

// UserID returns the authenticated user id set by AuthMiddleware.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id > 0
}
