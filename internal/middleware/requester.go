package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/mentorhub-api/pkg/jwt"
)

// RequesterContextKey is the key used to store the requester's first name in context
const RequesterContextKey = "requester_first_name"

// RequesterMiddleware reads the visitor's session token from the cookie or
// the Authorization header. It never rejects a request: a missing or invalid
// token leaves the visitor anonymous.
func RequesterMiddleware(tokenManager *jwt.TokenManager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenManager == nil {
			c.Next()
			return
		}

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			if cookie, err := c.Cookie(cookieName); err == nil {
				token = cookie
			}
		}
		if token == "" {
			c.Next()
			return
		}

		claims, err := tokenManager.ValidateToken(token)
		if err != nil {
			_ = c.Error(fmt.Errorf("ignored requester token: %w", err)) //nolint:errcheck
			c.Next()
			return
		}

		if name := strings.TrimSpace(claims.FirstName); name != "" {
			c.Set(RequesterContextKey, name)
		}
		c.Next()
	}
}

// RequesterFirstName returns the signed-in visitor's first name, or "" when anonymous
func RequesterFirstName(c *gin.Context) string {
	return c.GetString(RequesterContextKey)
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
