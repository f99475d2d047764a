// Package jwtmw guards admin routes with HS256 bearer tokens.
package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"crypto_dashboard/internal/platform/http/response"
)

const (
	// ContextSubject is the gin context key holding the token subject.
	ContextSubject = "adminSubject"
	// RoleAdmin is the role claim required by AdminRequired.
	RoleAdmin = "admin"
)

// AdminRequired returns a middleware accepting only valid HS256 tokens signed
// with secret and carrying role=admin. An empty secret rejects every request
// with 503, so admin routes stay closed until a secret is configured.
func AdminRequired(secret string) gin.HandlerFunc {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	return func(c *gin.Context) {
		if secret == "" {
			abort(c, http.StatusServiceUnavailable, "admin endpoints are disabled")
			return
		}

		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			abort(c, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims := jwt.MapClaims{}
		token, err := parser.ParseWithClaims(strings.TrimPrefix(auth, "Bearer "), claims, func(*jwt.Token) (any, error) {
			return key, nil
		})
		if err != nil || !token.Valid {
			abort(c, http.StatusUnauthorized, "invalid token")
			return
		}
		if role, _ := claims["role"].(string); role != RoleAdmin {
			abort(c, http.StatusForbidden, "admin role required")
			return
		}

		if sub, err := claims.GetSubject(); err == nil {
			c.Set(ContextSubject, sub)
		}
		c.Next()
	}
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, response.ErrorResponse{Success: false, Error: msg})
}
