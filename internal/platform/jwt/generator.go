package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generator issues admin tokens.
type Generator interface {
	// GenerateToken creates a signed token for subject.
	GenerateToken(subject string) (string, error)
}

type generator struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// NewGenerator creates a Generator signing HS256 tokens with secret.
func NewGenerator(secret string, expiration time.Duration) *generator {
	return &generator{secret: []byte(secret), expiration: expiration, now: time.Now}
}

// GenerateToken creates a signed token carrying the admin role.
func (g *generator) GenerateToken(subject string) (string, error) {
	now := g.now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": RoleAdmin,
		"iat":  now.Unix(),
		"exp":  now.Add(g.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
