package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token TTL constants for the admin session handshake.
const (
	// DefaultAccessTokenTTL is the lifetime of an access token. The client
	// holds it in memory only, so it is kept short.
	DefaultAccessTokenTTL = 15 * time.Minute

	// DefaultRefreshTokenTTL is the lifetime of a refresh token, which lives
	// in an HttpOnly cookie with the same max-age.
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Token classes carried in the "use" claim. Each class is signed with its own
// secret, the claim makes a mix-up fail even if both secrets were equal.
const (
	UseAccess  = "access"
	UseRefresh = "refresh"
)

// Claims are the JWT claims for both token classes. Refresh tokens only ever
// carry the registered claims plus Use.
type Claims struct {
	jwt.RegisteredClaims

	// Use is the token class, UseAccess or UseRefresh.
	Use string `json:"use,omitempty"`

	// Username of the signed-in admin (access tokens only)
	Username string `json:"username,omitempty"`

	// Role of the signed-in admin, currently always "admin" (access tokens only)
	Role string `json:"role,omitempty"`
}

// NewAccessClaims builds the claims for a short lived access token.
func NewAccessClaims(subject, username, role, issuer string, ttl time.Duration, now time.Time) Claims {
	c := newClaims(subject, issuer, UseAccess, ttl, now)
	c.Username = username
	c.Role = role
	return c
}

// NewRefreshClaims builds the claims for a long lived refresh token.
func NewRefreshClaims(subject, issuer string, ttl time.Duration, now time.Time) Claims {
	return newClaims(subject, issuer, UseRefresh, ttl, now)
}

func newClaims(subject, issuer, use string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Use: use,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateUse checks the token class.
func (c *Claims) ValidateUse(expected string) error {
	if expected == "" {
		return nil
	}

	if c.Use != expected {
		return ErrWrongUse
	}

	return nil
}
