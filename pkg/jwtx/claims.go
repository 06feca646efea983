package jwtx

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the lifetime of an access token. Access tokens
// cannot be revoked before expiry, so this stays short.
const DefaultAccessTokenTTL = time.Hour

// Claims are the signed claim set carried by both token strategies. Refresh
// tokens use the registered ID field (jti) as the per-user session marker;
// access tokens leave it empty and rely on expiry alone.
type Claims struct {
	jwt.RegisteredClaims

	// Scopes are capability strings checked against route requirements,
	// e.g. "refresh", "admin", "user-42".
	Scopes []string `json:"scope,omitempty"`
}

// NewRefreshClaims builds the claim set for a refresh token. No expiry is
// set: the token lives until the user's session marker rotates.
func NewRefreshClaims(subject int64, jti, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  strconv.FormatInt(subject, 10),
			IssuedAt: jwt.NewNumericDate(now),
			ID:       jti,
		},
		Scopes: []string{"refresh"},
	}
}

// NewAccessClaims builds the claim set for a short-lived access token.
func NewAccessClaims(subject int64, scopes []string, ttl time.Duration, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(subject, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Scopes: scopes,
	}
}

// SubjectID parses the subject claim as a numeric user id.
func (c *Claims) SubjectID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidClaim
	}
	return id, nil
}

// ValidateIssuer checks the issuer claim against the expected value.
// An empty expectation enforces nothing.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}
