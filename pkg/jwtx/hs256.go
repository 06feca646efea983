package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// Verifier validates a compact token string and returns its claims.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Strategy signs and verifies HS256 tokens under a single secret. The
// refresh and access strategies each hold an independent secret, so a token
// minted by one strategy never verifies under the other.
type Strategy struct {
	secret []byte
	issuer string
}

func NewStrategy(secret, issuer string) *Strategy {
	return &Strategy{secret: []byte(secret), issuer: issuer}
}

// Sign produces a compact signed token embedding the claims.
func (s *Strategy) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Verify parses and validates the token string. Tampered tokens fail with
// ErrInvalidSig, expired ones with ErrExpired, and a disagreeing issuer
// claim with ErrIssuer.
func (s *Strategy) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return Claims{}, ErrNotYetValid
		default:
			return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	if err := claims.ValidateIssuer(s.issuer); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}
