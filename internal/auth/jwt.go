// Package auth issues and verifies the HS256 access tokens carried in the
// Authorization header. A token names the user (subject) and role; it is the
// only credential the API accepts.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken covers every reason a token is rejected except expiry.
	ErrInvalidToken = errors.New("invalid access token")
	// ErrExpiredToken is returned for a well-formed token past its exp claim.
	ErrExpiredToken = errors.New("access token expired")
)

// JWTManager signs and verifies access tokens.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTManager creates a JWT manager. The secret length is enforced by
// config validation (at least 32 bytes).
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

type accessClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// AccessTTL returns the lifetime of issued access tokens.
func (m *JWTManager) AccessTTL() time.Duration {
	return m.accessTTL
}

// GenerateAccessToken signs a token for userID with the given role.
// Each token gets a random jti so individual tokens can be traced in logs.
func (m *JWTManager) GenerateAccessToken(userID string, role string) (string, error) {
	if userID == "" {
		return "", errors.New("auth: empty user id")
	}

	now := m.now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken verifies signature, issuer and lifetime, then returns
// the subject and role. Errors wrap ErrExpiredToken or ErrInvalidToken.
func (m *JWTManager) ValidateAccessToken(tokenString string) (string, string, error) {
	if tokenString == "" {
		return "", "", fmt.Errorf("%w: empty", ErrInvalidToken)
	}

	var claims accessClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", "", fmt.Errorf("%w: %w", ErrExpiredToken, err)
	case err != nil:
		return "", "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	case claims.Subject == "":
		return "", "", fmt.Errorf("%w: no subject", ErrInvalidToken)
	}

	return claims.Subject, claims.Role, nil
}
