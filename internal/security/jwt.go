package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// PurposeAccess marks tokens accepted by the request middleware.
	PurposeAccess = "access"
	// PurposeRefresh marks tokens accepted only by the refresh endpoint.
	PurposeRefresh = "refresh"

	issuer = "watchdex"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// purpose, malformed input, expiry. Callers must not learn which one.
var ErrInvalidToken = errors.New("invalid token")

// Claims represents JWT claims
type Claims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies access and refresh tokens with two
// independently configured secrets.
type JWTManager struct {
	accessSecret    []byte
	refreshSecret   []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTManager {
	return &JWTManager{
		accessSecret:    []byte(accessSecret),
		refreshSecret:   []byte(refreshSecret),
		accessTokenTTL:  accessTTL,
		refreshTokenTTL: refreshTTL,
	}
}

// GenerateAccessToken generates a new access token for the given subject
func (m *JWTManager) GenerateAccessToken(subject string) (string, error) {
	return m.generate(subject, PurposeAccess, m.accessSecret, m.accessTokenTTL, "")
}

// GenerateRefreshToken generates a new refresh token for the given subject.
// Each refresh token carries a unique jti so rotation shows up in logs.
func (m *JWTManager) GenerateRefreshToken(subject string) (string, error) {
	return m.generate(subject, PurposeRefresh, m.refreshSecret, m.refreshTokenTTL, uuid.NewString())
}

// GenerateTokenPair generates both access and refresh tokens
func (m *JWTManager) GenerateTokenPair(subject string) (accessToken, refreshToken string, err error) {
	accessToken, err = m.GenerateAccessToken(subject)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err = m.GenerateRefreshToken(subject)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

func (m *JWTManager) generate(subject, purpose string, secret []byte, ttl time.Duration, id string) (string, error) {
	now := time.Now()
	claims := Claims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			ID:        id,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateAccessToken verifies an access token and returns its subject
func (m *JWTManager) ValidateAccessToken(tokenString string) (string, error) {
	return m.validate(tokenString, PurposeAccess, m.accessSecret)
}

// ValidateRefreshToken verifies a refresh token and returns its subject
func (m *JWTManager) ValidateRefreshToken(tokenString string) (string, error) {
	return m.validate(tokenString, PurposeRefresh, m.refreshSecret)
}

func (m *JWTManager) validate(tokenString, purpose string, secret []byte) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Purpose != purpose {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// AccessTokenTTL returns the access token TTL
func (m *JWTManager) AccessTokenTTL() time.Duration {
	return m.accessTokenTTL
}
