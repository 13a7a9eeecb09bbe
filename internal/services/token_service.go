package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ravishankar2114/banking-simulator/internal/config"
	"github.com/ravishankar2114/banking-simulator/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token is expired")
	ErrEmptyToken   = errors.New("empty token")
)

// sessionClaims carries the authenticated principal inside a JWT
type sessionClaims struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService handles session token generation and validation
type TokenService struct {
	secret        []byte
	tokenDuration time.Duration
	issuer        string
}

// NewTokenService creates a new token service from JWT configuration
func NewTokenService(jwtConfig *config.JWTConfig) TokenServiceInterface {
	return &TokenService{
		secret:        []byte(jwtConfig.Secret),
		tokenDuration: jwtConfig.TokenDuration,
		issuer:        jwtConfig.Issuer,
	}
}

// Issue generates a signed session token for an authenticated principal
func (ts *TokenService) Issue(principal *models.Principal) (string, time.Time, error) {
	if principal == nil {
		return "", time.Time{}, errors.New("principal cannot be nil")
	}

	now := time.Now()
	expiresAt := now.Add(ts.tokenDuration)

	claims := &sessionClaims{
		Kind: principal.Kind,
		Name: principal.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.Subject,
			Issuer:    ts.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(ts.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate parses a session token and returns the embedded principal
func (ts *TokenService) Validate(tokenString string) (*models.Principal, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.secret, nil
	}, jwt.WithIssuer(ts.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Kind != models.PrincipalKindCustomer && claims.Kind != models.PrincipalKindAdmin {
		return nil, ErrInvalidToken
	}

	return &models.Principal{
		Kind:    claims.Kind,
		Subject: claims.Subject,
		Name:    claims.Name,
	}, nil
}
