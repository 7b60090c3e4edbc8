package service

import (
	"errors"
	"fmt"
	"time"

	"blogCPT/internal/config"
	"blogCPT/internal/domain"
	"blogCPT/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies the bearer tokens handed out at login.
type TokenService interface {
	Issue(claims models.Claims) (string, error)
	Verify(tokenString string) (*models.Claims, error)
}

type tokenClaims struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	jwt.RegisteredClaims
}

type tokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(cfg *config.Config) TokenService {
	return newTokenService(cfg.JWTSecretKey, cfg.TokenDuration, time.Now)
}

func newTokenService(secret string, ttl time.Duration, now func() time.Time) *tokenService {
	return &tokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}
}

func (s *tokenService) Issue(claims models.Claims) (string, error) {
	now := s.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		UserID:      claims.UserID,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return tokenString, nil
}

// Verify checks the signature first and expiry second, so a forged token
// is always ErrTokenInvalid even when its exp has passed.
func (s *tokenService) Verify(tokenString string) (*models.Claims, error) {
	parsed := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", domain.ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}

	if !token.Valid || parsed.UserID == "" {
		return nil, fmt.Errorf("%w: missing identity claims", domain.ErrTokenInvalid)
	}

	return &models.Claims{
		UserID:      parsed.UserID,
		Email:       parsed.Email,
		DisplayName: parsed.DisplayName,
	}, nil
}
