package service

import (
	"context"
	"errors"
	"fmt"

	"blogCPT/internal/domain"
	"blogCPT/internal/models"
	"blogCPT/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	CurrentUser(ctx context.Context, claims *models.Claims) (*models.User, error)
}

type authService struct {
	users  repository.IdentityProvider
	tokens TokenService
}

func NewAuthService(users repository.IdentityProvider, tokens TokenService) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
	}
}

func (s *authService) Register(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	existingUser, err := s.users.GetUserByEmail(ctx, req.Email)
	if err == nil && existingUser != nil {
		return nil, fmt.Errorf("user with email %s: %w", req.Email, domain.ErrConflict)
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	// the store's unique index still guards the race between lookup and insert
	user, err := s.users.CreateUser(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}

	return user, nil
}

// Login returns ErrNotFound for an unknown email and ErrUnauthenticated for
// a wrong password.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}

	token, err := s.tokens.Issue(models.ClaimsFromUser(user))
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

func (s *authService) CurrentUser(ctx context.Context, claims *models.Claims) (*models.User, error) {
	if claims == nil {
		return nil, fmt.Errorf("no caller identity: %w", domain.ErrUnauthenticated)
	}

	user, err := s.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("account %s no longer exists: %w", claims.UserID, domain.ErrUnauthenticated)
		}
		return nil, fmt.Errorf("get current user: %w", err)
	}

	return user, nil
}
