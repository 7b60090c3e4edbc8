package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"blogCPT/internal/domain"
	"blogCPT/internal/models"
	"blogCPT/internal/repository"
)

// MutateFunc runs once the gate has admitted the caller; it receives the
// post as loaded during the ownership check.
type MutateFunc func(ctx context.Context, post *models.Post) error

// AccessGate decides whether a caller may mutate a post.
//
// Authenticate covers the bearer-token half of the contract and runs in the
// auth middleware before any handler. Guard covers the resource half: the
// post must exist (ErrNotFound) and belong to the caller (ErrForbidden), in
// that order, before mutate is called. The check and the mutation are not
// atomic; concurrent writes by the owner are last-write-wins.
type AccessGate interface {
	Authenticate(authorizationHeader string) (*models.Claims, error)
	Guard(ctx context.Context, claims *models.Claims, postID string, mutate MutateFunc) error
}

type accessGate struct {
	tokens TokenService
	posts  repository.PostRepository
	logger *slog.Logger
}

func NewAccessGate(tokens TokenService, posts repository.PostRepository, logger *slog.Logger) AccessGate {
	return &accessGate{
		tokens: tokens,
		posts:  posts,
		logger: logger,
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", fmt.Errorf("no token provided: %w", domain.ErrUnauthenticated)
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", fmt.Errorf("invalid authorization format: %w", domain.ErrUnauthenticated)
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", fmt.Errorf("empty bearer token: %w", domain.ErrUnauthenticated)
	}

	return token, nil
}

func (g *accessGate) Authenticate(authorizationHeader string) (*models.Claims, error) {
	token, err := BearerToken(authorizationHeader)
	if err != nil {
		g.logger.Debug("request without bearer token", "error", err)
		return nil, err
	}

	claims, err := g.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			g.logger.Info("rejected expired token", "error", err)
		} else {
			g.logger.Warn("rejected invalid token", "error", err)
		}
		return nil, err
	}

	return claims, nil
}

func (g *accessGate) Guard(ctx context.Context, claims *models.Claims, postID string, mutate MutateFunc) error {
	if claims == nil || claims.UserID == "" {
		return fmt.Errorf("no caller identity: %w", domain.ErrUnauthenticated)
	}

	post, err := g.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != claims.UserID {
		g.logger.Info("ownership check failed",
			"post_id", postID,
			"user_id", claims.UserID,
		)
		return fmt.Errorf("post %s belongs to another user: %w", postID, domain.ErrForbidden)
	}

	return mutate(ctx, post)
}
