package service

import (
	"context"
	"fmt"
	"strings"

	"blogCPT/internal/domain"
	"blogCPT/internal/models"
	"blogCPT/internal/repository"
)

const anonymousAuthor = "Anonymous"

type CreatePostRequest struct {
	Title   string
	Content string
	Author  string
}

type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	CreatePost(ctx context.Context, claims *models.Claims, req CreatePostRequest) (string, error)
	UpdatePost(ctx context.Context, claims *models.Claims, postID string, fields models.PostFields) error
	DeletePost(ctx context.Context, claims *models.Claims, postID string) error
}

type postService struct {
	posts repository.PostRepository
	gate  AccessGate
}

func NewPostService(posts repository.PostRepository, gate AccessGate) PostService {
	return &postService{
		posts: posts,
		gate:  gate,
	}
}

func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return p.posts.ListAll(ctx)
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return p.posts.GetByID(ctx, postID)
}

func (p *postService) CreatePost(ctx context.Context, claims *models.Claims, req CreatePostRequest) (string, error) {
	if claims == nil || claims.UserID == "" {
		return "", fmt.Errorf("no caller identity: %w", domain.ErrUnauthenticated)
	}

	post := &models.Post{
		Title:       req.Title,
		Content:     req.Content,
		Author:      authorName(req.Author, claims),
		AuthorEmail: claims.Email,
		AuthorID:    claims.UserID,
	}

	postID, err := p.posts.Create(ctx, post)
	if err != nil {
		return "", err
	}

	return postID, nil
}

func (p *postService) UpdatePost(ctx context.Context, claims *models.Claims, postID string, fields models.PostFields) error {
	if fields.Empty() {
		return domain.NewValidationError("Nothing to update")
	}

	return p.gate.Guard(ctx, claims, postID, func(ctx context.Context, post *models.Post) error {
		return p.posts.Update(ctx, post.PostID, fields)
	})
}

func (p *postService) DeletePost(ctx context.Context, claims *models.Claims, postID string) error {
	return p.gate.Guard(ctx, claims, postID, func(ctx context.Context, post *models.Post) error {
		return p.posts.Delete(ctx, post.PostID)
	})
}

// authorName picks the display name stored on a new post: the supplied one,
// then the token's display name, then the email local part.
func authorName(requested string, claims *models.Claims) string {
	if name := strings.TrimSpace(requested); name != "" {
		return name
	}
	if claims.DisplayName != "" {
		return claims.DisplayName
	}
	if local, _, found := strings.Cut(claims.Email, "@"); found && local != "" {
		return local
	}
	return anonymousAuthor
}
