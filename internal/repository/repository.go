package repository

import (
	"context"

	"blogCPT/internal/config"
	"blogCPT/internal/models"

	"github.com/jmoiron/sqlx"
)

// IdentityProvider is the system of record for users and credentials.
type IdentityProvider interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

// PostRepository persists posts. Update and Delete do not check ownership;
// callers go through service.AccessGate first.
type PostRepository interface {
	ListAll(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) (string, error)
	Update(ctx context.Context, postID string, fields models.PostFields) error
	Delete(ctx context.Context, postID string) error
}

type TablesRepository interface {
	CountTables(ctx context.Context) (int, error)
}

type Repository struct {
	User   IdentityProvider
	Post   PostRepository
	Tables TablesRepository
}

func NewRepository(db *sqlx.DB, cfg *config.Config) *Repository {
	return &Repository{
		User:   NewIdentityRepository(db, cfg.BcryptCost),
		Post:   NewPostRepository(db, cfg.DB.BlogsTable),
		Tables: NewTablesRepository(db),
	}
}
