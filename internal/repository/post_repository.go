package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"blogCPT/internal/domain"
	"blogCPT/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const postColumns = `post_id, title, content, author, author_email, author_id, created_at, updated_at`

type postRepository struct {
	db    *sqlx.DB
	table string
	now   func() time.Time
}

func NewPostRepository(db *sqlx.DB, table string) PostRepository {
	return &postRepository{
		db:    db,
		table: pq.QuoteIdentifier(table),
		now:   time.Now,
	}
}

func (r *postRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at DESC`, postColumns, r.table)

	var posts []models.Post
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	if posts == nil {
		posts = []models.Post{}
	}

	now := r.now()
	for i := range posts {
		normalizeTimestamps(&posts[i], now)
	}

	return posts, nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	// ids are UUIDs; anything else cannot exist in the store
	id, err := uuid.Parse(postID)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", postID, domain.ErrNotFound)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE post_id = $1`, postColumns, r.table)

	// bind the canonical form; the store rejects urn and braced spellings
	var post models.Post
	err = r.db.GetContext(ctx, &post, query, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %s: %w", postID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	normalizeTimestamps(&post, r.now())
	return &post, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) (string, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s
		(post_id, title, content, author, author_email, author_id, created_at)
		VALUES
		(:post_id, :title, :content, :author, :author_email, :author_id, :created_at)
	`, r.table)

	post.PostID = uuid.New().String()
	post.CreatedAt = r.now().UTC()
	post.UpdatedAt = nil

	if _, err := r.db.NamedExecContext(ctx, query, post); err != nil {
		return "", fmt.Errorf("create post: %w", err)
	}

	return post.PostID, nil
}

func (r *postRepository) Update(ctx context.Context, postID string, fields models.PostFields) error {
	args := []any{r.now().UTC()}
	sets := []string{"updated_at = $1"}

	if fields.Title != nil {
		args = append(args, *fields.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if fields.Content != nil {
		args = append(args, *fields.Content)
		sets = append(sets, fmt.Sprintf("content = $%d", len(args)))
	}

	args = append(args, postID)
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE post_id = $%d`, r.table, strings.Join(sets, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("post %s: %w", postID, domain.ErrNotFound)
	}

	return nil
}

func (r *postRepository) Delete(ctx context.Context, postID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE post_id = $1`, r.table)

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("post %s: %w", postID, domain.ErrNotFound)
	}

	return nil
}

// normalizeTimestamps returns stored times in UTC and fills a missing
// creation time with now.
func normalizeTimestamps(post *models.Post, now time.Time) {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.CreatedAt = post.CreatedAt.UTC()

	if post.UpdatedAt != nil {
		updated := post.UpdatedAt.UTC()
		post.UpdatedAt = &updated
	}
}
