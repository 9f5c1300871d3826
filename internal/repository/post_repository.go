package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/novazone/learnhub-api/internal/models"
)

const postColumns = `id, author_id, author_name, title, content, category, created_at, likes, replies`

// PostRepository handles persistence of community posts.
type PostRepository struct {
	db *sqlx.DB
}

// NewPostRepository constructs the repository.
func NewPostRepository(db *sqlx.DB) *PostRepository {
	return &PostRepository{db: db}
}

// List returns posts newest first, optionally filtered by category.
func (r *PostRepository) List(ctx context.Context, category string, limit int) ([]models.CommunityPost, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	query := fmt.Sprintf("SELECT %s FROM community_posts", postColumns)
	args := []interface{}{}
	if category != "" {
		query += " WHERE category = $1"
		args = append(args, category)
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT %d", limit)

	var posts []models.CommunityPost
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Create inserts a new post.
func (r *PostRepository) Create(ctx context.Context, post *models.CommunityPost) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	if post.Replies == nil {
		post.Replies = pq.StringArray{}
	}
	const query = `INSERT INTO community_posts (id, author_id, author_name, title, content, category, created_at, likes, replies)
        VALUES (:id, :author_id, :author_name, :title, :content, :category, :created_at, :likes, :replies)`
	if _, err := r.db.NamedExecContext(ctx, query, post); err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

// DeleteAll wipes the community_posts table. Used by the seed loader.
func (r *PostRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM community_posts`); err != nil {
		return fmt.Errorf("delete posts: %w", err)
	}
	return nil
}
