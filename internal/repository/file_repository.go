package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/novazone/learnhub-api/internal/models"
)

// FileRepository handles persistence of uploaded blobs.
type FileRepository struct {
	db *sqlx.DB
}

// NewFileRepository constructs the repository.
func NewFileRepository(db *sqlx.DB) *FileRepository {
	return &FileRepository{db: db}
}

// Create inserts an uploaded file.
func (r *FileRepository) Create(ctx context.Context, file *models.StoredFile) error {
	if file.ID == "" {
		file.ID = uuid.NewString()
	}
	if file.UploadedAt.IsZero() {
		file.UploadedAt = time.Now().UTC()
	}
	const query = `INSERT INTO files (id, filename, content_type, content, uploaded_at)
        VALUES (:id, :filename, :content_type, :content, :uploaded_at)`
	if _, err := r.db.NamedExecContext(ctx, query, file); err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	return nil
}

// FindByID returns a stored file by identifier.
func (r *FileRepository) FindByID(ctx context.Context, id string) (*models.StoredFile, error) {
	const query = `SELECT id, filename, content_type, content, uploaded_at FROM files WHERE id = $1 LIMIT 1`
	var file models.StoredFile
	if err := r.db.GetContext(ctx, &file, query, id); err != nil {
		return nil, err
	}
	return &file, nil
}
