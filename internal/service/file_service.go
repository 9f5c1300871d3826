package service

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
)

type fileRepository interface {
	Create(ctx context.Context, file *models.StoredFile) error
	FindByID(ctx context.Context, id string) (*models.StoredFile, error)
}

// FileService stores uploads base64 encoded in the database and serves them
// back by id. Anyone holding the id can read the blob.
type FileService struct {
	files        fileRepository
	maxSizeBytes int64
	logger       *zap.Logger
}

// NewFileService constructs a FileService instance.
func NewFileService(files fileRepository, maxSizeBytes int64, logger *zap.Logger) *FileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileService{files: files, maxSizeBytes: maxSizeBytes, logger: logger}
}

// Upload persists raw content under a fresh id.
func (s *FileService) Upload(ctx context.Context, filename, contentType string, content []byte) (*models.FileUploadResponse, error) {
	if s.maxSizeBytes > 0 && int64(len(content)) > s.maxSizeBytes {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("file exceeds maximum size of %d bytes", s.maxSizeBytes))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	file := &models.StoredFile{
		ID:          uuid.NewString(),
		Filename:    filename,
		ContentType: contentType,
		Content:     base64.StdEncoding.EncodeToString(content),
		UploadedAt:  time.Now().UTC(),
	}
	if err := s.files.Create(ctx, file); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store file")
	}

	s.logger.Info("file uploaded", zap.String("file_id", file.ID), zap.Int("size", len(content)))

	return &models.FileUploadResponse{
		FileID:   file.ID,
		Filename: file.Filename,
		Message:  "File uploaded successfully",
	}, nil
}

// Get returns a stored blob with its metadata.
func (s *FileService) Get(ctx context.Context, id string) (*models.FileDownloadResponse, error) {
	file, err := s.files.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "file not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch file")
	}
	return &models.FileDownloadResponse{
		Filename:    file.Filename,
		ContentType: file.ContentType,
		Content:     file.Content,
	}, nil
}
