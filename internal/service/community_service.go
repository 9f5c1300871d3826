package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
)

type postRepository interface {
	List(ctx context.Context, category string, limit int) ([]models.CommunityPost, error)
	Create(ctx context.Context, post *models.CommunityPost) error
}

// CommunityService covers the discussion board.
type CommunityService struct {
	posts     postRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCommunityService constructs a CommunityService instance.
func NewCommunityService(posts postRepository, validate *validator.Validate, logger *zap.Logger) *CommunityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CommunityService{posts: posts, validator: validate, logger: logger}
}

const postListLimit = 50

// List returns posts newest first, optionally filtered by category.
func (s *CommunityService) List(ctx context.Context, category string) ([]models.CommunityPost, error) {
	posts, err := s.posts.List(ctx, category, postListLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list posts")
	}
	return posts, nil
}

// Create publishes a post attributed to the acting user. author_name is a
// snapshot of the user's current name.
func (s *CommunityService) Create(ctx context.Context, authorID, authorName string, req models.CreatePostRequest) (*models.CommunityPost, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid post payload")
	}

	post := &models.CommunityPost{
		ID:         uuid.NewString(),
		AuthorID:   authorID,
		AuthorName: authorName,
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		CreatedAt:  time.Now().UTC(),
		Replies:    []string{},
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create post")
	}
	return post, nil
}
