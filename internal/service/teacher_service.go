package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
)

type teacherRepository interface {
	List(ctx context.Context, subject string, limit int) ([]models.TeacherProfile, error)
	FindByUserID(ctx context.Context, userID string) (*models.TeacherProfile, error)
	UpdateByUserID(ctx context.Context, userID string, req models.UpdateTeacherProfileRequest) error
}

type teacherInsights interface {
	RecommendTeachers(subject, studentID string) []models.TeacherRecommendation
}

// TeacherService covers teaching profiles and teacher matching.
type TeacherService struct {
	teachers  teacherRepository
	insights  teacherInsights
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherService constructs a TeacherService instance.
func NewTeacherService(teachers teacherRepository, insights teacherInsights, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &TeacherService{teachers: teachers, insights: insights, validator: validate, logger: logger}
}

const teacherListLimit = 50

// List returns teaching profiles, optionally filtered by subject.
func (s *TeacherService) List(ctx context.Context, subject string) ([]models.TeacherProfile, error) {
	profiles, err := s.teachers.List(ctx, subject, teacherListLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	return profiles, nil
}

// Recommendations returns matched teachers for a subject and student.
func (s *TeacherService) Recommendations(ctx context.Context, subject, studentID string) []models.TeacherRecommendation {
	return s.insights.RecommendTeachers(subject, studentID)
}

// UpdateProfile applies a partial update to the caller's teaching profile.
func (s *TeacherService) UpdateProfile(ctx context.Context, userID string, req models.UpdateTeacherProfileRequest) (*models.TeacherProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}

	if err := s.teachers.UpdateByUserID(ctx, userID, req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update teacher profile")
	}

	profile, err := s.teachers.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher profile not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch teacher profile")
	}
	return profile, nil
}
