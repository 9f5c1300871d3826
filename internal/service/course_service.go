package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
)

// New courses and teaching profiles start at this rating until real
// review data lands.
const defaultRating = 4.5

type courseRepository interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	AddEnrolledStudent(ctx context.Context, courseID, studentID string) error
}

type courseProgressRepository interface {
	Create(ctx context.Context, progress *models.Progress) error
	ExistsForStudentCourse(ctx context.Context, studentID, courseID string) (bool, error)
}

type courseCacheInvalidator interface {
	Invalidate(ctx context.Context, pattern string) error
}

// CourseService covers the catalog: listing, creation and enrollment.
type CourseService struct {
	courses   courseRepository
	progress  courseProgressRepository
	cache     courseCacheInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs a CourseService instance. cache may be nil when
// dashboard caching is off.
func NewCourseService(courses courseRepository, progress courseProgressRepository, cache courseCacheInvalidator, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CourseService{courses: courses, progress: progress, cache: cache, validator: validate, logger: logger}
}

// List returns catalog entries matching the optional filters.
func (s *CourseService) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	courses, err := s.courses.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, nil
}

// Get returns a single catalog entry.
func (s *CourseService) Get(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch course")
	}
	return course, nil
}

// Create adds a catalog entry owned by the calling teacher. teacher_name is
// captured as a snapshot of the caller's current name.
func (s *CourseService) Create(ctx context.Context, teacherID, teacherName string, req models.CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	course := &models.Course{
		ID:               uuid.NewString(),
		Title:            req.Title,
		Description:      req.Description,
		TeacherID:        teacherID,
		TeacherName:      teacherName,
		Subject:          req.Subject,
		DifficultyLevel:  req.DifficultyLevel,
		DurationHours:    req.DurationHours,
		Image:            req.Image,
		EnrolledStudents: []string{},
		Rating:           defaultRating,
		TotalLessons:     req.TotalLessons,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}

	s.invalidateDashboards(ctx)
	s.logger.Info("course created", zap.String("course_id", course.ID), zap.String("teacher_id", teacherID))
	return course, nil
}

// Enroll registers the calling student on a course. Repeat calls are
// accepted and leave the enrollment and its progress record unchanged.
func (s *CourseService) Enroll(ctx context.Context, courseID, studentID string) error {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch course")
	}

	if err := s.courses.AddEnrolledStudent(ctx, courseID, studentID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enroll student")
	}
	s.invalidateDashboards(ctx)

	exists, err := s.progress.ExistsForStudentCourse(ctx, studentID, courseID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check progress")
	}
	if exists {
		return nil
	}

	record := &models.Progress{
		ID:           uuid.NewString(),
		StudentID:    studentID,
		CourseID:     courseID,
		CourseTitle:  course.Title,
		LastAccessed: time.Now().UTC(),
		QuizScores:   []float64{},
	}
	if err := s.progress.Create(ctx, record); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create progress record")
	}
	return nil
}

// invalidateDashboards drops cached dashboard snapshots after a write that
// changes what they show.
func (s *CourseService) invalidateDashboards(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, "dashboard:*"); err != nil {
		s.logger.Warn("failed to invalidate dashboard snapshots", zap.Error(err))
	}
}
