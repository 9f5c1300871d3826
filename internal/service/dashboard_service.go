package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
)

type dashboardCourseRepository interface {
	ListEnrolled(ctx context.Context, studentID string, limit int) ([]models.Course, error)
	ListByTeacher(ctx context.Context, teacherID string, limit int) ([]models.Course, error)
}

type dashboardProgressRepository interface {
	ListByStudent(ctx context.Context, studentID string, limit int) ([]models.Progress, error)
	ListByCourseIDs(ctx context.Context, courseIDs []string, limit int) ([]models.Progress, error)
}

type dashboardPostRepository interface {
	List(ctx context.Context, category string, limit int) ([]models.CommunityPost, error)
}

type dashboardInsights interface {
	LearningPath(studentID string) models.LearningPath
	AnalyzeProgress(studentID string) models.ProgressAnalysis
}

type dashboardCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// DashboardConfig tunes dashboard snapshot caching.
type DashboardConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

// DashboardService assembles the aggregate home views. Caching is optional;
// with a nil cache or the flag off every request hits the database.
type DashboardService struct {
	courses  dashboardCourseRepository
	progress dashboardProgressRepository
	posts    dashboardPostRepository
	insights dashboardInsights
	cache    dashboardCache
	config   DashboardConfig
	logger   *zap.Logger
}

// NewDashboardService constructs a DashboardService instance.
func NewDashboardService(
	courses dashboardCourseRepository,
	progress dashboardProgressRepository,
	posts dashboardPostRepository,
	insights dashboardInsights,
	cache dashboardCache,
	config DashboardConfig,
	logger *zap.Logger,
) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		courses:  courses,
		progress: progress,
		posts:    posts,
		insights: insights,
		cache:    cache,
		config:   config,
		logger:   logger,
	}
}

const (
	studentCourseLimit   = 10
	studentProgressLimit = 10
	recentPostLimit      = 5
	teacherCourseLimit   = 20
	teacherProgressLimit = 100
)

// Analytics placeholders until real aggregation lands.
const (
	placeholderAverageCompletion = 75.5
	placeholderHoursTaught       = 120.5
)

// StudentDashboard builds the student home view. Unknown ids produce an empty
// but well-formed dashboard.
func (s *DashboardService) StudentDashboard(ctx context.Context, studentID string) (*models.StudentDashboard, error) {
	cacheKey := fmt.Sprintf("dashboard:student:%s", studentID)
	if s.cacheEnabled() {
		var cached models.StudentDashboard
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	courses, err := s.courses.ListEnrolled(ctx, studentID, studentCourseLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrolled courses")
	}

	records, err := s.progress.ListByStudent(ctx, studentID, studentProgressLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list progress")
	}

	posts, err := s.posts.List(ctx, "", recentPostLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list posts")
	}

	dashboard := &models.StudentDashboard{
		LearningPath:    s.insights.LearningPath(studentID),
		EnrolledCourses: courses,
		Progress:        records,
		RecentPosts:     posts,
		AIInsights:      s.insights.AnalyzeProgress(studentID),
	}

	s.storeSnapshot(ctx, cacheKey, dashboard)
	return dashboard, nil
}

// TeacherDashboard builds the teacher home view with progress across the
// teacher's courses and reach analytics. Completion and hours figures are
// placeholder constants.
func (s *DashboardService) TeacherDashboard(ctx context.Context, teacherID string) (*models.TeacherDashboard, error) {
	cacheKey := fmt.Sprintf("dashboard:teacher:%s", teacherID)
	if s.cacheEnabled() {
		var cached models.TeacherDashboard
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	courses, err := s.courses.ListByTeacher(ctx, teacherID, teacherCourseLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}

	courseIDs := make([]string, 0, len(courses))
	for _, course := range courses {
		courseIDs = append(courseIDs, course.ID)
	}

	records, err := s.progress.ListByCourseIDs(ctx, courseIDs, teacherProgressLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list course progress")
	}

	// total_students counts distinct students with progress records, not
	// enrollment set members.
	students := make(map[string]struct{})
	for _, record := range records {
		students[record.StudentID] = struct{}{}
	}

	dashboard := &models.TeacherDashboard{
		Courses:         courses,
		StudentProgress: records,
		Analytics: models.TeacherAnalytics{
			TotalStudents:     len(students),
			TotalCourses:      len(courses),
			AverageCompletion: placeholderAverageCompletion,
			TotalHoursTaught:  placeholderHoursTaught,
		},
	}

	s.storeSnapshot(ctx, cacheKey, dashboard)
	return dashboard, nil
}

func (s *DashboardService) cacheEnabled() bool {
	return s.config.CacheEnabled && s.cache != nil
}

func (s *DashboardService) storeSnapshot(ctx context.Context, key string, value interface{}) {
	if !s.cacheEnabled() {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.config.CacheTTL); err != nil {
		s.logger.Warn("failed to cache dashboard snapshot", zap.String("key", key), zap.Error(err))
	}
}
