package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
)

type mockDashboardCourses struct {
	enrolled  []models.Course
	byTeacher []models.Course
}

func (m *mockDashboardCourses) ListEnrolled(ctx context.Context, studentID string, limit int) ([]models.Course, error) {
	return m.enrolled, nil
}

func (m *mockDashboardCourses) ListByTeacher(ctx context.Context, teacherID string, limit int) ([]models.Course, error) {
	return m.byTeacher, nil
}

type mockDashboardProgress struct {
	byStudent []models.Progress
	byCourses []models.Progress
}

func (m *mockDashboardProgress) ListByStudent(ctx context.Context, studentID string, limit int) ([]models.Progress, error) {
	return m.byStudent, nil
}

func (m *mockDashboardProgress) ListByCourseIDs(ctx context.Context, courseIDs []string, limit int) ([]models.Progress, error) {
	return m.byCourses, nil
}

type mockDashboardPosts struct {
	posts []models.CommunityPost
}

func (m *mockDashboardPosts) List(ctx context.Context, category string, limit int) ([]models.CommunityPost, error) {
	return m.posts, nil
}

type mapCache struct {
	entries map[string][]byte
	hits    int
	sets    int
}

func (m *mapCache) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.Clone(appErrors.ErrCacheMiss, "")
	}
	m.hits++
	return json.Unmarshal(raw, dest)
}

func (m *mapCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.entries == nil {
		m.entries = make(map[string][]byte)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	m.sets++
	return nil
}

func TestStudentDashboardAssemblesSections(t *testing.T) {
	svc := NewDashboardService(
		&mockDashboardCourses{enrolled: []models.Course{{ID: "c1", Title: "Python"}}},
		&mockDashboardProgress{byStudent: []models.Progress{{ID: "p1", CompletionPercentage: 30}}},
		&mockDashboardPosts{posts: []models.CommunityPost{{ID: "post_1"}}},
		NewInsightService(),
		nil,
		DashboardConfig{},
		nil,
	)

	dash, err := svc.StudentDashboard(context.Background(), "student-1")
	require.NoError(t, err)
	assert.Len(t, dash.EnrolledCourses, 1)
	assert.Len(t, dash.Progress, 1)
	assert.Len(t, dash.RecentPosts, 1)
	assert.Equal(t, "Intermediate", dash.LearningPath.CurrentLevel)
	assert.Equal(t, "Good", dash.AIInsights.OverallPerformance)
}

func TestTeacherDashboardCountsDistinctStudents(t *testing.T) {
	svc := NewDashboardService(
		&mockDashboardCourses{byTeacher: []models.Course{
			{ID: "c1", EnrolledStudents: []string{"s1", "s2"}},
			{ID: "c2", EnrolledStudents: []string{"s2", "s3"}},
		}},
		&mockDashboardProgress{byCourses: []models.Progress{
			{ID: "p1", StudentID: "s1", CourseID: "c1"},
			{ID: "p2", StudentID: "s2", CourseID: "c1"},
			{ID: "p3", StudentID: "s2", CourseID: "c2"},
		}},
		&mockDashboardPosts{},
		NewInsightService(),
		nil,
		DashboardConfig{},
		nil,
	)

	dash, err := svc.TeacherDashboard(context.Background(), "teacher-1")
	require.NoError(t, err)
	assert.Equal(t, 2, dash.Analytics.TotalStudents, "students with records in several courses count once")
	assert.Equal(t, 2, dash.Analytics.TotalCourses)
	assert.Equal(t, 75.5, dash.Analytics.AverageCompletion)
	assert.Equal(t, 120.5, dash.Analytics.TotalHoursTaught)
}

func TestTeacherDashboardStudentsComeFromProgressRecords(t *testing.T) {
	// Enrollment sets alone contribute nothing until progress records exist.
	svc := NewDashboardService(
		&mockDashboardCourses{byTeacher: []models.Course{
			{ID: "c1", EnrolledStudents: []string{"s1", "s2"}},
			{ID: "c2", EnrolledStudents: []string{"s2"}},
		}},
		&mockDashboardProgress{},
		&mockDashboardPosts{},
		NewInsightService(),
		nil,
		DashboardConfig{},
		nil,
	)

	dash, err := svc.TeacherDashboard(context.Background(), "teacher-1")
	require.NoError(t, err)
	assert.Equal(t, 0, dash.Analytics.TotalStudents)
	assert.Equal(t, 2, dash.Analytics.TotalCourses)
}

func TestStudentDashboardCachesSnapshot(t *testing.T) {
	cache := &mapCache{}
	courses := &mockDashboardCourses{enrolled: []models.Course{{ID: "c1"}}}
	svc := NewDashboardService(
		courses,
		&mockDashboardProgress{},
		&mockDashboardPosts{},
		NewInsightService(),
		cache,
		DashboardConfig{CacheEnabled: true, CacheTTL: time.Minute},
		nil,
	)

	_, err := svc.StudentDashboard(context.Background(), "student-1")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	// The second read must be served from the snapshot even after the
	// underlying data changes.
	courses.enrolled = nil
	dash, err := svc.StudentDashboard(context.Background(), "student-1")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Len(t, dash.EnrolledCourses, 1)
}

func TestDashboardCacheDisabledSkipsCache(t *testing.T) {
	cache := &mapCache{}
	svc := NewDashboardService(
		&mockDashboardCourses{},
		&mockDashboardProgress{},
		&mockDashboardPosts{},
		NewInsightService(),
		cache,
		DashboardConfig{CacheEnabled: false},
		nil,
	)

	_, err := svc.StudentDashboard(context.Background(), "student-1")
	require.NoError(t, err)
	assert.Equal(t, 0, cache.sets)
}
