package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novazone/learnhub-api/internal/models"
	"github.com/novazone/learnhub-api/pkg/storage"
)

type stubExportCourses struct {
	courses []models.Course
}

func (s *stubExportCourses) ListByTeacher(ctx context.Context, teacherID string, limit int) ([]models.Course, error) {
	return s.courses, nil
}

type stubExportProgress struct {
	records []models.Progress
}

func (s *stubExportProgress) ListByCourseIDs(ctx context.Context, courseIDs []string, limit int) ([]models.Progress, error) {
	return s.records, nil
}

func newTestExportService(t *testing.T, courses []models.Course, records []models.Progress) *ExportService {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("export-test-secret", time.Hour)
	return NewExportService(
		&stubExportCourses{courses: courses},
		&stubExportProgress{records: records},
		store,
		signer,
		ExportConfig{APIPrefix: "/api", ResultTTL: time.Hour},
		nil, nil, nil,
	)
}

func TestGenerateCSVProgressReport(t *testing.T) {
	accessed := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	svc := newTestExportService(t,
		[]models.Course{{ID: "c1", Title: "Introduction to Python Programming"}},
		[]models.Progress{{
			StudentID:            "student-1",
			CourseID:             "c1",
			CompletionPercentage: 42.5,
			TimeSpentHours:       3.25,
			LastAccessed:         accessed,
		}},
	)

	job := &models.ReportJob{
		ID:     "job-1",
		Type:   models.ReportTypeProgress,
		Params: models.ReportJobParams{TeacherID: "teacher-1", Format: models.ReportFormatCSV},
	}
	result, err := svc.Generate(context.Background(), job)
	require.NoError(t, err)

	assert.Equal(t, models.ReportFormatCSV, result.Format)
	assert.True(t, strings.HasPrefix(result.URL, "/api/reports/download?token="))
	assert.True(t, strings.HasSuffix(result.URL, result.Token))
	assert.True(t, strings.HasSuffix(result.RelativePath, ".csv"))

	file, err := svc.Open(result.RelativePath)
	require.NoError(t, err)
	defer file.Close()
	raw, err := io.ReadAll(file)
	require.NoError(t, err)

	content := string(raw)
	assert.Contains(t, content, "Student ID,Course,Completion (%),Time Spent (h),Last Accessed")
	assert.Contains(t, content, "student-1,Introduction to Python Programming,42.50,3.25,2026-03-10T09:30:00Z")
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	svc := newTestExportService(t, nil, nil)

	job := &models.ReportJob{
		ID:     "job-9",
		Type:   models.ReportTypeProgress,
		Params: models.ReportJobParams{TeacherID: "teacher-1", Format: models.ReportFormatCSV},
	}
	result, err := svc.Generate(context.Background(), job)
	require.NoError(t, err)

	jobID, relPath, expiresAt, err := svc.ParseToken(result.Token, false)
	require.NoError(t, err)
	assert.Equal(t, "job-9", jobID)
	assert.Equal(t, result.RelativePath, relPath)
	assert.True(t, expiresAt.After(time.Now()))
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	svc := newTestExportService(t, nil, nil)

	_, err := svc.Generate(context.Background(), &models.ReportJob{
		ID:     "job-2",
		Type:   models.ReportTypeProgress,
		Params: models.ReportJobParams{TeacherID: "teacher-1", Format: models.ReportFormat("xlsx")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestGenerateUnsupportedType(t *testing.T) {
	svc := newTestExportService(t, nil, nil)

	_, err := svc.Generate(context.Background(), &models.ReportJob{
		ID:     "job-3",
		Type:   models.ReportType("engagement"),
		Params: models.ReportJobParams{TeacherID: "teacher-1", Format: models.ReportFormatCSV},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report type")
}

func TestGenerateFilenameSanitized(t *testing.T) {
	svc := newTestExportService(t, nil, nil)

	job := &models.ReportJob{
		ID:     "job-4",
		Type:   models.ReportTypeProgress,
		Params: models.ReportJobParams{TeacherID: "teacher/../one", Format: models.ReportFormatCSV},
	}
	result, err := svc.Generate(context.Background(), job)
	require.NoError(t, err)
	assert.NotContains(t, result.RelativePath, "..")
}
