package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
)

type progressRepository interface {
	FindByID(ctx context.Context, id string) (*models.Progress, error)
	ListByStudent(ctx context.Context, studentID string, limit int) ([]models.Progress, error)
	UpdateProgress(ctx context.Context, id string, completion, timeSpent float64, accessedAt time.Time) error
}

type progressInsights interface {
	AnalyzeProgress(studentID string) models.ProgressAnalysis
}

// ProgressService covers the progress overview and in-place updates.
type ProgressService struct {
	progress progressRepository
	insights progressInsights
	logger   *zap.Logger
}

// NewProgressService constructs a ProgressService instance.
func NewProgressService(progress progressRepository, insights progressInsights, logger *zap.Logger) *ProgressService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgressService{progress: progress, insights: insights, logger: logger}
}

const progressListLimit = 50

// Overview returns a student's records, aggregate stats and the canned
// analysis. An unknown student yields empty records and zeroed stats.
func (s *ProgressService) Overview(ctx context.Context, studentID string) (*models.ProgressOverview, error) {
	records, err := s.progress.ListByStudent(ctx, studentID, progressListLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list progress")
	}

	stats := models.ProgressStats{TotalCourses: len(records)}
	for _, rec := range records {
		stats.AverageCompletion += rec.CompletionPercentage
		stats.TotalTimeHours += rec.TimeSpentHours
	}
	if len(records) > 0 {
		stats.AverageCompletion /= float64(len(records))
	}

	return &models.ProgressOverview{
		Courses:    records,
		Stats:      stats,
		AIAnalysis: s.insights.AnalyzeProgress(studentID),
	}, nil
}

// Update overwrites completion and time spent on a record and stamps
// last_accessed. Completion is clamped to [0,100] and hours floored at 0.
func (s *ProgressService) Update(ctx context.Context, id string, completion, timeSpent float64) (*models.Progress, error) {
	if completion < 0 {
		completion = 0
	}
	if completion > 100 {
		completion = 100
	}
	if timeSpent < 0 {
		timeSpent = 0
	}

	if _, err := s.progress.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "progress record not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch progress record")
	}

	now := time.Now().UTC()
	if err := s.progress.UpdateProgress(ctx, id, completion, timeSpent, now); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update progress")
	}

	updated, err := s.progress.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch updated progress")
	}
	return updated, nil
}
