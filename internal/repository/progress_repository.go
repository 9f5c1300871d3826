package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/novazone/learnhub-api/internal/models"
)

const progressColumns = `id, student_id, course_id, course_title, completion_percentage, last_accessed, time_spent_hours, quiz_scores`

// ProgressRepository handles persistence of progress records.
type ProgressRepository struct {
	db *sqlx.DB
}

// NewProgressRepository constructs the repository.
func NewProgressRepository(db *sqlx.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Create inserts a new progress record.
func (r *ProgressRepository) Create(ctx context.Context, progress *models.Progress) error {
	if progress.ID == "" {
		progress.ID = uuid.NewString()
	}
	if progress.LastAccessed.IsZero() {
		progress.LastAccessed = time.Now().UTC()
	}
	if progress.QuizScores == nil {
		progress.QuizScores = pq.Float64Array{}
	}
	const query = `INSERT INTO progress (id, student_id, course_id, course_title, completion_percentage, last_accessed, time_spent_hours, quiz_scores)
        VALUES (:id, :student_id, :course_id, :course_title, :completion_percentage, :last_accessed, :time_spent_hours, :quiz_scores)`
	if _, err := r.db.NamedExecContext(ctx, query, progress); err != nil {
		return fmt.Errorf("create progress: %w", err)
	}
	return nil
}

// FindByID returns a single progress record.
func (r *ProgressRepository) FindByID(ctx context.Context, id string) (*models.Progress, error) {
	query := fmt.Sprintf("SELECT %s FROM progress WHERE id = $1", progressColumns)
	var record models.Progress
	if err := r.db.GetContext(ctx, &record, query, id); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByStudent returns a student's progress records.
func (r *ProgressRepository) ListByStudent(ctx context.Context, studentID string, limit int) ([]models.Progress, error) {
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf("SELECT %s FROM progress WHERE student_id = $1 LIMIT %d", progressColumns, limit)
	var records []models.Progress
	if err := r.db.SelectContext(ctx, &records, query, studentID); err != nil {
		return nil, fmt.Errorf("list student progress: %w", err)
	}
	return records, nil
}

// ListByCourseIDs returns progress records for any of the given courses.
func (r *ProgressRepository) ListByCourseIDs(ctx context.Context, courseIDs []string, limit int) ([]models.Progress, error) {
	if len(courseIDs) == 0 {
		return []models.Progress{}, nil
	}
	if limit <= 0 {
		limit = 100
	}
	placeholders := make([]string, len(courseIDs))
	args := make([]interface{}, len(courseIDs))
	for i, id := range courseIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := fmt.Sprintf("SELECT %s FROM progress WHERE course_id IN (%s) LIMIT %d", progressColumns, strings.Join(placeholders, ","), limit)
	var records []models.Progress
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("list course progress: %w", err)
	}
	return records, nil
}

// ExistsForStudentCourse reports whether a (student, course) record exists.
func (r *ProgressRepository) ExistsForStudentCourse(ctx context.Context, studentID, courseID string) (bool, error) {
	const query = `SELECT 1 FROM progress WHERE student_id = $1 AND course_id = $2 LIMIT 1`
	var one int
	if err := r.db.GetContext(ctx, &one, query, studentID, courseID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check progress: %w", err)
	}
	return true, nil
}

// UpdateProgress overwrites completion and time spent, stamping last_accessed.
func (r *ProgressRepository) UpdateProgress(ctx context.Context, id string, completion, timeSpent float64, accessedAt time.Time) error {
	const query = `UPDATE progress SET completion_percentage = $2, time_spent_hours = $3, last_accessed = $4 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, completion, timeSpent, accessedAt); err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	return nil
}
