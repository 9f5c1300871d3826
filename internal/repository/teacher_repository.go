package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/novazone/learnhub-api/internal/models"
)

// TeacherRepository handles persistence of teaching profiles.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs the repository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// Create inserts a new teacher profile.
func (r *TeacherRepository) Create(ctx context.Context, profile *models.TeacherProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if profile.Subjects == nil {
		profile.Subjects = pq.StringArray{}
	}
	const query = `INSERT INTO teachers (id, user_id, full_name, email, subjects, experience_years, rating, total_students, bio, profile_image, hourly_rate)
        VALUES (:id, :user_id, :full_name, :email, :subjects, :experience_years, :rating, :total_students, :bio, :profile_image, :hourly_rate)`
	if _, err := r.db.NamedExecContext(ctx, query, profile); err != nil {
		return fmt.Errorf("create teacher profile: %w", err)
	}
	return nil
}

// List returns teacher profiles, optionally filtered by subject membership.
func (r *TeacherRepository) List(ctx context.Context, subject string, limit int) ([]models.TeacherProfile, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	query := `SELECT id, user_id, full_name, email, subjects, experience_years, rating, total_students, bio, profile_image, hourly_rate FROM teachers`
	args := []interface{}{}
	if subject != "" {
		query += ` WHERE $1 = ANY(subjects)`
		args = append(args, subject)
	}
	query += fmt.Sprintf(" LIMIT %d", limit)

	var teachers []models.TeacherProfile
	if err := r.db.SelectContext(ctx, &teachers, query, args...); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// FindByUserID returns the profile linked to the given user.
func (r *TeacherRepository) FindByUserID(ctx context.Context, userID string) (*models.TeacherProfile, error) {
	const query = `SELECT id, user_id, full_name, email, subjects, experience_years, rating, total_students, bio, profile_image, hourly_rate FROM teachers WHERE user_id = $1 LIMIT 1`
	var profile models.TeacherProfile
	if err := r.db.GetContext(ctx, &profile, query, userID); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateByUserID applies a partial profile update keyed by user_id; nil
// request fields are left untouched.
func (r *TeacherRepository) UpdateByUserID(ctx context.Context, userID string, req models.UpdateTeacherProfileRequest) error {
	sets := make([]string, 0, 4)
	args := []interface{}{userID}
	if req.Subjects != nil {
		args = append(args, pq.StringArray(req.Subjects))
		sets = append(sets, fmt.Sprintf("subjects = $%d", len(args)))
	}
	if req.ExperienceYears != nil {
		args = append(args, *req.ExperienceYears)
		sets = append(sets, fmt.Sprintf("experience_years = $%d", len(args)))
	}
	if req.Bio != nil {
		args = append(args, *req.Bio)
		sets = append(sets, fmt.Sprintf("bio = $%d", len(args)))
	}
	if req.HourlyRate != nil {
		args = append(args, *req.HourlyRate)
		sets = append(sets, fmt.Sprintf("hourly_rate = $%d", len(args)))
	}
	if len(sets) == 0 {
		return nil
	}
	query := fmt.Sprintf("UPDATE teachers SET %s WHERE user_id = $1", strings.Join(sets, ", "))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update teacher profile: %w", err)
	}
	return nil
}

// DeleteAll wipes the teachers table. Used by the seed loader.
func (r *TeacherRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM teachers`); err != nil {
		return fmt.Errorf("delete teachers: %w", err)
	}
	return nil
}
