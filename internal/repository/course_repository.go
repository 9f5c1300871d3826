package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/novazone/learnhub-api/internal/models"
)

const courseColumns = `id, title, description, teacher_id, teacher_name, subject, difficulty_level, duration_hours, image, enrolled_students, rating, total_lessons, created_at`

// CourseRepository handles persistence of catalog entries.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs the repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns courses matching the optional equality filters, capped at 50.
func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	var conditions []string
	var args []interface{}

	if filter.Subject != "" {
		conditions = append(conditions, fmt.Sprintf("subject = $%d", len(args)+1))
		args = append(args, filter.Subject)
	}
	if filter.Difficulty != "" {
		conditions = append(conditions, fmt.Sprintf("difficulty_level = $%d", len(args)+1))
		args = append(args, filter.Difficulty)
	}

	query := fmt.Sprintf("SELECT %s FROM courses", courseColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " LIMIT 50"

	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// FindByID returns a course by identifier.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	query := fmt.Sprintf("SELECT %s FROM courses WHERE id = $1 LIMIT 1", courseColumns)
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		return nil, err
	}
	return &course, nil
}

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	if course.EnrolledStudents == nil {
		course.EnrolledStudents = pq.StringArray{}
	}
	const query = `INSERT INTO courses (id, title, description, teacher_id, teacher_name, subject, difficulty_level, duration_hours, image, enrolled_students, rating, total_lessons, created_at)
        VALUES (:id, :title, :description, :teacher_id, :teacher_name, :subject, :difficulty_level, :duration_hours, :image, :enrolled_students, :rating, :total_lessons, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// AddEnrolledStudent appends the student to the course's enrollment set.
// Re-enrolling is a no-op, and an unknown course id matches zero rows.
func (r *CourseRepository) AddEnrolledStudent(ctx context.Context, courseID, studentID string) error {
	const query = `UPDATE courses SET enrolled_students = array_append(enrolled_students, $2) WHERE id = $1 AND NOT ($2 = ANY(enrolled_students))`
	if _, err := r.db.ExecContext(ctx, query, courseID, studentID); err != nil {
		return fmt.Errorf("add enrolled student: %w", err)
	}
	return nil
}

// ListEnrolled returns courses whose enrollment set contains the student.
func (r *CourseRepository) ListEnrolled(ctx context.Context, studentID string, limit int) ([]models.Course, error) {
	if limit <= 0 {
		limit = 10
	}
	query := fmt.Sprintf("SELECT %s FROM courses WHERE $1 = ANY(enrolled_students) LIMIT %d", courseColumns, limit)
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, studentID); err != nil {
		return nil, fmt.Errorf("list enrolled courses: %w", err)
	}
	return courses, nil
}

// ListByTeacher returns courses created by a teacher.
func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID string, limit int) ([]models.Course, error) {
	if limit <= 0 {
		limit = 20
	}
	query := fmt.Sprintf("SELECT %s FROM courses WHERE teacher_id = $1 LIMIT %d", courseColumns, limit)
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, teacherID); err != nil {
		return nil, fmt.Errorf("list teacher courses: %w", err)
	}
	return courses, nil
}

// DeleteAll wipes the courses table. Used by the seed loader.
func (r *CourseRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM courses`); err != nil {
		return fmt.Errorf("delete courses: %w", err)
	}
	return nil
}
