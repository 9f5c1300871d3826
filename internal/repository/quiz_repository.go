package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/novazone/learnhub-api/internal/models"
)

// QuizRepository handles persistence of quizzes and submissions.
type QuizRepository struct {
	db *sqlx.DB
}

// NewQuizRepository constructs the repository.
func NewQuizRepository(db *sqlx.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

// FindByCourseID returns the quiz attached to a course.
func (r *QuizRepository) FindByCourseID(ctx context.Context, courseID string) (*models.Quiz, error) {
	const query = `SELECT id, course_id, title, questions, created_at FROM quizzes WHERE course_id = $1 LIMIT 1`
	var quiz models.Quiz
	if err := r.db.GetContext(ctx, &quiz, query, courseID); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// FindByID returns a quiz by identifier.
func (r *QuizRepository) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	const query = `SELECT id, course_id, title, questions, created_at FROM quizzes WHERE id = $1 LIMIT 1`
	var quiz models.Quiz
	if err := r.db.GetContext(ctx, &quiz, query, id); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// Create inserts a quiz for a course. The course_id unique constraint plus
// ON CONFLICT DO NOTHING make concurrent first reads converge on one row;
// callers should re-read after a conflict.
func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	if quiz.ID == "" {
		quiz.ID = uuid.NewString()
	}
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO quizzes (id, course_id, title, questions, created_at)
        VALUES (:id, :course_id, :title, :questions, :created_at)
        ON CONFLICT (course_id) DO NOTHING`
	if _, err := r.db.NamedExecContext(ctx, query, quiz); err != nil {
		return fmt.Errorf("create quiz: %w", err)
	}
	return nil
}

// CreateSubmission persists a scored attempt.
func (r *QuizRepository) CreateSubmission(ctx context.Context, submission *models.QuizSubmission) error {
	if submission.ID == "" {
		submission.ID = uuid.NewString()
	}
	if submission.CompletedAt.IsZero() {
		submission.CompletedAt = time.Now().UTC()
	}
	const query = `INSERT INTO quiz_submissions (id, quiz_id, student_id, answers, score, completed_at)
        VALUES (:id, :quiz_id, :student_id, :answers, :score, :completed_at)`
	if _, err := r.db.NamedExecContext(ctx, query, submission); err != nil {
		return fmt.Errorf("create quiz submission: %w", err)
	}
	return nil
}
