package service

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
)

type quizRepository interface {
	FindByCourseID(ctx context.Context, courseID string) (*models.Quiz, error)
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
	Create(ctx context.Context, quiz *models.Quiz) error
	CreateSubmission(ctx context.Context, submission *models.QuizSubmission) error
}

type quizInsights interface {
	GenerateQuizQuestions(courseID, topic string) []models.QuizQuestion
}

// QuizService covers lazily created course assessments and scoring.
type QuizService struct {
	quizzes   quizRepository
	insights  quizInsights
	validator *validator.Validate
	logger    *zap.Logger
}

// NewQuizService constructs a QuizService instance.
func NewQuizService(quizzes quizRepository, insights quizInsights, validate *validator.Validate, logger *zap.Logger) *QuizService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &QuizService{quizzes: quizzes, insights: insights, validator: validate, logger: logger}
}

// GetForCourse returns the course quiz, generating and persisting it on first
// read. Concurrent first reads converge on a single quiz: the insert does
// nothing on a course_id conflict and the winner is re-read.
func (s *QuizService) GetForCourse(ctx context.Context, courseID string) (*models.Quiz, error) {
	quiz, err := s.quizzes.FindByCourseID(ctx, courseID)
	if err == nil {
		return quiz, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch quiz")
	}

	generated := &models.Quiz{
		ID:        uuid.NewString(),
		CourseID:  courseID,
		Title:     "Course Assessment",
		Questions: s.insights.GenerateQuizQuestions(courseID, "programming"),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.quizzes.Create(ctx, generated); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create quiz")
	}

	quiz, err = s.quizzes.FindByCourseID(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch quiz")
	}
	return quiz, nil
}

// Submit scores an answer sheet against the stored quiz and records the
// attempt. Answers beyond the question count are ignored; missing answers
// count as wrong.
func (s *QuizService) Submit(ctx context.Context, studentID string, req models.SubmitQuizRequest) (*models.QuizResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid submission payload")
	}

	quiz, err := s.quizzes.FindByID(ctx, req.QuizID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "quiz not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch quiz")
	}

	total := len(quiz.Questions)
	correct := 0
	for i, question := range quiz.Questions {
		if i >= len(req.Answers) {
			break
		}
		if req.Answers[i] == question.CorrectAnswer {
			correct++
		}
	}

	score := 0.0
	if total > 0 {
		score = math.Round(float64(correct)/float64(total)*10000) / 100
	}

	submission := &models.QuizSubmission{
		ID:          uuid.NewString(),
		QuizID:      quiz.ID,
		StudentID:   studentID,
		Answers:     models.AnswerList(req.Answers),
		Score:       score,
		CompletedAt: time.Now().UTC(),
	}
	if err := s.quizzes.CreateSubmission(ctx, submission); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record submission")
	}

	return &models.QuizResult{
		Score:          score,
		CorrectAnswers: correct,
		TotalQuestions: total,
		Percentage:     score,
	}, nil
}
