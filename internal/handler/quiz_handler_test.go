package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
)

type fakeQuizService struct {
	quiz      *models.Quiz
	quizErr   error
	courseID  string
	result    *models.QuizResult
	submitErr error
	studentID string
}

func (f *fakeQuizService) GetForCourse(ctx context.Context, courseID string) (*models.Quiz, error) {
	f.courseID = courseID
	return f.quiz, f.quizErr
}

func (f *fakeQuizService) Submit(ctx context.Context, studentID string, req models.SubmitQuizRequest) (*models.QuizResult, error) {
	f.studentID = studentID
	return f.result, f.submitErr
}

func TestQuizGetForCourse(t *testing.T) {
	svc := &fakeQuizService{quiz: &models.Quiz{ID: "quiz-1", CourseID: "course_1", Title: "Course Assessment"}}
	h := NewQuizHandler(svc)

	c, w := newTestContext(t, http.MethodGet, "/api/quiz/course_1", nil)
	c.Params = gin.Params{{Key: "courseId", Value: "course_1"}}
	h.GetForCourse(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "course_1", svc.courseID)

	env := decodeEnvelope(t, w)
	var quiz models.Quiz
	require.NoError(t, json.Unmarshal(env.Data, &quiz))
	assert.Equal(t, "Course Assessment", quiz.Title)
}

func TestQuizSubmitRequiresClaims(t *testing.T) {
	h := NewQuizHandler(&fakeQuizService{})

	c, w := newTestContext(t, http.MethodPost, "/api/quiz/submit", models.SubmitQuizRequest{QuizID: "quiz-1"})
	h.Submit(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestQuizSubmitReturnsResult(t *testing.T) {
	svc := &fakeQuizService{result: &models.QuizResult{Score: 50, CorrectAnswers: 1, TotalQuestions: 2, Percentage: 50}}
	h := NewQuizHandler(svc)

	c, w := newTestContext(t, http.MethodPost, "/api/quiz/submit", models.SubmitQuizRequest{
		QuizID: "quiz-1", Answers: []int{1, 0},
	})
	setClaims(c, "student-1", models.RoleStudent, "Alex")
	h.Submit(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "student-1", svc.studentID)

	env := decodeEnvelope(t, w)
	var result models.QuizResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 50.0, result.Score)
	assert.Equal(t, 1, result.CorrectAnswers)
}

func TestQuizSubmitUnknownQuiz(t *testing.T) {
	h := NewQuizHandler(&fakeQuizService{submitErr: appErrors.ErrNotFound})

	c, w := newTestContext(t, http.MethodPost, "/api/quiz/submit", models.SubmitQuizRequest{QuizID: "missing"})
	setClaims(c, "student-1", models.RoleStudent, "Alex")
	h.Submit(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
