package repository

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novazone/learnhub-api/internal/models"
)

func TestQuizFindByCourseID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewQuizRepository(db)

	questions, err := json.Marshal([]models.QuizQuestion{{ID: "q1", Question: "What?", Options: []string{"a", "b"}, CorrectAnswer: 1}})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "course_id", "title", "questions", "created_at"}).
		AddRow("quiz_1", "course_1", "Course Assessment", questions, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, course_id, title, questions, created_at FROM quizzes WHERE course_id = $1 LIMIT 1")).
		WithArgs("course_1").
		WillReturnRows(rows)

	quiz, err := repo.FindByCourseID(context.Background(), "course_1")
	require.NoError(t, err)
	assert.Equal(t, "Course Assessment", quiz.Title)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, 1, quiz.Questions[0].CorrectAnswer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizCreateUsesUpsert(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewQuizRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (course_id) DO NOTHING")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	quiz := &models.Quiz{CourseID: "course_1", Title: "Course Assessment", Questions: models.QuestionList{}}
	err := repo.Create(context.Background(), quiz)
	require.NoError(t, err)
	assert.NotEmpty(t, quiz.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizCreateSubmission(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewQuizRepository(db)

	mock.ExpectExec("INSERT INTO quiz_submissions").WillReturnResult(sqlmock.NewResult(1, 1))

	sub := &models.QuizSubmission{QuizID: "quiz_1", StudentID: "student_1", Answers: models.AnswerList{1, 2}, Score: 100}
	err := repo.CreateSubmission(context.Background(), sub)
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
