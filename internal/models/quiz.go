package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// QuizQuestion is a single multiple-choice question. correct_answer indexes
// into options.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   *string  `json:"explanation,omitempty"`
}

// QuestionList persists an ordered question sequence as JSONB.
type QuestionList []QuizQuestion

// Value marshals the question list for persistence.
func (q QuestionList) Value() (driver.Value, error) {
	if q == nil {
		q = QuestionList{}
	}
	data, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("marshal quiz questions: %w", err)
	}
	return data, nil
}

// Scan unmarshals JSON payloads into the question list.
func (q *QuestionList) Scan(value interface{}) error {
	return scanJSON(value, q, "QuestionList")
}

// AnswerList persists an ordered sequence of selected option indices as JSONB.
type AnswerList []int

// Value marshals the answer list for persistence.
func (a AnswerList) Value() (driver.Value, error) {
	if a == nil {
		a = AnswerList{}
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal quiz answers: %w", err)
	}
	return data, nil
}

// Scan unmarshals JSON payloads into the answer list.
func (a *AnswerList) Scan(value interface{}) error {
	return scanJSON(value, a, "AnswerList")
}

// Quiz is the per-course assessment, created lazily on first read.
type Quiz struct {
	ID        string       `db:"id" json:"id"`
	CourseID  string       `db:"course_id" json:"course_id"`
	Title     string       `db:"title" json:"title"`
	Questions QuestionList `db:"questions" json:"questions"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
}

// QuizSubmission records a scored attempt. score and student_id are always
// computed server-side regardless of what the client sent.
type QuizSubmission struct {
	ID          string     `db:"id" json:"id"`
	QuizID      string     `db:"quiz_id" json:"quiz_id"`
	StudentID   string     `db:"student_id" json:"student_id"`
	Answers     AnswerList `db:"answers" json:"answers"`
	Score       float64    `db:"score" json:"score"`
	CompletedAt time.Time  `db:"completed_at" json:"completed_at"`
}

// SubmitQuizRequest is the payload for quiz submission.
type SubmitQuizRequest struct {
	QuizID  string `json:"quiz_id" validate:"required"`
	Answers []int  `json:"answers"`
}

// QuizResult summarizes a scored submission for the response.
type QuizResult struct {
	Score          float64 `json:"score"`
	CorrectAnswers int     `json:"correct_answers"`
	TotalQuestions int     `json:"total_questions"`
	Percentage     float64 `json:"percentage"`
}

func scanJSON(value interface{}, dest interface{}, name string) error {
	if value == nil {
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for %s", value, name)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal %s: %w", name, err)
	}
	return nil
}
