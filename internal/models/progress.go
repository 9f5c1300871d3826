package models

import (
	"time"

	"github.com/lib/pq"
)

// Progress tracks one student's advancement through one course. A record is
// created at enrollment and mutated in place afterwards; course_title is a
// snapshot taken at enrollment time.
type Progress struct {
	ID                   string          `db:"id" json:"id"`
	StudentID            string          `db:"student_id" json:"student_id"`
	CourseID             string          `db:"course_id" json:"course_id"`
	CourseTitle          string          `db:"course_title" json:"course_title"`
	CompletionPercentage float64         `db:"completion_percentage" json:"completion_percentage"`
	LastAccessed         time.Time       `db:"last_accessed" json:"last_accessed"`
	TimeSpentHours       float64         `db:"time_spent_hours" json:"time_spent_hours"`
	QuizScores           pq.Float64Array `db:"quiz_scores" json:"quiz_scores"`
}

// ProgressStats aggregates a student's progress records.
type ProgressStats struct {
	TotalCourses      int     `json:"total_courses"`
	AverageCompletion float64 `json:"average_completion"`
	TotalTimeHours    float64 `json:"total_time_hours"`
}
