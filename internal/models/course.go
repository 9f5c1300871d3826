package models

import (
	"time"

	"github.com/lib/pq"
)

// Difficulty levels accepted for courses.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Course represents a catalog entry. teacher_name is a snapshot of the
// creating teacher's name and is not kept in sync afterwards.
type Course struct {
	ID               string         `db:"id" json:"id"`
	Title            string         `db:"title" json:"title"`
	Description      string         `db:"description" json:"description"`
	TeacherID        string         `db:"teacher_id" json:"teacher_id"`
	TeacherName      string         `db:"teacher_name" json:"teacher_name"`
	Subject          string         `db:"subject" json:"subject"`
	DifficultyLevel  string         `db:"difficulty_level" json:"difficulty_level"`
	DurationHours    int            `db:"duration_hours" json:"duration_hours"`
	Image            *string        `db:"image" json:"image,omitempty"`
	EnrolledStudents pq.StringArray `db:"enrolled_students" json:"enrolled_students"`
	Rating           float64        `db:"rating" json:"rating"`
	TotalLessons     int            `db:"total_lessons" json:"total_lessons"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
}

// CreateCourseRequest is the payload for course creation.
type CreateCourseRequest struct {
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	Subject         string  `json:"subject" validate:"required"`
	DifficultyLevel string  `json:"difficulty_level" validate:"required,oneof=beginner intermediate advanced"`
	DurationHours   int     `json:"duration_hours" validate:"gte=0"`
	Image           *string `json:"image"`
	TotalLessons    int     `json:"total_lessons" validate:"gte=0"`
}

// CourseFilter captures the optional catalog listing filters.
type CourseFilter struct {
	Subject    string
	Difficulty string
}
