package models

import "github.com/lib/pq"

// TeacherProfile is the public teaching profile linked 1:1 to a user with the
// teacher role. It is created empty at registration; full_name and email are
// snapshots of the user record at that moment.
type TeacherProfile struct {
	ID              string         `db:"id" json:"id"`
	UserID          string         `db:"user_id" json:"user_id"`
	FullName        string         `db:"full_name" json:"full_name"`
	Email           string         `db:"email" json:"email"`
	Subjects        pq.StringArray `db:"subjects" json:"subjects"`
	ExperienceYears int            `db:"experience_years" json:"experience_years"`
	Rating          float64        `db:"rating" json:"rating"`
	TotalStudents   int            `db:"total_students" json:"total_students"`
	Bio             *string        `db:"bio" json:"bio,omitempty"`
	ProfileImage    *string        `db:"profile_image" json:"profile_image,omitempty"`
	HourlyRate      *float64       `db:"hourly_rate" json:"hourly_rate,omitempty"`
}

// UpdateTeacherProfileRequest carries a partial profile update; nil fields are
// left untouched.
type UpdateTeacherProfileRequest struct {
	Subjects        []string `json:"subjects"`
	ExperienceYears *int     `json:"experience_years" validate:"omitempty,gte=0"`
	Bio             *string  `json:"bio"`
	HourlyRate      *float64 `json:"hourly_rate" validate:"omitempty,gte=0"`
}
