package models

import "time"

// UserRole represents the account roles the platform supports.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
)

// Valid reports whether the role is one of the supported values.
func (r UserRole) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// User represents an account stored in the users table. The password hash is
// never serialized.
type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	ProfileImage *string   `db:"profile_image" json:"profile_image,omitempty"`
	Bio          *string   `db:"bio" json:"bio,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// PublicUser is the externally visible view of an account.
type PublicUser struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	FullName     string   `json:"full_name"`
	Role         UserRole `json:"role"`
	ProfileImage *string  `json:"profile_image,omitempty"`
	Bio          *string  `json:"bio,omitempty"`
}

// Public strips credentials from the stored record.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		Role:         u.Role,
		ProfileImage: u.ProfileImage,
		Bio:          u.Bio,
	}
}
