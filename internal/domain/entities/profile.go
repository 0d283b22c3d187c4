package entities

import "time"

// Profile holds the student details shown on the profile screen
type Profile struct {
	UserID         string    `json:"user_id" db:"user_id"`
	FullName       string    `json:"full_name" db:"full_name"`
	University     string    `json:"university,omitempty" db:"university"`
	Program        string    `json:"program,omitempty" db:"program"`
	GraduationYear int       `json:"graduation_year,omitempty" db:"graduation_year"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
