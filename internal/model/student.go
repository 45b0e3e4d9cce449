package model

import "time"

// Student is an alumno record. Lessons reference students by name,
// not by id, so renaming a student does not rewrite history.
type Student struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Level     string    `json:"level"`
	Subjects  []string  `json:"subjects"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
