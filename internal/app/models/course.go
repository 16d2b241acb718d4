package models

import "time"

// Course represents a catalog entry offered by a department.
type Course struct {
	ID              int64     `json:"id" db:"id"`
	CourseCode      string    `json:"courseCode" db:"course_code" example:"CSC101"` // Unique constraint
	CourseTitle     string    `json:"courseTitle" db:"course_title" example:"Introduction to Computing"`
	Units           int       `json:"units" db:"units" example:"3"` // Credit weight, 1-6
	Department      string    `json:"department" db:"department"`
	Level           Level     `json:"level" db:"level"`
	Semester        Semester  `json:"semester" db:"semester"`
	AcademicSession *string   `json:"academicSession,omitempty" db:"academic_session"` // Nullable; a NULL session matches any session
	Description     *string   `json:"description,omitempty" db:"description"`          // Nullable
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// SessionMatches reports whether the course is offered in the given academic
// session. Courses without a session (legacy/admin-entered rows) match any
// session.
func (c *Course) SessionMatches(session string) bool {
	if c.AcademicSession == nil || *c.AcademicSession == "" {
		return true
	}
	return *c.AcademicSession == session
}
