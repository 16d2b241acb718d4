package models

import "time"

// CourseRegistration links a student account to a course for a given
// session and semester. One row per (student, course, session, semester);
// the unique constraint on those columns is the only guard against
// duplicate submissions racing each other.
type CourseRegistration struct {
	ID               int64              `json:"id" db:"id"`
	UserID           int64              `json:"userId" db:"user_id"`
	CourseID         int64              `json:"courseId" db:"course_id"`
	AcademicSession  string             `json:"academicSession" db:"academic_session" example:"2024/2025"`
	Semester         Semester           `json:"semester" db:"semester"`
	Status           RegistrationStatus `json:"status" db:"status" example:"active"`
	RegistrationDate time.Time          `json:"registrationDate" db:"registration_date"`

	// Relations (populated when needed)
	Course  *Course         `json:"course,omitempty"`
	Profile *StudentProfile `json:"profile,omitempty"`
}
