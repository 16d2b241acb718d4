package dto

import "time"

// SubmitRegistrationRequest represents a full-semester course submission
type SubmitRegistrationRequest struct {
	AcademicSession string  `json:"academicSession" binding:"required"`
	Semester        string  `json:"semester" binding:"required"`
	CourseIDs       []int64 `json:"courseIds" binding:"required,min=1,dive,min=1"`
}

// RegisteredCourseResponse represents one registered course row
type RegisteredCourseResponse struct {
	RegistrationID   int64     `json:"registrationId"`
	CourseID         int64     `json:"courseId"`
	CourseCode       string    `json:"courseCode"`
	CourseTitle      string    `json:"courseTitle"`
	Units            int       `json:"units"`
	Status           string    `json:"status" example:"active"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// RegistrationGroupResponse groups a student's registrations for one term
type RegistrationGroupResponse struct {
	AcademicSession string                     `json:"academicSession" example:"2024/2025"`
	Semester        string                     `json:"semester" example:"First"`
	TotalUnits      int                        `json:"totalUnits" example:"18"`
	Courses         []RegisteredCourseResponse `json:"courses"`
}

// RegistrationSlipResponse carries the printable slip and its filename
type RegistrationSlipResponse struct {
	Filename string `json:"filename" example:"registration-ND-CS-23-0041-2024-2025-First.txt"`
	Content  string `json:"content"`
}
