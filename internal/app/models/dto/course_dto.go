package dto

import (
	"time"

	"github.com/osunpoly/polyreg/internal/app/models"
)

// CourseResponse represents a catalog course
type CourseResponse struct {
	ID              int64     `json:"id"`
	CourseCode      string    `json:"courseCode" example:"CSC101"`
	CourseTitle     string    `json:"courseTitle" example:"Introduction to Computing"`
	Units           int       `json:"units" example:"3"`
	Department      string    `json:"department" example:"Computer Science"`
	Level           string    `json:"level" example:"ND1"`
	Semester        string    `json:"semester" example:"First"`
	AcademicSession *string   `json:"academicSession,omitempty" example:"2024/2025"`
	Description     *string   `json:"description,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CatalogQuery represents catalog filter parameters
type CatalogQuery struct {
	Department string `form:"department"`
	Level      string `form:"level"`
	Semester   string `form:"semester"`
	Session    string `form:"session"`
}

// CreateCourseRequest represents a new catalog entry
type CreateCourseRequest struct {
	CourseCode      string          `json:"courseCode" binding:"required"`
	CourseTitle     string          `json:"courseTitle" binding:"required"`
	Units           int             `json:"units" binding:"required,min=1,max=6"`
	Department      string          `json:"department" binding:"required"`
	Level           models.Level    `json:"level" binding:"required"`
	Semester        models.Semester `json:"semester" binding:"required"`
	AcademicSession *string         `json:"academicSession"`
	Description     *string         `json:"description"`
}

// UpdateCourseRequest represents a catalog edit. ID identifies the row;
// only the fields that are present are applied, the rest keep their
// stored values.
type UpdateCourseRequest struct {
	ID              int64            `json:"id" binding:"required,min=1"`
	CourseCode      *string          `json:"courseCode"`
	CourseTitle     *string          `json:"courseTitle"`
	Units           *int             `json:"units" binding:"omitempty,min=1,max=6"`
	Department      *string          `json:"department"`
	Level           *models.Level    `json:"level"`
	Semester        *models.Semester `json:"semester"`
	AcademicSession *string          `json:"academicSession"`
	Description     *string          `json:"description"`
}

// DeleteCourseRequest identifies a catalog row to remove
type DeleteCourseRequest struct {
	ID int64 `json:"id" binding:"required,min=1"`
}

// NewCourseResponse maps a course model to its response shape
func NewCourseResponse(c *models.Course) *CourseResponse {
	if c == nil {
		return nil
	}
	return &CourseResponse{
		ID:              c.ID,
		CourseCode:      c.CourseCode,
		CourseTitle:     c.CourseTitle,
		Units:           c.Units,
		Department:      c.Department,
		Level:           string(c.Level),
		Semester:        string(c.Semester),
		AcademicSession: c.AcademicSession,
		Description:     c.Description,
		CreatedAt:       c.CreatedAt,
	}
}

// NewCourseResponseList maps a slice of course models
func NewCourseResponseList(courses []models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, *NewCourseResponse(&courses[i]))
	}
	return out
}
