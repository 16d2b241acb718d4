package dto

import (
	"time"

	"github.com/osunpoly/polyreg/internal/app/models"
)

// ProfileResponse represents a student profile
type ProfileResponse struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullName"`
	MatricNumber string    `json:"matricNumber"`
	Department   string    `json:"department"`
	Level        string    `json:"level" example:"ND1"`
	FeesPaid     bool      `json:"feesPaid"`
	AdminCreated bool      `json:"adminCreated"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UpdateProfileRequest represents profile update data
type UpdateProfileRequest struct {
	FullName   string       `json:"fullName" binding:"required"`
	Department string       `json:"department" binding:"required"`
	Level      models.Level `json:"level" binding:"required"`
}

// NewProfileResponse maps a profile model to its response shape
func NewProfileResponse(p *models.StudentProfile) *ProfileResponse {
	if p == nil {
		return nil
	}
	return &ProfileResponse{
		ID:           p.ID,
		FullName:     p.FullName,
		MatricNumber: p.MatricNumber,
		Department:   p.Department,
		Level:        string(p.Level),
		FeesPaid:     p.FeesPaid,
		AdminCreated: p.AdminCreated,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
