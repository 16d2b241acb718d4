package dto

import (
	"encoding/json"
	"time"

	"github.com/osunpoly/polyreg/internal/app/models"
)

// AdminRequest is the envelope every admin gateway endpoint accepts.
// Payload is decoded per action by the dispatching controller.
type AdminRequest struct {
	Action  string          `json:"action" binding:"required"`
	Payload json.RawMessage `json:"payload"`
}

// AdminResponse mirrors the gateway contract: success flag plus either
// a result or an error message, never both.
type AdminResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// NewAdminSuccess builds a successful gateway response
func NewAdminSuccess(data interface{}) AdminResponse {
	return AdminResponse{Success: true, Data: data}
}

// NewAdminError builds a failed gateway response
func NewAdminError(message string) AdminResponse {
	return AdminResponse{Success: false, Error: message}
}

// AdminAuthRequest carries operator credentials for the admin console
type AdminAuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminAuthResponse is returned when operator credentials check out
type AdminAuthResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token,omitempty"`
	ExpiresIn int64  `json:"expiresIn,omitempty"`
}

// ListStudentsRequest selects a page of the student list. Zero values fall
// back to the query-string pagination defaults.
type ListStudentsRequest struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// ToggleFeesRequest flips a student's fees flag. The legacy console posts
// {id, fees_paid}, newer clients post {profileId, feesPaid}; both decode
// into the same request.
type ToggleFeesRequest struct {
	ProfileID int64 `json:"profileId" binding:"required,min=1"`
	FeesPaid  bool  `json:"feesPaid"`
}

// UnmarshalJSON accepts both the legacy and the current key spellings
func (r *ToggleFeesRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		ProfileID      int64 `json:"profileId"`
		ID             int64 `json:"id"`
		FeesPaid       *bool `json:"feesPaid"`
		FeesPaidLegacy *bool `json:"fees_paid"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.ProfileID = raw.ProfileID
	if r.ProfileID == 0 {
		r.ProfileID = raw.ID
	}
	switch {
	case raw.FeesPaid != nil:
		r.FeesPaid = *raw.FeesPaid
	case raw.FeesPaidLegacy != nil:
		r.FeesPaid = *raw.FeesPaidLegacy
	}
	return nil
}

// CreateStudentRequest provisions a student account from the admin console
type CreateStudentRequest struct {
	FullName     string       `json:"fullName" binding:"required"`
	MatricNumber string       `json:"matricNumber" binding:"required"`
	Department   string       `json:"department" binding:"required"`
	Level        models.Level `json:"level" binding:"required"`
	FeesPaid     bool         `json:"feesPaid"`
}

// AdminStudentResponse is a profile as seen from the admin console.
// TemporaryPassword is only populated right after createStudent.
type AdminStudentResponse struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"userId"`
	FullName          string    `json:"fullName"`
	MatricNumber      string    `json:"matricNumber"`
	Department        string    `json:"department"`
	Level             string    `json:"level"`
	FeesPaid          bool      `json:"feesPaid"`
	AdminCreated      bool      `json:"adminCreated"`
	TemporaryPassword *string   `json:"temporaryPassword,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// NewAdminStudentResponse maps a profile model to its admin view
func NewAdminStudentResponse(p *models.StudentProfile) *AdminStudentResponse {
	if p == nil {
		return nil
	}
	return &AdminStudentResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		FullName:          p.FullName,
		MatricNumber:      p.MatricNumber,
		Department:        p.Department,
		Level:             string(p.Level),
		FeesPaid:          p.FeesPaid,
		AdminCreated:      p.AdminCreated,
		TemporaryPassword: p.TemporaryPassword,
		CreatedAt:         p.CreatedAt,
	}
}

// NewAdminStudentResponseList maps a slice of profiles
func NewAdminStudentResponseList(profiles []models.StudentProfile) []AdminStudentResponse {
	out := make([]AdminStudentResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, *NewAdminStudentResponse(&profiles[i]))
	}
	return out
}
