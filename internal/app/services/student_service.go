package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/osunpoly/polyreg/internal/app/models"
	"github.com/osunpoly/polyreg/internal/app/models/dto"
	"github.com/osunpoly/polyreg/internal/pkg/apperrors"
	"github.com/osunpoly/polyreg/internal/pkg/auth"
	"github.com/osunpoly/polyreg/internal/pkg/helpers"
	"github.com/osunpoly/polyreg/internal/pkg/logger"
)

// studentProfileStore is the profile access the student service needs
type studentProfileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error)
	GetByID(ctx context.Context, id int64) (*models.StudentProfile, error)
	GetAll(ctx context.Context) ([]models.StudentProfile, error)
	Update(ctx context.Context, profile *models.StudentProfile) error
	SetFeesPaid(ctx context.Context, profileID int64, feesPaid bool) error
}

// StudentService handles student profiles, for both the student's own
// profile endpoints and the admin console
type StudentService struct {
	profiles studentProfileStore
	accounts accountStore
}

// NewStudentService creates a new student service instance
func NewStudentService(profiles studentProfileStore, accounts accountStore) *StudentService {
	return &StudentService{
		profiles: profiles,
		accounts: accounts,
	}
}

// GetProfile returns the profile belonging to a user account
func (s *StudentService) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewProfileResponse(profile), nil
}

// UpdateProfile replaces the editable fields of the caller's profile.
// The matric number and fees flag are not student-editable.
func (s *StudentService) UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if !models.ValidLevel(string(req.Level)) {
		return nil, apperrors.NewValidationError("level must be one of ND1, ND2, HND1, HND2")
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.FullName = strings.TrimSpace(req.FullName)
	profile.Department = strings.TrimSpace(req.Department)
	profile.Level = req.Level

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}

	return dto.NewProfileResponse(profile), nil
}

// ListStudents returns one page of student profiles for the admin console,
// newest first
func (s *StudentService) ListStudents(ctx context.Context, page, size int) (*dto.PaginatedResponse, error) {
	profiles, err := s.profiles.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	start := int(offset)
	if start > len(profiles) {
		start = len(profiles)
	}
	end := start + limit
	if end > len(profiles) {
		end = len(profiles)
	}

	// limit is the capped page size; reporting the raw request value would
	// disagree with the number of items actually returned
	return &dto.PaginatedResponse{
		Items:      dto.NewAdminStudentResponseList(profiles[start:end]),
		Pagination: helpers.NewPaginationInfo(int64(len(profiles)), page, limit),
	}, nil
}

// ToggleFees sets a student's fees flag
func (s *StudentService) ToggleFees(ctx context.Context, req dto.ToggleFeesRequest) (*dto.AdminStudentResponse, error) {
	if err := s.profiles.SetFeesPaid(ctx, req.ProfileID, req.FeesPaid); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetByID(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("profileID", profile.ID).Bool("feesPaid", req.FeesPaid).Msg("Fees status updated")
	return dto.NewAdminStudentResponse(profile), nil
}

// CreateStudent provisions a student account from the admin console. The
// generated temporary password is returned once so the admin can hand it
// to the student; it is cleared after the student's first login.
func (s *StudentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*dto.AdminStudentResponse, error) {
	matric := strings.TrimSpace(req.MatricNumber)
	if matric == "" {
		return nil, apperrors.NewValidationError("matric number cannot be empty")
	}
	if !models.ValidLevel(string(req.Level)) {
		return nil, apperrors.NewValidationError("level must be one of ND1, ND2, HND1, HND2")
	}

	tempPassword := generateTemporaryPassword()
	hash, err := auth.HashPassword(tempPassword)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		MatricNumber: matric,
		Password:     hash,
		RoleType:     models.RoleStudent,
		IsActive:     true,
	}
	profile := &models.StudentProfile{
		FullName:          strings.TrimSpace(req.FullName),
		MatricNumber:      matric,
		Department:        strings.TrimSpace(req.Department),
		Level:             req.Level,
		FeesPaid:          req.FeesPaid,
		AdminCreated:      true,
		TemporaryPassword: &tempPassword,
	}

	if err := s.accounts.CreateStudentAccount(ctx, user, profile); err != nil {
		return nil, err
	}

	logger.Info().Str("matricNumber", matric).Msg("Student account provisioned")
	return dto.NewAdminStudentResponse(profile), nil
}

// generateTemporaryPassword produces a short one-time credential
func generateTemporaryPassword() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:10]
}
