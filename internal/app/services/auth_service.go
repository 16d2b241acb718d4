package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/osunpoly/polyreg/internal/app/models"
	"github.com/osunpoly/polyreg/internal/app/models/dto"
	"github.com/osunpoly/polyreg/internal/pkg/apperrors"
	"github.com/osunpoly/polyreg/internal/pkg/auth"
	"github.com/osunpoly/polyreg/internal/pkg/logger"
)

// userStore is the account access the auth service needs
type userStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByMatricNumber(ctx context.Context, matricNumber string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
}

// profileStore is the profile access the auth service needs
type profileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error)
	ClearTemporaryPassword(ctx context.Context, userID int64) error
}

// tokenStore tracks refresh tokens server-side
type tokenStore interface {
	CreateToken(ctx context.Context, token string, userID int64, expiresAt time.Time) error
	GetTokenByValue(ctx context.Context, token string) (int64, time.Time, error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllUserTokens(ctx context.Context, userID int64) error
}

// accountStore creates a user together with its profile
type accountStore interface {
	CreateStudentAccount(ctx context.Context, user *models.User, profile *models.StudentProfile) error
}

// AuthService handles registration, login and token refresh
type AuthService struct {
	users    userStore
	profiles profileStore
	tokens   tokenStore
	accounts accountStore
	jwt      *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(users userStore, profiles profileStore, tokens tokenStore, accounts accountStore, jwt *auth.JWTService) *AuthService {
	return &AuthService{
		users:    users,
		profiles: profiles,
		tokens:   tokens,
		accounts: accounts,
		jwt:      jwt,
	}
}

// Register creates a student account with its profile and signs the student in
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	matric := strings.TrimSpace(req.MatricNumber)
	if matric == "" {
		return nil, apperrors.NewValidationError("matric number cannot be empty")
	}
	if !models.ValidLevel(string(req.Level)) {
		return nil, apperrors.NewValidationError("level must be one of ND1, ND2, HND1, HND2")
	}

	hash, err := auth.HashPassword(req.Password)
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
		FullName:     strings.TrimSpace(req.FullName),
		MatricNumber: matric,
		Department:   strings.TrimSpace(req.Department),
		Level:        req.Level,
	}

	if err := s.accounts.CreateStudentAccount(ctx, user, profile); err != nil {
		return nil, err
	}
	user.Profile = profile

	return s.issueTokens(ctx, user)
}

// Login authenticates a student by matric number and password
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByMatricNumber(ctx, strings.TrimSpace(req.MatricNumber))
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to record last login")
	}

	profile, err := s.profiles.GetByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, err
	}
	user.Profile = profile

	// A provisioned account is considered claimed once its owner signs in
	if profile != nil && profile.TemporaryPassword != nil {
		if err := s.profiles.ClearTemporaryPassword(ctx, user.ID); err != nil {
			logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to clear temporary password")
		}
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken exchanges a valid refresh token for a fresh token pair.
// The used refresh token is revoked so each one works exactly once; a
// replay of an already-rotated token cuts every session for the account.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, _, err := s.tokens.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenRevoked) && userID != 0 {
			if revokeErr := s.tokens.RevokeAllUserTokens(ctx, userID); revokeErr != nil {
				logger.Warn().Err(revokeErr).Int64("userID", userID).Msg("Failed to revoke sessions after token reuse")
			} else {
				logger.Warn().Int64("userID", userID).Msg("Refresh token reuse detected, all sessions revoked")
			}
		}
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokens.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	access, refresh, expiresIn, refreshExpiresIn, err := s.jwt.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.CreateToken(ctx, refresh, user.ID, s.jwt.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:           access,
		TokenType:             "Bearer",
		ExpiresIn:             int64(expiresIn),
		RefreshToken:          refresh,
		RefreshTokenExpiresIn: int64(refreshExpiresIn),
	}, nil
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	err := s.tokens.RevokeToken(ctx, refreshToken)
	if errors.Is(err, apperrors.ErrTokenNotFound) {
		// Logging out with an unknown token is not worth reporting
		return nil
	}
	return err
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	access, refresh, expiresIn, refreshExpiresIn, err := s.jwt.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.CreateToken(ctx, refresh, user.ID, s.jwt.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           access,
			TokenType:             "Bearer",
			ExpiresIn:             int64(expiresIn),
			RefreshToken:          refresh,
			RefreshTokenExpiresIn: int64(refreshExpiresIn),
		},
		User: dto.UserResponse{
			ID:           user.ID,
			MatricNumber: user.MatricNumber,
			Role:         string(user.RoleType),
			Profile:      dto.NewProfileResponse(user.Profile),
		},
	}, nil
}
