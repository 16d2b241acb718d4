package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/osunpoly/polyreg/internal/app/models"
	"github.com/osunpoly/polyreg/internal/pkg/apperrors"
	"github.com/osunpoly/polyreg/internal/pkg/dberrors"
)

const profileColumns = `id, user_id, full_name, matric_number, department, level,
	fees_paid, admin_created, temporary_password, created_at, updated_at`

// ProfileRepository handles database operations for student profiles
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

func scanProfile(row pgx.Row, p *models.StudentProfile) error {
	return row.Scan(
		&p.ID,
		&p.UserID,
		&p.FullName,
		&p.MatricNumber,
		&p.Department,
		&p.Level,
		&p.FeesPaid,
		&p.AdminCreated,
		&p.TemporaryPassword,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

// Create inserts a new student profile
func (r *ProfileRepository) Create(ctx context.Context, profile *models.StudentProfile) error {
	query := `
		INSERT INTO profiles (user_id, full_name, matric_number, department, level,
			fees_paid, admin_created, temporary_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		profile.UserID, profile.FullName, profile.MatricNumber, profile.Department,
		profile.Level, profile.FeesPaid, profile.AdminCreated, profile.TemporaryPassword,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "profiles_matric_number_key") {
			return apperrors.ErrMatricNumberExists
		}
		return fmt.Errorf("error creating profile: %w", err)
	}

	return nil
}

// CreateTx inserts a new student profile within an existing transaction
func (r *ProfileRepository) CreateTx(ctx context.Context, tx pgx.Tx, profile *models.StudentProfile) error {
	query := `
		INSERT INTO profiles (user_id, full_name, matric_number, department, level,
			fees_paid, admin_created, temporary_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		profile.UserID, profile.FullName, profile.MatricNumber, profile.Department,
		profile.Level, profile.FeesPaid, profile.AdminCreated, profile.TemporaryPassword,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "profiles_matric_number_key") {
			return apperrors.ErrMatricNumberExists
		}
		return fmt.Errorf("error creating profile: %w", err)
	}

	return nil
}

// GetByUserID retrieves the profile belonging to a user account
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	var profile models.StudentProfile
	err := scanProfile(r.db.QueryRow(ctx, query, userID), &profile)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	return &profile, nil
}

// GetByID retrieves a profile by its own ID
func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*models.StudentProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	var profile models.StudentProfile
	err := scanProfile(r.db.QueryRow(ctx, query, id), &profile)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	return &profile, nil
}

// GetAll retrieves all student profiles, newest first
func (r *ProfileRepository) GetAll(ctx context.Context) ([]models.StudentProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.StudentProfile
	for rows.Next() {
		var profile models.StudentProfile
		if err := scanProfile(rows, &profile); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// Update replaces the editable profile fields
func (r *ProfileRepository) Update(ctx context.Context, profile *models.StudentProfile) error {
	query := `
		UPDATE profiles
		SET full_name = $1, department = $2, level = $3, updated_at = NOW()
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		profile.FullName, profile.Department, profile.Level, profile.ID)

	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// SetFeesPaid flips the fees flag on a profile
func (r *ProfileRepository) SetFeesPaid(ctx context.Context, profileID int64, feesPaid bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE profiles SET fees_paid = $1, updated_at = NOW() WHERE id = $2`,
		feesPaid, profileID)

	if err != nil {
		return fmt.Errorf("error updating fees status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// ClearTemporaryPassword removes the provisioning password once the
// student has set their own.
func (r *ProfileRepository) ClearTemporaryPassword(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE profiles SET temporary_password = NULL, updated_at = NOW() WHERE user_id = $1`,
		userID)

	if err != nil {
		return fmt.Errorf("error clearing temporary password: %w", err)
	}

	return nil
}
