package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/osunpoly/polyreg/internal/app/models"
	"github.com/osunpoly/polyreg/internal/db"
	"github.com/osunpoly/polyreg/internal/pkg/apperrors"
	"github.com/osunpoly/polyreg/internal/pkg/dberrors"
)

// RegistrationRepository handles database operations for course registrations
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
	}
}

// CreateTx inserts one registration row within an existing transaction.
// The submit flow inserts a whole semester's rows under one transaction
// so they commit or roll back together.
func (r *RegistrationRepository) CreateTx(ctx context.Context, tx pgx.Tx, reg *models.CourseRegistration) error {
	query := `
		INSERT INTO course_registrations (user_id, course_id, academic_session, semester, status, registration_date)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, registration_date
	`

	err := tx.QueryRow(ctx, query,
		reg.UserID, reg.CourseID, reg.AcademicSession, reg.Semester, reg.Status,
	).Scan(&reg.ID, &reg.RegistrationDate)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "course_registrations_unique_key") {
			return apperrors.ErrDuplicateCourse
		}
		return fmt.Errorf("error creating registration: %w", err)
	}

	return nil
}

// CreateBatch inserts all rows of one submission in a single transaction.
func (r *RegistrationRepository) CreateBatch(ctx context.Context, regs []*models.CourseRegistration) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, reg := range regs {
			if err := r.CreateTx(ctx, tx, reg); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByUser retrieves a student's registrations with the course rows
// attached, newest term first
func (r *RegistrationRepository) GetByUser(ctx context.Context, userID int64) ([]models.CourseRegistration, error) {
	query := `
		SELECT r.id, r.user_id, r.course_id, r.academic_session, r.semester, r.status, r.registration_date,
			c.id, c.course_code, c.course_title, c.units, c.department, c.level,
			c.semester, c.academic_session, c.description, c.created_at
		FROM course_registrations r
		JOIN courses c ON c.id = r.course_id
		WHERE r.user_id = $1
		ORDER BY r.academic_session DESC, r.semester, c.course_code
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var registrations []models.CourseRegistration
	for rows.Next() {
		var reg models.CourseRegistration
		var course models.Course
		if err := rows.Scan(
			&reg.ID,
			&reg.UserID,
			&reg.CourseID,
			&reg.AcademicSession,
			&reg.Semester,
			&reg.Status,
			&reg.RegistrationDate,
			&course.ID,
			&course.CourseCode,
			&course.CourseTitle,
			&course.Units,
			&course.Department,
			&course.Level,
			&course.Semester,
			&course.AcademicSession,
			&course.Description,
			&course.CreatedAt,
		); err != nil {
			return nil, err
		}
		reg.Course = &course
		registrations = append(registrations, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return registrations, nil
}

// GetActiveByUserTerm retrieves a student's active registrations for one term
func (r *RegistrationRepository) GetActiveByUserTerm(ctx context.Context, userID int64, session string, semester models.Semester) ([]models.CourseRegistration, error) {
	query := `
		SELECT id, user_id, course_id, academic_session, semester, status, registration_date
		FROM course_registrations
		WHERE user_id = $1 AND academic_session = $2 AND semester = $3 AND status = 'active'
	`

	rows, err := r.db.Query(ctx, query, userID, session, semester)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var registrations []models.CourseRegistration
	for rows.Next() {
		var reg models.CourseRegistration
		if err := rows.Scan(
			&reg.ID,
			&reg.UserID,
			&reg.CourseID,
			&reg.AcademicSession,
			&reg.Semester,
			&reg.Status,
			&reg.RegistrationDate,
		); err != nil {
			return nil, err
		}
		registrations = append(registrations, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return registrations, nil
}

// GetAll retrieves every registration row. Report building joins these
// against profiles and courses in memory.
func (r *RegistrationRepository) GetAll(ctx context.Context) ([]models.CourseRegistration, error) {
	query := `
		SELECT id, user_id, course_id, academic_session, semester, status, registration_date
		FROM course_registrations
		ORDER BY registration_date DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var registrations []models.CourseRegistration
	for rows.Next() {
		var reg models.CourseRegistration
		if err := rows.Scan(
			&reg.ID,
			&reg.UserID,
			&reg.CourseID,
			&reg.AcademicSession,
			&reg.Semester,
			&reg.Status,
			&reg.RegistrationDate,
		); err != nil {
			return nil, err
		}
		registrations = append(registrations, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return registrations, nil
}
