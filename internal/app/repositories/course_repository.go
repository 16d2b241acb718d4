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

const courseColumns = `id, course_code, course_title, units, department, level,
	semester, academic_session, description, created_at`

// CourseRepository handles database operations for the course catalog
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

func scanCourse(row pgx.Row, c *models.Course) error {
	return row.Scan(
		&c.ID,
		&c.CourseCode,
		&c.CourseTitle,
		&c.Units,
		&c.Department,
		&c.Level,
		&c.Semester,
		&c.AcademicSession,
		&c.Description,
		&c.CreatedAt,
	)
}

// Create adds a course to the catalog
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (course_code, course_title, units, department, level,
			semester, academic_session, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		course.CourseCode, course.CourseTitle, course.Units, course.Department,
		course.Level, course.Semester, course.AcademicSession, course.Description,
	).Scan(&course.ID, &course.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_course_code_key") {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	var course models.Course
	err := scanCourse(r.db.QueryRow(ctx, query, id), &course)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetByIDs retrieves the catalog rows for a set of course IDs
func (r *CourseRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.Course, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		if err := scanCourse(rows, &course); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetAll retrieves the full catalog ordered by course code
func (r *CourseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY course_code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		if err := scanCourse(rows, &course); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Update replaces an existing catalog row
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	// Course code must stay unique across the rest of the catalog
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE course_code = $1 AND id != $2)`,
		course.CourseCode, course.ID).Scan(&exists)

	if err != nil {
		return fmt.Errorf("error checking course uniqueness: %w", err)
	}

	if exists {
		return apperrors.ErrCourseCodeExists
	}

	query := `
		UPDATE courses
		SET course_code = $1, course_title = $2, units = $3, department = $4,
			level = $5, semester = $6, academic_session = $7, description = $8
		WHERE id = $9
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.CourseCode, course.CourseTitle, course.Units, course.Department,
		course.Level, course.Semester, course.AcademicSession, course.Description,
		course.ID)

	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course from the catalog. Registrations referencing the
// course go with it via the foreign key cascade.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// ExistsByCourseCode checks if a catalog entry uses the given code
func (r *CourseRepository) ExistsByCourseCode(ctx context.Context, courseCode string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE course_code = $1)`,
		courseCode).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}

	return exists, nil
}
