package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	appModels "github.com/osunpoly/polyreg/internal/app/models"
	appRepos "github.com/osunpoly/polyreg/internal/app/repositories"
	"github.com/osunpoly/polyreg/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

func strPtr(s string) *string { return &s }

// defaultCatalog is the starter course list created on first boot so a fresh
// install has something to register against. Codes already present are left
// untouched.
func defaultCatalog() []appModels.Course {
	session := "2024/2025"
	return []appModels.Course{
		{CourseCode: "CSC101", CourseTitle: "Introduction to Computing", Units: 4, Department: "Computer Science", Level: appModels.LevelND1, Semester: appModels.SemesterFirst, AcademicSession: &session, Description: strPtr("Foundations of computing and problem solving")},
		{CourseCode: "CSC102", CourseTitle: "Programming Fundamentals", Units: 4, Department: "Computer Science", Level: appModels.LevelND1, Semester: appModels.SemesterFirst, AcademicSession: &session},
		{CourseCode: "MTH101", CourseTitle: "General Mathematics I", Units: 4, Department: "Computer Science", Level: appModels.LevelND1, Semester: appModels.SemesterFirst},
		{CourseCode: "GNS101", CourseTitle: "Use of English I", Units: 2, Department: "Computer Science", Level: appModels.LevelND1, Semester: appModels.SemesterFirst},
		{CourseCode: "CSC111", CourseTitle: "Digital Logic Design", Units: 3, Department: "Computer Science", Level: appModels.LevelND1, Semester: appModels.SemesterSecond, AcademicSession: &session},
		{CourseCode: "CSC112", CourseTitle: "Data Structures", Units: 4, Department: "Computer Science", Level: appModels.LevelND1, Semester: appModels.SemesterSecond, AcademicSession: &session},
		{CourseCode: "MTH102", CourseTitle: "General Mathematics II", Units: 4, Department: "Computer Science", Level: appModels.LevelND1, Semester: appModels.SemesterSecond},
		{CourseCode: "GNS102", CourseTitle: "Use of English II", Units: 2, Department: "Computer Science", Level: appModels.LevelND1, Semester: appModels.SemesterSecond},
		{CourseCode: "ACC101", CourseTitle: "Principles of Accounting I", Units: 4, Department: "Accountancy", Level: appModels.LevelND1, Semester: appModels.SemesterFirst, AcademicSession: &session},
		{CourseCode: "ACC102", CourseTitle: "Cost Accounting", Units: 3, Department: "Accountancy", Level: appModels.LevelND1, Semester: appModels.SemesterFirst, AcademicSession: &session},
		{CourseCode: "BAM101", CourseTitle: "Introduction to Business", Units: 3, Department: "Accountancy", Level: appModels.LevelND1, Semester: appModels.SemesterFirst},
		{CourseCode: "EEC201", CourseTitle: "Circuit Theory", Units: 4, Department: "Electrical Engineering", Level: appModels.LevelND2, Semester: appModels.SemesterFirst, AcademicSession: &session},
		{CourseCode: "EEC202", CourseTitle: "Electronics I", Units: 4, Department: "Electrical Engineering", Level: appModels.LevelND2, Semester: appModels.SemesterFirst, AcademicSession: &session},
	}
}

// CreateDefaultData seeds the starter catalog if the codes are not present.
// Errors are collected rather than aborting so one bad row cannot block boot.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default catalog courses...")
	var finalErr error
	created := 0

	for _, course := range defaultCatalog() {
		c := course
		err := courseRepo.Create(ctx, &c)
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrCourseCodeExists):
			// Already seeded on a previous boot
		default:
			lgr.Error().Err(err).Str("courseCode", course.CourseCode).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if created > 0 {
		lgr.Info().Int("count", created).Msg("Default catalog courses created")
	}
	return finalErr
}
