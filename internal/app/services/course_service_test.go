package services

import (
	"context"
	"errors"
	"testing"

	"github.com/osunpoly/polyreg/internal/app/models"
	"github.com/osunpoly/polyreg/internal/app/models/dto"
	"github.com/osunpoly/polyreg/internal/pkg/apperrors"
)

func newCourseFixture() (*CourseService, *mockCourseRepo) {
	repo := &mockCourseRepo{courses: []models.Course{
		{ID: 1, CourseCode: "CSC101", CourseTitle: "Introduction to Computing", Units: 3,
			Department: "Computer Science", Level: models.LevelND1, Semester: models.SemesterFirst,
			AcademicSession: strptr("2024/2025")},
		{ID: 2, CourseCode: "CSC201", CourseTitle: "Data Structures", Units: 4,
			Department: "Computer Science", Level: models.LevelND2, Semester: models.SemesterFirst},
		{ID: 3, CourseCode: "ACC101", CourseTitle: "Principles of Accounting", Units: 3,
			Department: "Accountancy", Level: models.LevelND1, Semester: models.SemesterFirst},
		{ID: 4, CourseCode: "CSC105", CourseTitle: "Computer Workshop", Units: 2,
			Department: "Computer Science", Level: models.LevelND1, Semester: models.SemesterFirst,
			AcademicSession: strptr("2023/2024")},
	}, nextID: 4}
	return NewCourseService(repo), repo
}

func TestCatalogWithoutFiltersReturnsEverything(t *testing.T) {
	svc, _ := newCourseFixture()

	out, err := svc.Catalog(context.Background(), dto.CatalogQuery{})
	if err != nil {
		t.Fatalf("Catalog returned error: %v", err)
	}
	if len(out) != 4 {
		t.Errorf("got %d courses, want 4", len(out))
	}
}

func TestCatalogFiltersByStudentPosition(t *testing.T) {
	svc, _ := newCourseFixture()

	out, err := svc.Catalog(context.Background(), dto.CatalogQuery{
		Department: "Computer Science",
		Level:      "ND1",
		Semester:   "First",
		Session:    "2024/2025",
	})
	if err != nil {
		t.Fatalf("Catalog returned error: %v", err)
	}

	// CSC101 matches the session; CSC105 belongs to an older session and
	// must be excluded. Other departments and levels are out.
	if len(out) != 1 {
		t.Fatalf("got %d courses, want 1", len(out))
	}
	if out[0].CourseCode != "CSC101" {
		t.Errorf("CourseCode = %q, want CSC101", out[0].CourseCode)
	}
}

func TestCatalogSessionlessCourseMatchesAnySession(t *testing.T) {
	svc, _ := newCourseFixture()

	out, err := svc.Catalog(context.Background(), dto.CatalogQuery{
		Department: "Computer Science",
		Level:      "ND2",
		Semester:   "first",
		Session:    "2026/2027",
	})
	if err != nil {
		t.Fatalf("Catalog returned error: %v", err)
	}
	if len(out) != 1 || out[0].CourseCode != "CSC201" {
		t.Fatalf("got %+v, want just CSC201", out)
	}
}

func TestCatalogRejectsPartialFilters(t *testing.T) {
	svc, _ := newCourseFixture()

	_, err := svc.Catalog(context.Background(), dto.CatalogQuery{Department: "Computer Science"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation failure", err)
	}
}

func TestCreateCourseNormalizesInput(t *testing.T) {
	svc, repo := newCourseFixture()

	out, err := svc.CreateCourse(context.Background(), dto.CreateCourseRequest{
		CourseCode:  " mth101 ",
		CourseTitle: "Algebra and Trigonometry",
		Units:       4,
		Department:  "Computer Science",
		Level:       models.LevelND1,
		Semester:    "first",
	})
	if err != nil {
		t.Fatalf("CreateCourse returned error: %v", err)
	}
	if out.CourseCode != "MTH101" {
		t.Errorf("CourseCode = %q, want MTH101", out.CourseCode)
	}
	if out.Semester != "First" {
		t.Errorf("Semester = %q, want First", out.Semester)
	}
	if len(repo.courses) != 5 {
		t.Errorf("catalog has %d rows, want 5", len(repo.courses))
	}
}

func TestCreateCourseRejectsBadUnits(t *testing.T) {
	svc, _ := newCourseFixture()

	for _, units := range []int{0, 7, -1} {
		_, err := svc.CreateCourse(context.Background(), dto.CreateCourseRequest{
			CourseCode:  "XYZ100",
			CourseTitle: "Broken",
			Units:       units,
			Department:  "Computer Science",
			Level:       models.LevelND1,
			Semester:    models.SemesterFirst,
		})
		if !errors.Is(err, apperrors.ErrInvalidUnitCount) {
			t.Errorf("units=%d: err = %v, want ErrInvalidUnitCount", units, err)
		}
	}
}

func TestCreateCourseRejectsDuplicateCode(t *testing.T) {
	svc, _ := newCourseFixture()

	_, err := svc.CreateCourse(context.Background(), dto.CreateCourseRequest{
		CourseCode:  "CSC101",
		CourseTitle: "Clone",
		Units:       3,
		Department:  "Computer Science",
		Level:       models.LevelND1,
		Semester:    models.SemesterFirst,
	})
	if !errors.Is(err, apperrors.ErrCourseCodeExists) {
		t.Fatalf("err = %v, want ErrCourseCodeExists", err)
	}
}

func intptr(n int) *int { return &n }

func TestUpdateCourseAppliesProvidedFields(t *testing.T) {
	svc, repo := newCourseFixture()

	out, err := svc.UpdateCourse(context.Background(), dto.UpdateCourseRequest{
		ID:          2,
		CourseTitle: strptr("Data Structures and Algorithms"),
		Units:       intptr(5),
	})
	if err != nil {
		t.Fatalf("UpdateCourse returned error: %v", err)
	}
	if out.CourseTitle != "Data Structures and Algorithms" || out.Units != 5 {
		t.Errorf("update not applied: %+v", out)
	}
	if len(repo.courses) != 4 {
		t.Errorf("catalog has %d rows, want 4", len(repo.courses))
	}
}

func TestUpdateCourseKeepsOmittedFields(t *testing.T) {
	svc, repo := newCourseFixture()

	// A units-only edit must leave every other column untouched
	out, err := svc.UpdateCourse(context.Background(), dto.UpdateCourseRequest{
		ID:    3,
		Units: intptr(5),
	})
	if err != nil {
		t.Fatalf("UpdateCourse returned error: %v", err)
	}
	if out.Units != 5 {
		t.Errorf("Units = %d, want 5", out.Units)
	}
	if out.CourseCode != "ACC101" || out.CourseTitle != "Principles of Accounting" ||
		out.Department != "Accountancy" || out.Level != "ND1" || out.Semester != "First" {
		t.Errorf("omitted fields changed: %+v", out)
	}
	if repo.courses[2].Units != 5 {
		t.Errorf("stored units = %d, want 5", repo.courses[2].Units)
	}
}

func TestUpdateCourseRejectsBadProvidedValues(t *testing.T) {
	svc, _ := newCourseFixture()
	ctx := context.Background()

	_, err := svc.UpdateCourse(ctx, dto.UpdateCourseRequest{ID: 2, Units: intptr(7)})
	if !errors.Is(err, apperrors.ErrInvalidUnitCount) {
		t.Errorf("units err = %v, want ErrInvalidUnitCount", err)
	}

	badLevel := models.Level("ND9")
	_, err = svc.UpdateCourse(ctx, dto.UpdateCourseRequest{ID: 2, Level: &badLevel})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("level err = %v, want validation failure", err)
	}

	_, err = svc.UpdateCourse(ctx, dto.UpdateCourseRequest{ID: 99, Units: intptr(3)})
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("unknown id err = %v, want ErrCourseNotFound", err)
	}
}

func TestDeleteCourseRemovesRow(t *testing.T) {
	svc, repo := newCourseFixture()

	if err := svc.DeleteCourse(context.Background(), 3); err != nil {
		t.Fatalf("DeleteCourse returned error: %v", err)
	}
	if len(repo.courses) != 3 {
		t.Errorf("catalog has %d rows, want 3", len(repo.courses))
	}

	err := svc.DeleteCourse(context.Background(), 3)
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("second delete err = %v, want ErrCourseNotFound", err)
	}
}
