package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/osunpoly/polyreg/internal/app/models"
	"github.com/osunpoly/polyreg/internal/app/models/dto"
	"github.com/osunpoly/polyreg/internal/pkg/apperrors"
)

func strptr(s string) *string { return &s }

func testCatalog() []models.Course {
	return []models.Course{
		{ID: 1, CourseCode: "CSC101", CourseTitle: "Introduction to Computing", Units: 4,
			Department: "Computer Science", Level: models.LevelND1, Semester: models.SemesterFirst},
		{ID: 2, CourseCode: "CSC102", CourseTitle: "Programming Fundamentals", Units: 4,
			Department: "Computer Science", Level: models.LevelND1, Semester: models.SemesterFirst},
		{ID: 3, CourseCode: "MTH101", CourseTitle: "Algebra and Trigonometry", Units: 4,
			Department: "Computer Science", Level: models.LevelND1, Semester: models.SemesterFirst},
		{ID: 4, CourseCode: "GNS101", CourseTitle: "Use of English", Units: 2,
			Department: "Computer Science", Level: models.LevelND1, Semester: models.SemesterFirst},
		{ID: 5, CourseCode: "PHY101", CourseTitle: "General Physics", Units: 15,
			Department: "Computer Science", Level: models.LevelND1, Semester: models.SemesterFirst},
	}
}

func newRegistrationFixture(feesPaid bool) (*RegistrationService, *mockRegistrationRepo) {
	courses := &mockCourseRepo{courses: testCatalog(), nextID: 5}
	profiles := &mockProfileRepo{profiles: []models.StudentProfile{
		{ID: 1, UserID: 10, FullName: "Adaeze Okafor", MatricNumber: "ND/CS/23/0041",
			Department: "Computer Science", Level: models.LevelND1, FeesPaid: feesPaid},
	}}
	regs := &mockRegistrationRepo{courses: courses}
	svc := NewRegistrationService(regs, courses, profiles, 12, 24)
	return svc, regs
}

func TestSubmitRegistersSelection(t *testing.T) {
	svc, repo := newRegistrationFixture(true)

	group, err := svc.Submit(context.Background(), 10, dto.SubmitRegistrationRequest{
		AcademicSession: "2024/2025",
		Semester:        "first",
		CourseIDs:       []int64{1, 2, 3},
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if group.TotalUnits != 12 {
		t.Errorf("TotalUnits = %d, want 12", group.TotalUnits)
	}
	if group.Semester != "First" {
		t.Errorf("Semester = %q, want normalized First", group.Semester)
	}
	if len(group.Courses) != 3 {
		t.Fatalf("got %d courses, want 3", len(group.Courses))
	}
	if len(repo.registrations) != 3 {
		t.Errorf("stored %d rows, want 3", len(repo.registrations))
	}
	for _, reg := range repo.registrations {
		if reg.Status != models.RegistrationActive {
			t.Errorf("stored status = %q, want active", reg.Status)
		}
	}
}

func TestSubmitRejectsUnpaidFees(t *testing.T) {
	svc, repo := newRegistrationFixture(false)

	_, err := svc.Submit(context.Background(), 10, dto.SubmitRegistrationRequest{
		AcademicSession: "2024/2025",
		Semester:        "First",
		CourseIDs:       []int64{1, 2, 3},
	})
	if !errors.Is(err, apperrors.ErrFeesNotPaid) {
		t.Fatalf("err = %v, want ErrFeesNotPaid", err)
	}
	if len(repo.registrations) != 0 {
		t.Errorf("stored %d rows, want 0", len(repo.registrations))
	}
}

func TestSubmitRejectsUnderMinimumUnits(t *testing.T) {
	svc, _ := newRegistrationFixture(true)

	_, err := svc.Submit(context.Background(), 10, dto.SubmitRegistrationRequest{
		AcademicSession: "2024/2025",
		Semester:        "First",
		CourseIDs:       []int64{1, 2, 4},
	})
	if !errors.Is(err, apperrors.ErrUnitsOutOfBounds) {
		t.Fatalf("err = %v, want ErrUnitsOutOfBounds", err)
	}
}

func TestSubmitRejectsOverMaximumUnits(t *testing.T) {
	svc, _ := newRegistrationFixture(true)

	// 4+4+4+15 pushes past 24 when PHY101 is added
	_, err := svc.Submit(context.Background(), 10, dto.SubmitRegistrationRequest{
		AcademicSession: "2024/2025",
		Semester:        "First",
		CourseIDs:       []int64{1, 2, 3, 5},
	})
	if !errors.Is(err, apperrors.ErrUnitsOutOfBounds) {
		t.Fatalf("err = %v, want ErrUnitsOutOfBounds", err)
	}
}

func TestSubmitRejectsDuplicateInRequest(t *testing.T) {
	svc, _ := newRegistrationFixture(true)

	_, err := svc.Submit(context.Background(), 10, dto.SubmitRegistrationRequest{
		AcademicSession: "2024/2025",
		Semester:        "First",
		CourseIDs:       []int64{1, 2, 1},
	})
	if !errors.Is(err, apperrors.ErrDuplicateCourse) {
		t.Fatalf("err = %v, want ErrDuplicateCourse", err)
	}
}

func TestSubmitRejectsAlreadyRegisteredCourse(t *testing.T) {
	svc, repo := newRegistrationFixture(true)

	if _, err := svc.Submit(context.Background(), 10, dto.SubmitRegistrationRequest{
		AcademicSession: "2024/2025",
		Semester:        "First",
		CourseIDs:       []int64{1, 2, 3},
	}); err != nil {
		t.Fatalf("first Submit returned error: %v", err)
	}

	_, err := svc.Submit(context.Background(), 10, dto.SubmitRegistrationRequest{
		AcademicSession: "2024/2025",
		Semester:        "First",
		CourseIDs:       []int64{1, 2, 3},
	})
	if !errors.Is(err, apperrors.ErrDuplicateCourse) {
		t.Fatalf("err = %v, want ErrDuplicateCourse", err)
	}
	if len(repo.registrations) != 3 {
		t.Errorf("stored %d rows, want 3", len(repo.registrations))
	}
}

func TestSubmitRejectsUnknownCourse(t *testing.T) {
	svc, _ := newRegistrationFixture(true)

	_, err := svc.Submit(context.Background(), 10, dto.SubmitRegistrationRequest{
		AcademicSession: "2024/2025",
		Semester:        "First",
		CourseIDs:       []int64{1, 2, 999},
	})
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("err = %v, want ErrCourseNotFound", err)
	}
}

func TestSubmitRejectsUnknownSemester(t *testing.T) {
	svc, _ := newRegistrationFixture(true)

	_, err := svc.Submit(context.Background(), 10, dto.SubmitRegistrationRequest{
		AcademicSession: "2024/2025",
		Semester:        "Summer",
		CourseIDs:       []int64{1, 2, 3},
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation failure", err)
	}
}

func TestHistoryGroupsByTerm(t *testing.T) {
	svc, _ := newRegistrationFixture(true)
	ctx := context.Background()

	if _, err := svc.Submit(ctx, 10, dto.SubmitRegistrationRequest{
		AcademicSession: "2024/2025", Semester: "First", CourseIDs: []int64{1, 2, 3},
	}); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if _, err := svc.Submit(ctx, 10, dto.SubmitRegistrationRequest{
		AcademicSession: "2024/2025", Semester: "Second", CourseIDs: []int64{1, 2, 3},
	}); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	groups, err := svc.History(ctx, 10)
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	for _, g := range groups {
		if g.TotalUnits != 12 {
			t.Errorf("group %s/%s TotalUnits = %d, want 12", g.AcademicSession, g.Semester, g.TotalUnits)
		}
		if len(g.Courses) != 3 {
			t.Errorf("group %s/%s has %d courses, want 3", g.AcademicSession, g.Semester, len(g.Courses))
		}
	}
}

func TestSlipRendersRegisteredTerm(t *testing.T) {
	svc, _ := newRegistrationFixture(true)
	ctx := context.Background()

	if _, err := svc.Submit(ctx, 10, dto.SubmitRegistrationRequest{
		AcademicSession: "2024/2025", Semester: "First", CourseIDs: []int64{1, 2, 3},
	}); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	slip, err := svc.Slip(ctx, 10, "2024/2025", "First")
	if err != nil {
		t.Fatalf("Slip returned error: %v", err)
	}

	if slip.Filename != "registration-ND-CS-23-0041-2024-2025-First.txt" {
		t.Errorf("Filename = %q", slip.Filename)
	}
	for _, want := range []string{
		"COURSE REGISTRATION SLIP",
		"Adaeze Okafor",
		"CSC101: Introduction to Computing (4 units)",
		"Total Units: 12",
	} {
		if !strings.Contains(slip.Content, want) {
			t.Errorf("slip content missing %q", want)
		}
	}
}

func TestSlipWithoutRegistrationsFails(t *testing.T) {
	svc, _ := newRegistrationFixture(true)

	_, err := svc.Slip(context.Background(), 10, "2024/2025", "First")
	if !errors.Is(err, apperrors.ErrRegistrationNotFound) {
		t.Fatalf("err = %v, want ErrRegistrationNotFound", err)
	}
}
