package services

import (
	"context"
	"errors"
	"testing"

	"github.com/osunpoly/polyreg/internal/app/models"
	"github.com/osunpoly/polyreg/internal/app/models/dto"
	"github.com/osunpoly/polyreg/internal/pkg/apperrors"
)

func newStudentFixture() (*StudentService, *mockProfileRepo) {
	profiles := &mockProfileRepo{profiles: []models.StudentProfile{
		{ID: 1, UserID: 10, FullName: "Adaeze Okafor", MatricNumber: "ND/CS/23/0041",
			Department: "Computer Science", Level: models.LevelND1},
		{ID: 2, UserID: 11, FullName: "Tunde Bello", MatricNumber: "ND/CS/23/0042",
			Department: "Computer Science", Level: models.LevelND2, FeesPaid: true},
	}}
	accounts := &mockAccountRepo{profiles: profiles}
	return NewStudentService(profiles, accounts), profiles
}

func TestUpdateProfileKeepsProtectedFields(t *testing.T) {
	svc, repo := newStudentFixture()

	out, err := svc.UpdateProfile(context.Background(), 10, dto.UpdateProfileRequest{
		FullName:   "Adaeze N. Okafor",
		Department: "Computer Science",
		Level:      models.LevelND2,
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}

	if out.FullName != "Adaeze N. Okafor" || out.Level != "ND2" {
		t.Errorf("update not applied: %+v", out)
	}
	// Matric number is not student-editable and must survive unchanged
	if repo.profiles[0].MatricNumber != "ND/CS/23/0041" {
		t.Errorf("matric number changed to %q", repo.profiles[0].MatricNumber)
	}
}

func TestUpdateProfileRejectsUnknownLevel(t *testing.T) {
	svc, _ := newStudentFixture()

	_, err := svc.UpdateProfile(context.Background(), 10, dto.UpdateProfileRequest{
		FullName:   "Adaeze Okafor",
		Department: "Computer Science",
		Level:      "ND9",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation failure", err)
	}
}

func TestListStudents(t *testing.T) {
	svc, _ := newStudentFixture()

	out, err := svc.ListStudents(context.Background(), 1, 20)
	if err != nil {
		t.Fatalf("ListStudents returned error: %v", err)
	}
	students, ok := out.Items.([]dto.AdminStudentResponse)
	if !ok {
		t.Fatalf("Items has type %T, want []dto.AdminStudentResponse", out.Items)
	}
	if len(students) != 2 {
		t.Fatalf("got %d students, want 2", len(students))
	}
	if out.Pagination.TotalItems != 2 || out.Pagination.TotalPages != 1 {
		t.Errorf("pagination = %+v", out.Pagination)
	}
}

func TestListStudentsSecondPage(t *testing.T) {
	svc, _ := newStudentFixture()

	out, err := svc.ListStudents(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("ListStudents returned error: %v", err)
	}
	students := out.Items.([]dto.AdminStudentResponse)
	if len(students) != 1 {
		t.Fatalf("got %d students, want 1", len(students))
	}
	if out.Pagination.CurrentPage != 2 || out.Pagination.TotalPages != 2 {
		t.Errorf("pagination = %+v", out.Pagination)
	}
}

func TestListStudentsCapsOversizedPage(t *testing.T) {
	svc, _ := newStudentFixture()

	out, err := svc.ListStudents(context.Background(), 1, 500)
	if err != nil {
		t.Fatalf("ListStudents returned error: %v", err)
	}
	// Requests beyond the page-size cap fall back to the default, and the
	// reported pageSize must match the slice actually served
	if out.Pagination.PageSize != 20 {
		t.Errorf("PageSize = %d, want 20", out.Pagination.PageSize)
	}
	if len(out.Items.([]dto.AdminStudentResponse)) != 2 {
		t.Errorf("got %d students, want 2", len(out.Items.([]dto.AdminStudentResponse)))
	}
}

func TestToggleFees(t *testing.T) {
	svc, repo := newStudentFixture()

	out, err := svc.ToggleFees(context.Background(), dto.ToggleFeesRequest{ProfileID: 1, FeesPaid: true})
	if err != nil {
		t.Fatalf("ToggleFees returned error: %v", err)
	}
	if !out.FeesPaid || !repo.profiles[0].FeesPaid {
		t.Error("fees flag not set")
	}

	_, err = svc.ToggleFees(context.Background(), dto.ToggleFeesRequest{ProfileID: 99, FeesPaid: true})
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("unknown profile err = %v, want ErrStudentNotFound", err)
	}
}

func TestCreateStudentIssuesTemporaryPassword(t *testing.T) {
	svc, repo := newStudentFixture()

	out, err := svc.CreateStudent(context.Background(), dto.CreateStudentRequest{
		FullName:     "Ngozi Eze",
		MatricNumber: "ND/AC/23/0007",
		Department:   "Accountancy",
		Level:        models.LevelND1,
		FeesPaid:     true,
	})
	if err != nil {
		t.Fatalf("CreateStudent returned error: %v", err)
	}

	if out.TemporaryPassword == nil || *out.TemporaryPassword == "" {
		t.Fatal("expected a temporary password")
	}
	if !out.AdminCreated {
		t.Error("AdminCreated flag not set")
	}
	if len(repo.profiles) != 3 {
		t.Errorf("stored %d profiles, want 3", len(repo.profiles))
	}
}

func TestCreateStudentRejectsDuplicateMatric(t *testing.T) {
	svc, _ := newStudentFixture()
	ctx := context.Background()

	req := dto.CreateStudentRequest{
		FullName:     "Ngozi Eze",
		MatricNumber: "ND/AC/23/0007",
		Department:   "Accountancy",
		Level:        models.LevelND1,
	}
	if _, err := svc.CreateStudent(ctx, req); err != nil {
		t.Fatalf("first CreateStudent returned error: %v", err)
	}

	_, err := svc.CreateStudent(ctx, req)
	if !errors.Is(err, apperrors.ErrMatricNumberExists) {
		t.Fatalf("err = %v, want ErrMatricNumberExists", err)
	}
}
