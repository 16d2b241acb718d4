package services

import (
	"context"
	"strings"
	"testing"

	"github.com/osunpoly/polyreg/internal/app/models"
	"github.com/osunpoly/polyreg/internal/app/models/dto"
)

func newReportFixture(t *testing.T) *ReportService {
	t.Helper()

	courses := &mockCourseRepo{courses: testCatalog(), nextID: 5}
	profiles := &mockProfileRepo{profiles: []models.StudentProfile{
		{ID: 1, UserID: 10, FullName: "Adaeze Okafor", MatricNumber: "ND/CS/23/0041",
			Department: "Computer Science", Level: models.LevelND1, FeesPaid: true},
		{ID: 2, UserID: 11, FullName: "Tunde Bello", MatricNumber: "ND/CS/23/0042",
			Department: "Computer Science", Level: models.LevelND1, FeesPaid: true},
		{ID: 3, UserID: 12, FullName: "Ngozi Eze", MatricNumber: "ND/AC/23/0007",
			Department: "Accountancy", Level: models.LevelND1, FeesPaid: false},
	}}
	regs := &mockRegistrationRepo{courses: courses}

	regSvc := NewRegistrationService(regs, courses, profiles, 12, 24)
	for _, userID := range []int64{10, 11} {
		if _, err := regSvc.Submit(context.Background(), userID, dto.SubmitRegistrationRequest{
			AcademicSession: "2024/2025", Semester: "First", CourseIDs: []int64{1, 2, 3},
		}); err != nil {
			t.Fatalf("seeding registrations: %v", err)
		}
	}

	return NewReportService(profiles, courses, regs)
}

func TestDashboardAggregates(t *testing.T) {
	svc := newReportFixture(t)

	dashboard, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}

	if dashboard.TotalStudents != 3 {
		t.Errorf("TotalStudents = %d, want 3", dashboard.TotalStudents)
	}
	if dashboard.TotalCourses != 5 {
		t.Errorf("TotalCourses = %d, want 5", dashboard.TotalCourses)
	}
	if dashboard.ActiveRegistrations != 6 {
		t.Errorf("ActiveRegistrations = %d, want 6", dashboard.ActiveRegistrations)
	}
	if dashboard.FeesPaid != 2 || dashboard.FeesUnpaid != 1 {
		t.Errorf("fees split = %d/%d, want 2/1", dashboard.FeesPaid, dashboard.FeesUnpaid)
	}
	if len(dashboard.DepartmentDistribution) != 2 {
		t.Fatalf("got %d departments, want 2", len(dashboard.DepartmentDistribution))
	}
	if dashboard.DepartmentDistribution[0].Key != "Computer Science" {
		t.Errorf("largest department = %q, want Computer Science", dashboard.DepartmentDistribution[0].Key)
	}
}

func TestOverviewCountsJoinedRegistrations(t *testing.T) {
	svc := newReportFixture(t)

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview returned error: %v", err)
	}

	if overview.Students.Total != 3 {
		t.Errorf("Students.Total = %d, want 3", overview.Students.Total)
	}
	if overview.Registrations.Total != 6 {
		t.Errorf("Registrations.Total = %d, want 6", overview.Registrations.Total)
	}
	if len(overview.Registrations.BySemester) != 1 || overview.Registrations.BySemester[0].Key != "First" {
		t.Errorf("BySemester = %+v, want single First bucket", overview.Registrations.BySemester)
	}
}

func TestExportOverviewCSV(t *testing.T) {
	svc := newReportFixture(t)

	out, err := svc.ExportOverviewCSV(context.Background())
	if err != nil {
		t.Fatalf("ExportOverviewCSV returned error: %v", err)
	}

	content := string(out)
	for _, want := range []string{"Report Type,Overview", "Total Students,3", "Students by Department"} {
		if !strings.Contains(content, want) {
			t.Errorf("CSV missing %q", want)
		}
	}
}

func TestExportRegistrationsCSV(t *testing.T) {
	svc := newReportFixture(t)

	out, err := svc.ExportRegistrationsCSV(context.Background())
	if err != nil {
		t.Fatalf("ExportRegistrationsCSV returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want header plus 6 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Student Name,Matric Number,Course Code") {
		t.Errorf("unexpected header %q", lines[0])
	}
}

func TestExportRegistrationsWorkbook(t *testing.T) {
	svc := newReportFixture(t)

	buf, err := svc.ExportRegistrationsWorkbook(context.Background())
	if err != nil {
		t.Fatalf("ExportRegistrationsWorkbook returned error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("workbook buffer is empty")
	}
}
