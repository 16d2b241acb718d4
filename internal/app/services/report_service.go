package services

import (
	"bytes"
	"context"
	"time"

	"github.com/osunpoly/polyreg/internal/app/models"
	"github.com/osunpoly/polyreg/internal/app/reports"
)

// profileLister provides the flat student list for aggregation
type profileLister interface {
	GetAll(ctx context.Context) ([]models.StudentProfile, error)
}

// courseLister provides the flat course list for aggregation
type courseLister interface {
	GetAll(ctx context.Context) ([]models.Course, error)
}

// registrationLister provides the flat registration list for aggregation
type registrationLister interface {
	GetAll(ctx context.Context) ([]models.CourseRegistration, error)
}

// ReportService assembles the admin dashboard and the downloadable reports.
// All aggregation happens in memory over the flat record lists.
type ReportService struct {
	profiles      profileLister
	courses       courseLister
	registrations registrationLister
}

// NewReportService creates a new report service instance
func NewReportService(profiles profileLister, courses courseLister, registrations registrationLister) *ReportService {
	return &ReportService{
		profiles:      profiles,
		courses:       courses,
		registrations: registrations,
	}
}

func (s *ReportService) fetchAll(ctx context.Context) ([]models.StudentProfile, []models.Course, []models.CourseRegistration, error) {
	students, err := s.profiles.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	registrations, err := s.registrations.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return students, courses, registrations, nil
}

// Dashboard returns the admin dashboard aggregates
func (s *ReportService) Dashboard(ctx context.Context) (*reports.Dashboard, error) {
	students, courses, registrations, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	dashboard := reports.BuildDashboard(students, courses, registrations, time.Now())
	return &dashboard, nil
}

// Overview returns the full aggregate report
func (s *ReportService) Overview(ctx context.Context) (*reports.Overview, error) {
	students, courses, registrations, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	overview := reports.BuildOverview(students, courses, registrations)
	return &overview, nil
}

// RegistrationDetails returns the joined registration rows
func (s *ReportService) RegistrationDetails(ctx context.Context) ([]reports.RegistrationDetail, error) {
	students, courses, registrations, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return reports.JoinRegistrationDetails(registrations, students, courses), nil
}

// ExportOverviewCSV serializes the overview report as CSV
func (s *ReportService) ExportOverviewCSV(ctx context.Context) ([]byte, error) {
	overview, err := s.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return reports.OverviewCSV(*overview, time.Now())
}

// ExportRegistrationsCSV serializes the registration details as CSV
func (s *ReportService) ExportRegistrationsCSV(ctx context.Context) ([]byte, error) {
	details, err := s.RegistrationDetails(ctx)
	if err != nil {
		return nil, err
	}
	return reports.RegistrationDetailsCSV(details)
}

// ExportRegistrationsWorkbook serializes the registration details as an
// xlsx workbook
func (s *ReportService) ExportRegistrationsWorkbook(ctx context.Context) (*bytes.Buffer, error) {
	details, err := s.RegistrationDetails(ctx)
	if err != nil {
		return nil, err
	}
	return reports.RegistrationDetailsWorkbook(details)
}
