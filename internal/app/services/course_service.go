package services

import (
	"context"
	"strings"

	"github.com/osunpoly/polyreg/internal/app/models"
	"github.com/osunpoly/polyreg/internal/app/models/dto"
	"github.com/osunpoly/polyreg/internal/app/rules"
	"github.com/osunpoly/polyreg/internal/pkg/apperrors"
)

// courseStore is the catalog access the course service needs
type courseStore interface {
	GetAll(ctx context.Context) ([]models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	ExistsByCourseCode(ctx context.Context, courseCode string) (bool, error)
}

// CourseService handles the course catalog
type CourseService struct {
	courses courseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses courseStore) *CourseService {
	return &CourseService{
		courses: courses,
	}
}

// Catalog returns catalog entries. With no filters it returns the whole
// catalog; with department, level and semester it returns the entries a
// student at that position can take, honoring the session wildcard for
// courses without a session. Partial filters are rejected.
func (s *CourseService) Catalog(ctx context.Context, q dto.CatalogQuery) ([]dto.CourseResponse, error) {
	catalog, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if q.Department == "" && q.Level == "" && q.Semester == "" {
		return dto.NewCourseResponseList(catalog), nil
	}

	if q.Department == "" || q.Level == "" || q.Semester == "" {
		return nil, apperrors.NewValidationError("department, level and semester must be provided together")
	}
	if !models.ValidLevel(q.Level) {
		return nil, apperrors.NewValidationError("level must be one of ND1, ND2, HND1, HND2")
	}
	semester, ok := models.NormalizeSemester(q.Semester)
	if !ok {
		return nil, apperrors.NewValidationError("semester must be First or Second")
	}

	matched := rules.FilterCatalog(catalog, q.Department, models.Level(q.Level), semester, q.Session)
	return dto.NewCourseResponseList(matched), nil
}

// GetCourse returns a single catalog entry
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewCourseResponse(course), nil
}

// CreateCourse adds a catalog entry
func (s *CourseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	course, err := courseFromRequest(req.CourseCode, req.CourseTitle, req.Units, req.Department,
		req.Level, req.Semester, req.AcademicSession, req.Description)
	if err != nil {
		return nil, err
	}

	exists, err := s.courses.ExistsByCourseCode(ctx, course.CourseCode)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrCourseCodeExists
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	return dto.NewCourseResponse(course), nil
}

// UpdateCourse applies the provided fields to a catalog entry; fields
// absent from the request keep their stored values
func (s *CourseService) UpdateCourse(ctx context.Context, req dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	course, err := s.courses.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.CourseCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.CourseCode))
		if code == "" {
			return nil, apperrors.NewValidationError("course code cannot be empty")
		}
		course.CourseCode = code
	}
	if req.CourseTitle != nil {
		title := strings.TrimSpace(*req.CourseTitle)
		if title == "" {
			return nil, apperrors.NewValidationError("course title cannot be empty")
		}
		course.CourseTitle = title
	}
	if req.Units != nil {
		if *req.Units < 1 || *req.Units > 6 {
			return nil, apperrors.ErrInvalidUnitCount
		}
		course.Units = *req.Units
	}
	if req.Department != nil {
		course.Department = strings.TrimSpace(*req.Department)
	}
	if req.Level != nil {
		if !models.ValidLevel(string(*req.Level)) {
			return nil, apperrors.NewValidationError("level must be one of ND1, ND2, HND1, HND2")
		}
		course.Level = *req.Level
	}
	if req.Semester != nil {
		semester, ok := models.NormalizeSemester(string(*req.Semester))
		if !ok {
			return nil, apperrors.NewValidationError("semester must be First or Second")
		}
		course.Semester = semester
	}
	if req.AcademicSession != nil {
		if *req.AcademicSession == "" {
			course.AcademicSession = nil
		} else {
			course.AcademicSession = req.AcademicSession
		}
	}
	if req.Description != nil {
		if *req.Description == "" {
			course.Description = nil
		} else {
			course.Description = req.Description
		}
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return dto.NewCourseResponse(course), nil
}

// DeleteCourse removes a catalog entry
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	return s.courses.Delete(ctx, id)
}

func courseFromRequest(code, title string, units int, department string, level models.Level, semester models.Semester, session, description *string) (*models.Course, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, apperrors.NewValidationError("course code cannot be empty")
	}
	if units < 1 || units > 6 {
		return nil, apperrors.ErrInvalidUnitCount
	}
	if !models.ValidLevel(string(level)) {
		return nil, apperrors.NewValidationError("level must be one of ND1, ND2, HND1, HND2")
	}
	normalized, ok := models.NormalizeSemester(string(semester))
	if !ok {
		return nil, apperrors.NewValidationError("semester must be First or Second")
	}

	return &models.Course{
		CourseCode:      code,
		CourseTitle:     strings.TrimSpace(title),
		Units:           units,
		Department:      strings.TrimSpace(department),
		Level:           level,
		Semester:        normalized,
		AcademicSession: session,
		Description:     description,
	}, nil
}
