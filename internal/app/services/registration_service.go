package services

import (
	"context"

	"github.com/osunpoly/polyreg/internal/app/models"
	"github.com/osunpoly/polyreg/internal/app/models/dto"
	"github.com/osunpoly/polyreg/internal/app/reports"
	"github.com/osunpoly/polyreg/internal/app/rules"
	"github.com/osunpoly/polyreg/internal/pkg/apperrors"
	"github.com/osunpoly/polyreg/internal/pkg/logger"
)

// registrationStore is the registration access the registration service needs
type registrationStore interface {
	CreateBatch(ctx context.Context, regs []*models.CourseRegistration) error
	GetByUser(ctx context.Context, userID int64) ([]models.CourseRegistration, error)
	GetActiveByUserTerm(ctx context.Context, userID int64, session string, semester models.Semester) ([]models.CourseRegistration, error)
}

// courseReader resolves course IDs against the catalog
type courseReader interface {
	GetByIDs(ctx context.Context, ids []int64) ([]models.Course, error)
}

// profileReader loads the submitting student's profile
type profileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error)
}

// RegistrationService handles course registration submissions, history and
// the printable registration slip
type RegistrationService struct {
	registrations registrationStore
	courses       courseReader
	profiles      profileReader
	minUnits      int
	maxUnits      int
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(registrations registrationStore, courses courseReader, profiles profileReader, minUnits, maxUnits int) *RegistrationService {
	return &RegistrationService{
		registrations: registrations,
		courses:       courses,
		profiles:      profiles,
		minUnits:      minUnits,
		maxUnits:      maxUnits,
	}
}

// Submit registers the requested courses for one session/semester. The whole
// submission is checked against the selection rules before anything is
// written, and all rows commit in one transaction.
func (s *RegistrationService) Submit(ctx context.Context, userID int64, req dto.SubmitRegistrationRequest) (*dto.RegistrationGroupResponse, error) {
	semester, ok := models.NormalizeSemester(req.Semester)
	if !ok {
		return nil, apperrors.NewValidationError("semester must be First or Second")
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	courses, err := s.courses.GetByIDs(ctx, req.CourseIDs)
	if err != nil {
		return nil, err
	}
	coursesByID := make(map[int64]models.Course, len(courses))
	for _, c := range courses {
		coursesByID[c.ID] = c
	}

	existing, err := s.registrations.GetActiveByUserTerm(ctx, userID, req.AcademicSession, semester)
	if err != nil {
		return nil, err
	}
	registered := make(map[int64]bool, len(existing))
	for _, r := range existing {
		registered[r.CourseID] = true
	}

	selection := rules.NewSelection()
	for _, id := range req.CourseIDs {
		course, found := coursesByID[id]
		if !found {
			return nil, apperrors.ErrCourseNotFound
		}
		if registered[id] || selection.Contains(id) {
			return nil, apperrors.ErrDuplicateCourse
		}
		if !selection.Add(course, s.maxUnits) {
			return nil, apperrors.ErrUnitsOutOfBounds
		}
	}

	if !selection.CanSubmit(profile.FeesPaid, s.minUnits, s.maxUnits) {
		if !profile.FeesPaid {
			return nil, apperrors.ErrFeesNotPaid
		}
		return nil, apperrors.ErrUnitsOutOfBounds
	}

	regs := make([]*models.CourseRegistration, 0, selection.Len())
	for _, course := range selection.Courses() {
		regs = append(regs, &models.CourseRegistration{
			UserID:          userID,
			CourseID:        course.ID,
			AcademicSession: req.AcademicSession,
			Semester:        semester,
			Status:          models.RegistrationActive,
		})
	}

	if err := s.registrations.CreateBatch(ctx, regs); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("userID", userID).
		Str("session", req.AcademicSession).
		Str("semester", string(semester)).
		Int("courses", len(regs)).
		Int("totalUnits", selection.TotalUnits()).
		Msg("Course registration submitted")

	group := &dto.RegistrationGroupResponse{
		AcademicSession: req.AcademicSession,
		Semester:        string(semester),
		TotalUnits:      selection.TotalUnits(),
	}
	for i, course := range selection.Courses() {
		group.Courses = append(group.Courses, dto.RegisteredCourseResponse{
			RegistrationID:   regs[i].ID,
			CourseID:         course.ID,
			CourseCode:       course.CourseCode,
			CourseTitle:      course.CourseTitle,
			Units:            course.Units,
			Status:           string(regs[i].Status),
			RegistrationDate: regs[i].RegistrationDate,
		})
	}
	return group, nil
}

// History returns the student's registrations grouped per session/semester,
// in the order the repository yields them (newest term first)
func (s *RegistrationService) History(ctx context.Context, userID int64) ([]dto.RegistrationGroupResponse, error) {
	regs, err := s.registrations.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	type termKey struct {
		session  string
		semester models.Semester
	}
	index := make(map[termKey]int)
	groups := make([]dto.RegistrationGroupResponse, 0)

	for _, reg := range regs {
		if reg.Course == nil {
			continue
		}
		key := termKey{reg.AcademicSession, reg.Semester}
		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, dto.RegistrationGroupResponse{
				AcademicSession: reg.AcademicSession,
				Semester:        string(reg.Semester),
			})
		}
		groups[i].Courses = append(groups[i].Courses, dto.RegisteredCourseResponse{
			RegistrationID:   reg.ID,
			CourseID:         reg.CourseID,
			CourseCode:       reg.Course.CourseCode,
			CourseTitle:      reg.Course.CourseTitle,
			Units:            reg.Course.Units,
			Status:           string(reg.Status),
			RegistrationDate: reg.RegistrationDate,
		})
		if reg.Status == models.RegistrationActive {
			groups[i].TotalUnits += reg.Course.Units
		}
	}

	return groups, nil
}

// Slip renders the printable registration slip for one term
func (s *RegistrationService) Slip(ctx context.Context, userID int64, session, semesterStr string) (*dto.RegistrationSlipResponse, error) {
	semester, ok := models.NormalizeSemester(semesterStr)
	if !ok {
		return nil, apperrors.NewValidationError("semester must be First or Second")
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	regs, err := s.registrations.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	slip := reports.Slip{
		StudentName:  profile.FullName,
		MatricNumber: profile.MatricNumber,
		Department:   profile.Department,
		Level:        profile.Level,
		Session:      session,
		Semester:     semester,
	}
	for _, reg := range regs {
		if reg.AcademicSession != session || reg.Semester != semester {
			continue
		}
		if reg.Status != models.RegistrationActive || reg.Course == nil {
			continue
		}
		slip.Courses = append(slip.Courses, reports.SlipCourse{
			CourseCode:  reg.Course.CourseCode,
			CourseTitle: reg.Course.CourseTitle,
			Units:       reg.Course.Units,
		})
		slip.TotalUnits += reg.Course.Units
		if reg.RegistrationDate.After(slip.RegistrationDate) {
			slip.RegistrationDate = reg.RegistrationDate
		}
	}

	if len(slip.Courses) == 0 {
		return nil, apperrors.ErrRegistrationNotFound
	}

	content, err := slip.Render()
	if err != nil {
		return nil, err
	}

	return &dto.RegistrationSlipResponse{
		Filename: slip.Filename(),
		Content:  content,
	}, nil
}
