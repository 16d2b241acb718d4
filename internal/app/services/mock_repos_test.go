package services

import (
	"context"
	"time"

	"github.com/osunpoly/polyreg/internal/app/models"
	"github.com/osunpoly/polyreg/internal/pkg/apperrors"
)

// In-memory stand-ins for the repository interfaces. They hold plain
// slices and hand out copies, which is all the services need.

type mockProfileRepo struct {
	profiles []models.StudentProfile
}

func (m *mockProfileRepo) GetByUserID(_ context.Context, userID int64) (*models.StudentProfile, error) {
	for i := range m.profiles {
		if m.profiles[i].UserID == userID {
			p := m.profiles[i]
			return &p, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (m *mockProfileRepo) GetByID(_ context.Context, id int64) (*models.StudentProfile, error) {
	for i := range m.profiles {
		if m.profiles[i].ID == id {
			p := m.profiles[i]
			return &p, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (m *mockProfileRepo) GetAll(_ context.Context) ([]models.StudentProfile, error) {
	out := make([]models.StudentProfile, len(m.profiles))
	copy(out, m.profiles)
	return out, nil
}

func (m *mockProfileRepo) Update(_ context.Context, profile *models.StudentProfile) error {
	for i := range m.profiles {
		if m.profiles[i].ID == profile.ID {
			m.profiles[i] = *profile
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (m *mockProfileRepo) SetFeesPaid(_ context.Context, profileID int64, feesPaid bool) error {
	for i := range m.profiles {
		if m.profiles[i].ID == profileID {
			m.profiles[i].FeesPaid = feesPaid
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (m *mockProfileRepo) ClearTemporaryPassword(_ context.Context, userID int64) error {
	for i := range m.profiles {
		if m.profiles[i].UserID == userID {
			m.profiles[i].TemporaryPassword = nil
			return nil
		}
	}
	return nil
}

type mockCourseRepo struct {
	courses []models.Course
	nextID  int64
}

func (m *mockCourseRepo) GetAll(_ context.Context) ([]models.Course, error) {
	out := make([]models.Course, len(m.courses))
	copy(out, m.courses)
	return out, nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	for i := range m.courses {
		if m.courses[i].ID == id {
			c := m.courses[i]
			return &c, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (m *mockCourseRepo) GetByIDs(_ context.Context, ids []int64) ([]models.Course, error) {
	var out []models.Course
	for _, id := range ids {
		for i := range m.courses {
			if m.courses[i].ID == id {
				out = append(out, m.courses[i])
				break
			}
		}
	}
	return out, nil
}

func (m *mockCourseRepo) Create(_ context.Context, course *models.Course) error {
	for i := range m.courses {
		if m.courses[i].CourseCode == course.CourseCode {
			return apperrors.ErrCourseCodeExists
		}
	}
	m.nextID++
	course.ID = m.nextID
	course.CreatedAt = time.Now()
	m.courses = append(m.courses, *course)
	return nil
}

func (m *mockCourseRepo) Update(_ context.Context, course *models.Course) error {
	for i := range m.courses {
		if m.courses[i].ID == course.ID {
			m.courses[i] = *course
			return nil
		}
	}
	return apperrors.ErrCourseNotFound
}

func (m *mockCourseRepo) ExistsByCourseCode(_ context.Context, courseCode string) (bool, error) {
	for i := range m.courses {
		if m.courses[i].CourseCode == courseCode {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id int64) error {
	for i := range m.courses {
		if m.courses[i].ID == id {
			m.courses = append(m.courses[:i], m.courses[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCourseNotFound
}

type mockRegistrationRepo struct {
	registrations []models.CourseRegistration
	courses       *mockCourseRepo
	nextID        int64
}

func (m *mockRegistrationRepo) CreateBatch(_ context.Context, regs []*models.CourseRegistration) error {
	// Mirror the unique constraint before accepting the batch
	for _, reg := range regs {
		for _, existing := range m.registrations {
			if existing.UserID == reg.UserID && existing.CourseID == reg.CourseID &&
				existing.AcademicSession == reg.AcademicSession && existing.Semester == reg.Semester {
				return apperrors.ErrDuplicateCourse
			}
		}
	}
	for _, reg := range regs {
		m.nextID++
		reg.ID = m.nextID
		reg.RegistrationDate = time.Now()
		m.registrations = append(m.registrations, *reg)
	}
	return nil
}

func (m *mockRegistrationRepo) GetByUser(ctx context.Context, userID int64) ([]models.CourseRegistration, error) {
	var out []models.CourseRegistration
	for _, reg := range m.registrations {
		if reg.UserID != userID {
			continue
		}
		if m.courses != nil {
			if course, err := m.courses.GetByID(ctx, reg.CourseID); err == nil {
				reg.Course = course
			}
		}
		out = append(out, reg)
	}
	return out, nil
}

func (m *mockRegistrationRepo) GetActiveByUserTerm(_ context.Context, userID int64, session string, semester models.Semester) ([]models.CourseRegistration, error) {
	var out []models.CourseRegistration
	for _, reg := range m.registrations {
		if reg.UserID == userID && reg.AcademicSession == session &&
			reg.Semester == semester && reg.Status == models.RegistrationActive {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (m *mockRegistrationRepo) GetAll(_ context.Context) ([]models.CourseRegistration, error) {
	out := make([]models.CourseRegistration, len(m.registrations))
	copy(out, m.registrations)
	return out, nil
}

type mockAccountRepo struct {
	users    []models.User
	profiles *mockProfileRepo
	nextID   int64
}

func (m *mockAccountRepo) CreateStudentAccount(_ context.Context, user *models.User, profile *models.StudentProfile) error {
	for _, existing := range m.users {
		if existing.MatricNumber == user.MatricNumber {
			return apperrors.ErrMatricNumberExists
		}
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	m.users = append(m.users, *user)

	profile.UserID = user.ID
	if m.profiles != nil {
		profile.ID = int64(len(m.profiles.profiles) + 1)
		m.profiles.profiles = append(m.profiles.profiles, *profile)
	}
	return nil
}
