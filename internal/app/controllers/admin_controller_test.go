package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/osunpoly/polyreg/internal/app/models"
	"github.com/osunpoly/polyreg/internal/app/models/dto"
	"github.com/osunpoly/polyreg/internal/app/services"
	"github.com/osunpoly/polyreg/internal/config"
	"github.com/osunpoly/polyreg/internal/pkg/apperrors"
	"github.com/osunpoly/polyreg/internal/pkg/auth"
)

// In-memory stores backing the gateway under test.

type stubCourseRepo struct {
	courses []models.Course
	nextID  int64
}

func (s *stubCourseRepo) GetAll(_ context.Context) ([]models.Course, error) {
	out := make([]models.Course, len(s.courses))
	copy(out, s.courses)
	return out, nil
}

func (s *stubCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	for i := range s.courses {
		if s.courses[i].ID == id {
			c := s.courses[i]
			return &c, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (s *stubCourseRepo) Create(_ context.Context, course *models.Course) error {
	s.nextID++
	course.ID = s.nextID
	course.CreatedAt = time.Now()
	s.courses = append(s.courses, *course)
	return nil
}

func (s *stubCourseRepo) Update(_ context.Context, course *models.Course) error {
	for i := range s.courses {
		if s.courses[i].ID == course.ID {
			s.courses[i] = *course
			return nil
		}
	}
	return apperrors.ErrCourseNotFound
}

func (s *stubCourseRepo) Delete(_ context.Context, id int64) error {
	for i := range s.courses {
		if s.courses[i].ID == id {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCourseNotFound
}

func (s *stubCourseRepo) ExistsByCourseCode(_ context.Context, courseCode string) (bool, error) {
	for i := range s.courses {
		if s.courses[i].CourseCode == courseCode {
			return true, nil
		}
	}
	return false, nil
}

type stubProfileRepo struct {
	profiles []models.StudentProfile
}

func (s *stubProfileRepo) GetByUserID(_ context.Context, userID int64) (*models.StudentProfile, error) {
	for i := range s.profiles {
		if s.profiles[i].UserID == userID {
			p := s.profiles[i]
			return &p, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *stubProfileRepo) GetByID(_ context.Context, id int64) (*models.StudentProfile, error) {
	for i := range s.profiles {
		if s.profiles[i].ID == id {
			p := s.profiles[i]
			return &p, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *stubProfileRepo) GetAll(_ context.Context) ([]models.StudentProfile, error) {
	out := make([]models.StudentProfile, len(s.profiles))
	copy(out, s.profiles)
	return out, nil
}

func (s *stubProfileRepo) Update(_ context.Context, profile *models.StudentProfile) error {
	for i := range s.profiles {
		if s.profiles[i].ID == profile.ID {
			s.profiles[i] = *profile
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (s *stubProfileRepo) SetFeesPaid(_ context.Context, profileID int64, feesPaid bool) error {
	for i := range s.profiles {
		if s.profiles[i].ID == profileID {
			s.profiles[i].FeesPaid = feesPaid
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

type stubAccountRepo struct {
	matrics  map[string]bool
	profiles *stubProfileRepo
	nextID   int64
}

func (s *stubAccountRepo) CreateStudentAccount(_ context.Context, user *models.User, profile *models.StudentProfile) error {
	if s.matrics[user.MatricNumber] {
		return apperrors.ErrMatricNumberExists
	}
	s.matrics[user.MatricNumber] = true
	s.nextID++
	user.ID = s.nextID
	profile.UserID = user.ID
	profile.ID = int64(len(s.profiles.profiles) + 1)
	s.profiles.profiles = append(s.profiles.profiles, *profile)
	return nil
}

func newGatewayFixture() (*gin.Engine, *stubCourseRepo, *stubProfileRepo) {
	gin.SetMode(gin.TestMode)

	courses := &stubCourseRepo{courses: []models.Course{
		{ID: 3, CourseCode: "ACC101", CourseTitle: "Principles of Accounting", Units: 3,
			Department: "Accountancy", Level: models.LevelND1, Semester: models.SemesterFirst},
	}, nextID: 3}
	profiles := &stubProfileRepo{profiles: []models.StudentProfile{
		{ID: 5, UserID: 50, FullName: "Adaeze Okafor", MatricNumber: "ND/CS/23/0041",
			Department: "Computer Science", Level: models.LevelND1},
	}}
	accounts := &stubAccountRepo{matrics: map[string]bool{"ND/CS/23/0041": true}, profiles: profiles}

	cfg := &config.Config{}
	cfg.Admin.Username = "registry"
	cfg.Admin.Password = "console-secret"

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret-key",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "polyreg.test",
	})

	ctrl := NewAdminController(
		cfg,
		jwtService,
		services.NewCourseService(courses),
		services.NewStudentService(profiles, accounts),
		nil,
	)

	router := gin.New()
	router.POST("/admin/courses", ctrl.Courses)
	router.POST("/admin/students", ctrl.Students)
	return router, courses, profiles
}

func postEnvelope(t *testing.T, router *gin.Engine, path, body string) (*httptest.ResponseRecorder, dto.AdminResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp dto.AdminResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not an AdminResponse: %v (%s)", err, w.Body.String())
	}
	return w, resp
}

func TestGatewayToggleFeesAcceptsLegacyKeys(t *testing.T) {
	router, _, profiles := newGatewayFixture()

	w, resp := postEnvelope(t, router, "/admin/students",
		`{"action":"toggleFees","payload":{"id":5,"fees_paid":true}}`)
	if w.Code != http.StatusOK || !resp.Success {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !profiles.profiles[0].FeesPaid {
		t.Error("fees flag not set from legacy payload")
	}
}

func TestGatewayToggleFeesRequiresAnID(t *testing.T) {
	router, _, _ := newGatewayFixture()

	w, resp := postEnvelope(t, router, "/admin/students",
		`{"action":"toggleFees","payload":{"fees_paid":true}}`)
	if w.Code != http.StatusBadRequest || resp.Success {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestGatewayCourseUpdateAppliesPartialPayload(t *testing.T) {
	router, courses, _ := newGatewayFixture()

	w, resp := postEnvelope(t, router, "/admin/courses",
		`{"action":"update","payload":{"id":3,"units":5}}`)
	if w.Code != http.StatusOK || !resp.Success {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	got := courses.courses[0]
	if got.Units != 5 {
		t.Errorf("Units = %d, want 5", got.Units)
	}
	if got.CourseCode != "ACC101" || got.CourseTitle != "Principles of Accounting" ||
		got.Department != "Accountancy" {
		t.Errorf("omitted fields changed: %+v", got)
	}
}

func TestGatewayCreateStudentDuplicateMatricIsBadRequest(t *testing.T) {
	router, _, _ := newGatewayFixture()

	w, resp := postEnvelope(t, router, "/admin/students",
		`{"action":"createStudent","payload":{"fullName":"Adaeze Okafor","matricNumber":"ND/CS/23/0041","department":"Computer Science","level":"ND1"}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body = %s)", w.Code, w.Body.String())
	}
	if resp.Success || !strings.Contains(resp.Error, "matric number already exists") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestGatewayUnknownActionIsBadRequest(t *testing.T) {
	router, _, _ := newGatewayFixture()

	w, resp := postEnvelope(t, router, "/admin/courses", `{"action":"truncate"}`)
	if w.Code != http.StatusBadRequest || resp.Error != "Unknown action" {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}
