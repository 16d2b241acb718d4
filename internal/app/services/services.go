package services

import (
	"github.com/osunpoly/polyreg/internal/app/repositories"
	"github.com/osunpoly/polyreg/internal/config"
	"github.com/osunpoly/polyreg/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService         *AuthService
	StudentService      *StudentService
	CourseService       *CourseService
	RegistrationService *RegistrationService
	ReportService       *ReportService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, cfg *config.Config) *Services {
	return &Services{
		AuthService: NewAuthService(
			repos.UserRepository,
			repos.ProfileRepository,
			repos.TokenRepository,
			repos,
			jwtService,
		),
		StudentService: NewStudentService(
			repos.ProfileRepository,
			repos,
		),
		CourseService: NewCourseService(
			repos.CourseRepository,
		),
		RegistrationService: NewRegistrationService(
			repos.RegistrationRepository,
			repos.CourseRepository,
			repos.ProfileRepository,
			cfg.Registration.MinUnits,
			cfg.Registration.MaxUnits,
		),
		ReportService: NewReportService(
			repos.ProfileRepository,
			repos.CourseRepository,
			repos.RegistrationRepository,
		),
	}
}
