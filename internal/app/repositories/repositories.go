package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/osunpoly/polyreg/internal/app/models"
	"github.com/osunpoly/polyreg/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	ProfileRepository      *ProfileRepository
	CourseRepository       *CourseRepository
	RegistrationRepository *RegistrationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(pool),
		TokenRepository:        NewTokenRepository(pool),
		ProfileRepository:      NewProfileRepository(pool),
		CourseRepository:       NewCourseRepository(pool),
		RegistrationRepository: NewRegistrationRepository(pool),
	}
}

// CreateStudentAccount inserts a user and its profile in one transaction.
// The profile's UserID is filled from the freshly inserted user row.
func (r *Repositories) CreateStudentAccount(ctx context.Context, user *models.User, profile *models.StudentProfile) error {
	return db.WithTransaction(ctx, r.UserRepository.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := r.UserRepository.CreateTx(ctx, tx, user); err != nil {
			return err
		}
		profile.UserID = user.ID
		return r.ProfileRepository.CreateTx(ctx, tx, profile)
	})
}
