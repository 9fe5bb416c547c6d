package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all repository instances around a shared pool.
type Repositories struct {
	UserRepository        *UserRepository
	FormationRepository   *FormationRepository
	JobRepository         *JobRepository
	EnrollmentRepository  *EnrollmentRepository
	ApplicationRepository *ApplicationRepository
}

// NewRepositories creates all repositories against the given pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		FormationRepository:   NewFormationRepository(db),
		JobRepository:         NewJobRepository(db),
		EnrollmentRepository:  NewEnrollmentRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
	}
}
