package repositories

import (
	"context"

	"github.com/findup-dz/findup-api/internal/app/models"
)

// IUserRepository is the account persistence contract consumed by services.
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, userID int64, upd *models.ProfileUpdate) error
}

// IFormationRepository is the formation persistence contract.
type IFormationRepository interface {
	GetByNumericID(ctx context.Context, numericID int64) (*models.Formation, error)
	GetModules(ctx context.Context, formationID int64) ([]models.FormationModule, error)
	GetModuleIDs(ctx context.Context, formationID int64) ([]int64, error)
	List(ctx context.Context, category, level, search *string, offset uint64, limit int) ([]*models.Formation, int64, error)
	Create(ctx context.Context, f *models.Formation) (int64, error)
	Update(ctx context.Context, numericID int64, upd *models.FormationUpdate) error
	Delete(ctx context.Context, numericID int64) error
}

// IJobRepository is the job posting persistence contract.
type IJobRepository interface {
	GetByNumericID(ctx context.Context, numericID int64) (*models.Job, error)
	List(ctx context.Context, category, jobType, location, search *string, remote *bool, offset uint64, limit int) ([]*models.Job, int64, error)
	Create(ctx context.Context, j *models.Job) (int64, error)
	IncrementViews(ctx context.Context, id int64) error
	Update(ctx context.Context, numericID int64, upd *models.JobUpdate) error
	Delete(ctx context.Context, numericID int64) error
}

// IEnrollmentRepository is the enrollment persistence contract.
type IEnrollmentRepository interface {
	Exists(ctx context.Context, userID, formationID int64) (bool, error)
	Create(ctx context.Context, enrollment *models.Enrollment, moduleIDs []int64) error
	DeleteOwned(ctx context.Context, id, userID int64) error
	ListByUser(ctx context.Context, userID int64, status *string, offset uint64, limit int) ([]*models.EnrollmentListItem, int64, error)
	ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*models.EnrollmentListItem, error)
}

// IApplicationRepository is the application persistence contract.
type IApplicationRepository interface {
	Exists(ctx context.Context, userID, jobID int64) (bool, error)
	Create(ctx context.Context, application *models.Application) error
	DeleteOwned(ctx context.Context, id, userID int64) error
	ListByUser(ctx context.Context, userID int64, status *string, offset uint64, limit int) ([]*models.ApplicationListItem, int64, error)
	ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*models.ApplicationListItem, error)
}
