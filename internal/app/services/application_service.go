package services

import (
	"context"
	"encoding/json"

	"github.com/findup-dz/findup-api/internal/app/models"
	"github.com/findup-dz/findup-api/internal/app/repositories"
	"github.com/findup-dz/findup-api/internal/pkg/apperrors"
	"github.com/findup-dz/findup-api/internal/pkg/helpers"
	"github.com/findup-dz/findup-api/internal/pkg/logger"
	"github.com/findup-dz/findup-api/internal/pkg/metrics"
)

// ApplicationService manages the user-job relationship. At most one
// application exists per (user, job) pair.
type ApplicationService struct {
	applicationRepo repositories.IApplicationRepository
	jobRepo         repositories.IJobRepository
	userRepo        repositories.IUserRepository
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicationRepo repositories.IApplicationRepository,
	jobRepo repositories.IJobRepository,
	userRepo repositories.IUserRepository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
	}
}

// Apply creates an application for the caller. The check order mirrors
// EnrollmentService.Enroll: account, identifier, target, then duplicate; the
// storage unique index backstops the duplicate check under races.
func (s *ApplicationService) Apply(ctx context.Context, userID int64, rawJobID json.Number, coverLetter *string) (*models.Application, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	jobID, err := parseTargetID(rawJobID, "job")
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetByNumericID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperrors.ErrJobNotFound
	}

	exists, err := s.applicationRepo.Exists(ctx, userID, job.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	application := &models.Application{
		UserID:      userID,
		JobID:       job.ID,
		Status:      models.ApplicationPending,
		CoverLetter: coverLetter,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	metrics.RelationshipCreated("application")
	logger.Info().Int64("userId", userID).Int64("jobId", jobID).Msg("Application created")
	return application, nil
}

// List retrieves the caller's applications joined with job display fields,
// newest first.
func (s *ApplicationService) List(ctx context.Context, userID int64, status *string, page, limit int) ([]*models.ApplicationListItem, int64, error) {
	offset, boundedLimit := helpers.CalculateOffsetLimit(page, limit)
	return s.applicationRepo.ListByUser(ctx, userID, status, offset, boundedLimit)
}

// ListRecent retrieves the caller's most recent applications for the profile
// page.
func (s *ApplicationService) ListRecent(ctx context.Context, userID int64) ([]*models.ApplicationListItem, error) {
	return s.applicationRepo.ListRecentByUser(ctx, userID, RecentItemsLimit)
}

// Withdraw removes one of the caller's applications. An application owned by
// another account is indistinguishable from a missing one.
func (s *ApplicationService) Withdraw(ctx context.Context, userID, applicationID int64) error {
	if applicationID <= 0 {
		return apperrors.NewValidationError("invalid application identifier")
	}
	if err := s.applicationRepo.DeleteOwned(ctx, applicationID, userID); err != nil {
		return err
	}

	metrics.RelationshipWithdrawn("application")
	logger.Info().Int64("userId", userID).Int64("applicationId", applicationID).Msg("Application withdrawn")
	return nil
}
