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

// RecentItemsLimit caps the profile-page "recent activity" projections.
const RecentItemsLimit = 5

// EnrollmentService manages the user-formation relationship. At most one
// enrollment exists per (user, formation) pair.
type EnrollmentService struct {
	enrollmentRepo repositories.IEnrollmentRepository
	formationRepo  repositories.IFormationRepository
	userRepo       repositories.IUserRepository
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	enrollmentRepo repositories.IEnrollmentRepository,
	formationRepo repositories.IFormationRepository,
	userRepo repositories.IUserRepository,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		formationRepo:  formationRepo,
		userRepo:       userRepo,
	}
}

// Enroll creates an enrollment for the caller. Checks run in a fixed order:
// the session account must still exist, the identifier must be a positive
// integer, the formation must exist, and the pair must not already be
// enrolled. The pre-insert duplicate check gives a friendly error in the
// common case; the storage unique index catches the race and yields the same
// ErrAlreadyEnrolled.
func (s *EnrollmentService) Enroll(ctx context.Context, userID int64, rawFormationID json.Number) (*models.Enrollment, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	formationID, err := parseTargetID(rawFormationID, "formation")
	if err != nil {
		return nil, err
	}

	formation, err := s.formationRepo.GetByNumericID(ctx, formationID)
	if err != nil {
		return nil, err
	}
	if formation == nil {
		return nil, apperrors.ErrFormationNotFound
	}

	exists, err := s.enrollmentRepo.Exists(ctx, userID, formation.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyEnrolled
	}

	moduleIDs, err := s.formationRepo.GetModuleIDs(ctx, formation.ID)
	if err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		UserID:      userID,
		FormationID: formation.ID,
		Status:      models.EnrollmentActive,
		Progress:    0,
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment, moduleIDs); err != nil {
		return nil, err
	}

	metrics.RelationshipCreated("enrollment")
	logger.Info().Int64("userId", userID).Int64("formationId", formationID).Msg("Enrollment created")
	return enrollment, nil
}

// List retrieves the caller's enrollments joined with formation display
// fields, newest first.
func (s *EnrollmentService) List(ctx context.Context, userID int64, status *string, page, limit int) ([]*models.EnrollmentListItem, int64, error) {
	offset, boundedLimit := helpers.CalculateOffsetLimit(page, limit)
	return s.enrollmentRepo.ListByUser(ctx, userID, status, offset, boundedLimit)
}

// ListRecent retrieves the caller's most recent enrollments for the profile
// page.
func (s *EnrollmentService) ListRecent(ctx context.Context, userID int64) ([]*models.EnrollmentListItem, error) {
	return s.enrollmentRepo.ListRecentByUser(ctx, userID, RecentItemsLimit)
}

// Withdraw removes one of the caller's enrollments. An enrollment owned by
// another account is indistinguishable from a missing one.
func (s *EnrollmentService) Withdraw(ctx context.Context, userID, enrollmentID int64) error {
	if enrollmentID <= 0 {
		return apperrors.NewValidationError("invalid enrollment identifier")
	}
	if err := s.enrollmentRepo.DeleteOwned(ctx, enrollmentID, userID); err != nil {
		return err
	}

	metrics.RelationshipWithdrawn("enrollment")
	logger.Info().Int64("userId", userID).Int64("enrollmentId", enrollmentID).Msg("Enrollment withdrawn")
	return nil
}
