package services

import (
	"context"

	"github.com/findup-dz/findup-api/internal/app/models"
	"github.com/findup-dz/findup-api/internal/app/models/dto"
	"github.com/findup-dz/findup-api/internal/app/repositories"
	"github.com/findup-dz/findup-api/internal/pkg/apperrors"
	"github.com/findup-dz/findup-api/internal/pkg/helpers"
	"github.com/findup-dz/findup-api/internal/pkg/logger"
)

// FormationService handles the formation catalog.
type FormationService struct {
	formationRepo repositories.IFormationRepository
}

// NewFormationService creates a new FormationService
func NewFormationService(formationRepo repositories.IFormationRepository) *FormationService {
	return &FormationService{formationRepo: formationRepo}
}

// List retrieves published formations matching the filter.
func (s *FormationService) List(ctx context.Context, filter *dto.FormationFilterRequest) ([]*models.Formation, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Limit)
	return s.formationRepo.List(ctx, filter.Category, filter.Level, filter.Search, offset, limit)
}

// GetByID retrieves one formation with its modules, addressed by public
// numeric identifier.
func (s *FormationService) GetByID(ctx context.Context, numericID int64) (*models.Formation, error) {
	formation, err := s.formationRepo.GetByNumericID(ctx, numericID)
	if err != nil {
		return nil, err
	}
	if formation == nil {
		return nil, apperrors.ErrFormationNotFound
	}

	modules, err := s.formationRepo.GetModules(ctx, formation.ID)
	if err != nil {
		return nil, err
	}
	formation.Modules = modules
	return formation, nil
}

// Create adds a formation to the catalog. Route middleware has already
// verified the caller is an administrator.
func (s *FormationService) Create(ctx context.Context, req *dto.CreateFormationRequest) (*models.Formation, error) {
	formation := &models.Formation{
		Title:       req.Title,
		Description: req.Description,
		Provider:    req.Provider,
		Category:    req.Category,
		Level:       models.FormationLevel(req.Level),
		Duration:    req.Duration,
		Price:       req.Price,
		Thumbnail:   req.Thumbnail,
		IsPublished: req.IsPublished,
	}
	for _, m := range req.Modules {
		formation.Modules = append(formation.Modules, models.FormationModule{
			Title:       m.Title,
			Description: m.Description,
			Duration:    m.Duration,
			VideoURL:    m.VideoURL,
			Resources:   m.Resources,
		})
	}

	if _, err := s.formationRepo.Create(ctx, formation); err != nil {
		return nil, err
	}

	logger.Info().Int64("formationId", formation.NumericID).Str("title", formation.Title).Msg("Formation created")
	return formation, nil
}

// Update applies a content patch to a formation.
func (s *FormationService) Update(ctx context.Context, numericID int64, req *dto.UpdateFormationRequest) (*models.Formation, error) {
	upd := &models.FormationUpdate{
		Title:       req.Title,
		Description: req.Description,
		Provider:    req.Provider,
		Category:    req.Category,
		Level:       req.Level,
		Duration:    req.Duration,
		Price:       req.Price,
		Thumbnail:   req.Thumbnail,
		IsPublished: req.IsPublished,
	}
	if err := s.formationRepo.Update(ctx, numericID, upd); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, numericID)
}

// Delete removes a formation from the catalog. Enrollments pointing at it are
// removed by the storage cascade; list endpoints render any row caught
// mid-flight with a placeholder label.
func (s *FormationService) Delete(ctx context.Context, numericID int64) error {
	if err := s.formationRepo.Delete(ctx, numericID); err != nil {
		return err
	}
	logger.Info().Int64("formationId", numericID).Msg("Formation deleted")
	return nil
}
