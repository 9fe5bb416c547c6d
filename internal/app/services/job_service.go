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

// JobService handles the job posting catalog.
type JobService struct {
	jobRepo repositories.IJobRepository
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repositories.IJobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

// List retrieves active jobs matching the filter.
func (s *JobService) List(ctx context.Context, filter *dto.JobFilterRequest, remote *bool) ([]*models.Job, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Limit)
	return s.jobRepo.List(ctx, filter.Category, filter.Type, filter.Location, filter.Search, remote, offset, limit)
}

// GetByID retrieves one job by public numeric identifier and bumps its view
// counter. The bump is advisory; a failed counter update never fails the read.
func (s *JobService) GetByID(ctx context.Context, numericID int64) (*models.Job, error) {
	job, err := s.jobRepo.GetByNumericID(ctx, numericID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperrors.ErrJobNotFound
	}

	if err := s.jobRepo.IncrementViews(ctx, job.ID); err != nil {
		logger.Warn().Err(err).Int64("jobId", numericID).Msg("Failed to increment job views")
	} else {
		job.Views++
	}
	return job, nil
}

// Create adds a job posting to the catalog.
func (s *JobService) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:               req.Title,
		Company:             req.Company,
		Logo:                req.Logo,
		Location:            req.Location,
		Type:                req.Type,
		Category:            req.Category,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Responsibilities:    req.Responsibilities,
		Salary:              req.Salary,
		ContactEmail:        req.ContactEmail,
		ApplicationDeadline: req.ApplicationDeadline,
		IsRemote:            req.IsRemote,
		ExperienceLevel:     req.ExperienceLevel,
		Tags:                req.Tags,
		Benefits:            req.Benefits,
		IsActive:            req.IsActive,
	}

	if _, err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	logger.Info().Int64("jobId", job.NumericID).Str("title", job.Title).Msg("Job created")
	return job, nil
}

// Update applies a content patch to a job posting.
func (s *JobService) Update(ctx context.Context, numericID int64, req *dto.UpdateJobRequest) (*models.Job, error) {
	upd := &models.JobUpdate{
		Title:               req.Title,
		Company:             req.Company,
		Logo:                req.Logo,
		Location:            req.Location,
		Type:                req.Type,
		Category:            req.Category,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Responsibilities:    req.Responsibilities,
		Salary:              req.Salary,
		ContactEmail:        req.ContactEmail,
		ApplicationDeadline: req.ApplicationDeadline,
		IsRemote:            req.IsRemote,
		ExperienceLevel:     req.ExperienceLevel,
		Tags:                req.Tags,
		Benefits:            req.Benefits,
		IsActive:            req.IsActive,
	}
	if err := s.jobRepo.Update(ctx, numericID, upd); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetByNumericID(ctx, numericID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperrors.ErrJobNotFound
	}
	return job, nil
}

// Delete removes a job posting. Applications pointing at it are removed by
// the storage cascade.
func (s *JobService) Delete(ctx context.Context, numericID int64) error {
	if err := s.jobRepo.Delete(ctx, numericID); err != nil {
		return err
	}
	logger.Info().Int64("jobId", numericID).Msg("Job deleted")
	return nil
}
