package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/findup-dz/findup-api/internal/app/models"
	"github.com/findup-dz/findup-api/internal/pkg/apperrors"
)

const jobColumns = `id, numeric_id, title, company, logo, location, type, category, description, requirements, responsibilities, salary, contact_email, application_deadline, is_remote, experience_level, tags, benefits, is_active, views, applications_count, created_at, updated_at`

// JobRepository handles database operations for job postings
type JobRepository struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{db: db}
}

func scanJob(row pgx.Row) (*models.Job, error) {
	j := &models.Job{}
	err := row.Scan(
		&j.ID, &j.NumericID, &j.Title, &j.Company, &j.Logo, &j.Location, &j.Type,
		&j.Category, &j.Description, &j.Requirements, &j.Responsibilities, &j.Salary,
		&j.ContactEmail, &j.ApplicationDeadline, &j.IsRemote, &j.ExperienceLevel,
		&j.Tags, &j.Benefits, &j.IsActive, &j.Views, &j.ApplicationsCount,
		&j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning job: %w", err)
	}
	return j, nil
}

// GetByNumericID retrieves a job by its public numeric identifier.
// Returns (nil, nil) when no job matches.
func (r *JobRepository) GetByNumericID(ctx context.Context, numericID int64) (*models.Job, error) {
	return scanJob(r.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE numeric_id = $1`, numericID))
}

// List retrieves active jobs matching the filter, newest first, along with
// the total match count.
func (r *JobRepository) List(ctx context.Context, category, jobType, location, search *string, remote *bool, offset uint64, limit int) ([]*models.Job, int64, error) {
	base := squirrel.Select().From("jobs").
		Where("is_active = TRUE").
		PlaceholderFormat(squirrel.Dollar)

	if category != nil {
		base = base.Where("category = ?", *category)
	}
	if jobType != nil {
		base = base.Where("type = ?", *jobType)
	}
	if location != nil {
		base = base.Where("location ILIKE ?", "%"+*location+"%")
	}
	if remote != nil {
		base = base.Where("is_remote = ?", *remote)
	}
	if search != nil {
		pattern := "%" + *search + "%"
		base = base.Where(squirrel.Or{
			squirrel.Expr("title ILIKE ?", pattern),
			squirrel.Expr("company ILIKE ?", pattern),
			squirrel.Expr("description ILIKE ?", pattern),
		})
	}

	countSQL, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting jobs: %w", err)
	}

	listSQL, listArgs, err := base.Columns(jobColumns).
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		j := &models.Job{}
		err := rows.Scan(
			&j.ID, &j.NumericID, &j.Title, &j.Company, &j.Logo, &j.Location, &j.Type,
			&j.Category, &j.Description, &j.Requirements, &j.Responsibilities, &j.Salary,
			&j.ContactEmail, &j.ApplicationDeadline, &j.IsRemote, &j.ExperienceLevel,
			&j.Tags, &j.Benefits, &j.IsActive, &j.Views, &j.ApplicationsCount,
			&j.CreatedAt, &j.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, total, rows.Err()
}

// Create inserts a job posting, assigning the next public numeric identifier.
func (r *JobRepository) Create(ctx context.Context, j *models.Job) (int64, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO jobs (numeric_id, title, company, logo, location, type, category, description,
			requirements, responsibilities, salary, contact_email, application_deadline,
			is_remote, experience_level, tags, benefits, is_active)
		VALUES ((SELECT COALESCE(MAX(numeric_id), 0) + 1 FROM jobs),
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, numeric_id`,
		j.Title, j.Company, j.Logo, j.Location, j.Type, j.Category, j.Description,
		j.Requirements, j.Responsibilities, j.Salary, j.ContactEmail, j.ApplicationDeadline,
		j.IsRemote, j.ExperienceLevel, j.Tags, j.Benefits, j.IsActive,
	).Scan(&j.ID, &j.NumericID)
	if err != nil {
		return 0, fmt.Errorf("error creating job: %w", err)
	}
	return j.ID, nil
}

// IncrementViews bumps the view counter of a job. Failures here are not worth
// failing a detail request over, so callers treat the error as advisory.
func (r *JobRepository) IncrementViews(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE jobs SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error incrementing views: %w", err)
	}
	return nil
}

// Update applies non-nil content fields to a job, addressed by public numeric
// identifier.
func (r *JobRepository) Update(ctx context.Context, numericID int64, upd *models.JobUpdate) error {
	query := squirrel.Update("jobs").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("numeric_id = ?", numericID).
		PlaceholderFormat(squirrel.Dollar)

	if upd.Title != nil {
		query = query.Set("title", *upd.Title)
	}
	if upd.Company != nil {
		query = query.Set("company", *upd.Company)
	}
	if upd.Logo != nil {
		query = query.Set("logo", *upd.Logo)
	}
	if upd.Location != nil {
		query = query.Set("location", *upd.Location)
	}
	if upd.Type != nil {
		query = query.Set("type", *upd.Type)
	}
	if upd.Category != nil {
		query = query.Set("category", *upd.Category)
	}
	if upd.Description != nil {
		query = query.Set("description", *upd.Description)
	}
	if upd.Requirements != nil {
		query = query.Set("requirements", upd.Requirements)
	}
	if upd.Responsibilities != nil {
		query = query.Set("responsibilities", upd.Responsibilities)
	}
	if upd.Salary != nil {
		query = query.Set("salary", *upd.Salary)
	}
	if upd.ContactEmail != nil {
		query = query.Set("contact_email", *upd.ContactEmail)
	}
	if upd.ApplicationDeadline != nil {
		query = query.Set("application_deadline", *upd.ApplicationDeadline)
	}
	if upd.IsRemote != nil {
		query = query.Set("is_remote", *upd.IsRemote)
	}
	if upd.ExperienceLevel != nil {
		query = query.Set("experience_level", *upd.ExperienceLevel)
	}
	if upd.Tags != nil {
		query = query.Set("tags", upd.Tags)
	}
	if upd.Benefits != nil {
		query = query.Set("benefits", upd.Benefits)
	}
	if upd.IsActive != nil {
		query = query.Set("is_active", *upd.IsActive)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}

// Delete removes a job by public numeric identifier. Applications referencing
// it are removed by the ON DELETE CASCADE on the FK.
func (r *JobRepository) Delete(ctx context.Context, numericID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE numeric_id = $1`, numericID)
	if err != nil {
		return fmt.Errorf("error deleting job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}
