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
	"github.com/findup-dz/findup-api/internal/pkg/dberrors"
)

// ApplicationRepository handles database operations for job applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Exists checks whether the user already has an application for the job
func (r *ApplicationRepository) Exists(ctx context.Context, userID, jobID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE user_id = $1 AND job_id = $2)`,
		userID, jobID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking application: %w", err)
	}
	return exists, nil
}

// Create inserts an application and bumps the job's applications counter in
// one transaction. The unique compound index on (user_id, job_id) is the
// authoritative duplicate guard; a concurrent duplicate surfaces here as
// ErrAlreadyApplied.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO applications (user_id, job_id, status, cover_letter, resume_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, applied_at, updated_at`,
		application.UserID, application.JobID, application.Status,
		application.CoverLetter, application.ResumeURL,
	).Scan(&application.ID, &application.AppliedAt, &application.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "applications_user_job_uq") {
			return apperrors.ErrAlreadyApplied
		}
		return fmt.Errorf("error creating application: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE jobs SET applications_count = applications_count + 1 WHERE id = $1`,
		application.JobID)
	if err != nil {
		return fmt.Errorf("error updating applications count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// DeleteOwned removes an application only if it belongs to the given user, and
// decrements the job's applications counter in the same transaction. Missing
// and foreign-owned applications are both reported as not found.
func (r *ApplicationRepository) DeleteOwned(ctx context.Context, id, userID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var jobID int64
	err = tx.QueryRow(ctx, `
		DELETE FROM applications WHERE id = $1 AND user_id = $2
		RETURNING job_id`,
		id, userID).Scan(&jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error deleting application: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE jobs SET applications_count = GREATEST(applications_count - 1, 0) WHERE id = $1`,
		jobID)
	if err != nil {
		return fmt.Errorf("error updating applications count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

const applicationListColumns = `a.id, a.user_id, a.job_id, a.status, a.cover_letter, a.resume_url,
	a.notes, a.applied_at, a.updated_at,
	j.numeric_id, j.title, j.company, j.location, j.type`

func scanApplicationItem(rows interface {
	Scan(dest ...any) error
}) (*models.ApplicationListItem, error) {
	item := &models.ApplicationListItem{}
	err := rows.Scan(
		&item.ID, &item.UserID, &item.JobID, &item.Status, &item.CoverLetter, &item.ResumeURL,
		&item.Notes, &item.AppliedAt, &item.UpdatedAt,
		&item.JobNumericID, &item.JobTitle, &item.JobCompany, &item.JobLocation, &item.JobType)
	if err != nil {
		return nil, fmt.Errorf("error scanning application: %w", err)
	}
	return item, nil
}

// ListByUser retrieves the user's applications joined with job display fields,
// newest first, along with the total count. A LEFT JOIN keeps rows whose job
// was deleted.
func (r *ApplicationRepository) ListByUser(ctx context.Context, userID int64, status *string, offset uint64, limit int) ([]*models.ApplicationListItem, int64, error) {
	base := squirrel.Select().
		From("applications a").
		LeftJoin("jobs j ON j.id = a.job_id").
		Where("a.user_id = ?", userID).
		PlaceholderFormat(squirrel.Dollar)

	if status != nil {
		base = base.Where("a.status = ?", *status)
	}

	countSQL, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting applications: %w", err)
	}

	listSQL, listArgs, err := base.Columns(applicationListColumns).
		OrderBy("a.applied_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying applications: %w", err)
	}
	defer rows.Close()

	var items []*models.ApplicationListItem
	for rows.Next() {
		item, err := scanApplicationItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}

// ListRecentByUser retrieves the user's most recent applications, capped at
// limit, for the profile page.
func (r *ApplicationRepository) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*models.ApplicationListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+applicationListColumns+`
		FROM applications a
		LEFT JOIN jobs j ON j.id = a.job_id
		WHERE a.user_id = $1
		ORDER BY a.applied_at DESC
		LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying applications: %w", err)
	}
	defer rows.Close()

	var items []*models.ApplicationListItem
	for rows.Next() {
		item, err := scanApplicationItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
