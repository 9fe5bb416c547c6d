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

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Exists checks whether the user already has an enrollment for the formation
func (r *EnrollmentRepository) Exists(ctx context.Context, userID, formationID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM enrollments WHERE user_id = $1 AND formation_id = $2)`,
		userID, formationID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}
	return exists, nil
}

// Create inserts an enrollment, seeds one progress row per formation module,
// and bumps the formation's enrolled counter — all in one transaction so the
// counter never drifts from the row count. The unique compound index on
// (user_id, formation_id) is the authoritative duplicate guard; a concurrent
// duplicate surfaces here as ErrAlreadyEnrolled.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment, moduleIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO enrollments (user_id, formation_id, status, progress, start_date)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, start_date, created_at, updated_at`,
		enrollment.UserID, enrollment.FormationID, enrollment.Status, enrollment.Progress,
	).Scan(&enrollment.ID, &enrollment.StartDate, &enrollment.CreatedAt, &enrollment.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_user_formation_uq") {
			return apperrors.ErrAlreadyEnrolled
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	for _, moduleID := range moduleIDs {
		_, err = tx.Exec(ctx, `
			INSERT INTO enrollment_module_progress (enrollment_id, module_id, completed)
			VALUES ($1, $2, FALSE)`,
			enrollment.ID, moduleID)
		if err != nil {
			return fmt.Errorf("error seeding module progress: %w", err)
		}
	}

	_, err = tx.Exec(ctx,
		`UPDATE formations SET enrolled_count = enrolled_count + 1 WHERE id = $1`,
		enrollment.FormationID)
	if err != nil {
		return fmt.Errorf("error updating enrolled count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// DeleteOwned removes an enrollment only if it belongs to the given user, and
// decrements the formation's enrolled counter in the same transaction. An
// enrollment that does not exist and one owned by someone else are both
// reported as not found, so the response leaks nothing about other accounts.
func (r *EnrollmentRepository) DeleteOwned(ctx context.Context, id, userID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var formationID int64
	err = tx.QueryRow(ctx, `
		DELETE FROM enrollments WHERE id = $1 AND user_id = $2
		RETURNING formation_id`,
		id, userID).Scan(&formationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE formations SET enrolled_count = GREATEST(enrolled_count - 1, 0) WHERE id = $1`,
		formationID)
	if err != nil {
		return fmt.Errorf("error updating enrolled count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

const enrollmentListColumns = `e.id, e.user_id, e.formation_id, e.status, e.progress, e.start_date,
	e.completed_date, e.last_access_date, e.certificate_url, e.notes, e.created_at, e.updated_at,
	f.numeric_id, f.title, f.provider, f.thumbnail`

func scanEnrollmentItem(rows interface {
	Scan(dest ...any) error
}) (*models.EnrollmentListItem, error) {
	item := &models.EnrollmentListItem{}
	err := rows.Scan(
		&item.ID, &item.UserID, &item.FormationID, &item.Status, &item.Progress, &item.StartDate,
		&item.CompletedDate, &item.LastAccessDate, &item.CertificateURL, &item.Notes,
		&item.CreatedAt, &item.UpdatedAt,
		&item.FormationNumericID, &item.FormationTitle, &item.FormationProvider, &item.FormationThumbnail)
	if err != nil {
		return nil, fmt.Errorf("error scanning enrollment: %w", err)
	}
	return item, nil
}

// ListByUser retrieves the user's enrollments joined with formation display
// fields, newest first, along with the total count. A LEFT JOIN keeps rows
// whose formation was deleted.
func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID int64, status *string, offset uint64, limit int) ([]*models.EnrollmentListItem, int64, error) {
	base := squirrel.Select().
		From("enrollments e").
		LeftJoin("formations f ON f.id = e.formation_id").
		Where("e.user_id = ?", userID).
		PlaceholderFormat(squirrel.Dollar)

	if status != nil {
		base = base.Where("e.status = ?", *status)
	}

	countSQL, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting enrollments: %w", err)
	}

	listSQL, listArgs, err := base.Columns(enrollmentListColumns).
		OrderBy("e.created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	var items []*models.EnrollmentListItem
	for rows.Next() {
		item, err := scanEnrollmentItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}

// ListRecentByUser retrieves the user's most recent enrollments, capped at
// limit, for the profile page.
func (r *EnrollmentRepository) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*models.EnrollmentListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+enrollmentListColumns+`
		FROM enrollments e
		LEFT JOIN formations f ON f.id = e.formation_id
		WHERE e.user_id = $1
		ORDER BY e.created_at DESC
		LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	var items []*models.EnrollmentListItem
	for rows.Next() {
		item, err := scanEnrollmentItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
