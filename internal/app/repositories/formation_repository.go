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

const formationColumns = `id, numeric_id, title, description, provider, category, level, duration, price, rating, enrolled_count, thumbnail, is_published, created_at, updated_at`

// FormationRepository handles database operations for formations
type FormationRepository struct {
	db *pgxpool.Pool
}

// NewFormationRepository creates a new FormationRepository
func NewFormationRepository(db *pgxpool.Pool) *FormationRepository {
	return &FormationRepository{db: db}
}

func scanFormation(row pgx.Row) (*models.Formation, error) {
	f := &models.Formation{}
	err := row.Scan(
		&f.ID, &f.NumericID, &f.Title, &f.Description, &f.Provider, &f.Category,
		&f.Level, &f.Duration, &f.Price, &f.Rating, &f.EnrolledCount,
		&f.Thumbnail, &f.IsPublished, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning formation: %w", err)
	}
	return f, nil
}

// GetByNumericID retrieves a formation by its public numeric identifier.
// Returns (nil, nil) when no formation matches.
func (r *FormationRepository) GetByNumericID(ctx context.Context, numericID int64) (*models.Formation, error) {
	return scanFormation(r.db.QueryRow(ctx,
		`SELECT `+formationColumns+` FROM formations WHERE numeric_id = $1`, numericID))
}

// GetModules retrieves the module list of a formation, in insertion order.
func (r *FormationRepository) GetModules(ctx context.Context, formationID int64) ([]models.FormationModule, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, formation_id, title, description, duration, video_url, resources
		FROM formation_modules
		WHERE formation_id = $1
		ORDER BY id`, formationID)
	if err != nil {
		return nil, fmt.Errorf("error querying modules: %w", err)
	}
	defer rows.Close()

	var modules []models.FormationModule
	for rows.Next() {
		var m models.FormationModule
		if err := rows.Scan(&m.ID, &m.FormationID, &m.Title, &m.Description, &m.Duration, &m.VideoURL, &m.Resources); err != nil {
			return nil, fmt.Errorf("error scanning module: %w", err)
		}
		modules = append(modules, m)
	}
	return modules, rows.Err()
}

// GetModuleIDs retrieves just the module ids of a formation, used to seed
// per-module progress rows on enrollment.
func (r *FormationRepository) GetModuleIDs(ctx context.Context, formationID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id FROM formation_modules WHERE formation_id = $1 ORDER BY id`, formationID)
	if err != nil {
		return nil, fmt.Errorf("error querying module ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning module id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// List retrieves published formations matching the filter, newest first,
// along with the total match count.
func (r *FormationRepository) List(ctx context.Context, category, level, search *string, offset uint64, limit int) ([]*models.Formation, int64, error) {
	base := squirrel.Select().From("formations").
		Where("is_published = TRUE").
		PlaceholderFormat(squirrel.Dollar)

	if category != nil {
		base = base.Where("category = ?", *category)
	}
	if level != nil {
		base = base.Where("level = ?", *level)
	}
	if search != nil {
		pattern := "%" + *search + "%"
		base = base.Where(squirrel.Or{
			squirrel.Expr("title ILIKE ?", pattern),
			squirrel.Expr("description ILIKE ?", pattern),
		})
	}

	countSQL, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting formations: %w", err)
	}

	listSQL, listArgs, err := base.Columns(formationColumns).
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying formations: %w", err)
	}
	defer rows.Close()

	var formations []*models.Formation
	for rows.Next() {
		f := &models.Formation{}
		err := rows.Scan(
			&f.ID, &f.NumericID, &f.Title, &f.Description, &f.Provider, &f.Category,
			&f.Level, &f.Duration, &f.Price, &f.Rating, &f.EnrolledCount,
			&f.Thumbnail, &f.IsPublished, &f.CreatedAt, &f.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning formation: %w", err)
		}
		formations = append(formations, f)
	}
	return formations, total, rows.Err()
}

// Create inserts a formation and its modules in one transaction, assigning
// the next public numeric identifier.
func (r *FormationRepository) Create(ctx context.Context, f *models.Formation) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO formations (numeric_id, title, description, provider, category, level, duration, price, thumbnail, is_published)
		VALUES ((SELECT COALESCE(MAX(numeric_id), 0) + 1 FROM formations), $1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, numeric_id`,
		f.Title, f.Description, f.Provider, f.Category, f.Level, f.Duration, f.Price, f.Thumbnail, f.IsPublished,
	).Scan(&f.ID, &f.NumericID)
	if err != nil {
		return 0, fmt.Errorf("error creating formation: %w", err)
	}

	for i := range f.Modules {
		m := &f.Modules[i]
		m.FormationID = f.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO formation_modules (formation_id, title, description, duration, video_url, resources)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			f.ID, m.Title, m.Description, m.Duration, m.VideoURL, m.Resources).Scan(&m.ID)
		if err != nil {
			return 0, fmt.Errorf("error creating formation module: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("error committing transaction: %w", err)
	}
	return f.ID, nil
}

// Update applies non-nil content fields to a formation, addressed by public
// numeric identifier.
func (r *FormationRepository) Update(ctx context.Context, numericID int64, upd *models.FormationUpdate) error {
	query := squirrel.Update("formations").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("numeric_id = ?", numericID).
		PlaceholderFormat(squirrel.Dollar)

	if upd.Title != nil {
		query = query.Set("title", *upd.Title)
	}
	if upd.Description != nil {
		query = query.Set("description", *upd.Description)
	}
	if upd.Provider != nil {
		query = query.Set("provider", *upd.Provider)
	}
	if upd.Category != nil {
		query = query.Set("category", *upd.Category)
	}
	if upd.Level != nil {
		query = query.Set("level", *upd.Level)
	}
	if upd.Duration != nil {
		query = query.Set("duration", *upd.Duration)
	}
	if upd.Price != nil {
		query = query.Set("price", *upd.Price)
	}
	if upd.Thumbnail != nil {
		query = query.Set("thumbnail", *upd.Thumbnail)
	}
	if upd.IsPublished != nil {
		query = query.Set("is_published", *upd.IsPublished)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating formation: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrFormationNotFound
	}
	return nil
}

// Delete removes a formation by public numeric identifier. Enrollments
// referencing it are removed by the ON DELETE CASCADE on the FK.
func (r *FormationRepository) Delete(ctx context.Context, numericID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM formations WHERE numeric_id = $1`, numericID)
	if err != nil {
		return fmt.Errorf("error deleting formation: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrFormationNotFound
	}
	return nil
}
