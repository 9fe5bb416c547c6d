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

const userColumns = `id, name, email, password, image, role, phone, bio, education, skills, experience, location, created_at, updated_at`

// UserRepository handles database operations for accounts
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new account. The email unique index is the authoritative
// guard; the pre-check only exists to return a friendly error without a
// round-trip through a failed insert.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	exists, err := r.EmailExists(ctx, user.Email)
	if err != nil {
		return 0, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}

	var id int64
	err = r.db.QueryRow(ctx, `
		INSERT INTO users (name, email, password, image, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		user.Name, user.Email, user.Password, user.Image, user.Role).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Image, &user.Role,
		&user.Phone, &user.Bio, &user.Education, &user.Skills, &user.Experience, &user.Location,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return user, nil
}

// GetByID retrieves an account by storage key
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// GetByEmail retrieves an account by exact email match
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// UpdateProfile applies non-nil profile fields to the account.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, upd *models.ProfileUpdate) error {
	query := squirrel.Update("users").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", userID).
		PlaceholderFormat(squirrel.Dollar)

	if upd.Name != nil {
		query = query.Set("name", *upd.Name)
	}
	if upd.Image != nil {
		query = query.Set("image", *upd.Image)
	}
	if upd.Phone != nil {
		query = query.Set("phone", *upd.Phone)
	}
	if upd.Bio != nil {
		query = query.Set("bio", *upd.Bio)
	}
	if upd.Education != nil {
		query = query.Set("education", *upd.Education)
	}
	if upd.Skills != nil {
		query = query.Set("skills", *upd.Skills)
	}
	if upd.Experience != nil {
		query = query.Set("experience", *upd.Experience)
	}
	if upd.Location != nil {
		query = query.Set("location", *upd.Location)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
