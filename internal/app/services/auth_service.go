package services

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/findup-dz/findup-api/internal/app/models"
	"github.com/findup-dz/findup-api/internal/app/repositories"
	"github.com/findup-dz/findup-api/internal/pkg/apperrors"
	"github.com/findup-dz/findup-api/internal/pkg/auth"
	"github.com/findup-dz/findup-api/internal/pkg/logger"
)

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService handles registration, login and session identity.
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// defaultAvatarURL builds the fallback avatar for accounts registered without
// an image.
func defaultAvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}

// Register creates a new account with role user. The email is normalized to
// lower case before the uniqueness check so the same address cannot register
// twice with different casing.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	if !emailPattern.MatchString(email) {
		return nil, apperrors.NewValidationError("invalid email format")
	}
	if len(password) < minPasswordLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Image:    defaultAvatarURL(name),
		Role:     models.RoleUser,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	created, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("userId", created.ID).Str("email", created.Email).Msg("Account registered")
	return created, nil
}

// Login verifies credentials and issues a session token. An unknown email and
// a wrong password both come back as credential failures to the client; only
// the logs distinguish them.
func (s *AuthService) Login(ctx context.Context, email, password string) (user *models.User, token string, expiresIn int, err error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err = s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", 0, err
	}

	if !auth.CheckPassword(user.Password, password) {
		logger.Warn().Str("email", email).Msg("Login failed: password mismatch")
		return nil, "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err = s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, expiresIn, nil
}

// GetCurrentUser resolves the account behind a validated session.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
