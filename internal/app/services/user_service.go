package services

import (
	"context"

	"github.com/findup-dz/findup-api/internal/app/models"
	"github.com/findup-dz/findup-api/internal/app/repositories"
)

// UserService handles profile reads and updates.
type UserService struct {
	userRepo repositories.IUserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile retrieves the account behind the session.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies the given profile patch to the caller's own account
// and returns the updated account.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, upd *models.ProfileUpdate) (*models.User, error) {
	if err := s.userRepo.UpdateProfile(ctx, userID, upd); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}
