package dto

import (
	"time"

	"github.com/findup-dz/findup-api/internal/app/models"
)

// UserResponse is the public projection of an account. It never carries the
// credential hash.
type UserResponse struct {
	ID         int64     `json:"id" example:"1"`
	Name       string    `json:"name" example:"Amine Benali"`
	Email      string    `json:"email" example:"amine@example.com"`
	Image      string    `json:"image,omitempty"`
	Role       string    `json:"role" example:"user" enums:"user,admin"`
	Phone      *string   `json:"phone,omitempty"`
	Bio        *string   `json:"bio,omitempty"`
	Education  *string   `json:"education,omitempty"`
	Skills     *string   `json:"skills,omitempty"`
	Experience *string   `json:"experience,omitempty"`
	Location   *string   `json:"location,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FromUser converts a models.User to a UserResponse
func FromUser(u *models.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Image:      u.Image,
		Role:       string(u.Role),
		Phone:      u.Phone,
		Bio:        u.Bio,
		Education:  u.Education,
		Skills:     u.Skills,
		Experience: u.Experience,
		Location:   u.Location,
		CreatedAt:  u.CreatedAt,
	}
}

// UpdateProfileRequest updates the caller's own profile. Nil fields are left
// unchanged.
type UpdateProfileRequest struct {
	Name       *string `json:"name,omitempty"`
	Image      *string `json:"image,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	Education  *string `json:"education,omitempty"`
	Skills     *string `json:"skills,omitempty"`
	Experience *string `json:"experience,omitempty"`
	Location   *string `json:"location,omitempty"`
}
