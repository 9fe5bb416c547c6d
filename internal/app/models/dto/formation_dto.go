package dto

import (
	"time"

	"github.com/findup-dz/findup-api/internal/app/models"
)

// FormationFilterRequest carries list filters. Page/Limit follow the standard
// pagination query parameters.
type FormationFilterRequest struct {
	Category *string
	Level    *string
	Search   *string
	Page     int
	Limit    int
}

// FormationResponse is the list projection of a formation. ID is the public
// numeric identifier, not the storage key.
type FormationResponse struct {
	ID            int64     `json:"id" example:"42"`
	Title         string    `json:"title" example:"Développement Web Full-Stack"`
	Description   string    `json:"description"`
	Provider      string    `json:"provider" example:"TechAcademy Alger"`
	Category      string    `json:"category" example:"informatique"`
	Level         string    `json:"level" enums:"beginner,intermediate,advanced"`
	Duration      int       `json:"duration" example:"120"`
	Price         float64   `json:"price" example:"25000"`
	Rating        *float64  `json:"rating,omitempty"`
	EnrolledCount int       `json:"enrolledCount" example:"17"`
	Thumbnail     *string   `json:"thumbnail,omitempty"`
	IsPublished   bool      `json:"isPublished"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ModuleResponse is a formation module projection
type ModuleResponse struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    int      `json:"duration"`
	VideoURL    *string  `json:"videoUrl,omitempty"`
	Resources   []string `json:"resources,omitempty"`
}

// FormationDetailResponse is the detail projection including modules
type FormationDetailResponse struct {
	FormationResponse
	Modules []ModuleResponse `json:"modules"`
}

// ModuleRequest creates or replaces a formation module
type ModuleRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Duration    int      `json:"duration" binding:"required"`
	VideoURL    *string  `json:"videoUrl,omitempty"`
	Resources   []string `json:"resources,omitempty"`
}

// CreateFormationRequest creates a new formation (administrators only)
type CreateFormationRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Provider    string          `json:"provider" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Level       string          `json:"level" binding:"required,oneof=beginner intermediate advanced"`
	Duration    int             `json:"duration" binding:"required"`
	Price       float64         `json:"price"`
	Thumbnail   *string         `json:"thumbnail,omitempty"`
	IsPublished bool            `json:"isPublished"`
	Modules     []ModuleRequest `json:"modules,omitempty"`
}

// UpdateFormationRequest updates content fields of a formation. Nil fields
// are left unchanged; the enrolled counter is never writable here.
type UpdateFormationRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Provider    *string  `json:"provider,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Level       *string  `json:"level,omitempty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Duration    *int     `json:"duration,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Thumbnail   *string  `json:"thumbnail,omitempty"`
	IsPublished *bool    `json:"isPublished,omitempty"`
}

// FromFormation converts a models.Formation to a FormationResponse
func FromFormation(f *models.Formation) FormationResponse {
	return FormationResponse{
		ID:            f.NumericID,
		Title:         f.Title,
		Description:   f.Description,
		Provider:      f.Provider,
		Category:      f.Category,
		Level:         string(f.Level),
		Duration:      f.Duration,
		Price:         f.Price,
		Rating:        f.Rating,
		EnrolledCount: f.EnrolledCount,
		Thumbnail:     f.Thumbnail,
		IsPublished:   f.IsPublished,
		CreatedAt:     f.CreatedAt,
	}
}

// FromFormationDetail converts a models.Formation with modules to a
// FormationDetailResponse
func FromFormationDetail(f *models.Formation) FormationDetailResponse {
	modules := make([]ModuleResponse, 0, len(f.Modules))
	for _, m := range f.Modules {
		modules = append(modules, ModuleResponse{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Duration:    m.Duration,
			VideoURL:    m.VideoURL,
			Resources:   m.Resources,
		})
	}
	return FormationDetailResponse{
		FormationResponse: FromFormation(f),
		Modules:           modules,
	}
}
