package dto

import (
	"time"

	"github.com/findup-dz/findup-api/internal/app/models"
)

// JobFilterRequest carries job list filters
type JobFilterRequest struct {
	Category *string
	Type     *string
	Location *string
	Search   *string
	Page     int
	Limit    int
}

// JobResponse is the list projection of a job posting. ID is the public
// numeric identifier, not the storage key.
type JobResponse struct {
	ID                int64     `json:"id" example:"7"`
	Title             string    `json:"title" example:"Développeur Backend"`
	Company           string    `json:"company" example:"Djezzy"`
	Logo              *string   `json:"logo,omitempty"`
	Location          string    `json:"location" example:"Alger"`
	Type              string    `json:"type" example:"partTime"`
	Category          string    `json:"category" example:"informatique"`
	Salary            string    `json:"salary" example:"60000 DZD/mois"`
	IsRemote          bool      `json:"isRemote"`
	ApplicationsCount int       `json:"applicationsCount" example:"3"`
	CreatedAt         time.Time `json:"createdAt"`
}

// JobDetailResponse is the full projection of a job posting
type JobDetailResponse struct {
	JobResponse
	Description         string     `json:"description"`
	Requirements        []string   `json:"requirements"`
	Responsibilities    []string   `json:"responsibilities"`
	ContactEmail        *string    `json:"contactEmail,omitempty"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	ExperienceLevel     string     `json:"experienceLevel"`
	Tags                []string   `json:"tags,omitempty"`
	Benefits            []string   `json:"benefits,omitempty"`
	Views               int        `json:"views"`
}

// CreateJobRequest creates a new job posting (administrators only)
type CreateJobRequest struct {
	Title               string     `json:"title" binding:"required"`
	Company             string     `json:"company" binding:"required"`
	Logo                *string    `json:"logo,omitempty"`
	Location            string     `json:"location" binding:"required"`
	Type                string     `json:"type" binding:"required"`
	Category            string     `json:"category" binding:"required"`
	Description         string     `json:"description" binding:"required"`
	Requirements        []string   `json:"requirements,omitempty"`
	Responsibilities    []string   `json:"responsibilities,omitempty"`
	Salary              string     `json:"salary" binding:"required"`
	ContactEmail        *string    `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	IsRemote            bool       `json:"isRemote"`
	ExperienceLevel     string     `json:"experienceLevel" binding:"required"`
	Tags                []string   `json:"tags,omitempty"`
	Benefits            []string   `json:"benefits,omitempty"`
	IsActive            bool       `json:"isActive"`
}

// UpdateJobRequest updates content fields of a job posting. Nil fields are
// left unchanged; views and the applications counter are never writable here.
type UpdateJobRequest struct {
	Title               *string    `json:"title,omitempty"`
	Company             *string    `json:"company,omitempty"`
	Logo                *string    `json:"logo,omitempty"`
	Location            *string    `json:"location,omitempty"`
	Type                *string    `json:"type,omitempty"`
	Category            *string    `json:"category,omitempty"`
	Description         *string    `json:"description,omitempty"`
	Requirements        []string   `json:"requirements,omitempty"`
	Responsibilities    []string   `json:"responsibilities,omitempty"`
	Salary              *string    `json:"salary,omitempty"`
	ContactEmail        *string    `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	IsRemote            *bool      `json:"isRemote,omitempty"`
	ExperienceLevel     *string    `json:"experienceLevel,omitempty"`
	Tags                []string   `json:"tags,omitempty"`
	Benefits            []string   `json:"benefits,omitempty"`
	IsActive            *bool      `json:"isActive,omitempty"`
}

// FromJob converts a models.Job to a JobResponse
func FromJob(j *models.Job) JobResponse {
	return JobResponse{
		ID:                j.NumericID,
		Title:             j.Title,
		Company:           j.Company,
		Logo:              j.Logo,
		Location:          j.Location,
		Type:              j.Type,
		Category:          j.Category,
		Salary:            j.Salary,
		IsRemote:          j.IsRemote,
		ApplicationsCount: j.ApplicationsCount,
		CreatedAt:         j.CreatedAt,
	}
}

// FromJobDetail converts a models.Job to a JobDetailResponse
func FromJobDetail(j *models.Job) JobDetailResponse {
	return JobDetailResponse{
		JobResponse:         FromJob(j),
		Description:         j.Description,
		Requirements:        j.Requirements,
		Responsibilities:    j.Responsibilities,
		ContactEmail:        j.ContactEmail,
		ApplicationDeadline: j.ApplicationDeadline,
		ExperienceLevel:     j.ExperienceLevel,
		Tags:                j.Tags,
		Benefits:            j.Benefits,
		Views:               j.Views,
	}
}
