package dto

import (
	"encoding/json"
	"time"

	"github.com/findup-dz/findup-api/internal/app/models"
)

// UnknownJobLabel replaces display fields of a job reference that no longer
// resolves, so a dangling application still renders.
const UnknownJobLabel = "Poste inconnu"

// CreateApplicationRequest applies the caller to a job posting. JobID is the
// public numeric identifier (see CreateEnrollmentRequest for the json.Number
// rationale).
type CreateApplicationRequest struct {
	JobID       json.Number `json:"jobId" binding:"required"`
	CoverLetter *string     `json:"coverLetter,omitempty"`
}

// ApplicationSummary is the creation receipt
type ApplicationSummary struct {
	ID        int64     `json:"id"`
	Status    string    `json:"status" example:"pending"`
	AppliedAt time.Time `json:"appliedAt"`
}

// ApplicationCreatedResponse is returned by POST /applications
type ApplicationCreatedResponse struct {
	Message     string             `json:"message" example:"Application submitted successfully"`
	Application ApplicationSummary `json:"application"`
}

// ApplicationItemResponse is one row of the caller's application list, joined
// with the job's display fields.
type ApplicationItemResponse struct {
	ID          int64     `json:"id"`
	JobID       *int64    `json:"jobId,omitempty"`
	JobTitle    string    `json:"jobTitle"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	CoverLetter *string   `json:"coverLetter,omitempty"`
	AppliedAt   time.Time `json:"appliedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RecentApplicationResponse is the compact projection used on the profile page
type RecentApplicationResponse struct {
	ID      int64     `json:"id"`
	Job     string    `json:"job"`
	Company string    `json:"company"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`
}

// FromApplicationListItem converts a joined application row, substituting
// placeholder labels when the job reference is dangling.
func FromApplicationListItem(a *models.ApplicationListItem) ApplicationItemResponse {
	item := ApplicationItemResponse{
		ID:          a.ID,
		JobID:       a.JobNumericID,
		JobTitle:    UnknownJobLabel,
		Company:     UnknownJobLabel,
		Location:    "",
		Type:        "",
		Status:      string(a.Status),
		CoverLetter: a.CoverLetter,
		AppliedAt:   a.AppliedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.JobTitle != nil {
		item.JobTitle = *a.JobTitle
	}
	if a.JobCompany != nil {
		item.Company = *a.JobCompany
	}
	if a.JobLocation != nil {
		item.Location = *a.JobLocation
	}
	if a.JobType != nil {
		item.Type = *a.JobType
	}
	return item
}
