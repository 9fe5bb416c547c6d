package dto

import (
	"encoding/json"
	"time"

	"github.com/findup-dz/findup-api/internal/app/models"
)

// UnknownFormationLabel replaces display fields of a formation reference that
// no longer resolves, so a dangling enrollment still renders.
const UnknownFormationLabel = "Formation inconnue"

// CreateEnrollmentRequest enrolls the caller in a formation. FormationID is
// the public numeric identifier; json.Number keeps the raw value so the
// service can reject non-integer and negative identifiers with a proper
// validation error.
type CreateEnrollmentRequest struct {
	FormationID json.Number `json:"formationId" binding:"required"`
}

// EnrollmentSummary is the creation receipt
type EnrollmentSummary struct {
	ID        int64     `json:"id"`
	Status    string    `json:"status" example:"active"`
	StartDate time.Time `json:"startDate"`
}

// EnrollmentCreatedResponse is returned by POST /enrollments
type EnrollmentCreatedResponse struct {
	Message    string            `json:"message" example:"Enrollment created successfully"`
	Enrollment EnrollmentSummary `json:"enrollment"`
}

// EnrollmentItemResponse is one row of the caller's enrollment list, joined
// with the formation's display fields.
type EnrollmentItemResponse struct {
	ID                 int64      `json:"id"`
	FormationID        *int64     `json:"formationId,omitempty"`
	FormationTitle     string     `json:"formationTitle"`
	FormationProvider  string     `json:"formationProvider"`
	FormationThumbnail *string    `json:"formationThumbnail,omitempty"`
	Status             string     `json:"status"`
	Progress           int        `json:"progress"`
	StartDate          time.Time  `json:"startDate"`
	CompletedDate      *time.Time `json:"completedDate,omitempty"`
	LastAccessDate     *time.Time `json:"lastAccessDate,omitempty"`
	CertificateURL     *string    `json:"certificateUrl,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// RecentFormationResponse is the compact projection used on the profile page
type RecentFormationResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Provider  string    `json:"provider"`
	Progress  int       `json:"progress"`
	StartDate time.Time `json:"startDate"`
}

// FromEnrollmentListItem converts a joined enrollment row, substituting
// placeholder labels when the formation reference is dangling.
func FromEnrollmentListItem(e *models.EnrollmentListItem) EnrollmentItemResponse {
	item := EnrollmentItemResponse{
		ID:                 e.ID,
		FormationID:        e.FormationNumericID,
		FormationTitle:     UnknownFormationLabel,
		FormationProvider:  UnknownFormationLabel,
		FormationThumbnail: e.FormationThumbnail,
		Status:             string(e.Status),
		Progress:           e.Progress,
		StartDate:          e.StartDate,
		CompletedDate:      e.CompletedDate,
		LastAccessDate:     e.LastAccessDate,
		CertificateURL:     e.CertificateURL,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
	if e.FormationTitle != nil {
		item.FormationTitle = *e.FormationTitle
	}
	if e.FormationProvider != nil {
		item.FormationProvider = *e.FormationProvider
	}
	return item
}
