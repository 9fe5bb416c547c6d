package models

import "time"

// Enrollment links a user to a formation. At most one enrollment exists per
// (UserID, FormationID) pair; the enrollments table enforces this with a
// unique compound index.
type Enrollment struct {
	ID             int64
	UserID         int64
	FormationID    int64
	Status         EnrollmentStatus
	Progress       int
	StartDate      time.Time
	CompletedDate  *time.Time
	LastAccessDate *time.Time
	CertificateURL *string
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ModuleProgress tracks per-module completion inside an enrollment. One row
// is seeded per formation module when the enrollment is created.
type ModuleProgress struct {
	ID            int64
	EnrollmentID  int64
	ModuleID      int64
	Completed     bool
	CompletedDate *time.Time
}

// EnrollmentListItem is an enrollment joined with a projection of its
// formation's display fields. The formation columns are nullable so a
// dangling reference still renders.
type EnrollmentListItem struct {
	Enrollment
	FormationNumericID *int64
	FormationTitle     *string
	FormationProvider  *string
	FormationThumbnail *string
}
