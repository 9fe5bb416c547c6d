package models

import "time"

// Application links a user to a job posting. At most one application exists
// per (UserID, JobID) pair; the applications table enforces this with a
// unique compound index.
type Application struct {
	ID          int64
	UserID      int64
	JobID       int64
	Status      ApplicationStatus
	CoverLetter *string
	ResumeURL   *string
	Notes       *string
	AppliedAt   time.Time
	UpdatedAt   time.Time
}

// ApplicationListItem is an application joined with a projection of its job's
// display fields. The job columns are nullable so a dangling reference still
// renders.
type ApplicationListItem struct {
	Application
	JobNumericID *int64
	JobTitle     *string
	JobCompany   *string
	JobLocation  *string
	JobType      *string
}
