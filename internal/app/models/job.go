package models

import "time"

// Job is a job posting. NumericID is the stable public identifier used in
// URLs and API payloads; ID is the internal storage key.
type Job struct {
	ID                  int64
	NumericID           int64
	Title               string
	Company             string
	Logo                *string
	Location            string
	Type                string
	Category            string
	Description         string
	Requirements        []string
	Responsibilities    []string
	Salary              string
	ContactEmail        *string
	ApplicationDeadline *time.Time
	IsRemote            bool
	ExperienceLevel     string
	Tags                []string
	Benefits            []string
	IsActive            bool
	Views               int
	ApplicationsCount   int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
