package models

import "time"

// Formation is a training offering. NumericID is the stable public identifier
// used in URLs and API payloads; ID is the internal storage key.
type Formation struct {
	ID            int64
	NumericID     int64
	Title         string
	Description   string
	Provider      string
	Category      string
	Level         FormationLevel
	Duration      int
	Price         float64
	Rating        *float64
	EnrolledCount int
	Thumbnail     *string
	IsPublished   bool
	Modules       []FormationModule
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FormationModule is a single unit of a formation's curriculum.
type FormationModule struct {
	ID          int64
	FormationID int64
	Title       string
	Description string
	Duration    int
	VideoURL    *string
	Resources   []string
}
