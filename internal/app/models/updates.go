package models

import "time"

// ProfileUpdate carries profile fields to change; nil fields are left as-is.
type ProfileUpdate struct {
	Name       *string
	Image      *string
	Phone      *string
	Bio        *string
	Education  *string
	Skills     *string
	Experience *string
	Location   *string
}

// FormationUpdate carries formation content fields to change; nil fields are
// left as-is. The enrolled counter is owned by the enrollment repository and
// is deliberately absent.
type FormationUpdate struct {
	Title       *string
	Description *string
	Provider    *string
	Category    *string
	Level       *string
	Duration    *int
	Price       *float64
	Thumbnail   *string
	IsPublished *bool
}

// JobUpdate carries job content fields to change; nil fields are left as-is.
// Views and the applications counter are deliberately absent.
type JobUpdate struct {
	Title               *string
	Company             *string
	Logo                *string
	Location            *string
	Type                *string
	Category            *string
	Description         *string
	Requirements        []string
	Responsibilities    []string
	Salary              *string
	ContactEmail        *string
	ApplicationDeadline *time.Time
	IsRemote            *bool
	ExperienceLevel     *string
	Tags                []string
	Benefits            []string
	IsActive            *bool
}
