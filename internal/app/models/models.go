package models

// Role represents an account role
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// EnrollmentStatus represents the lifecycle state of an enrollment
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentCancelled EnrollmentStatus = "cancelled"
	EnrollmentPaused    EnrollmentStatus = "paused"
)

// ApplicationStatus represents the lifecycle state of a job application
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationReviewed  ApplicationStatus = "reviewed"
	ApplicationInterview ApplicationStatus = "interview"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
)

// FormationLevel represents the difficulty level of a formation
type FormationLevel string

const (
	LevelBeginner     FormationLevel = "beginner"
	LevelIntermediate FormationLevel = "intermediate"
	LevelAdvanced     FormationLevel = "advanced"
)
