package apperrors

import "errors"

// Sentinel errors shared across services. Handlers translate these into HTTP
// statuses in middleware.HandleAPIError.
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Account errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")

	// Catalog errors
	ErrFormationNotFound = errors.New("formation not found")
	ErrJobNotFound       = errors.New("job not found")

	// Relationship errors. An account holds at most one enrollment per
	// formation and one application per job; these fire when that pair
	// already exists, whether caught by the service check or by the
	// storage unique index.
	ErrAlreadyEnrolled = errors.New("already enrolled in this formation")
	ErrAlreadyApplied  = errors.New("already applied to this job")
)

// CustomError carries a human-readable message on top of a sentinel error so
// errors.Is keeps working while the API returns something friendlier.
type CustomError struct {
	Err     error
	Message string
}

func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewResourceNotFoundError creates a not-found error with a message.
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewValidationError creates a validation error with a message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message.
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}
