package errs

import "errors"

// Sentinel errors shared by the command and query layers
var (
	// Lookup errors
	ErrUserNotFound        = errors.New("user not found")
	ErrVenueNotFound       = errors.New("venue not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReviewNotFound      = errors.New("review not found")

	// Access errors
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Conflict errors
	ErrEmailTaken = errors.New("email already registered")
	ErrConflict   = errors.New("resource already exists")

	// Validation errors
	ErrDomainValidation  = errors.New("domain validation error")
	ErrInvalidTransition = errors.New("invalid status transition")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
