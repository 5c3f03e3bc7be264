package review

import "errors"

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrEmptyComment   = errors.New("comment cannot be empty")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")
	ErrMissingUser    = errors.New("review user is required")
	ErrMissingVenue   = errors.New("review venue is required")
)
