package shared

import "context"

// VenueListInvalidator drops the cached venue list after any write that changes what it shows.
type VenueListInvalidator interface {
	InvalidateVenueList(ctx context.Context) error
}
