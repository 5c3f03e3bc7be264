package shared

import (
	"context"

	"halisaha-api/internal/domain/reservation"
	"halisaha-api/internal/domain/review"
	"halisaha-api/internal/domain/slot"
	"halisaha-api/internal/domain/user"
	"halisaha-api/internal/domain/venue"
	"halisaha-api/internal/infra/pgstore"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgstore.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db pgstore.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Venues() VenueRepository
	Reservations() ReservationRepository
	Reviews() ReviewRepository
	Slots() SlotRepository
	RatingStats() RatingStatsRepository
	Reads() CommandReads
	DB() pgstore.DBTX
}

type CommandReads interface {
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	VenueByID(ctx context.Context, id uuid.UUID) (*venue.Venue, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*review.Review, error)
}

// ReservationSnapshot carries what authorization needs about the venue alongside the aggregate.
type ReservationSnapshot struct {
	Reservation  *reservation.Reservation
	VenueOwnerID uuid.UUID
}

type UserRepository interface {
	Create(ctx context.Context, tx pgstore.DBTX, u *user.User) (uuid.UUID, error)
}

type VenueRepository interface {
	Create(ctx context.Context, tx pgstore.DBTX, v *venue.Venue) (uuid.UUID, error)
	Update(ctx context.Context, tx pgstore.DBTX, v *venue.Venue) error
	Delete(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) error
	ListIDs(ctx context.Context, tx pgstore.DBTX) ([]uuid.UUID, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx pgstore.DBTX, r *reservation.Reservation) (uuid.UUID, error)
	Update(ctx context.Context, tx pgstore.DBTX, r *reservation.Reservation) error
	Delete(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx pgstore.DBTX, rev *review.Review) (uuid.UUID, error)
	Update(ctx context.Context, tx pgstore.DBTX, rev *review.Review) error
	Delete(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) error
}

// SlotRepository is the persistent booked-slot set. Add and Remove report whether the set changed.
type SlotRepository interface {
	Add(ctx context.Context, tx pgstore.DBTX, venueID uuid.UUID, s slot.Slot) (bool, error)
	Remove(ctx context.Context, tx pgstore.DBTX, venueID uuid.UUID, s slot.Slot) (bool, error)
	RestoreActive(ctx context.Context, tx pgstore.DBTX) (int64, error)
	PruneOrphans(ctx context.Context, tx pgstore.DBTX) (int64, error)
}

type RatingStatsRepository interface {
	LockVenue(ctx context.Context, tx pgstore.DBTX, venueID uuid.UUID) error
	Aggregate(ctx context.Context, tx pgstore.DBTX, venueID uuid.UUID) (count, sum int64, err error)
	Update(ctx context.Context, tx pgstore.DBTX, venueID uuid.UUID, rating float64, count int) error
}
