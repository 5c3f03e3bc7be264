package pgstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Phone        pgtype.Text
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type Venue struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	Name             string
	Slug             string
	Location         string
	Latitude         float64
	Longitude        float64
	Phone            string
	Description      string
	PricePerHour     float64
	StartHour        string
	EndHour          string
	Size             string
	Surface          string
	MaxPlayers       int32
	HasParking       bool
	HasShowers       bool
	HasShoeRental    bool
	HasCafeteria     bool
	HasNightLighting bool
	ImagesUrl        []string
	Rating           float64
	ReviewCount      int32
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

type BookedSlot struct {
	VenueID uuid.UUID
	SlotAt  time.Time
}

type Reservation struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	VenueID             uuid.UUID
	ReservationDateTime time.Time
	Status              string
	IsRecurring         bool
	SubscriptionID      pgtype.UUID
	LastUpdatedByID     pgtype.UUID
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

// ReservationViewRow is a reservation joined with the summary of its venue.
type ReservationViewRow struct {
	Reservation
	VenueName         string
	VenueLocation     string
	VenueOwnerID      uuid.UUID
	VenuePricePerHour float64
}

type Review struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	VenueID   uuid.UUID
	Rating    int16
	Comment   string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

// ReviewViewRow is a review joined with its author.
type ReviewViewRow struct {
	Review
	UserName  string
	UserEmail string
}

type ReviewAggregate struct {
	Count int64
	Sum   int64
}

type RatingBucket struct {
	Rating int16
	Count  int64
}
