package queries

import (
	"time"

	"github.com/google/uuid"
)

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VenueView is also the cached list entry, hence the JSON tags.
type VenueView struct {
	ID               uuid.UUID   `json:"id"`
	OwnerID          uuid.UUID   `json:"ownerId"`
	Name             string      `json:"name"`
	Slug             string      `json:"slug"`
	Location         string      `json:"location"`
	Latitude         float64     `json:"latitude"`
	Longitude        float64     `json:"longitude"`
	Phone            string      `json:"phone"`
	Description      string      `json:"description"`
	PricePerHour     float64     `json:"pricePerHour"`
	StartHour        string      `json:"startHour"`
	EndHour          string      `json:"endHour"`
	Size             string      `json:"size"`
	Surface          string      `json:"surface"`
	MaxPlayers       int         `json:"maxPlayers"`
	HasParking       bool        `json:"hasParking"`
	HasShowers       bool        `json:"hasShowers"`
	HasShoeRental    bool        `json:"hasShoeRental"`
	HasCafeteria     bool        `json:"hasCafeteria"`
	HasNightLighting bool        `json:"hasNightLighting"`
	ImagesURL        []string    `json:"imagesUrl"`
	BookedSlots      []time.Time `json:"bookedSlots"`
	Rating           float64     `json:"rating"`
	ReviewCount      int         `json:"reviewCount"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

type VenueSummary struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Location     string
	PricePerHour float64
}

type ReservationView struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	VenueID             uuid.UUID
	ReservationDateTime time.Time
	Status              string
	IsRecurring         bool
	SubscriptionID      *uuid.UUID
	LastUpdatedByID     *uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Venue               VenueSummary
}

type ReviewAuthor struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type ReviewView struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	VenueID   uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
	User      ReviewAuthor
}

// RatingStats is the live aggregate of a venue's reviews; Distribution[i] counts (i+1)-star reviews.
type RatingStats struct {
	VenueID      uuid.UUID
	ReviewCount  int
	Average      float64
	Distribution [5]int
}
