//go:build unit || e2e

package builder

import (
	"time"

	"halisaha-api/internal/domain/reservation"
	"halisaha-api/internal/domain/slot"
	reqdto "halisaha-api/internal/handler/dto/request"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/internal/pkg/pgconv"
	"halisaha-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	VenueID        uuid.UUID
	VenueOwnerID   uuid.UUID
	VenueName      string
	At             time.Time
	Status         reservation.Status
	IsRecurring    bool
	SubscriptionID *uuid.UUID
	LastUpdatedBy  *uuid.UUID
	CreatedAt      time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		VenueID:      uuid.New(),
		VenueOwnerID: uuid.New(),
		VenueName:    "Yıldız Halı Saha",
		At:           time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC),
		Status:       reservation.StatusPending,
		CreatedAt:    time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) Slot() slot.Slot {
	return slot.New(r.At)
}

func (r *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(r.ID, r.UserID, r.VenueID, r.Slot(), r.Status,
		r.IsRecurring, r.SubscriptionID, r.LastUpdatedBy, r.CreatedAt, r.CreatedAt)
}

func (r *ReservationBuilder) BuildRow() pgstore.Reservation {
	return pgstore.Reservation{
		ID:                  r.ID,
		UserID:              r.UserID,
		VenueID:             r.VenueID,
		ReservationDateTime: r.At,
		Status:              r.Status.String(),
		IsRecurring:         r.IsRecurring,
		SubscriptionID:      pgconv.UUIDPtrToPgtype(r.SubscriptionID),
		LastUpdatedByID:     pgconv.UUIDPtrToPgtype(r.LastUpdatedBy),
		CreatedAt:           pgconv.TimeToPgtype(r.CreatedAt),
		UpdatedAt:           pgconv.TimeToPgtype(r.CreatedAt),
	}
}

func (r *ReservationBuilder) BuildViewRow() pgstore.ReservationViewRow {
	return pgstore.ReservationViewRow{
		Reservation:       r.BuildRow(),
		VenueName:         r.VenueName,
		VenueLocation:     "Kadıköy, İstanbul",
		VenueOwnerID:      r.VenueOwnerID,
		VenuePricePerHour: 1200,
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:                  r.ID,
		UserID:              r.UserID,
		VenueID:             r.VenueID,
		ReservationDateTime: r.At,
		Status:              r.Status.String(),
		IsRecurring:         r.IsRecurring,
		SubscriptionID:      r.SubscriptionID,
		LastUpdatedByID:     r.LastUpdatedBy,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.CreatedAt,
		Venue: queries.VenueSummary{
			ID:           r.VenueID,
			OwnerID:      r.VenueOwnerID,
			Name:         r.VenueName,
			Location:     "Kadıköy, İstanbul",
			PricePerHour: 1200,
		},
	}
}

func (r *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	r.ID = id
	return r
}

func (r *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	r.UserID = id
	return r
}

func (r *ReservationBuilder) WithVenueID(id uuid.UUID) *ReservationBuilder {
	r.VenueID = id
	return r
}

func (r *ReservationBuilder) WithVenueOwnerID(id uuid.UUID) *ReservationBuilder {
	r.VenueOwnerID = id
	return r
}

func (r *ReservationBuilder) WithAt(at time.Time) *ReservationBuilder {
	r.At = at
	return r
}

func (r *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	r.Status = s
	return r
}

func (r *ReservationBuilder) AsCancelled() *ReservationBuilder {
	r.Status = reservation.StatusCancelled
	return r
}

func (r *ReservationBuilder) AsApproved() *ReservationBuilder {
	r.Status = reservation.StatusApproved
	return r
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		VenueID:             r.VenueID,
		ReservationDateTime: r.Slot().Key(),
		IsRecurring:         r.IsRecurring,
		SubscriptionID:      r.SubscriptionID,
	}
}
