package reservation

import (
	"errors"
	"time"

	"halisaha-api/internal/domain/slot"
	"halisaha-api/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrMissingUser       = errors.New("reservation user is required")
	ErrMissingVenue      = errors.New("reservation venue is required")
	ErrMissingSlot       = errors.New("reservation date time is required")
)

type Params struct {
	UserID          uuid.UUID
	VenueID         uuid.UUID
	Slot            slot.Slot
	Status          *Status
	IsRecurring     bool
	SubscriptionID  *uuid.UUID
	LastUpdatedByID *uuid.UUID
}

// Patch is the set of fields an update may touch; nil leaves a field as is.
type Patch struct {
	Status         *Status
	Slot           *slot.Slot
	IsRecurring    *bool
	SubscriptionID *uuid.UUID
}

type Reservation struct {
	id              uuid.UUID
	userID          uuid.UUID
	venueID         uuid.UUID
	slot            slot.Slot
	status          Status
	isRecurring     bool
	subscriptionID  *uuid.UUID
	lastUpdatedByID *uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

func NewReservation(p Params, now time.Time) (*Reservation, error) {
	if p.UserID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if p.VenueID == uuid.Nil {
		return nil, ErrMissingVenue
	}
	if p.Slot.IsZero() {
		return nil, ErrMissingSlot
	}
	status := patch.Coalesce(p.Status, StatusPending)
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Reservation{
		id:              uuid.New(),
		userID:          p.UserID,
		venueID:         p.VenueID,
		slot:            slot.New(p.Slot.Time()),
		status:          status,
		isRecurring:     p.IsRecurring,
		subscriptionID:  p.SubscriptionID,
		lastUpdatedByID: p.LastUpdatedByID,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructReservation(
	id, userID, venueID uuid.UUID,
	at slot.Slot,
	status Status,
	isRecurring bool,
	subscriptionID, lastUpdatedByID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		userID:          userID,
		venueID:         venueID,
		slot:            at,
		status:          status,
		isRecurring:     isRecurring,
		subscriptionID:  subscriptionID,
		lastUpdatedByID: lastUpdatedByID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Apply returns the patched reservation without mutating the receiver.
func (r *Reservation) Apply(p Patch, actorID uuid.UUID, now time.Time) (*Reservation, error) {
	next := *r
	if p.Status != nil {
		if !p.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		if !r.status.CanTransitionTo(*p.Status) {
			return nil, ErrInvalidTransition
		}
		next.status = *p.Status
	}
	if p.Slot != nil {
		if p.Slot.IsZero() {
			return nil, ErrMissingSlot
		}
		next.slot = slot.New(p.Slot.Time())
	}
	next.isRecurring = patch.Coalesce(p.IsRecurring, r.isRecurring)
	if p.SubscriptionID != nil {
		id := *p.SubscriptionID
		next.subscriptionID = &id
	}
	next.lastUpdatedByID = &actorID
	next.updatedAt = now
	return &next, nil
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) UserID() uuid.UUID           { return r.userID }
func (r *Reservation) VenueID() uuid.UUID          { return r.venueID }
func (r *Reservation) Slot() slot.Slot             { return r.slot }
func (r *Reservation) Status() Status              { return r.status }
func (r *Reservation) IsActive() bool              { return r.status.IsActive() }
func (r *Reservation) IsRecurring() bool           { return r.isRecurring }
func (r *Reservation) SubscriptionID() *uuid.UUID  { return r.subscriptionID }
func (r *Reservation) LastUpdatedByID() *uuid.UUID { return r.lastUpdatedByID }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time        { return r.updatedAt }
