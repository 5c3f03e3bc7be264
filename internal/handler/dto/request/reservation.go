package request

import (
	"halisaha-api/internal/domain/reservation"
	"halisaha-api/internal/domain/slot"
	"halisaha-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	// defaults to the caller
	UserID              *uuid.UUID `json:"userId"`
	VenueID             uuid.UUID  `json:"haliSahaId" binding:"required"`
	ReservationDateTime string     `json:"reservationDateTime" binding:"required,slot_time"`
	Status              *string    `json:"status" binding:"omitempty,reservation_status"`
	IsRecurring         bool       `json:"isRecurring"`
	SubscriptionID      *uuid.UUID `json:"subscriptionId"`
}

func (r *CreateReservationRequest) ToInput() (commands.CreateReservationInput, error) {
	s, err := slot.Parse(r.ReservationDateTime)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	status, err := parseStatus(r.Status)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	return commands.CreateReservationInput{
		UserID:         r.UserID,
		VenueID:        r.VenueID,
		Slot:           s,
		Status:         status,
		IsRecurring:    r.IsRecurring,
		SubscriptionID: r.SubscriptionID,
	}, nil
}

type UpdateReservationRequest struct {
	ReservationDateTime *string    `json:"reservationDateTime" binding:"omitempty,slot_time"`
	Status              *string    `json:"status" binding:"omitempty,reservation_status"`
	IsRecurring         *bool      `json:"isRecurring"`
	SubscriptionID      *uuid.UUID `json:"subscriptionId"`
}

func (r *UpdateReservationRequest) ToPatch() (reservation.Patch, error) {
	p := reservation.Patch{
		IsRecurring:    r.IsRecurring,
		SubscriptionID: r.SubscriptionID,
	}
	if r.ReservationDateTime != nil {
		s, err := slot.Parse(*r.ReservationDateTime)
		if err != nil {
			return reservation.Patch{}, err
		}
		p.Slot = &s
	}
	status, err := parseStatus(r.Status)
	if err != nil {
		return reservation.Patch{}, err
	}
	p.Status = status
	return p, nil
}

func parseStatus(s *string) (*reservation.Status, error) {
	if s == nil {
		return nil, nil
	}
	st, err := reservation.ParseStatus(*s)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
