package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"

	"halisaha-api/internal/domain/policy"
	"halisaha-api/internal/domain/reservation"
	"halisaha-api/internal/domain/slot"
	"halisaha-api/internal/pkg/clock"
	"halisaha-api/internal/pkg/config"
	"halisaha-api/internal/pkg/errs"
	"halisaha-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationInput struct {
	// defaults to the actor
	UserID         *uuid.UUID
	VenueID        uuid.UUID
	Slot           slot.Slot
	Status         *reservation.Status
	IsRecurring    bool
	SubscriptionID *uuid.UUID
}

type ReservationCommands interface {
	Create(ctx context.Context, actor policy.Actor, in CreateReservationInput) (uuid.UUID, error)
	Update(ctx context.Context, actor policy.Actor, id uuid.UUID, p reservation.Patch) error
	Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow             shared.UnitOfWork
	ledger          SlotLedger
	clock           clock.Clock
	releaseOnDelete bool
	logger          *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	ledger SlotLedger,
	clk clock.Clock,
	cfg config.BookingConfig,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:             uow,
		ledger:          ledger,
		clock:           clk,
		releaseOnDelete: cfg.ReleaseSlotOnDelete,
		logger:          logger,
	}
}

func (uc *reservationCommandsImpl) Create(ctx context.Context, actor policy.Actor, in CreateReservationInput) (uuid.UUID, error) {
	userID := actor.ID
	if in.UserID != nil && *in.UserID != uuid.Nil {
		userID = *in.UserID
	}

	res, err := reservation.NewReservation(reservation.Params{
		UserID:         userID,
		VenueID:        in.VenueID,
		Slot:           in.Slot,
		Status:         in.Status,
		IsRecurring:    in.IsRecurring,
		SubscriptionID: in.SubscriptionID,
	}, uc.clock.Now())
	if err != nil {
		return uuid.Nil, validationErr(err)
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Reads().VenueByID(ctx, in.VenueID)
		if err != nil {
			return storeErr(err, errs.ErrVenueNotFound)
		}
		if !policy.CanCreateReservation(actor, policy.ReservationOwnership{UserID: userID, VenueOwnerID: v.OwnerID()}) {
			return forbidden()
		}
		id, err = tx.Reservations().Create(ctx, tx.DB(), res)
		if err != nil {
			// the venue was just read, so a dangling reference is the user
			return storeErr(err, errs.ErrUserNotFound)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, passThrough(err, errs.ErrReservationNotFound)
	}

	// every created reservation books its slot, whatever its initial status
	uc.ledger.AddSlot(ctx, res.VenueID(), res.Slot())

	uc.logger.Info("reservation created",
		slog.String("reservation_id", id.String()),
		slog.String("venue_id", res.VenueID().String()),
		slog.String("slot", res.Slot().Key()))
	return id, nil
}

func (uc *reservationCommandsImpl) Update(ctx context.Context, actor policy.Actor, id uuid.UUID, p reservation.Patch) error {
	var prev, next *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			return storeErr(err, errs.ErrReservationNotFound)
		}
		prev = snap.Reservation
		if !policy.CanAccessReservation(actor, ownership(snap)) {
			return forbidden()
		}

		next, err = prev.Apply(p, actor.ID, uc.clock.Now())
		if err != nil {
			if errors.Is(err, reservation.ErrInvalidTransition) {
				return errs.Mark(err, errs.ErrInvalidTransition)
			}
			return validationErr(err)
		}
		return tx.Reservations().Update(ctx, tx.DB(), next)
	})
	if err != nil {
		return passThrough(err, errs.ErrReservationNotFound)
	}

	uc.syncSlots(ctx, prev, next)
	return nil
}

// syncSlots moves the ledger along with a committed update. Only the slot the reservation held
// before the update is ever released; a slot it is merely moved onto may belong to someone else.
// A repeated cancel in place re-runs the idempotent remove.
func (uc *reservationCommandsImpl) syncSlots(ctx context.Context, prev, next *reservation.Reservation) {
	moved := !prev.Slot().Equal(next.Slot())
	venueID := next.VenueID()

	switch {
	case !next.IsActive():
		if prev.IsActive() || !moved {
			uc.ledger.RemoveSlot(ctx, venueID, prev.Slot())
		}
	case moved:
		uc.ledger.RemoveSlot(ctx, venueID, prev.Slot())
		uc.ledger.AddSlot(ctx, venueID, next.Slot())
	}
}

func (uc *reservationCommandsImpl) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	var deleted *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			return storeErr(err, errs.ErrReservationNotFound)
		}
		if !policy.CanDeleteReservation(actor) {
			return forbidden()
		}
		deleted = snap.Reservation
		return tx.Reservations().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return passThrough(err, errs.ErrReservationNotFound)
	}

	if uc.releaseOnDelete && deleted.IsActive() {
		uc.ledger.RemoveSlot(ctx, deleted.VenueID(), deleted.Slot())
	}
	uc.logger.Info("reservation deleted", slog.String("reservation_id", id.String()), slog.String("actor_id", actor.ID.String()))
	return nil
}

func ownership(snap *shared.ReservationSnapshot) policy.ReservationOwnership {
	return policy.ReservationOwnership{
		UserID:       snap.Reservation.UserID(),
		VenueOwnerID: snap.VenueOwnerID,
	}
}
