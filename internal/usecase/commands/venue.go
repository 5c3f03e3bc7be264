package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"log/slog"

	"halisaha-api/internal/domain/policy"
	"halisaha-api/internal/domain/user"
	"halisaha-api/internal/domain/venue"
	"halisaha-api/internal/pkg/clock"
	"halisaha-api/internal/pkg/config"
	"halisaha-api/internal/pkg/errs"
	"halisaha-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateVenueInput struct {
	// defaults to the actor; only an admin may name someone else
	OwnerID    *uuid.UUID
	Attributes venue.Attributes
}

type VenueCommands interface {
	Create(ctx context.Context, actor policy.Actor, in CreateVenueInput) (uuid.UUID, error)
	Update(ctx context.Context, actor policy.Actor, id uuid.UUID, p venue.Patch) error
	Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error
}

type venueCommandsImpl struct {
	uow         shared.UnitOfWork
	invalidator shared.VenueListInvalidator
	clock       clock.Clock
	strict      bool
	logger      *slog.Logger
}

func NewVenueCommands(
	uow shared.UnitOfWork,
	invalidator shared.VenueListInvalidator,
	clk clock.Clock,
	cfg config.PolicyConfig,
	logger *slog.Logger,
) VenueCommands {
	return &venueCommandsImpl{
		uow:         uow,
		invalidator: invalidator,
		clock:       clk,
		strict:      cfg.StrictVenueOwnership,
		logger:      logger,
	}
}

func (uc *venueCommandsImpl) Create(ctx context.Context, actor policy.Actor, in CreateVenueInput) (uuid.UUID, error) {
	if !policy.CanCreateVenue(actor) {
		return uuid.Nil, forbidden()
	}
	ownerID := actor.ID
	if in.OwnerID != nil && *in.OwnerID != actor.ID {
		if actor.Role != user.RoleAdmin {
			return uuid.Nil, forbidden()
		}
		ownerID = *in.OwnerID
	}

	v, err := venue.NewVenue(ownerID, in.Attributes, uc.clock.Now())
	if err != nil {
		return uuid.Nil, validationErr(err)
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Venues().Create(ctx, tx.DB(), v)
		return err
	})
	if err != nil {
		return uuid.Nil, storeErr(err, errs.ErrUserNotFound)
	}

	uc.invalidate(ctx)
	uc.logger.Info("venue created", slog.String("venue_id", id.String()), slog.String("owner_id", ownerID.String()))
	return id, nil
}

func (uc *venueCommandsImpl) Update(ctx context.Context, actor policy.Actor, id uuid.UUID, p venue.Patch) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().VenueByID(ctx, id)
		if err != nil {
			return storeErr(err, errs.ErrVenueNotFound)
		}
		if !policy.CanModifyVenue(actor, current.OwnerID(), uc.strict) {
			return forbidden()
		}
		next, err := current.Apply(p, uc.clock.Now())
		if err != nil {
			return validationErr(err)
		}
		return tx.Venues().Update(ctx, tx.DB(), next)
	})
	if err != nil {
		return passThrough(err, errs.ErrVenueNotFound)
	}

	uc.invalidate(ctx)
	return nil
}

func (uc *venueCommandsImpl) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().VenueByID(ctx, id)
		if err != nil {
			return storeErr(err, errs.ErrVenueNotFound)
		}
		if !policy.CanModifyVenue(actor, current.OwnerID(), uc.strict) {
			return forbidden()
		}
		// booked slots, reservations and reviews cascade
		return tx.Venues().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return passThrough(err, errs.ErrVenueNotFound)
	}

	uc.invalidate(ctx)
	uc.logger.Info("venue deleted", slog.String("venue_id", id.String()), slog.String("actor_id", actor.ID.String()))
	return nil
}

func (uc *venueCommandsImpl) invalidate(ctx context.Context) {
	if err := uc.invalidator.InvalidateVenueList(ctx); err != nil {
		uc.logger.Warn("failed to invalidate venue list cache", slog.String("error", err.Error()))
	}
}
