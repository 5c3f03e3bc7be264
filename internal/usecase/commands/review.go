package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"halisaha-api/internal/domain/policy"
	domreview "halisaha-api/internal/domain/review"
	"halisaha-api/internal/pkg/clock"
	"halisaha-api/internal/pkg/errs"
	"halisaha-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewInput struct {
	// defaults to the actor; only an admin may write on behalf of another user
	UserID  *uuid.UUID
	VenueID uuid.UUID
	Rating  int
	Comment string
}

type ReviewCommands interface {
	Create(ctx context.Context, actor policy.Actor, in CreateReviewInput) (uuid.UUID, error)
	Update(ctx context.Context, actor policy.Actor, id uuid.UUID, p domreview.Patch) error
	Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error
}

type reviewCommandsImpl struct {
	uow    shared.UnitOfWork
	rating RatingRecomputer
	clock  clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, rating RatingRecomputer, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, rating: rating, clock: clk}
}

func (uc *reviewCommandsImpl) Create(ctx context.Context, actor policy.Actor, in CreateReviewInput) (uuid.UUID, error) {
	userID := actor.ID
	if in.UserID != nil && *in.UserID != uuid.Nil {
		userID = *in.UserID
	}
	if !policy.CanWriteReview(actor, userID) {
		return uuid.Nil, forbidden()
	}

	rev, err := domreview.NewReview(userID, in.VenueID, in.Rating, in.Comment, uc.clock.Now())
	if err != nil {
		return uuid.Nil, validationErr(err)
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().VenueByID(ctx, in.VenueID); err != nil {
			return storeErr(err, errs.ErrVenueNotFound)
		}
		var err error
		id, err = tx.Reviews().Create(ctx, tx.DB(), rev)
		if err != nil {
			return storeErr(err, errs.ErrUserNotFound)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, passThrough(err, errs.ErrReviewNotFound)
	}

	uc.rating.Recompute(ctx, in.VenueID)
	return id, nil
}

func (uc *reviewCommandsImpl) Update(ctx context.Context, actor policy.Actor, id uuid.UUID, p domreview.Patch) error {
	var venueID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().ReviewByID(ctx, id)
		if err != nil {
			return storeErr(err, errs.ErrReviewNotFound)
		}
		if !policy.CanWriteReview(actor, current.UserID()) {
			return forbidden()
		}
		next, err := current.Apply(p, uc.clock.Now())
		if err != nil {
			return validationErr(err)
		}
		venueID = next.VenueID()
		return tx.Reviews().Update(ctx, tx.DB(), next)
	})
	if err != nil {
		return passThrough(err, errs.ErrReviewNotFound)
	}

	uc.rating.Recompute(ctx, venueID)
	return nil
}

func (uc *reviewCommandsImpl) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	var venueID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().ReviewByID(ctx, id)
		if err != nil {
			return storeErr(err, errs.ErrReviewNotFound)
		}
		if !policy.CanWriteReview(actor, current.UserID()) {
			return forbidden()
		}
		venueID = current.VenueID()
		return tx.Reviews().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return passThrough(err, errs.ErrReviewNotFound)
	}

	uc.rating.Recompute(ctx, venueID)
	return nil
}
