package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"halisaha-api/internal/domain/policy"
	"halisaha-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListAll(ctx context.Context) ([]*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*ReservationView, error)
}

type ReservationQueries interface {
	List(ctx context.Context, actor policy.Actor) ([]*ReservationView, error)
	GetByID(ctx context.Context, actor policy.Actor, id uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

// List returns the actor's own reservations, those at venues they own, or everything for admins.
func (q *reservationQueriesImpl) List(ctx context.Context, actor policy.Actor) ([]*ReservationView, error) {
	scope, err := policy.ReservationScopeFor(actor)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrForbidden)
	}

	var views []*ReservationView
	switch scope {
	case policy.ScopeAll:
		views, err = q.readStore.ListAll(ctx)
	case policy.ScopeOwnAndVenues:
		views, err = q.readStore.ListForOwner(ctx, actor.ID)
	case policy.ScopeOwn:
		views, err = q.readStore.ListByUser(ctx, actor.ID)
	default:
		return nil, errs.Mark(policy.ErrForbidden, errs.ErrForbidden)
	}
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor policy.Actor, id uuid.UUID) (*ReservationView, error) {
	v, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, readErr(err, errs.ErrReservationNotFound)
	}
	if !policy.CanAccessReservation(actor, policy.ReservationOwnership{UserID: v.UserID, VenueOwnerID: v.Venue.OwnerID}) {
		return nil, errs.Mark(policy.ErrForbidden, errs.ErrForbidden)
	}
	return v, nil
}
