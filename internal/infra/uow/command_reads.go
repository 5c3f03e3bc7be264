package uow

import (
	"context"

	"halisaha-api/internal/domain/review"
	"halisaha-api/internal/domain/user"
	"halisaha-api/internal/domain/venue"
	"halisaha-api/internal/infra"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/internal/infra/repository/converter"
	"halisaha-api/internal/pkg/pgconv"
	"halisaha-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// commandReads loads write-side aggregates on whatever connection it was built with,
// so reads inside Within see the transaction's own writes.
type commandReads struct {
	q    *pgstore.Queries
	dbtx pgstore.DBTX
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	row, err := r.q.FindUserByEmail(ctx, r.dbtx, email)
	if err != nil {
		return nil, wrapReadErr("user", err)
	}
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user row", err, infra.KindDBFailure)
	}
	return u, nil
}

func (r *commandReads) VenueByID(ctx context.Context, id uuid.UUID) (*venue.Venue, error) {
	row, err := r.q.FindVenueByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, wrapReadErr("venue", err)
	}
	return converter.VenueFromRow(row), nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	row, err := r.q.GetReservationView(ctx, r.dbtx, id)
	if err != nil {
		return nil, wrapReadErr("reservation", err)
	}
	res, err := converter.ReservationFromRow(row.Reservation)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
	}
	return &shared.ReservationSnapshot{
		Reservation:  res,
		VenueOwnerID: row.VenueOwnerID,
	}, nil
}

func (r *commandReads) ReviewByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	row, err := r.q.GetReviewView(ctx, r.dbtx, id)
	if err != nil {
		return nil, wrapReadErr("review", err)
	}
	rv, err := converter.ReviewFromRow(row.Review)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt review row", err, infra.KindDBFailure)
	}
	return rv, nil
}

func wrapReadErr(entity string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(entity+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to load "+entity, err)
}
