package repository

import (
	"context"

	"halisaha-api/internal/domain/venue"
	"halisaha-api/internal/infra"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type VenueWriteQueries interface {
	CreateVenue(ctx context.Context, db pgstore.DBTX, arg pgstore.VenueParams) (uuid.UUID, error)
	UpdateVenue(ctx context.Context, db pgstore.DBTX, arg pgstore.VenueParams) (int64, error)
	DeleteVenue(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (int64, error)
	ListVenueIDs(ctx context.Context, db pgstore.DBTX) ([]uuid.UUID, error)
}

type VenueRepository struct {
	queries VenueWriteQueries
}

func NewVenueRepository(queries VenueWriteQueries) *VenueRepository {
	return &VenueRepository{queries: queries}
}

func (r *VenueRepository) Create(ctx context.Context, tx pgstore.DBTX, v *venue.Venue) (uuid.UUID, error) {
	id, err := r.queries.CreateVenue(ctx, tx, converter.VenueToParams(v))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create venue", err)
	}
	return id, nil
}

func (r *VenueRepository) Update(ctx context.Context, tx pgstore.DBTX, v *venue.Venue) error {
	n, err := r.queries.UpdateVenue(ctx, tx, converter.VenueToParams(v))
	if err != nil {
		return infra.WrapRepoErr("failed to update venue", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VenueRepository) Delete(ctx context.Context, tx pgstore.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteVenue(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete venue", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VenueRepository) ListIDs(ctx context.Context, tx pgstore.DBTX) ([]uuid.UUID, error) {
	ids, err := r.queries.ListVenueIDs(ctx, tx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venue ids", err)
	}
	return ids, nil
}
